package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is matched by every MissingFieldError
	ErrMissingField = errors.New("builder: missing required field")

	// ErrInvalidField is matched by every InvalidFieldError
	ErrInvalidField = errors.New("builder: invalid field value")

	// ErrDanglingReference is matched by every DanglingReferenceError
	ErrDanglingReference = errors.New("builder: dangling reference")
)

// MissingFieldError reports a required field absent on the block being built
type MissingFieldError struct {
	Field  string
	NodeID string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("builder: block %q: missing required field %s", e.NodeID, e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InvalidFieldError reports a field whose value cannot be represented
type InvalidFieldError struct {
	Field  string
	NodeID string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("builder: block %q: invalid %s: %s", e.NodeID, e.Field, e.Reason)
}

func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// DanglingReferenceError reports a relationship id with no matching block.
// Builders record it and omit the child instead of failing.
type DanglingReferenceError struct {
	ChildID  string
	ParentID string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("builder: block %q references unknown block %q", e.ParentID, e.ChildID)
}

func (e *DanglingReferenceError) Is(target error) bool {
	return target == ErrDanglingReference
}
