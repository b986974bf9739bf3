package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Form selects the Unicode normalisation applied to recognised text.
type Form int

const (
	// None leaves text untouched.
	None Form = iota
	// NFC is canonical composition.
	NFC
	// NFKC is compatibility composition; it also folds ligatures and
	// full-width forms, which is useful for form keys.
	NFKC
)

// String returns the lowercase name of the form.
func (f Form) String() string {
	switch f {
	case NFC:
		return "nfc"
	case NFKC:
		return "nfkc"
	default:
		return "none"
	}
}

// ParseForm parses a form name as produced by String. Unknown names map to None
// and ok is false.
func ParseForm(s string) (Form, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, true
	case "nfc":
		return NFC, true
	case "nfkc":
		return NFKC, true
	default:
		return None, false
	}
}

// Normalize returns s in the requested normal form.
func Normalize(s string, form Form) string {
	switch form {
	case NFC:
		return norm.NFC.String(s)
	case NFKC:
		return norm.NFKC.String(s)
	default:
		return s
	}
}

// Join concatenates the non-empty parts with sep.
func Join(parts []string, sep string) string {
	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(p)
	}
	return sb.String()
}
