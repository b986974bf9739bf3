package block

// BlockType is the closed set of block kinds the assemblers understand.
type BlockType int

const (
	BlockTypeUnknown BlockType = iota
	BlockTypePage
	BlockTypeWord
	BlockTypeLine
	BlockTypeKeyValueSet
	BlockTypeSelectionElement
	BlockTypeCell
	BlockTypeTable
)

// String returns the wire tag of the block type.
func (t BlockType) String() string {
	switch t {
	case BlockTypePage:
		return "PAGE"
	case BlockTypeWord:
		return "WORD"
	case BlockTypeLine:
		return "LINE"
	case BlockTypeKeyValueSet:
		return "KEY_VALUE_SET"
	case BlockTypeSelectionElement:
		return "SELECTION_ELEMENT"
	case BlockTypeCell:
		return "CELL"
	case BlockTypeTable:
		return "TABLE"
	default:
		return "UNKNOWN"
	}
}

// ParseBlockType maps a wire tag onto a BlockType. Unrecognised tags return
// BlockTypeUnknown.
func ParseBlockType(tag string) BlockType {
	switch tag {
	case "PAGE":
		return BlockTypePage
	case "WORD":
		return BlockTypeWord
	case "LINE":
		return BlockTypeLine
	case "KEY_VALUE_SET":
		return BlockTypeKeyValueSet
	case "SELECTION_ELEMENT":
		return BlockTypeSelectionElement
	case "CELL":
		return BlockTypeCell
	case "TABLE":
		return BlockTypeTable
	default:
		return BlockTypeUnknown
	}
}

// RelationshipType is the kind of a relationship group.
type RelationshipType int

const (
	RelationshipUnknown RelationshipType = iota
	// RelationshipChild is containment: a line's words, a cell's content.
	RelationshipChild
	// RelationshipValue links a form key to its value block.
	RelationshipValue
)

// String returns the wire tag of the relationship type.
func (t RelationshipType) String() string {
	switch t {
	case RelationshipChild:
		return "CHILD"
	case RelationshipValue:
		return "VALUE"
	default:
		return "UNKNOWN"
	}
}

// ParseRelationshipType maps a wire tag onto a RelationshipType.
func ParseRelationshipType(tag string) RelationshipType {
	switch tag {
	case "CHILD":
		return RelationshipChild
	case "VALUE":
		return RelationshipValue
	default:
		return RelationshipUnknown
	}
}

// Entity types attached to KEY_VALUE_SET blocks.
const (
	EntityKey   = "KEY"
	EntityValue = "VALUE"
)

// Selection status literals.
const (
	Selected    = "SELECTED"
	NotSelected = "NOT_SELECTED"
)
