package block

// Response is one payload returned by the analysis service.
type Response struct {
	DocumentMetadata *DocumentMetadata `json:"DocumentMetadata,omitempty"`

	// Blocks is nil when the payload had no Blocks key at all, and empty
	// when the key was present with no entries.
	Blocks []Block `json:"Blocks"`

	JobStatus                      string `json:"JobStatus,omitempty"`
	StatusMessage                  string `json:"StatusMessage,omitempty"`
	NextToken                      string `json:"NextToken,omitempty"`
	AnalyzeDocumentModelVersion    string `json:"AnalyzeDocumentModelVersion,omitempty"`
	DetectDocumentTextModelVersion string `json:"DetectDocumentTextModelVersion,omitempty"`
}

// DocumentMetadata carries document-level information.
type DocumentMetadata struct {
	Pages int `json:"Pages"`
}

// Block is a single node of the response graph.
type Block struct {
	ID              string         `json:"Id"`
	BlockType       string         `json:"BlockType"`
	Confidence      *float64       `json:"Confidence,omitempty"`
	Text            string         `json:"Text,omitempty"`
	TextType        string         `json:"TextType,omitempty"`
	EntityTypes     []string       `json:"EntityTypes,omitempty"`
	Geometry        *Geometry      `json:"Geometry,omitempty"`
	Relationships   []Relationship `json:"Relationships,omitempty"`
	RowIndex        *int           `json:"RowIndex,omitempty"`
	ColumnIndex     *int           `json:"ColumnIndex,omitempty"`
	RowSpan         *int           `json:"RowSpan,omitempty"`
	ColumnSpan      *int           `json:"ColumnSpan,omitempty"`
	SelectionStatus *string        `json:"SelectionStatus,omitempty"`
	Page            int            `json:"Page,omitempty"`
}

// Kind returns the block's type.
func (b *Block) Kind() BlockType {
	return ParseBlockType(b.BlockType)
}

// IDs returns the ids of every relationship group of type t, in declared
// order.
func (b *Block) IDs(t RelationshipType) []string {
	var ids []string
	for _, rel := range b.Relationships {
		if rel.Kind() == t {
			ids = append(ids, rel.IDs...)
		}
	}
	return ids
}

// AllIDs returns the ids of every relationship group regardless of type.
func (b *Block) AllIDs() []string {
	var ids []string
	for _, rel := range b.Relationships {
		ids = append(ids, rel.IDs...)
	}
	return ids
}

// HasRelationship reports whether b declares at least one group of type t,
// even an empty one.
func (b *Block) HasRelationship(t RelationshipType) bool {
	for _, rel := range b.Relationships {
		if rel.Kind() == t {
			return true
		}
	}
	return false
}

// HasEntityType reports whether the entity type list contains entity.
func (b *Block) HasEntityType(entity string) bool {
	for _, e := range b.EntityTypes {
		if e == entity {
			return true
		}
	}
	return false
}

// Relationship is a typed group of related block ids.
type Relationship struct {
	Type string   `json:"Type"`
	IDs  []string `json:"Ids"`
}

// Kind returns the relationship's type.
func (r Relationship) Kind() RelationshipType {
	return ParseRelationshipType(r.Type)
}

// Geometry is the raw location of a block.
type Geometry struct {
	BoundingBox *BoundingBox `json:"BoundingBox,omitempty"`
	Polygon     []Point      `json:"Polygon,omitempty"`
}

// BoundingBox is an axis-aligned box in page-relative [0,1] coordinates with
// the origin at the top-left corner.
type BoundingBox struct {
	Width  float64 `json:"Width"`
	Height float64 `json:"Height"`
	Left   float64 `json:"Left"`
	Top    float64 `json:"Top"`
}

// Point is one polygon vertex.
type Point struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
}
