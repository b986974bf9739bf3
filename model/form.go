package model

import "strings"

// FieldKey is the key side of a form field
type FieldKey struct {
	ID         string
	Confidence float64
	Geometry   Geometry
	Content    []Content
	Text       string
}

func (k FieldKey) String() string { return k.Text }

// FieldValue is the value side of a form field
type FieldValue struct {
	ID         string
	Confidence float64
	Geometry   Geometry
	Content    []Content
	Text       string
}

func (v FieldValue) String() string { return v.Text }

// KeyValueSet pairs a key with its value. Value is nil for unfilled fields
// and for values the service did not link.
type KeyValueSet struct {
	Key   FieldKey
	Value *FieldValue
}

// ValueText returns the value text, or "" when the value is absent
func (kv KeyValueSet) ValueText() string {
	if kv.Value == nil {
		return ""
	}
	return kv.Value.Text
}

// Form holds the key/value pairs of a page. All pairs are kept in encounter
// order; lookup by key text returns the last pair with that key.
type Form struct {
	KeyValueSets []KeyValueSet
}

func (f Form) Type() ElementType { return ElementTypeForm }

// BoundingBox returns the union of every key and present value box
func (f Form) BoundingBox() BBox {
	var geoms []Geometry
	for _, kv := range f.KeyValueSets {
		geoms = append(geoms, kv.Key.Geometry)
		if kv.Value != nil {
			geoms = append(geoms, kv.Value.Geometry)
		}
	}
	return UnionGeometry(geoms...).BBox
}

// Add appends a pair, making it the lookup target for its key text
func (f *Form) Add(kv KeyValueSet) {
	f.KeyValueSets = append(f.KeyValueSets, kv)
}

// Len returns the number of pairs, duplicates included
func (f Form) Len() int {
	return len(f.KeyValueSets)
}

// Get returns the last pair whose key text equals key exactly
func (f Form) Get(key string) (KeyValueSet, bool) {
	for i := len(f.KeyValueSets) - 1; i >= 0; i-- {
		if f.KeyValueSets[i].Key.Text == key {
			return f.KeyValueSets[i], true
		}
	}
	return KeyValueSet{}, false
}

// Search returns every pair whose key text contains key, case-insensitively,
// in encounter order
func (f Form) Search(key string) []KeyValueSet {
	needle := strings.ToLower(key)
	var results []KeyValueSet
	for _, kv := range f.KeyValueSets {
		if strings.Contains(strings.ToLower(kv.Key.Text), needle) {
			results = append(results, kv)
		}
	}
	return results
}

// Map returns the key text to pair mapping; later pairs replace earlier
// ones with the same key
func (f Form) Map() map[string]KeyValueSet {
	m := make(map[string]KeyValueSet, len(f.KeyValueSets))
	for _, kv := range f.KeyValueSets {
		m[kv.Key.Text] = kv
	}
	return m
}

func (kv KeyValueSet) String() string {
	return "Key: " + kv.Key.Text + "\nValue: " + kv.ValueText()
}

// String renders every pair between banners
func (f Form) String() string {
	var sb strings.Builder
	sb.WriteString("\n\n======= Form =======\n\n")
	for _, kv := range f.KeyValueSets {
		sb.WriteString(kv.String())
		sb.WriteString("\n\n")
	}
	sb.WriteString("===== End of Form =====\n\n")
	return sb.String()
}
