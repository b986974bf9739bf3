package pages

import "github.com/MorphisHe/textractdoc/block"

// ClaimSet holds the ids listed as children of tables, cells and form pairs
type ClaimSet map[string]struct{}

// Claimed collects every id referenced by a TABLE, CELL or KEY_VALUE_SET
// block among nodes, across all of their relationship groups
func Claimed(nodes []*block.Block) ClaimSet {
	claims := make(ClaimSet)
	for _, n := range nodes {
		switch n.Kind() {
		case block.BlockTypeTable, block.BlockTypeCell, block.BlockTypeKeyValueSet:
			for _, id := range n.AllIDs() {
				claims[id] = struct{}{}
			}
		}
	}
	return claims
}

// Has reports whether id is claimed
func (c ClaimSet) Has(id string) bool {
	_, ok := c[id]
	return ok
}

// Keeps reports whether a line belongs to running text: some relationship
// group lists at least one unclaimed id. A line without relationships is
// not kept.
func (c ClaimSet) Keeps(line *block.Block) bool {
	for _, rel := range line.Relationships {
		for _, id := range rel.IDs {
			if !c.Has(id) {
				return true
			}
		}
	}
	return false
}
