// Package resolver turns analysis responses into an indexed block graph.
//
// Blocks from every response are concatenated in supplied order, split into
// pages and indexed by id. Relationships stay as id lists; callers follow
// them with [Graph.Lookup]:
//
//	g, err := resolver.Resolve(responses)
//	nodes, ok := g.Page(1)
//	word, ok := g.Lookup(id)
//
// # Relationship walks
//
// [Graph.Descendants] follows every relationship edge below a block with
// cycle detection and a configurable depth limit:
//
//	g, err := resolver.Resolve(responses, resolver.WithMaxDepth(50))
//	words, err := g.Descendants(tableID, block.BlockTypeWord)
package resolver
