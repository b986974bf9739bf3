// Package block defines the raw response schema produced by the document
// analysis service and decodes it from JSON.
//
// A response is a flat list of [Block] values. Blocks carry no nesting of
// their own: structure is expressed through [Relationship] groups that list
// the ids of other blocks. Resolving those ids is the job of the resolver
// package; this package only describes the wire format.
//
// # Block Kinds
//
// The service tags every block with a string kind. [Block.Kind] maps that tag
// onto the closed [BlockType] enum:
//
//   - [BlockTypePage], [BlockTypeLine], [BlockTypeWord]
//   - [BlockTypeTable], [BlockTypeCell]
//   - [BlockTypeKeyValueSet], [BlockTypeSelectionElement]
//
// Any other tag (newer service features such as MERGED_CELL or QUERY) maps to
// [BlockTypeUnknown]. Unknown kinds decode without error and are ignored by
// the assemblers, so payloads from newer API versions still parse.
//
// # Decoding
//
// [Decode] accepts a single response object, a JSON array of responses or
// JSON Lines with one response per line:
//
//	responses, err := block.Decode(f)
//
// # Optional Fields
//
// Fields whose absence must be detectable (confidence, geometry, row and
// column indices, selection status) are pointers. A nil pointer means the key
// was missing from the payload.
package block
