// Package model provides the value types produced by assembling document
// analysis responses.
//
// A [Document] holds [Page] values. Each page carries the lines that survived
// table and form filtering, the paragraphs reconstructed from them, the
// detected [Table] values and a [Form] of [KeyValueSet] pairs. Page content
// is exposed in reading order through the [Element] interface:
//
//   - [Paragraph] - lines grouped by layout reconstruction
//   - [Table] - rows of [Cell] values with 1-based indices and spans
//   - [Form] - key/value pairs, searchable by key text
//
// Field and cell content is a list of [Content] items, each a [Word] or a
// [SelectionElement].
//
// # Geometry
//
// Coordinates are normalised to the page, with the origin at the top-left
// corner and y growing downward:
//
//   - [BBox] - bounding box with union, intersection and overlap tests
//   - [Polygon] - outline points
//   - [Geometry] - box plus polygon, as reported per block
//
// All values are immutable once assembled and safe to share between
// goroutines.
package model
