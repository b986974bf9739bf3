// Package layout recovers reading order from the lines of one page.
//
// Analysis responses carry lines with coordinates but no grouping. The
// [Reconstructor] rebuilds paragraphs in four stages:
//
//  1. [MergeLines] joins fragments that sit on one visual line and are
//     separated by at most [LineConfig.MergeTolerance].
//  2. [MeasureGaps] measures the signed vertical gap between each pair of
//     sequential lines, flagging pairs on the same visual line.
//  3. [Segment] cuts the lines into runs wherever a gap reaches
//     [ParagraphConfig.Gap].
//  4. [DetectColumns] splits each run into columns by horizontal overlap.
//     Each column becomes one paragraph.
//
// Usage:
//
//	r := layout.NewReconstructor()
//	paragraphs := r.Reconstruct(lines)
//
// Columns are discovered in scan order, so a layout whose leftmost content
// is not encountered first can be emitted out of order.
package layout
