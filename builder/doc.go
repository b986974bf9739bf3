// Package builder converts raw analysis blocks into model values.
//
// A [Builder] resolves relationship ids through an [Index] and produces
// words, lines, selection elements, form fields, cells and tables. Blocks
// missing a required field fail with a [MissingFieldError]. Relationship ids
// that resolve to nothing are omitted and collected, see [Builder.Skipped].
package builder
