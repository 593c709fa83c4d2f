// Package blocks turns raw positioned text fragments into merged logical
// text blocks, the unit every later pipeline stage operates on.
//
// The work happens in three passes per document:
//
//  1. Line grouping: fragments on each page are clustered by vertical
//     position into visual lines, and each line's text is assembled with
//     gap-aware spacing.
//  2. Continuation merging: a line that ends with a hyphenated wrap or an
//     unclosed bracket is merged with the line below it, so a heading or
//     sentence split across lines becomes one block.
//  3. Boilerplate marking: text that repeats at the same position in the
//     top or bottom margin band across many pages (running headers,
//     footers, page numbers) is flagged so classification skips it.
//
// Blocks come out in canonical document order: page ascending, then top
// edge ascending, then left edge ascending.
package blocks
