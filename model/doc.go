// Package model provides the intermediate representation (IR) for document
// outline extraction.
//
// This package defines the data structures that flow through the extraction
// pipeline: text blocks with geometry and typography, per-page dimensions,
// and the final outline result.
//
// # Coordinate System
//
// All geometry uses top-down page coordinates: the origin is the top-left
// corner of the page, Y increases downward. The [BBox] type stores the left
// edge (X0), the top and bottom edges, and the width. This matches the
// visual reading order of a page, so "above" always means a smaller Top
// value.
//
// # Blocks
//
// A [TextBlock] is a merged logical line of text with its typographic
// attributes (font size, font name, bold/italic flags) and derived layout
// features. Blocks are totally ordered by (Page, Top, X0); see
// [SortBlocks].
//
// # Outline
//
// The [Outline] type is the final result: a document title plus a flat,
// document-ordered list of [OutlineEntry] values with levels H1 through H4.
package model
