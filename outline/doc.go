// Package outline assembles classified blocks into the final document
// outline: a title chosen from the first page plus a flat, document-ordered
// list of heading entries.
//
// The structurer is a pure function over an already-classified document. It
// never fails: a document with no blocks yields an empty outline with an
// empty title rather than an error.
package outline
