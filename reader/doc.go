// Package reader wraps the ledongthuc/pdf library behind a small, panic-safe
// API for positioned text extraction.
//
// The upstream library treats PDF parsing as a best-effort affair: malformed
// content streams panic rather than return errors. This package confines
// those panics to the page that caused them, so a single corrupt page costs
// its own fragments and nothing else.
//
// Coordinates returned by this package are top-down (origin at the top-left
// of the page), matching the model package. The underlying PDF coordinate
// system is bottom-up; the conversion happens here and nowhere else.
package reader
