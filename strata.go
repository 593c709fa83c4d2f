// Package strata provides a fluent API for extracting structured outlines
// from PDF files: a document title plus a flat list of headings classified
// into levels H1-H4, derived purely from typography and geometry.
//
// Basic usage:
//
//	outline, warnings, err := strata.Open("document.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", strata.FormatWarnings(warnings))
//	}
//
// With options:
//
//	outline, _, err := strata.Open("report.pdf").
//	    Pages(1, 2, 3).
//	    DetectLanguage(false).
//	    Outline()
//
// For advanced use cases, the lower-level reader, blocks, classify, and
// outline packages are also available.
package strata

import (
	"github.com/tsawler/strata/reader"
)

// Open opens a PDF file and returns an Extractor for fluent configuration.
// The returned Extractor must be closed when done, either explicitly via
// Close() or implicitly when calling a terminal operation like Outline().
//
// Example:
//
//	outline, warnings, err := strata.Open("document.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	outline, warnings, err := strata.FromReader(r).Outline()
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := strata.Must(strata.Open("document.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustOutline is a helper that wraps a call to Outline(), Blocks(), or
// Document() and panics if the error is non-nil. It discards warnings and
// returns just the value. It is intended for use in scripts or tests where
// error handling would be cumbersome.
//
// Example:
//
//	outline := strata.MustOutline(strata.Open("document.pdf").Outline())
func MustOutline[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
