package strata

import (
	"fmt"
	"sort"

	"github.com/tsawler/strata/blocks"
	"github.com/tsawler/strata/classify"
	"github.com/tsawler/strata/lang"
	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/outline"
	"github.com/tsawler/strata/reader"
)

// Extractor provides a fluent interface for extracting outlines from PDFs.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string

	// Reader
	reader *reader.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		reader:       e.reader,
		ownsReader:   e.ownsReader,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to process (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	outline, _, err := strata.Open("doc.pdf").Pages(1, 3, 5).Outline()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to process (1-indexed, inclusive).
//
// Example:
//
//	outline, _, err := strata.Open("doc.pdf").PageRange(5, 10).Outline()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// DetectLanguage enables or disables language detection. Detection is on by
// default; disabling it makes script-aware heuristics fall back to their
// neutral behavior.
//
// Example:
//
//	outline, _, err := strata.Open("doc.pdf").DetectLanguage(false).Outline()
func (e *Extractor) DetectLanguage(enabled bool) *Extractor {
	newExt := e.clone()
	newExt.options.detectLanguage = enabled
	return newExt
}

// WithBlocksConfig replaces the block building configuration.
func (e *Extractor) WithBlocksConfig(cfg blocks.Config) *Extractor {
	newExt := e.clone()
	newExt.options.blocks = cfg
	return newExt
}

// WithLanguageConfig replaces the language detection configuration.
func (e *Extractor) WithLanguageConfig(cfg lang.Config) *Extractor {
	newExt := e.clone()
	newExt.options.lang = cfg
	return newExt
}

// WithClassifyConfig replaces the heading classification configuration.
// Combine with classify.LoadConfig to apply YAML weight overrides.
//
// Example:
//
//	cfg, err := classify.LoadConfig("weights.yaml")
//	if err != nil {
//	    // handle error
//	}
//	outline, _, err := strata.Open("doc.pdf").WithClassifyConfig(cfg).Outline()
func (e *Extractor) WithClassifyConfig(cfg classify.Config) *Extractor {
	newExt := e.clone()
	newExt.options.classify = cfg
	return newExt
}

// WithOutlineConfig replaces the outline structuring configuration.
func (e *Extractor) WithOutlineConfig(cfg outline.Config) *Extractor {
	newExt := e.clone()
	newExt.options.outline = cfg
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the number of pages in the document.
// Note: The reader remains open so further operations can reuse it.
//
// Example:
//
//	ext := strata.Open("document.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureReader(); err != nil {
		return 0, err
	}
	return e.reader.PageCount(), nil
}

// Document runs the extraction pipeline up to block building and language
// detection and returns the assembled document. Pages that fail to parse
// are skipped with a warning. The reader is closed if the Extractor
// opened it.
//
// Example:
//
//	doc, warnings, err := strata.Open("document.pdf").Document()
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	if e.err != nil {
		return nil, e.warnings, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, e.warnings, err
	}
	if e.ownsReader {
		defer e.Close()
	}

	pageData := e.readPages()

	doc := model.NewDocument()
	doc.Count = e.reader.PageCount()
	doc.Metadata = e.reader.Metadata()
	for _, p := range pageData {
		doc.Pages[p.Number] = model.PageDims{Width: p.Width, Height: p.Height}
	}

	builder := blocks.NewBuilderWithConfig(e.options.blocks)
	doc.Blocks = builder.Build(pageData)

	if e.options.detectLanguage {
		doc.Lang = lang.NewDetectorWithConfig(e.options.lang).Detect(doc.Blocks)
	}

	return doc, e.warnings, nil
}

// Blocks runs the pipeline up to block building and returns the merged,
// ordered text blocks.
//
// Example:
//
//	blocks, warnings, err := strata.Open("document.pdf").Blocks()
func (e *Extractor) Blocks() ([]*model.TextBlock, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return nil, warnings, err
	}
	return doc.Blocks, warnings, nil
}

// Outline runs the full pipeline and returns the document outline: a title
// plus every detected heading in document order. A document with no
// extractable text yields an empty outline, not an error.
//
// Example:
//
//	outline, warnings, err := strata.Open("document.pdf").Outline()
func (e *Extractor) Outline() (model.Outline, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return model.Outline{}, warnings, err
	}

	classifier := classify.NewClassifierWithConfig(e.options.classify)
	classifier.Classify(doc)

	structurer := outline.NewStructurerWithConfig(e.options.outline)
	return structurer.Build(doc), warnings, nil
}

// readPages extracts every selected page, recording a warning for each
// page that fails instead of aborting the document.
func (e *Extractor) readPages() []reader.PageData {
	nums := e.selectedPages()

	out := make([]reader.PageData, 0, len(nums))
	for _, n := range nums {
		pd, err := e.reader.Page(n)
		if err != nil {
			e.warnings = append(e.warnings, Warning{Page: n, Message: err.Error()})
			continue
		}
		out = append(out, pd)
	}
	return out
}

// selectedPages resolves the page selection to an ordered, de-duplicated
// list of valid page numbers. An empty selection means all pages.
func (e *Extractor) selectedPages() []int {
	total := e.reader.PageCount()

	if len(e.options.pages) == 0 {
		nums := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			nums = append(nums, i)
		}
		return nums
	}

	seen := make(map[int]bool, len(e.options.pages))
	var nums []int
	for _, n := range e.options.pages {
		if n < 1 || n > total || seen[n] {
			continue
		}
		seen[n] = true
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}
