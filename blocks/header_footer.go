package blocks

import (
	"math"
	"regexp"
	"strings"

	"github.com/tsawler/strata/model"
)

// HeaderFooterConfig holds configuration for boilerplate detection.
type HeaderFooterConfig struct {
	// MarginRatio is the fraction of page height at the top and at the
	// bottom that counts as the header/footer band (default: 0.15)
	MarginRatio float64

	// MinOccurrenceRatio is the minimum fraction of pages a positioned text
	// must repeat on to be considered boilerplate (default: 0.3)
	MinOccurrenceRatio float64

	// PageNumberRatio is the occurrence threshold for page-number-only
	// lines, which vary by page and so need their own, looser rule
	// (default: 0.5)
	PageNumberRatio float64

	// PositionBucket is the vertical bucket size in points for grouping
	// repeated text by position (default: 5)
	PositionBucket float64

	// MinPages is the minimum page count before detection runs; repetition
	// is meaningless on a one or two page document (default: 3)
	MinPages int
}

// DefaultHeaderFooterConfig returns sensible default configuration.
func DefaultHeaderFooterConfig() HeaderFooterConfig {
	return HeaderFooterConfig{
		MarginRatio:        0.15,
		MinOccurrenceRatio: 0.3,
		PageNumberRatio:    0.5,
		PositionBucket:     5.0,
		MinPages:           3,
	}
}

// HeaderFooterDetector marks repeating margin-band text across pages.
type HeaderFooterDetector struct {
	config HeaderFooterConfig
}

// NewHeaderFooterDetector creates a detector with default configuration.
func NewHeaderFooterDetector() *HeaderFooterDetector {
	return &HeaderFooterDetector{config: DefaultHeaderFooterConfig()}
}

// NewHeaderFooterDetectorWithConfig creates a detector with custom configuration.
func NewHeaderFooterDetectorWithConfig(config HeaderFooterConfig) *HeaderFooterDetector {
	return &HeaderFooterDetector{config: config}
}

var digitRun = regexp.MustCompile(`\d+`)

// pageNumberPatterns match margin lines that are nothing but a page
// reference, after digit runs are collapsed to "#".
var pageNumberPatterns = []string{
	"#", "- # -", "– # –", "# / #", "#/#", "# of #",
	"page #", "page # of #", "p. #", "p.#", "pg #", "pg. #",
}

// Mark flags boilerplate blocks in place. A block is boilerplate when it
// sits in the top or bottom margin band and either (a) its digit-normalized
// text repeats at the same vertical bucket on enough pages, or (b) it is a
// page-number-only line that recurs across the document.
func (d *HeaderFooterDetector) Mark(blocks []*model.TextBlock, dims map[int]model.PageDims) {
	pageCount := len(dims)
	if pageCount < d.config.MinPages {
		return
	}

	type key struct {
		text   string
		bucket int
		top    bool
	}

	occurrences := make(map[key]map[int]bool)
	pageNumPages := make(map[int]bool)

	inBand := func(b *model.TextBlock) (top bool, in bool) {
		pd, ok := dims[b.Page]
		if !ok || pd.Height <= 0 {
			return false, false
		}
		margin := pd.Height * d.config.MarginRatio
		if b.BBox.Bottom <= margin {
			return true, true
		}
		if b.BBox.Top >= pd.Height-margin {
			return false, true
		}
		return false, false
	}

	for _, b := range blocks {
		top, in := inBand(b)
		if !in {
			continue
		}

		normalized := normalizeBoilerplate(b.Text)
		if normalized == "" {
			continue
		}

		if isPageNumberLine(normalized) {
			pageNumPages[b.Page] = true
		}

		k := key{
			text:   normalized,
			bucket: int(math.Round(b.BBox.Top / d.config.PositionBucket)),
			top:    top,
		}
		if occurrences[k] == nil {
			occurrences[k] = make(map[int]bool)
		}
		occurrences[k][b.Page] = true
	}

	minRepeats := int(float64(pageCount) * d.config.MinOccurrenceRatio)
	if minRepeats < 2 {
		minRepeats = 2
	}
	minPageNum := int(float64(pageCount) * d.config.PageNumberRatio)
	if minPageNum < 2 {
		minPageNum = 2
	}
	pageNumsRecur := len(pageNumPages) >= minPageNum

	for _, b := range blocks {
		top, in := inBand(b)
		if !in {
			continue
		}

		normalized := normalizeBoilerplate(b.Text)
		if normalized == "" {
			continue
		}

		if pageNumsRecur && isPageNumberLine(normalized) {
			b.Boilerplate = true
			continue
		}

		k := key{
			text:   normalized,
			bucket: int(math.Round(b.BBox.Top / d.config.PositionBucket)),
			top:    top,
		}
		if len(occurrences[k]) >= minRepeats {
			b.Boilerplate = true
		}
	}
}

// normalizeBoilerplate lowercases, collapses whitespace, and replaces digit
// runs with "#" so "Page 3" and "Page 17" compare equal.
func normalizeBoilerplate(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = strings.Join(strings.Fields(t), " ")
	return digitRun.ReplaceAllString(t, "#")
}

// isPageNumberLine reports whether digit-normalized text is nothing but a
// page reference.
func isPageNumberLine(normalized string) bool {
	for _, p := range pageNumberPatterns {
		if normalized == p {
			return true
		}
	}
	return false
}
