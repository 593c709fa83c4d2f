package model

import (
	"sort"
	"strings"
)

// Level represents a heading level assigned to a text block.
// LevelNone marks body text and suppressed noise.
type Level int

const (
	LevelNone Level = iota
	LevelH1
	LevelH2
	LevelH3
	LevelH4
)

// Levels lists the heading levels in seniority order (H1 first).
// Iterating in this order makes senior-level tie-breaking explicit.
var Levels = []Level{LevelH1, LevelH2, LevelH3, LevelH4}

// String returns the level label ("H1".."H4"), or "" for LevelNone.
func (l Level) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	case LevelH4:
		return "H4"
	default:
		return ""
	}
}

// IsHeading reports whether the level is H1 through H4.
func (l Level) IsHeading() bool {
	return l >= LevelH1 && l <= LevelH4
}

// MarshalText implements encoding.TextMarshaler so levels serialize
// as "H1".."H4" in JSON output.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Features holds the layout context computed for a block relative to its
// page and its vertical neighbours. All values are derived; they carry no
// information that is not already present in the block geometry and the
// page dimensions.
type Features struct {
	FontRatio   float64 // block font size / body font size
	IsCentered  bool    // horizontal center within tolerance of page center
	GapBefore   float64 // vertical gap to the previous block on the same page
	GapAfter    float64 // vertical gap to the next block on the same page
	LargeGapAbove bool  // GapBefore exceeds the spacing threshold
	LargeGapBelow bool  // GapAfter exceeds the spacing threshold
	FirstOnPage bool    // topmost block of its page
	Indent      float64 // X0 relative to the leftmost block on the page

	PrevFontSize     float64 // font size of the previous block on the page, 0 for the first
	NextFontSize     float64 // font size of the next block on the page, 0 for the last
	SmallerTextBelow bool    // the next block's font is markedly smaller than this one's

	AllCaps     bool    // every cased letter is upper case (cased scripts only)
	WordCount   int     // script-aware word count
	CharCount   int     // rune count of the trimmed text
}

// TextBlock is a merged logical line of text with its typography and
// geometry. Page numbers are 1-indexed throughout.
type TextBlock struct {
	Text     string
	Page     int
	BBox     BBox
	FontSize float64
	FontName string
	Bold     bool
	Italic   bool

	// Derived during classification
	Features Features
	Level    Level

	// Marked by header/footer detection; excluded from classification.
	Boilerplate bool
}

// TrimmedText returns the block text with surrounding whitespace removed.
func (b *TextBlock) TrimmedText() string {
	return strings.TrimSpace(b.Text)
}

// boldMarkers are font-name substrings that indicate a bold face.
var boldMarkers = []string{"bold", "black", "heavy", "semibold", "demibold"}

// italicMarkers are font-name substrings that indicate an italic face.
var italicMarkers = []string{"italic", "oblique"}

// InferStyle derives bold/italic flags from a PDF font name.
// Font names like "ABCDEF+Helvetica-BoldOblique" carry the style in the
// suffix; there is no separate style attribute in the content stream.
func InferStyle(fontName string) (bold, italic bool) {
	name := strings.ToLower(fontName)
	for _, m := range boldMarkers {
		if strings.Contains(name, m) {
			bold = true
			break
		}
	}
	for _, m := range italicMarkers {
		if strings.Contains(name, m) {
			italic = true
			break
		}
	}
	return bold, italic
}

// SortBlocks orders blocks by (Page asc, Top asc, X0 asc). This is the
// canonical document order; every pipeline stage preserves it.
func SortBlocks(blocks []*TextBlock) {
	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].Page != blocks[j].Page {
			return blocks[i].Page < blocks[j].Page
		}
		if blocks[i].BBox.Top != blocks[j].BBox.Top {
			return blocks[i].BBox.Top < blocks[j].BBox.Top
		}
		return blocks[i].BBox.X0 < blocks[j].BBox.X0
	})
}
