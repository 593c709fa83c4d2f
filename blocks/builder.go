package blocks

import (
	"sort"
	"strings"

	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/reader"
)

// Config holds configuration for block building.
type Config struct {
	// LineTolerance is the fraction of a fragment's height that must share
	// a line's vertical range for the fragment to join that line
	// (default: 0.5)
	LineTolerance float64

	// GapSpaceRatio is the minimum horizontal gap between fragments, as a
	// fraction of font size, that produces a space when assembling line text
	// (default: 0.3)
	GapSpaceRatio float64

	// MergeGapRatio is the maximum vertical gap between consecutive lines,
	// as a fraction of line height, for continuation merging (default: 1.5)
	MergeGapRatio float64

	// HeaderFooter configures boilerplate detection.
	HeaderFooter HeaderFooterConfig
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		LineTolerance: 0.5,
		GapSpaceRatio: 0.3,
		MergeGapRatio: 1.5,
		HeaderFooter:  DefaultHeaderFooterConfig(),
	}
}

// Builder assembles text blocks from page fragments.
type Builder struct {
	config Config
}

// NewBuilder creates a builder with default configuration.
func NewBuilder() *Builder {
	return &Builder{config: DefaultConfig()}
}

// NewBuilderWithConfig creates a builder with custom configuration.
func NewBuilderWithConfig(config Config) *Builder {
	return &Builder{config: config}
}

// Build converts extracted pages into merged, ordered text blocks.
// Pages with no fragments contribute nothing; degenerate fragments are
// dropped before grouping.
func (b *Builder) Build(pages []reader.PageData) []*model.TextBlock {
	var all []*model.TextBlock

	for _, page := range pages {
		lines := b.groupIntoLines(page.Fragments)
		pageBlocks := b.buildLineBlocks(lines, page.Number)
		pageBlocks = b.mergeContinuations(pageBlocks)
		all = append(all, pageBlocks...)
	}

	model.SortBlocks(all)

	hf := NewHeaderFooterDetectorWithConfig(b.config.HeaderFooter)
	hf.Mark(all, pagesToDims(pages))

	return all
}

func pagesToDims(pages []reader.PageData) map[int]model.PageDims {
	dims := make(map[int]model.PageDims, len(pages))
	for _, p := range pages {
		dims[p.Number] = model.PageDims{Width: p.Width, Height: p.Height}
	}
	return dims
}

// groupIntoLines clusters fragments into visual lines by vertical overlap.
// Fragments are top-down here, so smaller Top means higher on the page.
func (b *Builder) groupIntoLines(fragments []reader.Fragment) [][]reader.Fragment {
	usable := make([]reader.Fragment, 0, len(fragments))
	for _, f := range fragments {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		if f.Height <= 0 {
			continue
		}
		usable = append(usable, f)
	}
	if len(usable) == 0 {
		return nil
	}

	sort.SliceStable(usable, func(i, j int) bool {
		di := usable[i].Top - usable[j].Top
		tol := usable[i].Height * b.config.LineTolerance
		if absFloat(di) > tol {
			return di < 0
		}
		// Same line: preserve stream order, X sorting happens per line.
		return false
	})

	var lines [][]reader.Fragment
	var current []reader.Fragment
	var currentBox model.BBox

	for _, frag := range usable {
		fb := fragBBox(frag)
		if len(current) == 0 {
			current = append(current, frag)
			currentBox = fb
			continue
		}

		// A fragment belongs to the line when enough of its height falls
		// inside the line's vertical range. Mixed sizes on one baseline
		// (a heading with an inline smaller run) still overlap; the next
		// line down does not.
		if currentBox.VerticalOverlap(fb) >= frag.Height*b.config.LineTolerance {
			current = append(current, frag)
			currentBox = currentBox.Union(fb)
		} else {
			sortLineByX(current)
			lines = append(lines, current)
			current = []reader.Fragment{frag}
			currentBox = fb
		}
	}
	if len(current) > 0 {
		sortLineByX(current)
		lines = append(lines, current)
	}

	return lines
}

func sortLineByX(line []reader.Fragment) {
	sort.SliceStable(line, func(i, j int) bool {
		return line[i].X < line[j].X
	})
}

// buildLineBlocks converts each fragment line into a TextBlock with assembled
// text, union bbox, and the dominant font attributes.
func (b *Builder) buildLineBlocks(lines [][]reader.Fragment, pageNum int) []*model.TextBlock {
	out := make([]*model.TextBlock, 0, len(lines))

	for _, line := range lines {
		if len(line) == 0 {
			continue
		}

		block := &model.TextBlock{
			Page: pageNum,
			Text: b.assembleLineText(line),
		}
		if strings.TrimSpace(block.Text) == "" {
			continue
		}

		// Union bbox; dominant font is the largest in the line, since the
		// leading glyphs of a heading set its visual weight.
		bbox := fragBBox(line[0])
		block.FontSize = line[0].FontSize
		block.FontName = line[0].FontName
		for _, f := range line[1:] {
			bbox = bbox.Union(fragBBox(f))
			if f.FontSize > block.FontSize {
				block.FontSize = f.FontSize
				block.FontName = f.FontName
			}
		}
		block.BBox = bbox
		if !block.BBox.IsValid() {
			continue
		}

		for _, f := range line {
			bold, italic := model.InferStyle(f.FontName)
			block.Bold = block.Bold || bold
			block.Italic = block.Italic || italic
		}

		out = append(out, block)
	}

	return out
}

// assembleLineText joins fragment text left to right, inserting a space
// wherever the horizontal gap is wide enough to be a word break.
func (b *Builder) assembleLineText(line []reader.Fragment) string {
	var sb strings.Builder
	var lastEndX float64

	for i, frag := range line {
		if i > 0 {
			gap := frag.X - lastEndX
			threshold := frag.FontSize * b.config.GapSpaceRatio
			if threshold <= 0 {
				threshold = 1
			}
			if gap > threshold {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(frag.Text)
		lastEndX = frag.X + frag.Width
	}

	return sb.String()
}

func fragBBox(f reader.Fragment) model.BBox {
	w := f.Width
	if w <= 0 {
		// Zero-width runs appear in malformed streams; approximate from
		// the glyph count so the box survives validation.
		w = f.FontSize * 0.5 * float64(len([]rune(f.Text)))
		if w <= 0 {
			w = 1
		}
	}
	return model.NewBBox(f.X, f.Top, w, f.Height)
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
