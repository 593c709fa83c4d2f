package classify

import (
	"github.com/tsawler/strata/lang"
	"github.com/tsawler/strata/model"
)

// ComputeFeatures fills in the Features field of every block. Gap and
// neighbour features are computed within each page only; the first block of
// a page has no "previous" even when the prior page ends mid-paragraph.
//
// Boilerplate blocks are skipped as neighbours: a heading directly under a
// running header is still "first on page" with a large gap above.
func ComputeFeatures(doc *model.Document, thresholds Thresholds, cfg Config) {
	byPage := make(map[int][]*model.TextBlock)
	for _, b := range doc.Blocks {
		if b.Boilerplate {
			continue
		}
		byPage[b.Page] = append(byPage[b.Page], b)
	}

	for page, pageBlocks := range byPage {
		dims := doc.Dims(page)
		minX0 := pageBlocks[0].BBox.X0
		for _, b := range pageBlocks[1:] {
			if b.BBox.X0 < minX0 {
				minX0 = b.BBox.X0
			}
		}

		for i, b := range pageBlocks {
			f := &b.Features

			f.FontRatio = thresholds.Ratio(b.FontSize)
			f.FirstOnPage = i == 0
			f.Indent = b.BBox.X0 - minX0

			// The width guard keeps full-column body lines out: they sit
			// at the page center too, but span most of it.
			center := b.BBox.CenterX()
			f.IsCentered = absF(center-dims.Width/2) <= dims.Width*cfg.CenterTolerance &&
				b.BBox.Width < dims.Width*0.75

			lineHeight := b.BBox.Height
			if lineHeight <= 0 {
				lineHeight = b.FontSize
			}

			if i > 0 {
				f.GapBefore = b.BBox.Top - pageBlocks[i-1].BBox.Bottom
			} else {
				f.GapBefore = b.BBox.Top
			}
			if i < len(pageBlocks)-1 {
				f.GapAfter = pageBlocks[i+1].BBox.Top - b.BBox.Bottom
			} else {
				f.GapAfter = dims.Height - b.BBox.Bottom
			}

			f.LargeGapAbove = f.GapBefore > lineHeight*cfg.GapFactor
			f.LargeGapBelow = f.GapAfter > lineHeight*cfg.GapFactor

			if i > 0 {
				f.PrevFontSize = pageBlocks[i-1].FontSize
			}
			if i < len(pageBlocks)-1 {
				f.NextFontSize = pageBlocks[i+1].FontSize
				f.SmallerTextBelow = f.NextFontSize < b.FontSize*cfg.SmallerBelowRatio
			}

			text := b.TrimmedText()
			f.AllCaps = lang.IsAllCaps(text)
			f.WordCount = lang.CountWords(text, doc.Lang)
			f.CharCount = len([]rune(text))
		}
	}
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
