package outline

import (
	"sort"
	"strings"

	"github.com/tsawler/strata/model"
)

// titleCandidate pairs a first-page block with the fields the ranking
// tuple needs.
type titleCandidate struct {
	block *model.TextBlock
	order int
}

// extractTitle picks the document title from the first page. Candidates
// must stand out from the body by font ratio and have a plausible title
// length; H3/H4 blocks are too junior to be titles unless nothing better
// exists. Ranking is by font size, then bold, then centered, then position
// on the page, then whether a gap precedes the block.
func (s *Structurer) extractTitle(doc *model.Document) string {
	firstPage := doc.PageBlocks(1)
	if len(firstPage) == 0 {
		return ""
	}

	var candidates []titleCandidate
	var juniors []titleCandidate
	for i, b := range firstPage {
		if b.Boilerplate {
			continue
		}
		if b.Features.FontRatio < s.config.TitleMinRatio {
			continue
		}
		if !plausibleTitleLength(b, s.config) {
			continue
		}
		c := titleCandidate{block: b, order: i}
		if b.Level == model.LevelH3 || b.Level == model.LevelH4 {
			juniors = append(juniors, c)
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		candidates = juniors
	}

	if len(candidates) == 0 {
		return CleanTitle(largestFontBlock(firstPage))
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i].block, candidates[j].block
		if a.FontSize != b.FontSize {
			return a.FontSize > b.FontSize
		}
		if a.Bold != b.Bold {
			return a.Bold
		}
		if a.Features.IsCentered != b.Features.IsCentered {
			return a.Features.IsCentered
		}
		if a.BBox.Top != b.BBox.Top {
			return a.BBox.Top < b.BBox.Top
		}
		if a.Features.LargeGapAbove != b.Features.LargeGapAbove {
			return a.Features.LargeGapAbove
		}
		return candidates[i].order < candidates[j].order
	})

	return CleanTitle(candidates[0].block.TrimmedText())
}

func plausibleTitleLength(b *model.TextBlock, cfg Config) bool {
	return b.Features.WordCount >= cfg.TitleMinWords &&
		b.Features.CharCount <= cfg.TitleMaxChars
}

// largestFontBlock is the fallback when no candidate clears the filter:
// the largest-font block on the page, earliest at equal size.
func largestFontBlock(blocks []*model.TextBlock) string {
	var best *model.TextBlock
	for _, b := range blocks {
		if b.Boilerplate {
			continue
		}
		if best == nil || b.FontSize > best.FontSize {
			best = b
		}
	}
	if best == nil {
		return ""
	}
	return best.TrimmedText()
}

// CleanTitle normalizes a chosen title: collapses internal whitespace and
// strips a single layer of surrounding quotes.
func CleanTitle(text string) string {
	t := strings.Join(strings.Fields(text), " ")

	pairs := [][2]string{
		{`"`, `"`}, {"'", "'"},
		{"“", "”"}, {"‘", "’"},
		{"「", "」"}, {"『", "』"},
	}
	for _, p := range pairs {
		if len(t) > len(p[0])+len(p[1]) && strings.HasPrefix(t, p[0]) && strings.HasSuffix(t, p[1]) {
			t = strings.TrimSuffix(strings.TrimPrefix(t, p[0]), p[1])
			break
		}
	}
	return strings.TrimSpace(t)
}
