package classify

import (
	"github.com/tsawler/strata/model"
)

// Classifier assigns heading levels to document blocks.
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with the default scoring model.
func NewClassifier() *Classifier {
	return &Classifier{config: DefaultConfig()}
}

// NewClassifierWithConfig creates a classifier with a custom scoring model.
func NewClassifierWithConfig(config Config) *Classifier {
	return &Classifier{config: config}
}

// Classify computes thresholds and features for the document, then assigns
// a Level to every block. Boilerplate and noise blocks get LevelNone.
// The thresholds used are returned so callers (title extraction) can reuse
// them without recomputing.
func (c *Classifier) Classify(doc *model.Document) Thresholds {
	thresholds := ComputeThresholds(doc.Blocks)
	ComputeFeatures(doc, thresholds, c.config)

	for _, b := range doc.Blocks {
		b.Level = c.classifyBlock(b, doc.Lang, thresholds)
	}

	return thresholds
}

// classifyBlock scores a single block against each level and returns the
// winner, or LevelNone when nothing clears its floor. Levels are scored in
// seniority order with a strict comparison, so ties go to the senior level.
func (c *Classifier) classifyBlock(b *model.TextBlock, docTag string, thresholds Thresholds) model.Level {
	if b.Boilerplate {
		return model.LevelNone
	}
	if IsNoise(b, docTag, c.config) {
		return model.LevelNone
	}

	patternLevel, patternConf := MatchLevel(b.Text)

	// Candidacy gate: a block at body size with no styling and no
	// numbering prefix is body text, however much whitespace surrounds it.
	if b.Features.FontRatio < minRatios[model.LevelH4] && !b.Bold && patternLevel == model.LevelNone {
		return model.LevelNone
	}

	best := model.LevelNone
	bestScore := 0.0
	for _, level := range model.Levels {
		score := c.score(b, docTag, level, thresholds, patternLevel, patternConf)
		if score > c.config.floor(level) && score > bestScore {
			best = level
			bestScore = score
		}
	}
	return best
}

// score computes the weighted evidence for one candidate level.
func (c *Classifier) score(b *model.TextBlock, docTag string, level model.Level, thresholds Thresholds, patternLevel model.Level, patternConf float64) float64 {
	w := c.config.Weights
	boost := c.config.boosts(level)
	f := b.Features

	s := 0.0

	// Font size against the document ladder. Clearing the level threshold
	// is the strongest typographic signal; merely clearing the minimum
	// ratio earns partial credit.
	switch {
	case b.FontSize+0.01 >= thresholds.Level(level):
		s += w.FontMatch
	case f.FontRatio >= minRatios[level]:
		s += w.FontNear
	}

	if b.Bold {
		s += w.Bold * boost.Bold
	}
	if f.IsCentered {
		s += w.Centered * boost.Centered
	}
	if f.LargeGapAbove {
		s += w.GapBefore * boost.Gap
	}
	if f.LargeGapBelow {
		s += w.GapAfter * boost.Gap
	}
	if f.SmallerTextBelow {
		s += w.SmallerBelow * boost.SmallerBelow
	}
	if f.FirstOnPage {
		s += w.FirstOnPage * boost.FirstOnPage
	}
	if f.AllCaps {
		s += w.AllCaps * boost.AllCaps
	}
	if f.WordCount > 0 && f.WordCount <= c.config.ShortLineWords {
		s += w.ShortLine
	}
	if HasNumberedStart(b.Text) {
		// A dotted prefix's nesting depth is level evidence of its own:
		// full weight when the depth agrees with the candidate level,
		// half when it points elsewhere.
		nw := w.NumberedStart
		if depth := NumberingDepth(b.Text); depth > 0 && depth != int(level) {
			nw *= 0.5
		}
		s += nw
	}
	if HasSectionKeyword(b.Text, docTag) {
		s += w.Keyword
	}

	// A matched prefix pattern is near-decisive for its mapped level and
	// counts against every other level, so a "1.1.1" line cannot ride its
	// visual evidence up to H1.
	if patternLevel != model.LevelNone {
		if patternLevel == level {
			s += patternConf * w.RegexBoost
		} else {
			s -= patternConf * w.RegexBoost * 0.5
		}
	}

	if f.Indent > c.config.IndentTolerance {
		s -= w.IndentPenalty * boost.Indent
	}
	if f.WordCount > c.config.LongLineWords {
		s -= w.LengthPenalty
	}

	return s
}
