package classify

import (
	"math"
	"sort"

	"github.com/tsawler/strata/model"
)

// Thresholds holds the per-document font size model: the body text size and
// a strictly decreasing ladder of minimum sizes for H1 through H4.
type Thresholds struct {
	Body   float64
	Levels map[model.Level]float64
}

// minRatios are the per-level minimum font ratios over body text. A level's
// threshold never drops below body times its ratio, no matter what sizes
// the document uses.
var minRatios = map[model.Level]float64{
	model.LevelH1: 1.15,
	model.LevelH2: 1.10,
	model.LevelH3: 1.05,
	model.LevelH4: 1.02,
}

// minSeparation is the minimum distance in points between consecutive level
// thresholds. Sizes closer than this are one visual tier, not two.
const minSeparation = 0.75

// defaultBodySize is used when a document has no measurable text.
const defaultBodySize = 12.0

// ComputeThresholds builds the font size model for a document. The body
// size is the most frequent size (0.5pt buckets, weighted by text length);
// level thresholds come from the distinct sizes actually present above
// body, clamped to the minimum ratios.
//
// The function is pure: same blocks in, same thresholds out.
func ComputeThresholds(blocks []*model.TextBlock) Thresholds {
	body := detectBodySize(blocks)

	ladder := sizeLadder(blocks, body)

	levels := make(map[model.Level]float64, len(model.Levels))
	idx := 0
	prev := math.Inf(1)
	for _, level := range model.Levels {
		floor := body * minRatios[level]

		var t float64
		if idx < len(ladder) && ladder[idx] >= floor {
			t = ladder[idx]
			idx++
		} else {
			t = floor
		}

		// Keep the ladder strictly decreasing.
		if t > prev-minSeparation {
			t = prev - minSeparation
			if t < floor {
				t = floor
			}
			if t >= prev {
				t = prev - 0.01
			}
		}

		levels[level] = t
		prev = t
	}

	return Thresholds{Body: body, Levels: levels}
}

// Level returns the minimum font size for the given level.
func (t Thresholds) Level(level model.Level) float64 {
	return t.Levels[level]
}

// Ratio returns size relative to the body size.
func (t Thresholds) Ratio(size float64) float64 {
	if t.Body <= 0 {
		return 1
	}
	return size / t.Body
}

// detectBodySize finds the dominant font size by bucketing sizes to 0.5pt
// and weighting each block by its text length, so a handful of large
// headings never outvotes the running text.
func detectBodySize(blocks []*model.TextBlock) float64 {
	buckets := make(map[float64]int)

	for _, b := range blocks {
		if b.FontSize <= 0 {
			continue
		}
		n := len([]rune(b.TrimmedText()))
		if n == 0 {
			continue
		}
		bucket := math.Round(b.FontSize*2) / 2
		buckets[bucket] += n
	}

	if len(buckets) == 0 {
		return defaultBodySize
	}

	best, bestWeight := defaultBodySize, -1
	for size, weight := range buckets {
		// Deterministic tie-break: prefer the smaller size, since body
		// text is never the larger of two equally common sizes.
		if weight > bestWeight || (weight == bestWeight && size < best) {
			best, bestWeight = size, weight
		}
	}
	return best
}

// sizeLadder returns the distinct bucketed sizes above body, descending,
// with near-duplicates (within minSeparation) collapsed.
func sizeLadder(blocks []*model.TextBlock, body float64) []float64 {
	seen := make(map[float64]bool)
	for _, b := range blocks {
		if b.FontSize <= body {
			continue
		}
		bucket := math.Round(b.FontSize*2) / 2
		if bucket > body {
			seen[bucket] = true
		}
	}

	sizes := make([]float64, 0, len(seen))
	for s := range seen {
		sizes = append(sizes, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	var ladder []float64
	for _, s := range sizes {
		if len(ladder) > 0 && ladder[len(ladder)-1]-s < minSeparation {
			continue
		}
		ladder = append(ladder, s)
	}
	return ladder
}
