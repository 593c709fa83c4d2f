package outline

import (
	"github.com/tsawler/strata/model"
)

// Config tunes title selection and the hierarchy smoothing pass.
type Config struct {
	// TitleMinRatio is the minimum body-relative font ratio for a title
	// candidate.
	TitleMinRatio float64

	// TitleMinWords and TitleMaxChars bound the plausible title length.
	TitleMinWords int
	TitleMaxChars int

	// DemoteLoneH1 enables the smoothing pass that demotes an isolated H1
	// appearing mid-run of junior headings without the typography to back
	// it up.
	DemoteLoneH1 bool

	// DemoteRunLength is the minimum count of consecutive H2/H3 entries
	// before an H1 is considered isolated.
	DemoteRunLength int

	// DemoteMaxRatio caps the font ratio of a demotable H1; a genuinely
	// large heading is never demoted.
	DemoteMaxRatio float64
}

// DefaultConfig returns the structurer defaults.
func DefaultConfig() Config {
	return Config{
		TitleMinRatio:   1.3,
		TitleMinWords:   2,
		TitleMaxChars:   120,
		DemoteLoneH1:    true,
		DemoteRunLength: 2,
		DemoteMaxRatio:  1.3,
	}
}

// Structurer turns a classified document into an Outline.
type Structurer struct {
	config Config
}

// NewStructurer creates a structurer with default settings.
func NewStructurer() *Structurer {
	return &Structurer{config: DefaultConfig()}
}

// NewStructurerWithConfig creates a structurer with custom settings.
func NewStructurerWithConfig(config Config) *Structurer {
	return &Structurer{config: config}
}

// entry pairs an outline entry with the evidence the smoothing pass reads.
type entry struct {
	level    model.Level
	text     string
	page     int
	ratio    float64
	centered bool
}

// Build assembles the outline: title from the first page, then every
// heading block in document order. Blocks without a level are omitted.
// Build does not mutate the document; calling it twice yields identical
// results.
func (s *Structurer) Build(doc *model.Document) model.Outline {
	out := model.NewOutline()
	out.Title = s.extractTitle(doc)

	var entries []entry
	for _, b := range doc.Blocks {
		if !b.Level.IsHeading() {
			continue
		}
		entries = append(entries, entry{
			level:    b.Level,
			text:     b.TrimmedText(),
			page:     b.Page,
			ratio:    b.Features.FontRatio,
			centered: b.Features.IsCentered,
		})
	}

	if s.config.DemoteLoneH1 {
		s.demoteLoneH1(entries)
	}

	for _, e := range entries {
		out.Entries = append(out.Entries, model.OutlineEntry{
			Level: e.level,
			Text:  e.text,
			Page:  e.page,
		})
	}
	return out
}

// demoteLoneH1 smooths the hierarchy: an H1 that interrupts a run of
// junior headings, has no following H1, and lacks the font size or
// centering of a real top-level heading is demoted to H2. The pass reads
// levels it has already updated, so a second application is a no-op.
func (s *Structurer) demoteLoneH1(entries []entry) {
	run := 0
	for i := range entries {
		e := &entries[i]
		if e.level == model.LevelH2 || e.level == model.LevelH3 {
			run++
			continue
		}
		if e.level == model.LevelH1 &&
			run >= s.config.DemoteRunLength &&
			!followedByH1(entries, i) &&
			e.ratio < s.config.DemoteMaxRatio &&
			!e.centered {
			e.level = model.LevelH2
			run++
			continue
		}
		run = 0
	}
}

func followedByH1(entries []entry, i int) bool {
	return i+1 < len(entries) && entries[i+1].level == model.LevelH1
}
