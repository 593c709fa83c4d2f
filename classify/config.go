package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/strata/model"
)

// Weights holds the base weight for each scoring signal. A signal's
// contribution is its base weight times the per-level multiplier from
// LevelBoosts.
type Weights struct {
	// FontMatch is awarded when the block's font size clears the level's
	// threshold from the document ladder.
	FontMatch float64 `yaml:"font_match"`

	// FontNear is awarded instead when the size only clears the level's
	// minimum ratio over body text.
	FontNear float64 `yaml:"font_near"`

	Bold          float64 `yaml:"bold"`
	Centered      float64 `yaml:"centered"`
	NumberedStart float64 `yaml:"numbered_start"`
	GapBefore     float64 `yaml:"gap_before"`
	GapAfter      float64 `yaml:"gap_after"`

	// SmallerBelow is awarded when the next block on the page uses a
	// markedly smaller font, the usual shape of a heading over its body.
	SmallerBelow float64 `yaml:"smaller_below"`

	AllCaps       float64 `yaml:"all_caps"`
	ShortLine     float64 `yaml:"short_line"`
	FirstOnPage   float64 `yaml:"first_on_page"`
	Keyword       float64 `yaml:"keyword"`

	// RegexBoost scales a matched prefix pattern's confidence into score
	// points for the pattern's mapped level.
	RegexBoost float64 `yaml:"regex_boost"`

	IndentPenalty float64 `yaml:"indent_penalty"`
	LengthPenalty float64 `yaml:"length_penalty"`
}

// LevelBoosts holds per-level multipliers applied to the base weights.
// Senior levels demand stronger visual evidence, so their multipliers on
// display signals (centering, whitespace isolation) run higher.
type LevelBoosts struct {
	Bold         float64 `yaml:"bold"`
	Centered     float64 `yaml:"centered"`
	Gap          float64 `yaml:"gap"`
	FirstOnPage  float64 `yaml:"first_on_page"`
	AllCaps      float64 `yaml:"all_caps"`
	Indent       float64 `yaml:"indent"`
	SmallerBelow float64 `yaml:"smaller_below"`
}

// Config holds the full scoring model: weights, per-level multipliers,
// confidence floors, and the geometric tolerances used during feature
// computation.
type Config struct {
	Weights Weights `yaml:"weights"`

	Boosts map[string]LevelBoosts `yaml:"boosts"`

	// Floors are per-level minimum scores. A block whose best score does
	// not strictly exceed its level's floor stays body text. Senior floors
	// are higher: promoting to H1 takes more evidence than to H4.
	Floors map[string]float64 `yaml:"floors"`

	// CenterTolerance is the centering tolerance as a fraction of page
	// width (default: 0.05)
	CenterTolerance float64 `yaml:"center_tolerance"`

	// GapFactor is the multiple of line height a vertical gap must exceed
	// to count as whitespace isolation (default: 1.8)
	GapFactor float64 `yaml:"gap_factor"`

	// IndentTolerance is the indent in points beyond which senior levels
	// are penalized (default: 18, a quarter inch)
	IndentTolerance float64 `yaml:"indent_tolerance"`

	// ShortLineWords is the maximum script-aware word count for the
	// short-line bonus (default: 8)
	ShortLineWords int `yaml:"short_line_words"`

	// LongLineWords is the word count beyond which the length penalty
	// applies (default: 12)
	LongLineWords int `yaml:"long_line_words"`

	// MaxChars and MaxCharsCJK bound heading text length; longer lines are
	// suppressed as body text (defaults: 150 and 60)
	MaxChars    int `yaml:"max_chars"`
	MaxCharsCJK int `yaml:"max_chars_cjk"`

	// MinAlnumRatio is the minimum fraction of letters and digits a
	// heading candidate must contain (default: 0.3)
	MinAlnumRatio float64 `yaml:"min_alnum_ratio"`

	// SmallerBelowRatio is the size ratio under which the next block's
	// font counts as markedly smaller (default: 0.9)
	SmallerBelowRatio float64 `yaml:"smaller_below_ratio"`
}

// DefaultConfig returns the tuned default scoring model.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			FontMatch:     10.0,
			FontNear:      5.0,
			Bold:          7.0,
			Centered:      8.0,
			NumberedStart: 7.0,
			GapBefore:     5.5,
			GapAfter:      3.0,
			SmallerBelow:  5.5,
			AllCaps:       3.0,
			ShortLine:     2.0,
			FirstOnPage:   2.5,
			Keyword:       4.0,
			RegexBoost:    20.0,
			IndentPenalty: 2.0,
			LengthPenalty: 5.0,
		},
		Boosts: map[string]LevelBoosts{
			"H1": {Bold: 3.0, Centered: 3.5, Gap: 3.0, FirstOnPage: 4.0, AllCaps: 2.0, Indent: 2.0, SmallerBelow: 1.0},
			"H2": {Bold: 2.0, Centered: 1.5, Gap: 2.0, FirstOnPage: 1.5, AllCaps: 1.5, Indent: 1.5, SmallerBelow: 2.5},
			"H3": {Bold: 1.2, Centered: 0.5, Gap: 1.2, FirstOnPage: 0.5, AllCaps: 1.0, Indent: 1.0, SmallerBelow: 2.0},
			"H4": {Bold: 1.0, Centered: 0.2, Gap: 1.0, FirstOnPage: 0.2, AllCaps: 0.5, Indent: 0.5, SmallerBelow: 1.0},
		},
		Floors: map[string]float64{
			"H1": 30,
			"H2": 25,
			"H3": 20,
			"H4": 15,
		},
		CenterTolerance:   0.05,
		GapFactor:         1.8,
		IndentTolerance:   18,
		ShortLineWords:    8,
		LongLineWords:     12,
		MaxChars:          150,
		MaxCharsCJK:       60,
		MinAlnumRatio:     0.3,
		SmallerBelowRatio: 0.9,
	}
}

// LoadConfig reads YAML overrides from path on top of the defaults.
// Only keys present in the file change; everything else keeps its
// default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks structural invariants the scorer relies on.
func (c Config) Validate() error {
	prev := -1.0
	for _, level := range []model.Level{model.LevelH4, model.LevelH3, model.LevelH2, model.LevelH1} {
		floor, ok := c.Floors[level.String()]
		if !ok {
			return fmt.Errorf("missing floor for %s", level)
		}
		if floor <= prev {
			return fmt.Errorf("floors must strictly increase with seniority: %s floor %.1f", level, floor)
		}
		prev = floor
	}
	for _, level := range model.Levels {
		if _, ok := c.Boosts[level.String()]; !ok {
			return fmt.Errorf("missing boosts for %s", level)
		}
	}
	if c.GapFactor <= 0 || c.CenterTolerance <= 0 {
		return fmt.Errorf("tolerances must be positive")
	}
	return nil
}

func (c Config) floor(level model.Level) float64 {
	return c.Floors[level.String()]
}

func (c Config) boosts(level model.Level) LevelBoosts {
	return c.Boosts[level.String()]
}
