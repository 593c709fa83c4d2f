package classify

import (
	"testing"

	"github.com/tsawler/strata/model"
)

func TestMatchLevel(t *testing.T) {
	tests := []struct {
		text      string
		wantLevel model.Level
	}{
		{"Chapter 1: Overview", model.LevelH1},
		{"SECTION IV Liability", model.LevelH1},
		{"1. Introduction", model.LevelH1},
		{"第3章 実装", model.LevelH1},
		{"2.1 Scope", model.LevelH2},
		{"IV. Methods", model.LevelH2},
		{"B. Alternatives", model.LevelH2},
		{"第2節 背景", model.LevelH2},
		{"2.1.3 Edge cases", model.LevelH3},
		{"(a) First case", model.LevelH3},
		{"1.2.3.4 Deep subtopic", model.LevelH4},
		{"Plain heading", model.LevelNone},
		{"The 3 bears", model.LevelNone},
		// A capital letter before lowercase prose is an initial or an
		// abbreviation, not a lettered heading.
		{"A. summary of the findings", model.LevelNone},
		{"E. coli in water samples", model.LevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			level, conf := MatchLevel(tt.text)
			if level != tt.wantLevel {
				t.Errorf("MatchLevel(%q) = %v, want %v", tt.text, level, tt.wantLevel)
			}
			if tt.wantLevel != model.LevelNone && conf <= 0 {
				t.Errorf("MatchLevel(%q) confidence = %v, want > 0", tt.text, conf)
			}
		})
	}
}

func TestMatchLevelFullWidthDigits(t *testing.T) {
	// Full-width digits and dots are common in CJK PDFs; normalization
	// must make them match the same prefixes.
	level, _ := MatchLevel("１．２　範囲")
	if level != model.LevelH2 {
		t.Errorf("full-width 1.2 prefix = %v, want H2", level)
	}
}

func TestNumberingDepth(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"1. Intro", 1},
		{"2.1 Scope", 2},
		{"2.1.3 Detail", 3},
		{"10.2.3.4 Deep", 4},
		{"Heading", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := NumberingDepth(tt.text); got != tt.want {
			t.Errorf("NumberingDepth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestHasSectionKeyword(t *testing.T) {
	tests := []struct {
		text string
		tag  string
		want bool
	}{
		{"Introduction", "en", true},
		{"INTRODUCTION AND SCOPE", "en", true},
		{"Einleitung", "de", true},
		{"概要", "ja", true},
		{"参考文献一覧", "ja", true},
		{"The weather today", "en", false},
		{"Introductions matter", "en", false}, // whole-word only
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := HasSectionKeyword(tt.text, tt.tag); got != tt.want {
				t.Errorf("HasSectionKeyword(%q, %q) = %v, want %v", tt.text, tt.tag, got, tt.want)
			}
		})
	}
}

func noiseBlock(text string) *model.TextBlock {
	b := &model.TextBlock{
		Text:     text,
		Page:     1,
		FontSize: 12,
		BBox:     model.NewBBox(72, 100, 200, 12),
	}
	b.Features.WordCount = len([]rune(text)) / 5
	return b
}

func TestIsNoise(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"bullet dash", "- first point", true},
		{"bullet dot", "• second point", true},
		{"page number", "42", true},
		{"page x of y", "Page 3 of 20", true},
		{"url", "see https://example.com/docs", true},
		{"email", "contact us at info@example.com", true},
		{"date", "12/03/2024", true},
		{"date with time", "March 5, 2024 10:30 am", true},
		{"time", "10:30", true},
		{"copyright", "© 2024 Acme Corp. All rights reserved", true},
		{"symbol soup", "*** ~~~ !!!", true},
		{"single char", "A", true},
		{"normal heading", "Implementation Notes", false},
		{"numbered heading", "2.1 Scope", false},
		{"cjk heading", "第1章 概要", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNoise(noiseBlock(tt.text), "", cfg); got != tt.want {
				t.Errorf("IsNoise(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsNoiseLengthBounds(t *testing.T) {
	cfg := DefaultConfig()

	long := make([]rune, 0, cfg.MaxChars+10)
	for i := 0; i < cfg.MaxChars+10; i++ {
		long = append(long, 'x')
	}
	if !IsNoise(noiseBlock(string(long)), "en", cfg) {
		t.Error("overlong line should be noise")
	}

	// CJK documents get a tighter bound.
	cjk := make([]rune, 0, cfg.MaxCharsCJK+10)
	for i := 0; i < cfg.MaxCharsCJK+10; i++ {
		cjk = append(cjk, '字')
	}
	if !IsNoise(noiseBlock(string(cjk)), "ja", cfg) {
		t.Error("overlong CJK line should be noise")
	}
}

func TestIsNoiseProseSentence(t *testing.T) {
	cfg := DefaultConfig()
	b := noiseBlock("This is a long running sentence that clearly belongs to the body of the document.")
	b.Features.WordCount = 15
	if !IsNoise(b, "en", cfg) {
		t.Error("long sentence ending in a period should be noise")
	}
}
