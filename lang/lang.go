// Package lang detects the dominant language of a document from its early
// pages and provides script-aware text helpers for the rest of the pipeline.
//
// Detection is advisory. Every consumer of the language tag has a
// script-agnostic default, so an inconclusive detection (empty tag) degrades
// behavior gracefully instead of failing the document.
package lang

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"

	"github.com/tsawler/strata/model"
)

// Config holds configuration for language detection.
type Config struct {
	// SamplePages is the number of leading pages sampled (default: 5)
	SamplePages int

	// MinChars is the minimum number of sampled characters required for a
	// detection to be trusted (default: 100)
	MinChars int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		SamplePages: 5,
		MinChars:    100,
	}
}

// Detector classifies document language from block text.
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration.
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// NewDetectorWithConfig creates a detector with custom configuration.
func NewDetectorWithConfig(config Config) *Detector {
	return &Detector{config: config}
}

// Detect samples text from the leading pages and returns a canonical BCP 47
// tag ("en", "ja", "zh", ...), or "" when the sample is too small or the
// detection unreliable.
func (d *Detector) Detect(blocks []*model.TextBlock) string {
	var sb strings.Builder
	for _, b := range blocks {
		if b.Page > d.config.SamplePages {
			break
		}
		sb.WriteString(b.TrimmedText())
		sb.WriteString(" ")
	}

	sample := strings.TrimSpace(sb.String())
	if len([]rune(sample)) < d.config.MinChars {
		return ""
	}

	info := whatlanggo.Detect(sample)
	if !info.IsReliable() {
		return ""
	}

	iso := info.Lang.Iso6391()
	if iso == "" {
		return ""
	}

	tag, err := language.Parse(iso)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

// IsCJK reports whether the tag names a language written without word
// separators, where counting runs on characters instead of space-delimited
// words.
func IsCJK(tag string) bool {
	switch tag {
	case "zh", "ja", "ko":
		return true
	}
	return false
}

// CountWords returns a script-aware word count: letters for CJK text,
// whitespace-separated fields otherwise.
func CountWords(text, tag string) int {
	if IsCJK(tag) {
		count := 0
		for _, r := range text {
			if unicode.IsLetter(r) {
				count++
			}
		}
		return count
	}
	return len(strings.Fields(text))
}

// IsAllCaps reports whether every cased letter in the text is upper case.
// Text with no cased letters at all (CJK, digits, symbols) returns false,
// so uncased scripts never look "shouted".
func IsAllCaps(text string) bool {
	hasCased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
