package lang

import (
	"strings"
	"testing"

	"github.com/tsawler/strata/model"
)

func blockOnPage(page int, text string) *model.TextBlock {
	return &model.TextBlock{
		Text: text,
		Page: page,
		BBox: model.NewBBox(72, 100, 300, 12),
	}
}

func TestDetectEnglish(t *testing.T) {
	sentence := "The quick brown fox jumps over the lazy dog and keeps on running through the forest. "
	var blocks []*model.TextBlock
	for i := 0; i < 4; i++ {
		blocks = append(blocks, blockOnPage(1, sentence))
	}

	got := NewDetector().Detect(blocks)
	if got != "en" {
		t.Errorf("Detect() = %q, want %q", got, "en")
	}
}

func TestDetectJapanese(t *testing.T) {
	text := "これは日本語の文章です。文書の概要を抽出するための十分な長さのサンプルテキストを用意しています。見出しの検出は文字の大きさと配置に基づいて行われます。"
	blocks := []*model.TextBlock{blockOnPage(1, text)}

	got := NewDetector().Detect(blocks)
	if got != "ja" {
		t.Errorf("Detect() = %q, want %q", got, "ja")
	}
}

func TestDetectTooLittleText(t *testing.T) {
	blocks := []*model.TextBlock{blockOnPage(1, "Hello")}

	if got := NewDetector().Detect(blocks); got != "" {
		t.Errorf("Detect() = %q, want empty for tiny sample", got)
	}
}

func TestDetectEmptyInput(t *testing.T) {
	if got := NewDetector().Detect(nil); got != "" {
		t.Errorf("Detect(nil) = %q, want empty", got)
	}
}

func TestDetectSamplesOnlyLeadingPages(t *testing.T) {
	// All substantial text sits past the sample window.
	sentence := strings.Repeat("Plenty of text on a late page. ", 10)
	blocks := []*model.TextBlock{blockOnPage(40, sentence)}

	if got := NewDetector().Detect(blocks); got != "" {
		t.Errorf("Detect() = %q, want empty when sampled pages are blank", got)
	}
}

func TestIsCJK(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"zh", true},
		{"ja", true},
		{"ko", true},
		{"en", false},
		{"de", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsCJK(tt.tag); got != tt.want {
			t.Errorf("IsCJK(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		tag  string
		want int
	}{
		{"english words", "three simple words", "en", 3},
		{"untagged defaults to fields", "two words", "", 2},
		{"japanese chars", "第一章概要", "ja", 5},
		{"cjk ignores punctuation", "概要。", "zh", 2},
		{"empty", "", "en", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.text, tt.tag); got != tt.want {
				t.Errorf("CountWords(%q, %q) = %d, want %d", tt.text, tt.tag, got, tt.want)
			}
		})
	}
}

func TestIsAllCaps(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"INTRODUCTION", true},
		{"SECTION 2: SCOPE", true},
		{"Introduction", false},
		{"mixed CASE", false},
		{"第一章", false}, // uncased script
		{"1234", false}, // no letters
		{"", false},
	}
	for _, tt := range tests {
		if got := IsAllCaps(tt.text); got != tt.want {
			t.Errorf("IsAllCaps(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
