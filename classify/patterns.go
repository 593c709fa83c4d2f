package classify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"

	"github.com/tsawler/strata/lang"
	"github.com/tsawler/strata/model"
)

// levelPattern maps a heading prefix pattern to the level it implies and
// the confidence of that mapping. Confidence scales the RegexBoost weight.
type levelPattern struct {
	re         *regexp.Regexp
	level      model.Level
	confidence float64
}

// levelPatterns are evaluated in order against width-normalized text; the
// first match wins. More specific (deeper) numeric prefixes come before
// their shallower prefixes.
var levelPatterns = []levelPattern{
	// "1.2.3.4 Subtopic" — four-deep numbering
	{regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}\.?\s+\S`), model.LevelH4, 0.68},
	// "1.2.3 Topic"
	{regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){2}\.?\s+\S`), model.LevelH3, 0.78},
	// "1.2 Topic"
	{regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.?\s+\S`), model.LevelH2, 0.88},
	// "Chapter 3", "SECTION IV", "Article 12"
	{regexp.MustCompile(`(?i)^(chapter|section|article|part)\s+(\d{1,3}|[ivxlcdm]{1,7})\b`), model.LevelH1, 0.98},
	// "第3章", "第一章" — CJK chapter prefix
	{regexp.MustCompile(`^第[0-9一二三四五六七八九十百]{1,4}章`), model.LevelH1, 0.98},
	// "第3節", "第一節" — CJK section prefix
	{regexp.MustCompile(`^第[0-9一二三四五六七八九十百]{1,4}節`), model.LevelH2, 0.9},
	// "1. Title" — single-level numbering
	{regexp.MustCompile(`^\d{1,3}[.)]\s+\S`), model.LevelH1, 0.95},
	// "IV. Title" — Roman numeral
	{regexp.MustCompile(`^[IVXLCDM]{1,7}[.)]\s+\S`), model.LevelH2, 0.85},
	// "A. Title" — letter numbering; the next word must be capitalized
	// so a bare initial before lowercase prose does not match
	{regexp.MustCompile(`^[A-Z][.)]\s+[A-Z]`), model.LevelH2, 0.82},
	// "(a) Title", "a) Title"
	{regexp.MustCompile(`^\(?[a-z]\)\s+\S`), model.LevelH3, 0.75},
}

// numberedStart matches any numbering prefix, used for the generic
// numbered-start signal independent of the level mapping.
var numberedStart = regexp.MustCompile(`^(\d{1,3}([.)]|(\.\d{1,3}){1,3})|[IVXLCDM]{1,7}[.)]|[A-Za-z][.)]|第[0-9一二三四五六七八九十百]{1,4}[章節条部])\s*`)

// sectionKeywords are heading words across the languages the pipeline
// commonly sees. Latin-script entries match on fold-cased word boundaries;
// CJK entries match by substring.
var sectionKeywords = struct {
	latin []string
	cjk   []string
}{
	latin: []string{
		"introduction", "conclusion", "abstract", "summary", "overview",
		"contents", "appendix", "references", "bibliography", "acknowledgements",
		"background", "methodology", "results", "discussion", "glossary",
		"chapter", "section", "preface", "foreword",
		// French, German, Spanish
		"chapitre", "sommaire", "annexe", "kapitel", "einleitung",
		"zusammenfassung", "anhang", "capítulo", "introducción", "resumen",
	},
	cjk: []string{
		"はじめに", "概要", "序論", "結論", "まとめ", "付録", "参考文献", "目次",
		"简介", "概述", "结论", "摘要", "附录", "参考文献", "目录",
	},
}

var (
	foldCaser = cases.Fold()

	bulletStart = regexp.MustCompile(`^[\-–—•▪◦‣·*○●■□➤➢>»·・]\s`)
	loneBullet  = regexp.MustCompile(`^[\-–—•▪◦‣·*○●■□➤➢»・]+$`)

	urlOrEmail = regexp.MustCompile(`(?i)(https?://|www\.|ftp\.|\S+@\S+\.\S+)`)

	pageNumberOnly = regexp.MustCompile(`(?i)^((page|p\.?|pg\.?)\s*)?\d{1,4}(\s*(/|of)\s*\d{1,4})?$`)

	datePattern = regexp.MustCompile(`(?i)^(\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4}|\d{4}[/.\-]\d{1,2}[/.\-]\d{1,2}|(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4})([\s,]+\d{1,2}:\d{2}(:\d{2})?\s*(am|pm)?)?$`)

	timeOnly = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?\s*([AaPp][Mm])?$`)

	copyrightLine = regexp.MustCompile(`(?i)(©|\(c\)\s|copyright\b|all rights reserved)`)
)

// NormalizeText prepares block text for pattern matching: trims whitespace
// and narrows full-width digits and punctuation so "１．２" matches the
// same prefixes as "1.2".
func NormalizeText(text string) string {
	return strings.TrimSpace(width.Narrow.String(text))
}

// MatchLevel returns the level implied by the text's prefix pattern and
// the mapping confidence, or (LevelNone, 0) when no pattern matches.
func MatchLevel(text string) (model.Level, float64) {
	t := NormalizeText(text)
	for _, p := range levelPatterns {
		if p.re.MatchString(t) {
			return p.level, p.confidence
		}
	}
	return model.LevelNone, 0
}

// HasNumberedStart reports whether the text opens with any numbering
// prefix.
func HasNumberedStart(text string) bool {
	return numberedStart.MatchString(NormalizeText(text))
}

var dottedNumberPrefix = regexp.MustCompile(`^\d{1,3}((\.\d{1,3})*)\.?[\s)]`)

// NumberingDepth returns the nesting depth of a leading dotted-number
// prefix ("2.1.3" is 3), or 0 when the text has none.
func NumberingDepth(text string) int {
	m := dottedNumberPrefix.FindStringSubmatch(NormalizeText(text))
	if m == nil {
		return 0
	}
	return 1 + strings.Count(m[1], ".")
}

// HasSectionKeyword reports whether the text contains a known heading
// keyword: fold-cased whole-word match for Latin script, substring match
// for CJK.
func HasSectionKeyword(text, tag string) bool {
	t := NormalizeText(text)

	if lang.IsCJK(tag) || containsCJK(t) {
		for _, kw := range sectionKeywords.cjk {
			if strings.Contains(t, kw) {
				return true
			}
		}
	}

	folded := foldCaser.String(t)
	for _, word := range strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		for _, kw := range sectionKeywords.latin {
			if word == kw {
				return true
			}
		}
	}
	return false
}

func containsCJK(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}

// IsNoise reports whether a block can never be a heading, regardless of
// score: bullets, boilerplate lines, bare page numbers, link text,
// symbol soup, dates, and lines outside the plausible length range.
func IsNoise(b *model.TextBlock, docTag string, cfg Config) bool {
	t := NormalizeText(b.Text)
	runes := []rune(t)

	if len(runes) < 2 {
		return true
	}

	maxChars := cfg.MaxChars
	if lang.IsCJK(docTag) || containsCJK(t) {
		maxChars = cfg.MaxCharsCJK
	}
	if len(runes) > maxChars {
		return true
	}

	if bulletStart.MatchString(t) || loneBullet.MatchString(t) {
		return true
	}
	if pageNumberOnly.MatchString(t) {
		return true
	}
	if urlOrEmail.MatchString(t) {
		return true
	}
	if datePattern.MatchString(t) || timeOnly.MatchString(t) {
		return true
	}
	if copyrightLine.MatchString(t) {
		return true
	}

	if alnumRatio(runes) < cfg.MinAlnumRatio {
		return true
	}

	// A long line ending in sentence punctuation is prose, not a heading.
	if b.Features.WordCount >= 10 && endsWithSentencePunct(runes) {
		return true
	}

	return false
}

func alnumRatio(runes []rune) float64 {
	if len(runes) == 0 {
		return 0
	}
	alnum := 0
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	return float64(alnum) / float64(len(runes))
}

func endsWithSentencePunct(runes []rune) bool {
	last := runes[len(runes)-1]
	switch last {
	case '.', ';', ',', '。', '、', '；', '，':
		return true
	}
	return false
}
