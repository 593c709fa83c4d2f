package blocks

import (
	"strings"
	"unicode"

	"github.com/tsawler/strata/model"
)

// bracketPairs maps opening brackets to their closing forms, including the
// full-width and CJK corner variants.
var bracketPairs = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'（': '）',
	'［': '］',
	'｛': '｝',
	'「': '」',
	'『': '』',
	'【': '】',
	'〈': '〉',
	'《': '》',
}

// mergeContinuations joins blocks that are visual continuations of the block
// above them: a hyphenated word wrap, or a line left dangling by an unclosed
// bracket. Merging repeats until no rule fires, so a heading wrapped over
// three lines collapses into one block.
func (b *Builder) mergeContinuations(blocks []*model.TextBlock) []*model.TextBlock {
	if len(blocks) < 2 {
		return blocks
	}

	out := make([]*model.TextBlock, 0, len(blocks))
	out = append(out, blocks[0])

	for _, next := range blocks[1:] {
		prev := out[len(out)-1]

		if b.shouldMerge(prev, next) {
			mergeInto(prev, next)
			continue
		}
		out = append(out, next)
	}

	return out
}

// shouldMerge decides whether next continues prev. Both must sit close
// vertically; the text of prev must end in a continuation marker.
func (b *Builder) shouldMerge(prev, next *model.TextBlock) bool {
	if prev.Page != next.Page {
		return false
	}

	lineHeight := prev.BBox.Height
	if next.BBox.Height > lineHeight {
		lineHeight = next.BBox.Height
	}
	gap := next.BBox.Top - prev.BBox.Bottom
	if gap < 0 || gap > lineHeight*b.config.MergeGapRatio {
		return false
	}

	text := strings.TrimSpace(prev.Text)
	if text == "" {
		return false
	}

	return endsWithHyphenWrap(text) || hasUnclosedBracket(text)
}

// endsWithHyphenWrap reports whether the text ends in a word broken by a
// line wrap. A trailing dash after a letter is the signal; an isolated dash
// (as in a bullet) is not.
func endsWithHyphenWrap(text string) bool {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return false
	}

	last := runes[n-1]
	if last != '-' && last != '‐' && last != '‑' && last != '­' {
		return false
	}
	return unicode.IsLetter(runes[n-2])
}

// hasUnclosedBracket reports whether the text opens more brackets than it
// closes, for any tracked bracket pair.
func hasUnclosedBracket(text string) bool {
	counts := make(map[rune]int)
	closers := make(map[rune]rune, len(bracketPairs))
	for opener, closer := range bracketPairs {
		closers[closer] = opener
	}

	for _, r := range text {
		if _, ok := bracketPairs[r]; ok {
			counts[r]++
		} else if open, ok := closers[r]; ok {
			counts[open]--
		}
	}

	for _, c := range counts {
		if c > 0 {
			return true
		}
	}
	return false
}

// mergeInto folds next into prev: hyphen wraps join directly with the dash
// stripped, everything else joins with a single space. The bbox becomes the
// union, the font the larger of the two, and style flags accumulate.
func mergeInto(prev, next *model.TextBlock) {
	prevText := strings.TrimRight(prev.Text, " ")
	nextText := strings.TrimLeft(next.Text, " ")

	if endsWithHyphenWrap(strings.TrimSpace(prevText)) {
		runes := []rune(prevText)
		prev.Text = string(runes[:len(runes)-1]) + nextText
	} else {
		prev.Text = prevText + " " + nextText
	}

	prev.BBox = prev.BBox.Union(next.BBox)
	if next.FontSize > prev.FontSize {
		prev.FontSize = next.FontSize
		prev.FontName = next.FontName
	}
	prev.Bold = prev.Bold || next.Bold
	prev.Italic = prev.Italic || next.Italic
}
