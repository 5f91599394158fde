// Package boundary computes character and word boundaries for selection
// stepping. Character boundaries are Unicode grapheme clusters; word
// boundaries follow UAX#29 word segmentation.
//
// All offsets are byte offsets. Functions clamp out-of-range inputs to
// the nearest valid offset rather than failing; stepping off either end
// of the text is the caller's cross-unit overflow signal.
package boundary

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/rivo/uniseg"

	"github.com/dshills/textselect/selectable"
)

// Grapheme returns the range of the grapheme cluster containing offset.
// An offset at or past the end of text returns a collapsed range at the
// end.
func Grapheme(text string, offset int) selectable.Range {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(text) {
		return selectable.CollapsedRange(len(text))
	}
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		end := pos + len(cluster)
		if offset < end {
			return selectable.NewRange(pos, end)
		}
		pos = end
	}
	return selectable.CollapsedRange(len(text))
}

// NextGrapheme returns the offset one grapheme cluster forward from
// offset, clamped to the end of text.
func NextGrapheme(text string, offset int) int {
	if offset >= len(text) {
		return len(text)
	}
	return Grapheme(text, offset).End()
}

// PrevGrapheme returns the offset one grapheme cluster backward from
// offset, clamped to the start of text.
func PrevGrapheme(text string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	return Grapheme(text, offset-1).Start()
}

// Word returns the range of the word token containing offset. Whitespace
// and punctuation runs are tokens of their own, so the result always
// covers offset. An offset at the end of text returns the last token.
func Word(text string, offset int) selectable.Range {
	if text == "" {
		return selectable.CollapsedRange(0)
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(text) {
		offset = len(text) - 1
	}
	pos := 0
	tokens := words.FromString(text)
	for tokens.Next() {
		end := pos + len(tokens.Value())
		if offset < end {
			return selectable.NewRange(pos, end)
		}
		pos = end
	}
	return selectable.CollapsedRange(len(text))
}

// NextWordEnd returns the end of the first word after offset, skipping
// intervening whitespace. If no word follows, it returns the end of
// text. This is the target of a forward word-granularity extension.
func NextWordEnd(text string, offset int) int {
	if offset < 0 {
		offset = 0
	}
	pos := 0
	tokens := words.FromString(text)
	for tokens.Next() {
		token := tokens.Value()
		end := pos + len(token)
		if end > offset && strings.TrimSpace(token) != "" {
			return end
		}
		pos = end
	}
	return len(text)
}

// WordCount returns the number of words in text, ignoring whitespace
// runs. Drag feedback uses it to detect word boundary crossings.
func WordCount(text string) int {
	n := 0
	tokens := words.FromString(text)
	for tokens.Next() {
		if strings.TrimSpace(tokens.Value()) != "" {
			n++
		}
	}
	return n
}

// PrevWordStart returns the start of the last word before offset,
// skipping intervening whitespace. If no word precedes, it returns 0.
// This is the target of a backward word-granularity extension.
func PrevWordStart(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	start := 0
	found := false
	pos := 0
	tokens := words.FromString(text)
	for tokens.Next() {
		token := tokens.Value()
		if pos >= offset {
			break
		}
		if strings.TrimSpace(token) != "" {
			start = pos
			found = true
		}
		pos += len(token)
	}
	if !found {
		return 0
	}
	return start
}
