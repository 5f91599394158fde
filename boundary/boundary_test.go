package boundary

import (
	"testing"

	"github.com/dshills/textselect/selectable"
)

func TestGrapheme(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		want   selectable.Range
	}{
		{"ascii", "abc", 1, selectable.NewRange(1, 2)},
		{"at start", "abc", 0, selectable.NewRange(0, 1)},
		{"at end", "abc", 3, selectable.CollapsedRange(3)},
		{"multibyte", "héllo", 1, selectable.NewRange(1, 3)},
		{"combining mark", "éx", 0, selectable.NewRange(0, 3)},
		{"empty", "", 0, selectable.CollapsedRange(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Grapheme(tt.text, tt.offset); got != tt.want {
				t.Errorf("Grapheme(%q, %d) = %v, want %v", tt.text, tt.offset, got, tt.want)
			}
		})
	}
}

func TestGraphemeStepping(t *testing.T) {
	text := "aé́b" // a, e-acute with extra accent, b

	if got := NextGrapheme(text, 0); got != 1 {
		t.Errorf("NextGrapheme(0) = %d, want 1", got)
	}
	if got := NextGrapheme(text, 1); got != 5 {
		t.Errorf("NextGrapheme(1) = %d, want 5", got)
	}
	if got := NextGrapheme(text, len(text)); got != len(text) {
		t.Errorf("NextGrapheme at end = %d, want %d", got, len(text))
	}
	if got := PrevGrapheme(text, 5); got != 1 {
		t.Errorf("PrevGrapheme(5) = %d, want 1", got)
	}
	if got := PrevGrapheme(text, 0); got != 0 {
		t.Errorf("PrevGrapheme at start = %d, want 0", got)
	}
}

func TestWord(t *testing.T) {
	text := "How are you?"

	tests := []struct {
		name   string
		offset int
		want   selectable.Range
	}{
		{"inside word", 5, selectable.NewRange(4, 7)},
		{"word start", 4, selectable.NewRange(4, 7)},
		{"first word", 1, selectable.NewRange(0, 3)},
		{"in whitespace", 3, selectable.NewRange(3, 4)},
		{"punctuation", 11, selectable.NewRange(11, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Word(text, tt.offset); got != tt.want {
				t.Errorf("Word(%d) = %v, want %v", tt.offset, got, tt.want)
			}
		})
	}
}

func TestNextWordEnd(t *testing.T) {
	text := "How are you?"

	tests := []struct {
		offset int
		want   int
	}{
		{0, 3},
		{3, 7},  // skips the space, lands on the end of "are"
		{7, 11}, // end of "you"
		{11, 12},
		{12, 12},
	}

	for _, tt := range tests {
		if got := NextWordEnd(text, tt.offset); got != tt.want {
			t.Errorf("NextWordEnd(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestPrevWordStart(t *testing.T) {
	text := "How are you?"

	tests := []struct {
		offset int
		want   int
	}{
		{12, 11},
		{11, 8},
		{8, 4}, // skips the space, lands on the start of "are"
		{4, 0},
		{0, 0},
	}

	for _, tt := range tests {
		if got := PrevWordStart(text, tt.offset); got != tt.want {
			t.Errorf("PrevWordStart(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"How are you?", 4}, // the trailing "?" is its own token
		{"Good, and you?", 5},
	}

	for _, tt := range tests {
		if got := WordCount(tt.text); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
