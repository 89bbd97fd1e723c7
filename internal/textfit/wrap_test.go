package textfit

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"greedy", "a b c d e", 3, []string{"a b", "c d", "e"}},
		{"empty", "", 10, []string{""}},
		{"whitespace only", "  \t ", 10, []string{""}},
		{"long word alone", "hi supercalifragilistic yo", 5, []string{"hi", "supercalifragilistic", "yo"}},
		{"exact fit", "abc def", 7, []string{"abc def"}},
		{"collapses spaces", "one   two\tthree", 20, []string{"one two three"}},
		{"runes not bytes", "h\u00e9llo w\u00f6rld", 5, []string{"h\u00e9llo", "w\u00f6rld"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width))
		})
	}
}

func TestWrapRespectsBudget(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog while the presenter keeps talking"
	for w := 5; w < 40; w++ {
		for _, line := range Wrap(text, w) {
			assert.LessOrEqual(t, utf8.RuneCountInString(line), w)
		}
	}
}

func TestWrapParagraphs(t *testing.T) {
	got := WrapParagraphs("first para here\n\nsecond", 10)
	assert.Equal(t, []string{"first para", "here", "", "second"}, got)
}
