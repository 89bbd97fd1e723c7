package textfit

import (
	"strings"
	"unicode/utf8"
)

// Wrap greedily packs the words of text into lines of at most width runes.
// A word longer than width is placed on a line of its own and left intact.
// It always returns at least one line.
//
// The budget is a rune count rather than a display width; notes are
// treated as single-width prose.
func Wrap(text string, width int) []string {
	var (
		lines   []string
		current []string
		length  int
	)

	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)
		sep := 0
		if len(current) > 0 {
			sep = 1
		}
		if length+sep+n <= width {
			current = append(current, word)
			length += sep + n
			continue
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
		current = []string{word}
		length = n
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// WrapParagraphs wraps each newline separated paragraph of text on its own.
// Blank paragraphs are kept as empty lines.
func WrapParagraphs(text string, width int) []string {
	var out []string
	for _, p := range strings.Split(text, "\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			out = append(out, "")
			continue
		}
		out = append(out, Wrap(p, width)...)
	}
	return out
}
