package frame

import (
	"fmt"
	"strings"

	"termdeck/internal/deck"
	"termdeck/internal/textfit"
)

// IndexHint is the footer of the slide index.
const IndexHint = "[↑/k]up [↓/j]down [ENTER]select [ESC/q]cancel"

const (
	indexHeading = "SLIDE INDEX"
	// Rule, heading, rule, blank above the list; blank, rule, hint below.
	indexChrome = 7
)

// Index renders the slide index with the row at selected highlighted.
// When the list is taller than the screen it scrolls to keep the selection
// in view.
func Index(d deck.Deck, selected, width, height int) []Line {
	if width < 1 || height < 1 {
		return nil
	}
	selected = max(0, min(selected, d.Last()))

	chrome := height > indexChrome
	rows := height
	if chrome {
		rows = height - indexChrome
	}

	first := 0
	if d.Len() > rows {
		first = min(max(0, selected-rows/2), d.Len()-rows)
	}
	last := min(d.Len(), first+rows)

	var lines []Line
	if chrome {
		lines = append(lines,
			Line{Text: strings.Repeat("═", width), Style: Bold},
			Line{Text: textfit.Fit(indexHeading, width), Style: Bold},
			Line{Text: strings.Repeat("═", width)},
			Line{Text: textfit.Blank(width)},
		)
	}

	for i := first; i < last; i++ {
		marker := "  "
		style := Plain
		if i == selected {
			marker = "▶ "
			style = Inverse
		}
		row := fmt.Sprintf("%s%2d. %s", marker, i+1, d.Slides[i].Title)
		lines = append(lines, Line{Text: textfit.Fit(row, width), Style: style})
	}

	if chrome {
		lines = append(lines,
			Line{Text: textfit.Blank(width)},
			Line{Text: strings.Repeat("─", width)},
			Line{Text: textfit.Fit(IndexHint, width)},
		)
	}

	for len(lines) < height {
		lines = append(lines, Line{Text: textfit.Blank(width)})
	}
	return lines
}
