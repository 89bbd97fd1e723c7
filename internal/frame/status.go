package frame

import (
	"fmt"
	"strings"

	"termdeck/internal/deck"
	"termdeck/internal/layout"
	"termdeck/internal/nav"
	"termdeck/internal/textfit"
)

// Status bar hints.
const (
	ScrollHint = "[j/k]scroll [s]notes [n]ext [p]rev [q]uit"
	NormalHint = "[s]notes [n]ext [p]rev [h]elp [q]uit"
)

const gotoLabel = " Go to slide: "

// StatusBar renders the bottom line of the slide screen. The left side
// carries position, scroll and notes indicators and the slide title; the
// right side carries key hints. The title is shortened first when the line
// gets crowded, then the whole line is cut to width.
func StatusBar(st nav.State, d deck.Deck, res layout.Result, scroll, width int) string {
	var left strings.Builder
	fmt.Fprintf(&left, " [%d/%d]", st.Current+1, d.Len())
	if res.NeedsScroll {
		fmt.Fprintf(&left, " ↕%d/%d", scroll+1, res.MaxScroll()+1)
	}
	if st.NotesVisible {
		left.WriteString(" [notes ON]")
	}
	left.WriteString("  ")
	prefix := left.String()

	hint := NormalHint
	if res.NeedsScroll {
		hint = ScrollHint
	}

	title := d.Slide(st.Current).Title
	// Keep at least three columns between the title and the hints.
	room := width - textfit.DisplayWidth(prefix) - textfit.DisplayWidth(hint) - 3
	if textfit.DisplayWidth(title) > room {
		title = textfit.Truncate(title, room, true)
	}

	status := prefix + title
	padding := max(1, width-textfit.DisplayWidth(status)-textfit.DisplayWidth(hint))
	return textfit.Fit(status+strings.Repeat(" ", padding)+hint, width)
}

func gotoPrompt(buffer string, width int) string {
	return textfit.Fit(gotoLabel+buffer+"_", width)
}
