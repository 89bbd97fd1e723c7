// Package frame composes full-screen frames from navigation state and slide
// content. Composition is pure: the same inputs always produce the same
// lines, and every line is exactly as wide as the screen.
package frame

import (
	"termdeck/internal/deck"
	"termdeck/internal/layout"
	"termdeck/internal/nav"
	"termdeck/internal/textfit"
)

// Style is a rendering intent for a line. The terminal driver decides how
// to express it.
type Style int

const (
	Plain Style = iota
	Dim
	DimBold
	Bold
	Inverse
)

// Line is one screen row.
type Line struct {
	Text  string
	Style Style
}

// Frame is a complete screen.
type Frame struct {
	Lines []Line

	// Scroll is the clamped scroll offset used for the slide content. The
	// caller stores it back into the navigator.
	Scroll int
	// Layout is the content layout the slide screen was built from.
	Layout layout.Result
}

// Texts returns the plain text of every line.
func (f Frame) Texts() []string {
	out := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		out[i] = l.Text
	}
	return out
}

// Composer renders frames. The zero value uses the built-in help text.
type Composer struct {
	// Help replaces the help screen sections when set.
	Help []HelpSection
}

// Compose renders the screen for st. Sizes below one row or column produce
// an empty frame.
func (c Composer) Compose(st nav.State, d deck.Deck, width, height int) Frame {
	if width < 1 || height < 1 {
		return Frame{Scroll: st.Scroll}
	}
	switch st.Mode {
	case nav.ModeIndex:
		return Frame{Lines: Index(d, st.Selection, width, height), Scroll: st.Scroll}
	case nav.ModeHelp:
		help := c.Help
		if len(help) == 0 {
			help = DefaultHelp()
		}
		return Frame{Lines: HelpScreen(help, width, height), Scroll: st.Scroll}
	default:
		return Slide(st, d, width, height)
	}
}

// Compose renders st with the default Composer.
func Compose(st nav.State, d deck.Deck, width, height int) Frame {
	return Composer{}.Compose(st, d, width, height)
}

// NotesPanelHeight returns the rows taken by the notes panel, including its
// border, title and separator rows.
func NotesPanelHeight(st nav.State) int {
	if !st.NotesVisible {
		return 0
	}
	return st.NotesHeight + 4
}

// AvailableHeight returns the rows left for slide content.
func AvailableHeight(st nav.State, height int) int {
	return max(1, height-1-NotesPanelHeight(st))
}

// Slide renders the slide screen: content, optional notes panel and the
// status bar.
func Slide(st nav.State, d deck.Deck, width, height int) Frame {
	slide := d.Slide(st.Current)
	available := AvailableHeight(st, height)
	res := layout.Fit(slide.Body, width, available)

	scroll := res.ClampScroll(st.Scroll)
	visible := res.Visible(scroll)

	topPadding := 0
	if !res.NeedsScroll {
		topPadding = max(0, (available-len(visible))/2)
	}

	lines := make([]Line, 0, height)
	blank := textfit.Blank(width)
	for i := 0; i < topPadding; i++ {
		lines = append(lines, Line{Text: blank})
	}
	for _, l := range visible {
		lines = append(lines, Line{Text: l})
	}
	for len(lines) < available {
		lines = append(lines, Line{Text: blank})
	}

	if st.NotesVisible {
		lines = append(lines, notesPanel(slide.Notes, width, st.NotesHeight)...)
	}

	status := Line{Text: StatusBar(st, d, res, scroll, width), Style: Inverse}
	if st.Mode == nav.ModeGoto {
		status = Line{Text: gotoPrompt(st.GotoBuffer, width), Style: Bold}
	}
	lines = append(lines, status)

	return Frame{Lines: lines, Scroll: scroll, Layout: res}
}
