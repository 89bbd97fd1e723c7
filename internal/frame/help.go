package frame

import (
	"strings"

	"termdeck/internal/layout"
	"termdeck/internal/textfit"
)

// HelpEntry is one row of the help screen.
type HelpEntry struct {
	Keys string
	Desc string
}

// HelpSection groups help entries under a heading.
type HelpSection struct {
	Title   string
	Entries []HelpEntry
}

const (
	helpTitle   = "SLIDESHOW CONTROLS"
	helpFooter  = "Press any key to return to slide..."
	helpInner   = 63
	helpKeyCol  = 25
	helpIndent  = "   "
	helpSpacing = 16
)

// DefaultHelp lists the built-in key bindings.
func DefaultHelp() []HelpSection {
	return []HelpSection{
		{Title: "NAVIGATION", Entries: []HelpEntry{
			{"n, SPACE, →, ENTER", "Next slide"},
			{"p, ←, BACKSPACE", "Previous slide"},
			{"f", "First slide"},
			{"l", "Last slide"},
			{"g", "Go to slide number"},
		}},
		{Title: "SCROLLING (for tall slides)", Entries: []HelpEntry{
			{"j, ↓", "Scroll down"},
			{"k, ↑", "Scroll up"},
		}},
		{Title: "SPEAKER NOTES", Entries: []HelpEntry{
			{"s", "Toggle notes panel on/off"},
			{"+, =", "Expand notes panel"},
			{"-, _", "Shrink notes panel"},
		}},
		{Title: "VIEW OPTIONS", Entries: []HelpEntry{
			{"i", "Show slide index"},
			{"r", "Refresh/redraw screen"},
			{"h, ?", "Show this help"},
		}},
		{Entries: []HelpEntry{
			{"q, x, ESC", "Quit slideshow"},
		}},
	}
}

// HelpText draws sections as a double-lined box followed by the dismiss
// hint.
func HelpText(sections []HelpSection) string {
	rule := strings.Repeat("═", helpInner)
	row := func(s string) string {
		return "║" + textfit.Fit(s, helpInner) + "║"
	}
	centered := func(s string) string {
		return row(strings.Repeat(" ", max(0, (helpInner-textfit.DisplayWidth(s))/2)) + s)
	}

	lines := []string{
		"╔" + rule + "╗",
		centered(helpTitle),
		"╠" + rule + "╣",
		row(""),
	}
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines,
				row(helpIndent+sec.Title),
				row(helpIndent+strings.Repeat("─", textfit.DisplayWidth(sec.Title))),
			)
		}
		for _, e := range sec.Entries {
			lines = append(lines, row(helpIndent+textfit.PadRight(e.Keys+" ", helpKeyCol)+e.Desc))
		}
		lines = append(lines, row(""))
	}
	lines = append(lines,
		"╚"+rule+"╝",
		"",
		strings.Repeat(" ", helpSpacing)+helpFooter,
	)
	return strings.Join(lines, "\n")
}

// HelpScreen centers the help box on screen. Boxes taller than the screen
// keep their top rows.
func HelpScreen(sections []HelpSection, width, height int) []Line {
	if width < 1 || height < 1 {
		return nil
	}
	content := layout.Prepare(HelpText(sections), width)
	if len(content) > height {
		content = content[:height]
	}

	lines := make([]Line, 0, height)
	for i := 0; i < (height-len(content))/2; i++ {
		lines = append(lines, Line{Text: textfit.Blank(width)})
	}
	for _, l := range content {
		lines = append(lines, Line{Text: l})
	}
	for len(lines) < height {
		lines = append(lines, Line{Text: textfit.Blank(width)})
	}
	return lines
}
