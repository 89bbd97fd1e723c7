package frame

import (
	"strings"

	"termdeck/internal/textfit"
)

const (
	notesTitle = " SPEAKER NOTES"
	noNotes    = "(No speaker notes)"
)

// notesPanel draws the bordered speaker notes box with rows interior rows.
func notesPanel(notes string, width, rows int) []Line {
	inner := max(0, width-2)
	rule := strings.Repeat("─", inner)

	lines := []Line{
		{Text: textfit.Fit("┌"+rule+"┐", width), Style: Dim},
		{Text: textfit.Fit("│"+textfit.Fit(notesTitle, inner)+"│", width), Style: DimBold},
		{Text: textfit.Fit("├"+rule+"┤", width), Style: Dim},
	}

	notes = strings.TrimSpace(notes)
	if notes == "" {
		notes = noNotes
	}

	// Two columns of border and two of margin.
	textWidth := max(1, width-4)
	wrapped := textfit.WrapParagraphs(notes, textWidth)
	for i := 0; i < rows; i++ {
		row := ""
		if i < len(wrapped) {
			row = wrapped[i]
		}
		body := " " + textfit.Fit(row, textWidth) + " "
		lines = append(lines, Line{Text: textfit.Fit("│"+body+"│", width), Style: Dim})
	}

	lines = append(lines, Line{Text: textfit.Fit("└"+rule+"┘", width), Style: Dim})
	return lines
}
