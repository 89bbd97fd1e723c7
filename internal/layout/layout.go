// Package layout turns slide text into lines that exactly fill a terminal
// row.
package layout

import (
	"strings"

	"termdeck/internal/textfit"
)

const fence = "```"

// Result is the outcome of one layout pass. It is recomputed on every
// render and never stored.
type Result struct {
	Lines       []string
	NeedsScroll bool
	TotalLines  int
	Available   int
}

// MaxScroll returns the largest valid scroll offset for r.
func (r Result) MaxScroll() int {
	if !r.NeedsScroll {
		return 0
	}
	return r.TotalLines - r.Available
}

// ClampScroll bounds offset to [0, MaxScroll].
func (r Result) ClampScroll(offset int) int {
	return max(0, min(offset, r.MaxScroll()))
}

// Visible returns the window of lines shown at the given scroll offset.
// The offset is clamped first.
func (r Result) Visible(offset int) []string {
	if !r.NeedsScroll {
		return r.Lines
	}
	start := r.ClampScroll(offset)
	return r.Lines[start : start+r.Available]
}

// ExtractContent returns the text between the first pair of fence lines in
// body, without the fences. A body without a fenced block, or whose block is
// empty, is returned unchanged; an unterminated fence keeps everything after
// it.
func ExtractContent(body string) string {
	var (
		kept    []string
		inFence bool
		fenced  bool
	)
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), fence) {
			if inFence {
				break
			}
			inFence = true
			fenced = true
			continue
		}
		if inFence {
			kept = append(kept, line)
		}
	}
	if !fenced || len(kept) == 0 {
		return body
	}
	return strings.Join(kept, "\n")
}

// Prepare centers the lines of text as one block within width columns.
// Every returned line is exactly width columns wide. Lines that do not fit
// next to the left padding are truncated with an ellipsis.
func Prepare(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	lines := strings.Split(text, "\n")

	maxContent := 0
	for _, line := range lines {
		maxContent = max(maxContent, textfit.DisplayWidth(line))
	}

	leftPadding := 0
	if maxContent < width {
		leftPadding = (width - maxContent) / 2
	}
	pad := strings.Repeat(" ", leftPadding)

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if leftPadding+textfit.DisplayWidth(line) > width {
			line = textfit.Truncate(line, width-leftPadding, true)
		}
		out = append(out, textfit.PadRight(pad+line, width))
	}
	return out
}

// Fit lays out a slide body for a screen region of width columns and
// available rows.
func Fit(body string, width, available int) Result {
	available = max(1, available)
	lines := Prepare(ExtractContent(body), width)
	return Result{
		Lines:       lines,
		NeedsScroll: len(lines) > available,
		TotalLines:  len(lines),
		Available:   available,
	}
}
