// Package textfit measures and fits text into terminal columns.
//
// Widths follow the Unicode East Asian Width property: Wide and Fullwidth
// runes take two columns, everything else takes one. Combining marks and
// ambiguous-width runes are counted as a single column.
package textfit

import (
	"strings"

	"golang.org/x/text/width"
)

// Ellipsis is appended by Truncate when it cuts text short.
const Ellipsis = "…"

// RuneWidth returns the number of terminal columns r occupies.
func RuneWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// DisplayWidth returns the number of terminal columns s occupies.
func DisplayWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// Truncate keeps runes from the left of s until the next one would push the
// width past maxWidth. When indicator is set one column is reserved and
// Ellipsis is appended, but only if something was actually cut.
func Truncate(s string, maxWidth int, indicator bool) string {
	if maxWidth <= 0 {
		return ""
	}

	budget := maxWidth
	if indicator {
		budget--
	}

	var b strings.Builder
	used := 0
	truncated := false
	for _, r := range s {
		rw := RuneWidth(r)
		if used+rw > budget {
			truncated = true
			break
		}
		b.WriteRune(r)
		used += rw
	}

	if truncated && indicator {
		b.WriteString(Ellipsis)
	}
	return b.String()
}

// PadRight appends spaces until s is w columns wide. Wider strings are
// returned untouched.
func PadRight(s string, w int) string {
	if gap := w - DisplayWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Fit returns s truncated or padded so that it is exactly w columns wide.
// A wide rune that would straddle the last column is replaced by padding.
func Fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if DisplayWidth(s) > w {
		s = Truncate(s, w, false)
	}
	return PadRight(s, w)
}

// Blank returns a line of w spaces.
func Blank(w int) string {
	if w <= 0 {
		return ""
	}
	return strings.Repeat(" ", w)
}
