package ui

import (
	"os"

	"golang.org/x/term"
)

// Fallback terminal size when stdout is not a terminal.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// TerminalSize returns the size of the terminal on stdout, or 80×24.
func TerminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return FallbackWidth, FallbackHeight
	}
	return w, h
}
