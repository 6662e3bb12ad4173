// Package terminal probes the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback character grid used when stdout is not a terminal. Matches the
// classic 80x50 roguelike console.
const (
	DefaultWidth  = 80
	DefaultHeight = 50
)

// GetSize returns the width and height, in characters, of the terminal
// attached to f. Falls back to DefaultWidth x DefaultHeight when f is not a
// terminal or the size cannot be determined.
func GetSize(f *os.File) (width, height int) {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// StdoutSize returns GetSize(os.Stdout).
func StdoutSize() (width, height int) {
	return GetSize(os.Stdout)
}
