// Package terminal answers questions about the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Fallback size when stdout is not a terminal
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height, or the defaults
// if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// Viewport returns how many map rows and columns fit in the terminal once
// reservedRows lines are kept for other output.
func Viewport(reservedRows, minRows, minCols int) (rows, cols int) {
	width, height := GetSize()
	return FitViewport(width, height, reservedRows, minRows, minCols)
}

// FitViewport is Viewport for a given terminal size. Both results are odd
// so a centred player has the same margin on each side, and never below
// the minimums.
func FitViewport(width, height, reservedRows, minRows, minCols int) (rows, cols int) {
	rows = max(height-reservedRows, minRows)
	cols = max(width-2, minCols)
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}
	return rows, cols
}
