// Package textwidth measures the terminal display width of strings.
//
// All width decisions in the rendering engine go through this package so that
// East Asian wide characters, emoji, and combining marks are counted by the
// number of terminal cells they occupy rather than by rune count.
package textwidth

import (
	"github.com/mattn/go-runewidth"
)

// String returns the display width of s in terminal cells.
func String(s string) int {
	return runewidth.StringWidth(s)
}

// Rune returns the display width of a single rune in terminal cells.
func Rune(r rune) int {
	return runewidth.RuneWidth(r)
}

// Widest returns the display width of the widest line in lines.
// Returns 0 for an empty slice.
func Widest(lines []string) int {
	var max int
	for _, line := range lines {
		if w := String(line); w > max {
			max = w
		}
	}
	return max
}
