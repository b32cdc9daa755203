package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// PadOrTruncate pads or truncates a string to exactly width display
// columns. Wide runes count as two columns.
func PadOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(Truncate(s, width), width)
}

// Truncate shortens s to at most width display columns, ending in an
// ellipsis when there is room for one.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width >= len(ellipsis) {
		return runewidth.Truncate(s, width, ellipsis)
	}
	return runewidth.Truncate(s, width, "")
}

// Style applies ANSI style codes to text.
func Style(s string, codes ...string) string {
	if len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

// LabelWidth returns the widest label among labels.
func LabelWidth(labels []string) int {
	width := 0
	for _, l := range labels {
		if w := runewidth.StringWidth(l); w > width {
			width = w
		}
	}
	return width
}
