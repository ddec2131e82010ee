package views

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 4

// clip returns the display columns [offset, offset+width) of a plain text
// line. Tabs expand to spaces; a wide rune split by either edge is dropped.
func clip(line string, offset, width int) string {
	if width <= 0 {
		return ""
	}
	line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))

	col := 0
	start := len(line)
	for i, r := range line {
		if col >= offset {
			start = i
			break
		}
		col += runewidth.RuneWidth(r)
	}
	return runewidth.Truncate(line[start:], width, "")
}

// fit truncates s to width columns, marking the cut with an ellipsis
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
