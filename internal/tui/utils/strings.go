package utils

import (
	"github.com/mattn/go-runewidth"
)

// TruncateString truncates a string to the given display width, honoring
// wide runes. Styled strings should be truncated before styling.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// TruncateWithEllipsis truncates to width and appends an ellipsis when the
// string was actually shortened.
func TruncateWithEllipsis(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads a string with spaces to the given display width. Strings
// already at or beyond the width are returned unchanged.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
