package components

import (
	"strings"

	"cloudboard/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Layout helps organize the dashboard into sections
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a new layout manager
func NewLayout(width, height int) *Layout {
	return &Layout{
		Width:  width,
		Height: height,
	}
}

// clampSplit divides total by fraction and forces both parts to at least min.
func clampSplit(total int, fraction float64, min int) (first, second int) {
	if total < min*2 {
		total = min * 2
	}
	if fraction <= 0 || fraction >= 1 {
		fraction = 0.5
	}

	first = int(float64(total) * fraction)
	second = total - first

	if first < min {
		first = min
		second = total - first
	}
	if second < min {
		second = min
		first = total - second
	}
	if first < min {
		first = min
	}
	return first, second
}

// SplitVertical splits the area into a left and right section by percentage.
// The dashboard uses this for the chart and grid columns.
func (l *Layout) SplitVertical(leftPercent float64) (leftWidth, rightWidth int) {
	return clampSplit(l.Width, leftPercent, design.MinPanelWidth)
}

// ContentArea returns the height left for panels after the fixed rows
// (header, search, pills, status bar) are accounted for.
func (l *Layout) ContentArea(fixedRowHeights ...int) int {
	contentHeight := l.Height
	for _, h := range fixedRowHeights {
		contentHeight -= h
	}
	if contentHeight < 0 {
		contentHeight = 0
	}
	return contentHeight
}

// JoinHorizontal joins components horizontally with optional gap
func JoinHorizontal(gap int, components ...string) string {
	if gap > 0 && len(components) > 1 {
		spacer := strings.Repeat(" ", gap)
		parts := make([]string, 0, len(components)*2-1)
		for i, comp := range components {
			if i > 0 {
				parts = append(parts, spacer)
			}
			parts = append(parts, comp)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, components...)
}

// JoinVertical joins components vertically
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

// CenterContent centers content within the given dimensions
func CenterContent(width, height int, content string) string {
	return design.CenterVertical(height, design.CenterHorizontal(width, content))
}
