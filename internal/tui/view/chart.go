package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cloudboard/internal/catalog"
	"cloudboard/internal/tui/components"
	"cloudboard/internal/tui/design"
	"cloudboard/internal/tui/utils"
)

// renderChartPanel renders the provider share panel: one horizontal bar per
// provider in the catalog, largest first, with the Big 3 share line
// underneath. The chart covers the whole catalog, never the filtered view.
func renderChartPanel(companies []catalog.Company, width, height int) string {
	counts := catalog.Counts(companies)
	innerWidth := width - design.PanelStyle.GetHorizontalFrameSize()

	panel := components.NewPanel("Provider Share").
		WithContent(buildChartContent(counts, len(companies), innerWidth)).
		WithDimensions(width, height)

	return panel.Render()
}

// buildChartContent lays out the bars. Bars scale against the largest slice
// so the widest one always fills the available span.
func buildChartContent(counts map[catalog.Provider]int, total, innerWidth int) string {
	slices := catalog.PieData(counts)
	if len(slices) == 0 {
		return design.DimStyle.Render("Catalog is empty")
	}

	labelWidth := 0
	maxValue := 0
	for _, s := range slices {
		if w := lipgloss.Width(s.Name); w > labelWidth {
			labelWidth = w
		}
		if s.Value > maxValue {
			maxValue = s.Value
		}
	}

	// Row shape: label, bar, then "NN (100%)" worst case.
	barSpan := innerWidth - labelWidth - 11
	if barSpan < 3 {
		barSpan = 3
	}

	lines := make([]string, 0, len(slices)+2)
	for _, s := range slices {
		barLen := s.Value * barSpan / maxValue
		if barLen < 1 {
			barLen = 1
		}
		bar := design.ProviderStyle(s.Color).Render(strings.Repeat("█", barLen))
		lines = append(lines, fmt.Sprintf("%s %s %d (%s)",
			utils.PadRight(s.Name, labelWidth), bar, s.Value, percent(s.Value, total)))
	}

	lines = append(lines, "")
	lines = append(lines, "Big 3 share: "+design.TextInfoStyle.Render(
		fmt.Sprintf("%d%%", catalog.BigThreeShare(counts, total))))

	return strings.Join(lines, "\n")
}

// percent rounds half away from zero, matching the Big 3 share arithmetic.
func percent(value, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", (value*100+total/2)/total)
}
