package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cloudboard/internal/tui/components"
	"cloudboard/internal/tui/design"
	"cloudboard/internal/tui/model"
)

// renderDashboard renders the full dashboard frame: header, search bar,
// provider pills, the chart and grid panels side by side, and the status bar.
func renderDashboard(m *model.Model) string {
	// Ensure minimum dimensions
	width := m.Width
	height := m.Height
	if width < 80 {
		width = 80
	}
	if height < 24 {
		height = 24
	}

	header := renderDashboardHeader(m, width)
	searchBar := renderSearchBar(m, width)
	pills := renderProviderPills(m, width)
	statusBar := renderDashboardStatusBar(m, width)

	layout := components.NewLayout(width, height)
	panelHeight := layout.ContentArea(
		lipgloss.Height(header),
		lipgloss.Height(searchBar),
		lipgloss.Height(pills),
		lipgloss.Height(statusBar),
	)

	displayed := m.DisplayedCompanies()

	chartWidth, gridWidth := layout.SplitVertical(0.35)
	// The share chart always describes the full catalog; filters and hover
	// previews only narrow the grid.
	chartPanel := renderChartPanel(m.Store.All(), chartWidth, panelHeight)
	gridPanel := renderGridPanel(m, displayed, gridWidth-1, panelHeight) // -1 for gap

	content := components.JoinHorizontal(1, chartPanel, gridPanel)

	return components.JoinVertical(
		header,
		searchBar,
		pills,
		content,
		statusBar,
	)
}

// renderDashboardHeader renders the title row. The spinner slot fills while a
// provider detection is in flight.
func renderDashboardHeader(m *model.Model, width int) string {
	header := components.NewHeader("Cloud Provider Dashboard").
		WithSubtitle("h Help | / Search | a Add | q Quit").
		WithWidth(width).
		WithRightContent(headerTags(m))

	if m.IsDetecting {
		header = header.WithSpinner(m.Spinner.View())
	}

	return header.Render()
}

func headerTags(m *model.Model) string {
	tags := []string{m.ColorMode}
	if m.DebugMode {
		tags = append(tags, "debug")
	}
	return design.DimStyle.Render(strings.Join(tags, " "))
}

// renderSearchBar renders the company search input across the full width.
func renderSearchBar(m *model.Model, width int) string {
	style := design.InputStyle
	if m.Focus == model.FocusSearch {
		style = design.InputFocusedStyle
	}

	innerWidth := width - style.GetHorizontalFrameSize()
	if innerWidth < design.MinPanelWidth {
		innerWidth = design.MinPanelWidth
	}

	return style.Copy().Width(innerWidth).Render(m.SearchInput.View())
}

// renderDashboardStatusBar renders catalog totals on the left and key hints
// on the right. A transient message replaces both until it expires.
func renderDashboardStatusBar(m *model.Model, width int) string {
	bar := components.NewStatusBar(width)

	if m.StatusBarMessage != "" {
		return bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType).Render()
	}

	left := components.FormatCatalogInfo(m.Store.Len(), m.Store.SessionCount())
	if scope := filterSummary(m); scope != "" {
		left += "  " + design.DimStyle.Render(scope)
	}

	return bar.WithLeftText(left).WithRightText(shortKeyHints(m)).Render()
}

// filterSummary names whatever is narrowing the grid so users can tell why
// rows are hidden. Hover previews suppress the other filters, matching what
// the grid actually shows.
func filterSummary(m *model.Model) string {
	if m.HoveredProvider != nil {
		return fmt.Sprintf("(previewing %s)", m.HoveredProvider)
	}

	var parts []string
	if q := strings.TrimSpace(m.SearchInput.Value()); q != "" {
		parts = append(parts, fmt.Sprintf("search %q", q))
	}
	if m.SelectedProvider != nil {
		parts = append(parts, fmt.Sprintf("provider %s", m.SelectedProvider))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func shortKeyHints(m *model.Model) string {
	hints := make([]string, 0, 4)
	for _, b := range m.Keys.ShortHelp() {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}
	return design.DimStyle.Render(strings.Join(hints, "  "))
}
