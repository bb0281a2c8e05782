package view

import (
	"github.com/charmbracelet/lipgloss"

	"cloudboard/internal/catalog"
	"cloudboard/internal/tui/components"
	"cloudboard/internal/tui/model"
)

// renderProviderPills renders the filter row: the All pill plus one pill per
// provider. Counts always come from the full catalog rather than the filtered
// view, so the row doubles as a catalog summary.
func renderProviderPills(m *model.Model, width int) string {
	all := m.Store.All()
	counts := catalog.Counts(all)
	focused := m.Focus == model.FocusPills

	pills := make([]string, 0, model.PillCount())
	pills = append(pills, components.Pill(
		"All",
		len(all),
		m.SelectedProvider == nil,
		focused && m.PillCursor == 0,
	))

	for i, p := range model.PillProviders() {
		pills = append(pills, components.Pill(
			p.String(),
			counts[p],
			m.SelectedProvider != nil && *m.SelectedProvider == p,
			focused && m.PillCursor == i+1,
		))
	}

	row := components.JoinHorizontal(1, pills...)
	return lipgloss.NewStyle().MaxWidth(width).Render(row)
}
