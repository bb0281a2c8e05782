package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cloudboard/internal/catalog"
	"cloudboard/internal/tui/components"
	"cloudboard/internal/tui/design"
	"cloudboard/internal/tui/model"
	"cloudboard/internal/tui/utils"
)

const (
	gridSymbolWidth   = 8  // fits "CUSTOM" plus slack
	gridProviderWidth = 13 // fits "Alibaba Cloud"
	gridGap           = 2
)

// renderGridPanel renders the company table. The cursor row is highlighted
// only while the grid has focus, matching the pill and search focus rules.
func renderGridPanel(m *model.Model, displayed []catalog.Company, width, height int) string {
	focused := m.Focus == model.FocusGrid

	style := design.PanelStyle
	innerWidth := width - style.GetHorizontalFrameSize()
	if innerWidth < design.MinPanelWidth-style.GetHorizontalFrameSize() {
		innerWidth = design.MinPanelWidth - style.GetHorizontalFrameSize()
	}
	// Body rows left after the frame, title and separator.
	bodyHeight := height - style.GetVerticalFrameSize() - 2

	title := fmt.Sprintf("Companies (%d)", len(displayed))
	panel := components.NewPanel(title).
		WithContent(buildGridContent(m, displayed, innerWidth, bodyHeight, focused)).
		WithDimensions(width, height).
		SetFocused(focused)

	return panel.Render()
}

// buildGridContent lays out the header and a window of rows around the
// cursor. Rows never exceed innerWidth, so the panel never has to truncate
// styled text.
func buildGridContent(m *model.Model, displayed []catalog.Company, innerWidth, bodyHeight int, focused bool) string {
	if len(displayed) == 0 {
		if m.Store.Len() == 0 {
			return design.DimStyle.Render("Catalog is empty. Press a to add a company.")
		}
		return design.DimStyle.Render("No companies match the current filter.")
	}

	nameW, domainW := gridColumnWidths(innerWidth)
	gap := strings.Repeat(" ", gridGap)

	header := design.GridHeaderStyle.Render(
		utils.PadRight("NAME", nameW) + gap +
			utils.PadRight("SYMBOL", gridSymbolWidth) + gap +
			utils.PadRight("DOMAIN", domainW) + gap +
			"PROVIDER")

	rowBudget := bodyHeight - 1 // header
	if rowBudget < 1 {
		rowBudget = 1
	}
	overflow := len(displayed) > rowBudget
	if overflow && rowBudget > 1 {
		rowBudget-- // reserve the "...and N more" line
	}

	start, end := gridWindow(len(displayed), rowBudget, m.GridCursor)

	lines := make([]string, 0, bodyHeight)
	lines = append(lines, header)
	for i := start; i < end; i++ {
		lines = append(lines, gridRow(displayed[i], nameW, domainW, gap,
			focused && i == m.GridCursor))
	}
	if overflow {
		hidden := len(displayed) - (end - start)
		lines = append(lines, design.DimStyle.Render(
			fmt.Sprintf("...and %d more", hidden)))
	}

	return strings.Join(lines, "\n")
}

// gridRow renders one company. The cursor row is drawn as a single
// highlighted span; other rows style the symbol and provider cells only.
func gridRow(c catalog.Company, nameW, domainW int, gap string, cursor bool) string {
	name := utils.PadRight(utils.TruncateWithEllipsis(c.Name, nameW), nameW)
	symbol := utils.PadRight(c.Symbol, gridSymbolWidth)
	domain := utils.PadRight(utils.TruncateWithEllipsis(c.Domain, domainW), domainW)

	if cursor {
		plain := name + gap + symbol + gap + domain + gap +
			utils.PadRight(c.Provider.String(), gridProviderWidth)
		return design.GridRowCursorStyle.Render(plain)
	}

	symbolCell := symbol
	if c.Custom() {
		symbolCell = components.CustomTag()
		if pad := gridSymbolWidth - lipgloss.Width(symbolCell); pad > 0 {
			symbolCell += strings.Repeat(" ", pad)
		}
	}

	providerCell := components.NewProviderBadge(c.Provider).Render()
	if pad := gridProviderWidth - lipgloss.Width(providerCell); pad > 0 {
		providerCell += strings.Repeat(" ", pad)
	}

	return design.GridRowStyle.Render(name) + gap + symbolCell + gap +
		design.GridRowStyle.Render(domain) + gap + providerCell
}

// gridWindow keeps the cursor centered while clamping to the ends of the
// list.
func gridWindow(total, visible, cursor int) (start, end int) {
	if total <= visible {
		return 0, total
	}
	start = cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start > total-visible {
		start = total - visible
	}
	return start, start + visible
}

// gridColumnWidths splits whatever the fixed columns leave between NAME and
// DOMAIN. The sum always fits innerWidth exactly.
func gridColumnWidths(innerWidth int) (nameW, domainW int) {
	remaining := innerWidth - gridSymbolWidth - gridProviderWidth - 3*gridGap
	if remaining < 8 {
		remaining = 8
	}
	nameW = remaining * 2 / 5
	if nameW < 4 {
		nameW = 4
	}
	domainW = remaining - nameW
	return nameW, domainW
}
