package view

import (
	"github.com/charmbracelet/lipgloss"

	"cloudboard/internal/tui/design"
	"cloudboard/internal/tui/model"
)

// renderAddOverlay draws a centered add-company prompt with the status bar
// kept visible underneath. While detection runs the hint line is replaced by
// a spinner so the user knows a lookup is in flight.
func renderAddOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("Add Company")

	var hint string
	if m.IsDetecting {
		hint = m.Spinner.View() + " Detecting cloud provider..."
	} else {
		hint = design.DimStyle.Render("enter submit, esc cancel")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		design.TextSecondaryStyle.Render("Enter a company domain to detect its cloud provider."),
		"",
		m.AddInput.View(),
		"",
		hint,
	)

	boxWidth := 58
	if m.Width > 0 && boxWidth > m.Width-4 {
		boxWidth = m.Width - 4
	}
	if boxWidth < design.MinPanelWidth {
		boxWidth = design.MinPanelWidth
	}

	box := design.CenteredOverlayContainerStyle.Copy().Width(boxWidth).Render(body)
	return overlayCanvas(m, box)
}

// renderHelpOverlay renders the keyboard shortcut reference centered on
// screen.
func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("Keyboard Shortcuts")
	columns := m.Help.FullHelpView(m.Keys.FullHelp())

	body := lipgloss.JoinVertical(lipgloss.Center,
		title,
		columns,
		"",
		design.DimStyle.Render("esc close"),
	)

	box := design.CenteredOverlayContainerStyle.Render(body)
	return overlayCanvas(m, box)
}

// renderLogOverlay renders the activity log in a viewport sized to most of
// the screen. Content is re-styled lazily: only when new entries arrived or
// the overlay dimensions changed.
func renderLogOverlay(m *model.Model) string {
	overlayWidth := int(float64(m.Width) * 0.8)
	overlayHeight := int(float64(m.Height) * 0.7)
	if overlayWidth < design.MinPanelWidth {
		overlayWidth = design.MinPanelWidth
	}
	if overlayHeight < design.MinPanelHeight {
		overlayHeight = design.MinPanelHeight
	}

	title := design.LogPanelTitleStyle.Render("Activity Log (↑/↓ scroll, y copy, esc close)")

	frame := design.LogOverlayStyle
	vpWidth := overlayWidth - frame.GetHorizontalFrameSize()
	vpHeight := overlayHeight - frame.GetVerticalFrameSize() - lipgloss.Height(title)
	if vpWidth < 1 {
		vpWidth = 1
	}
	if vpHeight < 1 {
		vpHeight = 1
	}

	if m.LogViewport.Width != vpWidth || m.LogViewport.Height != vpHeight ||
		m.LogViewportLastWidth != vpWidth {
		m.LogViewport.Width = vpWidth
		m.LogViewport.Height = vpHeight
		m.LogViewportLastWidth = vpWidth
		m.ActivityLogDirty = true
	}
	if m.ActivityLogDirty {
		PrepareLogContent(m)
	}

	box := frame.Copy().Width(overlayWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View()))

	return overlayCanvas(m, box)
}

// overlayCanvas centers a box over the dashboard area and re-attaches the
// status bar so transient messages stay visible under overlays.
func overlayCanvas(m *model.Model, box string) string {
	width := m.Width
	height := m.Height
	if width < design.MinPanelWidth {
		width = design.MinPanelWidth
	}
	if height < design.MinPanelHeight {
		height = design.MinPanelHeight
	}

	canvas := lipgloss.Place(
		width, height-1,
		lipgloss.Center, lipgloss.Center,
		box,
		lipgloss.WithWhitespaceBackground(design.ColorBackground),
	)

	statusBar := renderDashboardStatusBar(m, width)
	return lipgloss.JoinVertical(lipgloss.Left, canvas, statusBar)
}
