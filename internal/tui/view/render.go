package view

import (
	"fmt"

	"cloudboard/internal/tui/components"
	"cloudboard/internal/tui/design"
	"cloudboard/internal/tui/model"
)

// Render is the single entry point for drawing the UI. It dispatches on the
// current application mode; every branch returns a complete frame.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return renderQuitting(m)
	case model.ModeInitializing:
		return renderInitializing(m)
	case model.ModeDashboard:
		return renderDashboard(m)
	case model.ModeAddInput:
		return renderAddOverlay(m)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	default:
		return design.TextErrorStyle.Render(
			fmt.Sprintf("unknown application mode: %s", m.CurrentAppMode))
	}
}

func renderQuitting(m *model.Model) string {
	if m.QuittingMessage == "" {
		return "Goodbye!\n"
	}
	return m.QuittingMessage + "\n"
}

// renderInitializing covers the frames before the first WindowSizeMsg, when
// no real layout is possible yet.
func renderInitializing(m *model.Model) string {
	loading := m.Spinner.View() + " Loading catalog..."
	if m.Width == 0 || m.Height == 0 {
		return loading
	}
	return components.CenterContent(m.Width, m.Height, loading)
}
