package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"cloudboard/internal/tui/model"
)

// handleWindowSizeMsg stores the new terminal dimensions. The first size
// message also moves the app out of the initializing mode.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	if m.CurrentAppMode == model.ModeInitializing {
		m.CurrentAppMode = model.ModeDashboard
	}
	return m, nil
}
