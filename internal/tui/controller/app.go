package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"cloudboard/internal/tui/model"
	"cloudboard/internal/tui/view"
)

// AppModel adapts *model.Model to the tea.Model interface, routing every
// message through the controller dispatch.
type AppModel struct {
	model *model.Model
}

// NewAppModel creates a new app wrapper
func NewAppModel(m *model.Model) AppModel {
	return AppModel{model: m}
}

// Init implements tea.Model
func (a AppModel) Init() tea.Cmd {
	return a.model.Init()
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := mainControllerDispatch(a.model, msg)
	a.model = updated
	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return view.Render(a.model)
}
