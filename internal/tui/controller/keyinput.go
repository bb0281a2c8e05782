package controller

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"cloudboard/internal/catalog"
	"cloudboard/internal/ingest"
	"cloudboard/internal/tui/model"
)

// handleKeyMsgAddMode processes keys while the add-company prompt is open.
// Enter runs the synchronous pre-flight; only a clean submission enters the
// detecting state. Esc closes the prompt, leaving any in-flight detection to
// finish in the background.
func handleKeyMsgAddMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "enter":
		if m.IsDetecting {
			// One detection at a time.
			return m, nil
		}

		raw := m.AddInput.Value()
		domain, err := m.Ingestor.Validate(raw)
		if err != nil {
			if errors.Is(err, ingest.ErrEmptyInput) {
				// Blank submissions are ignored without feedback.
				return m, nil
			}
			msgType := model.StatusBarError
			if errors.Is(err, catalog.ErrDuplicate) {
				msgType = model.StatusBarWarning
			}
			return m, m.SetStatusMessage(ingest.UserMessage(err), msgType, statusMessageTTL)
		}

		// A fresh attempt starts with a clean status bar; feedback from the
		// previous submission must not outlive it.
		m.ClearStatusMessage()
		m.IsDetecting = true
		LogInfo(controllerSubsystem, "detecting provider for %s", domain)
		return m, tea.Batch(
			model.DetectCmd(m.Ingestor, raw, domain, m.DetectTimeout),
			m.Spinner.Tick,
		)

	case "esc":
		m.CurrentAppMode = model.ModeDashboard
		m.AddInput.Blur()
		m.AddInput.Reset()
		return m, nil
	}

	if m.IsDetecting {
		// The submission under detection must not change underneath it.
		return m, nil
	}

	var inputCmd tea.Cmd
	m.AddInput, inputCmd = m.AddInput.Update(keyMsg)
	return m, inputCmd
}

// handleKeyMsgSearchMode processes keys while the search input has focus. The
// filter applies live on every keystroke. Enter and tab move focus onward,
// esc clears the query and returns to the grid.
func handleKeyMsgSearchMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.SearchInput.Reset()
		m.SearchInput.Blur()
		m.Focus = model.FocusGrid
		m.ClampGridCursor()
		return m, nil

	case "enter", "tab":
		m.SearchInput.Blur()
		m.Focus = model.FocusPills
		m.SyncHoverToPill()
		m.ClampGridCursor()
		return m, nil

	case "shift+tab":
		m.SearchInput.Blur()
		m.Focus = model.FocusGrid
		m.ClampGridCursor()
		return m, nil
	}

	var inputCmd tea.Cmd
	m.SearchInput, inputCmd = m.SearchInput.Update(keyMsg)
	m.ClampGridCursor()
	return m, inputCmd
}
