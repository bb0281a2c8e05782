package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"cloudboard/internal/catalog"
	"cloudboard/internal/ingest"
	"cloudboard/internal/tui/model"
	"cloudboard/internal/tui/view"
	"cloudboard/pkg/logging"
)

// statusMessageTTL is how long transient status bar messages stay visible.
const statusMessageTTL = 4 * time.Second

// mainControllerDispatch is the central message router. It receives every
// Bubble Tea message, updates the model, and queues follow-up commands.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// High-frequency messages are excluded from the debug trace.
	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
	default:
		LogDebug(m, controllerSubsystem, "received msg: %T", msg)
	}

	// Global quit shortcuts. Plain q only quits when no text input is
	// capturing keystrokes; ctrl+c always does.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return quit(m)
		case "q":
			if !inputCapturing(m) {
				return quit(m)
			}
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case m.CurrentAppMode == model.ModeAddInput:
			return handleKeyMsgAddMode(m, msg)
		case m.Focus == model.FocusSearch && m.SearchInput.Focused():
			return handleKeyMsgSearchMode(m, msg)
		default:
			return handleKeyMsgGlobal(m, msg, cmds)
		}

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.DetectResultMsg:
		return handleDetectResult(m, msg)

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()
		return m, nil

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(msg)
			cmds = append(cmds, vpCmd)
		}

	case spinner.TickMsg:
		var spinCmd tea.Cmd
		m.Spinner, spinCmd = m.Spinner.Update(msg)
		return m, spinCmd

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		// Re-issue the listener or the stream stops after one entry.
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	default:
		// Unhandled messages still reach the focused input so paste and
		// similar terminal events work.
		var fwdCmd tea.Cmd
		switch {
		case m.CurrentAppMode == model.ModeAddInput:
			m.AddInput, fwdCmd = m.AddInput.Update(msg)
		case m.Focus == model.FocusSearch && m.SearchInput.Focused():
			m.SearchInput, fwdCmd = m.SearchInput.Update(msg)
		case m.CurrentAppMode == model.ModeLogOverlay:
			m.LogViewport, fwdCmd = m.LogViewport.Update(msg)
		}
		cmds = append(cmds, fwdCmd)
	}

	// Keep an open log overlay current as entries stream in.
	if m.ActivityLogDirty && m.CurrentAppMode == model.ModeLogOverlay {
		view.PrepareLogContent(m)
	}

	return m, tea.Batch(cmds...)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Goodbye!"
	return m, tea.Quit
}

// inputCapturing reports whether a text input currently receives keystrokes,
// in which case plain letters like q must not trigger shortcuts.
func inputCapturing(m *model.Model) bool {
	if m.CurrentAppMode == model.ModeAddInput {
		return true
	}
	return m.Focus == model.FocusSearch && m.SearchInput.Focused()
}

// handleDetectResult finalizes an add-company submission. Errors keep the
// prompt open so the input can be corrected; success returns to the dashboard
// with the cursor on the new row.
func handleDetectResult(m *model.Model, msg model.DetectResultMsg) (*model.Model, tea.Cmd) {
	m.IsDetecting = false

	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "detection for %s failed", msg.Domain)
		msgType := model.StatusBarError
		if errors.Is(msg.Err, catalog.ErrDuplicate) {
			// Lost a race against a concurrent add of the same domain.
			msgType = model.StatusBarWarning
		}
		return m, m.SetStatusMessage(ingest.UserMessage(msg.Err), msgType, statusMessageTTL)
	}

	m.CurrentAppMode = model.ModeDashboard
	m.AddInput.Blur()
	m.AddInput.Reset()
	m.Focus = model.FocusGrid
	moveGridCursorTo(m, msg.Company.Domain)

	status := fmt.Sprintf("Added %s (%s)", msg.Company.Name, msg.Company.Provider)
	return m, m.SetStatusMessage(status, model.StatusBarSuccess, statusMessageTTL)
}

// moveGridCursorTo points the grid cursor at the row for domain. The row can
// be filtered out, in which case the cursor just stays clamped.
func moveGridCursorTo(m *model.Model, domain string) {
	for i, c := range m.DisplayedCompanies() {
		if c.Domain == domain {
			m.GridCursor = i
			return
		}
	}
	m.ClampGridCursor()
}

// handleNewLogEntry appends a formatted entry to the activity log. Debug
// entries only land there while debug mode is on.
func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	if msg.Entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, msg.Entry.Format())
	}
	return m
}
