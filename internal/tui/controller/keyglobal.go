package controller

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cloudboard/internal/tui/model"
)

// handleKeyMsgGlobal processes key presses outside the text inputs. It covers
// overlay toggles, section focus, pill and grid navigation, and copy actions.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg, existingCmds []tea.Cmd) (*model.Model, tea.Cmd) {
	cmds := existingCmds

	// --- Overlay-specific key handling --------------------------------------
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch keyMsg.String() {
		case "L", "esc":
			m.CurrentAppMode = model.ModeDashboard
			return m, nil
		case "y":
			if err := clipboard.WriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
				LogError(controllerSubsystem, err, "copying activity log failed")
				return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, statusMessageTTL)
			}
			return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusMessageTTL)
		case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		default:
			return m, nil
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		if key.Matches(keyMsg, m.Keys.Esc) {
			m.CurrentAppMode = model.ModeDashboard
			return m, nil
		}
		// h itself falls through to the toggle below; anything else is
		// swallowed while the overlay is up.
		if !key.Matches(keyMsg, m.Keys.Help) {
			return m, nil
		}
	}

	// --- Mode and display toggles --------------------------------------------
	switch {
	case key.Matches(keyMsg, m.Keys.Help):
		if m.CurrentAppMode == model.ModeHelpOverlay {
			m.CurrentAppMode = model.ModeDashboard
		} else {
			m.CurrentAppMode = model.ModeHelpOverlay
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.CurrentAppMode = model.ModeDashboard
		} else {
			m.CurrentAppMode = model.ModeLogOverlay
			m.ActivityLogDirty = true
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleDark):
		lipgloss.SetHasDarkBackground(!lipgloss.HasDarkBackground())
		m.ColorMode = fmt.Sprintf("%s (Dark: %v)",
			lipgloss.ColorProfile().Name(), lipgloss.HasDarkBackground())
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		return m, nil

	case key.Matches(keyMsg, m.Keys.Search):
		m.CurrentAppMode = model.ModeDashboard
		m.Focus = model.FocusSearch
		m.ClearHover()
		m.SearchInput.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, m.Keys.Add):
		m.CurrentAppMode = model.ModeAddInput
		m.AddInput.Focus()
		return m, textinput.Blink
	}

	// --- Section focus and navigation ----------------------------------------
	switch keyMsg.String() {
	case "tab":
		cycleFocus(m, 1)
		return m, focusCmd(m)

	case "shift+tab":
		cycleFocus(m, -1)
		return m, focusCmd(m)

	case "left":
		if m.Focus == model.FocusPills {
			m.PillCursor--
			if m.PillCursor < 0 {
				m.PillCursor = model.PillCount() - 1
			}
			m.SyncHoverToPill()
			m.ClampGridCursor()
		}
		return m, nil

	case "right":
		if m.Focus == model.FocusPills {
			m.PillCursor = (m.PillCursor + 1) % model.PillCount()
			m.SyncHoverToPill()
			m.ClampGridCursor()
		}
		return m, nil

	case "enter":
		if m.Focus == model.FocusPills {
			m.ToggleSelectionAtPill()
			m.ClampGridCursor()
		}
		return m, nil

	case "k", "up":
		if m.Focus == model.FocusGrid && m.GridCursor > 0 {
			m.GridCursor--
		}
		return m, nil

	case "j", "down":
		if m.Focus == model.FocusGrid {
			m.GridCursor++
			m.ClampGridCursor()
		}
		return m, nil

	case "y":
		if m.Focus != model.FocusGrid {
			return m, nil
		}
		company, ok := m.CursorCompany()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(company.Domain); err != nil {
			LogError(controllerSubsystem, err, "copying domain failed")
			return m, m.SetStatusMessage("Copy failed", model.StatusBarError, statusMessageTTL)
		}
		return m, m.SetStatusMessage("Copied "+company.Domain, model.StatusBarSuccess, statusMessageTTL)

	case "esc":
		// Drop all narrowing state at once: hover, query, selection.
		m.ClearHover()
		m.SearchInput.Reset()
		m.SelectedProvider = nil
		m.ClampGridCursor()
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

// cycleFocus moves section focus search → pills → grid, wrapping both ways.
// Hover previews only survive while the pill row is focused.
func cycleFocus(m *model.Model, delta int) {
	order := []model.FocusArea{model.FocusSearch, model.FocusPills, model.FocusGrid}
	idx := 0
	for i, f := range order {
		if f == m.Focus {
			idx = i
			break
		}
	}
	n := len(order)
	m.Focus = order[(idx+delta+n)%n]

	if m.Focus == model.FocusSearch {
		m.SearchInput.Focus()
	} else {
		m.SearchInput.Blur()
	}

	if m.Focus == model.FocusPills {
		m.SyncHoverToPill()
	} else {
		m.ClearHover()
	}
	m.ClampGridCursor()
}

// focusCmd returns the cursor blink command when focus landed on the search
// input.
func focusCmd(m *model.Model) tea.Cmd {
	if m.Focus == model.FocusSearch {
		return textinput.Blink
	}
	return nil
}
