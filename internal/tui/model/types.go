package model

import (
	"time"

	"cloudboard/internal/catalog"
	"cloudboard/internal/ingest"
	"cloudboard/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeDashboard
	ModeAddInput
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeDashboard:
		return "Dashboard"
	case ModeAddInput:
		return "AddInput"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// FocusArea identifies which dashboard region receives navigation keys.
type FocusArea int

const (
	FocusSearch FocusArea = iota
	FocusPills
	FocusGrid
)

func (f FocusArea) String() string {
	switch f {
	case FocusSearch:
		return "Search"
	case FocusPills:
		return "Pills"
	case FocusGrid:
		return "Grid"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000

	// DefaultDetectTimeout bounds one provider detection call.
	DefaultDetectTimeout = 10 * time.Second
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Tab         key.Binding
	ShiftTab    key.Binding
	Enter       key.Binding
	Esc         key.Binding
	Quit        key.Binding
	Help        key.Binding
	Search      key.Binding
	Add         key.Binding
	CopyDomain  key.Binding
	ToggleDark  key.Binding
	ToggleDebug key.Binding
	ToggleLog   key.Binding
}

// ShortHelp implements help.KeyMap for the status bar hint row.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Add, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Tab, k.ShiftTab},
		{k.Enter, k.Esc, k.Search, k.Add, k.CopyDomain},
		{k.ToggleLog, k.ToggleDark, k.ToggleDebug, k.Help, k.Quit},
	}
}

// Model represents the state of the TUI application
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	CurrentAppMode  AppMode
	Focus           FocusArea
	DebugMode       bool
	ColorMode       string
	QuittingMessage string

	// Catalog access
	Store    *catalog.Store
	Ingestor *ingest.Ingestor

	// Filter state. SelectedProvider is the sticky pill selection,
	// HoveredProvider the transient preview while the pill row has focus.
	SearchInput      textinput.Model
	SelectedProvider *catalog.Provider
	HoveredProvider  *catalog.Provider
	PillCursor       int
	GridCursor       int

	// Company add flow
	AddInput      textinput.Model
	IsDetecting   bool
	DetectTimeout time.Duration

	Spinner spinner.Model

	// Status bar
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Activity log
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int

	Keys KeyMap
	Help help.Model

	// Logging
	LogChannel <-chan logging.LogEntry
}

// PillProviders returns the providers behind the pill row in display order.
// Pill index 0 is the All pill and is not part of this slice.
func PillProviders() []catalog.Provider {
	return catalog.Providers()
}

// PillCount is the number of pills including the leading All pill.
func PillCount() int {
	return len(catalog.Providers()) + 1
}

// FilteredCompanies applies the search query and the sticky provider
// selection to the full catalog.
func (m *Model) FilteredCompanies() []catalog.Company {
	return catalog.Filter(m.Store.All(), m.SearchInput.Value(), m.SelectedProvider)
}

// DisplayedCompanies resolves what the grid and chart show. A hover preview
// wins over query and selection and always runs against the full catalog.
func (m *Model) DisplayedCompanies() []catalog.Company {
	return catalog.Displayed(m.HoveredProvider, m.FilteredCompanies(), m.Store.All())
}

// CursorCompany returns the company under the grid cursor, if any.
func (m *Model) CursorCompany() (catalog.Company, bool) {
	displayed := m.DisplayedCompanies()
	if m.GridCursor < 0 || m.GridCursor >= len(displayed) {
		return catalog.Company{}, false
	}
	return displayed[m.GridCursor], true
}

// ClampGridCursor keeps the grid cursor inside the displayed rows. Filters
// and hover previews shrink the row set underneath the cursor.
func (m *Model) ClampGridCursor() {
	n := len(m.DisplayedCompanies())
	if n == 0 {
		m.GridCursor = 0
		return
	}
	if m.GridCursor >= n {
		m.GridCursor = n - 1
	}
	if m.GridCursor < 0 {
		m.GridCursor = 0
	}
}

// SyncHoverToPill aligns the hover preview with the pill cursor. Hover is
// only live while the pill row has focus; the All pill previews nothing.
func (m *Model) SyncHoverToPill() {
	if m.Focus != FocusPills || m.PillCursor <= 0 {
		m.HoveredProvider = nil
		return
	}
	providers := PillProviders()
	idx := m.PillCursor - 1
	if idx >= len(providers) {
		m.HoveredProvider = nil
		return
	}
	p := providers[idx]
	m.HoveredProvider = &p
}

// ClearHover drops the transient preview without touching the sticky
// selection.
func (m *Model) ClearHover() {
	m.HoveredProvider = nil
}

// ToggleSelectionAtPill makes the pill under the cursor the sticky filter,
// or clears it when the pill is already selected or is the All pill.
func (m *Model) ToggleSelectionAtPill() {
	if m.PillCursor <= 0 {
		m.SelectedProvider = nil
		return
	}
	providers := PillProviders()
	idx := m.PillCursor - 1
	if idx >= len(providers) {
		return
	}
	p := providers[idx]
	if m.SelectedProvider != nil && *m.SelectedProvider == p {
		m.SelectedProvider = nil
		return
	}
	m.SelectedProvider = &p
}

// ClearStatusMessage removes the current status bar message immediately and
// cancels any clear still pending for it.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
		m.StatusBarClearCancel = nil
	}
}

// SetStatusMessage updates the status bar message and schedules its removal.
// A newer message cancels the pending clear of the one it replaces.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
