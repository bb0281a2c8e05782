package model

import (
	"fmt"

	"cloudboard/internal/catalog"
	"cloudboard/internal/ingest"
	"cloudboard/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "grid up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "grid down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous pill"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next pill"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous section"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select pill / submit"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear / back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "toggle help"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add company"),
		),
		CopyDomain: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy domain"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle debug info"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
	}
}

// InitialModel constructs the initial model around a populated catalog store.
func InitialModel(
	store *catalog.Store,
	ingestor *ingest.Ingestor,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
) *Model {
	search := textinput.New()
	search.Placeholder = "Search companies"
	search.Prompt = "/ "
	search.CharLimit = 128
	search.Width = 40

	add := textinput.New()
	add.Placeholder = "company.com or https://company.com"
	add.Prompt = "> "
	add.CharLimit = 256
	add.Width = 50

	colorProfile := lipgloss.ColorProfile().String()
	colorMode := fmt.Sprintf("%s (Dark: %v)", colorProfile, lipgloss.HasDarkBackground())

	// Spinner setup.
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		Store:            store,
		Ingestor:         ingestor,
		CurrentAppMode:   ModeInitializing,
		Focus:            FocusGrid,
		DebugMode:        debugMode,
		ColorMode:        colorMode,
		SearchInput:      search,
		AddInput:         add,
		DetectTimeout:    DefaultDetectTimeout,
		PillCursor:       0,
		GridCursor:       0,
		Spinner:          s,
		ActivityLog:      make([]string, 0),
		ActivityLogDirty: true,
		LogViewport:      viewport.New(0, 0),
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		LogChannel:       logChannel,
	}

	return &m
}

// Init implements tea.Model and starts the asynchronous listeners.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd

	if m.LogChannel != nil {
		cmds = append(cmds, ListenForLogEntriesCmd(m.LogChannel))
	}

	// Spinner tick
	cmds = append(cmds, m.Spinner.Tick)

	return tea.Batch(cmds...)
}
