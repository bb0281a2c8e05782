package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cloudboard/internal/catalog"
	"cloudboard/internal/ingest"
	"cloudboard/internal/tui/model"
	"cloudboard/pkg/logging"
)

// NewProgram assembles the dashboard TUI around a seeded store and an
// ingestor, in the alt screen like every full-screen mode of the tool.
func NewProgram(
	store *catalog.Store,
	ingestor *ingest.Ingestor,
	detectTimeout time.Duration,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
) *tea.Program {
	m := model.InitialModel(store, ingestor, debugMode, logChannel)
	if detectTimeout > 0 {
		m.DetectTimeout = detectTimeout
	}

	app := NewAppModel(m)
	return tea.NewProgram(app, tea.WithAltScreen())
}
