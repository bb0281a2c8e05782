package model

import (
	"context"
	"time"

	"cloudboard/internal/ingest"
	"cloudboard/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// DetectCmd runs provider detection for a validated submission off the UI
// loop. rawInput is handed to the detector untouched; domain is the
// normalized identity the company will be stored under.
func DetectCmd(ing *ingest.Ingestor, rawInput, domain string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		company, err := ing.Resolve(ctx, rawInput, domain)
		return DetectResultMsg{
			Input:   rawInput,
			Domain:  domain,
			Company: company,
			Err:     err,
		}
	}
}

// ListenForLogEntriesCmd forwards entries from the logging channel into the
// Bubble Tea loop. The handler must re-issue this command after every
// NewLogEntryMsg to keep the stream flowing.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
