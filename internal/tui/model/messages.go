package model

import (
	"cloudboard/internal/catalog"
	"cloudboard/pkg/logging"
)

// ---- Company add flow messages ----

// DetectResultMsg carries the outcome of an asynchronous provider detection.
// On success Company holds the appended catalog row.
type DetectResultMsg struct {
	Input   string
	Domain  string
	Company catalog.Company
	Err     error
}

// ---- Logging messages ----

// NewLogEntryMsg delivers one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ---- Misc overlay / status bar ----

type ClearStatusBarMsg struct{}
