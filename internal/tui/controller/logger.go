package controller

import (
	"cloudboard/internal/tui/model"
	"cloudboard/pkg/logging"
)

const controllerSubsystem = "Controller"

// The wrappers below keep handler code terse and route everything through
// pkg/logging, which feeds the activity log via the TUI channel.

// LogInfo logs an informational message.
func LogInfo(subsystem string, format string, a ...interface{}) {
	logging.Info(subsystem, format, a...)
}

// LogDebug logs a debug-level message. It respects the model's debug flag so
// the activity log stays quiet by default.
func LogDebug(m *model.Model, subsystem string, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(subsystem, format, a...)
	}
}

// LogWarn logs a warning message.
func LogWarn(subsystem string, format string, a ...interface{}) {
	logging.Warn(subsystem, format, a...)
}

// LogError logs an error with its cause attached.
func LogError(subsystem string, err error, format string, a ...interface{}) {
	logging.Error(subsystem, err, format, a...)
}
