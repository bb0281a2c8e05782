// Package logging provides leveled, subsystem-tagged logging for cloudboard.
//
// Three modes share one API. TUI mode routes entries through a buffered
// channel consumed by the dashboard's log overlay so nothing writes to the
// terminal behind bubbletea's back. CLI mode writes a slog text handler to
// the given writer. Serve mode writes JSON lines for log collectors.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// LogLevel defines the severity of a log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy fmt.Stringer.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel reads a level name as written in config files. Unrecognized
// names fall back to LevelInfo.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// SlogLevel maps a LogLevel onto the slog scale.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogEntry is the structured entry delivered to the TUI log overlay.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

// Format renders the entry the way the log overlay displays it.
func (e LogEntry) Format() string {
	line := fmt.Sprintf("%s [%s] %s: %s",
		e.Timestamp.Format("15:04:05"), e.Level, e.Subsystem, e.Message)
	if e.Err != nil {
		line += fmt.Sprintf(" (error: %v)", e.Err)
	}
	return line
}

var (
	defaultLogger *slog.Logger
	filterLevel   LogLevel
	tuiLogChannel chan LogEntry
	isTUIMode     bool
)

const tuiChannelBufferSize = 2048

// InitForTUI switches logging into channel mode and returns the channel the
// TUI must drain. Entries below filter are dropped at the source.
func InitForTUI(filter LogLevel) <-chan LogEntry {
	isTUIMode = true
	filterLevel = filter
	tuiLogChannel = make(chan LogEntry, tuiChannelBufferSize)
	// Fallback handler for anything logged before the TUI takes over.
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: filter.SlogLevel()}))
	return tuiLogChannel
}

// InitForCLI configures plain text logging to the given writer.
func InitForCLI(filter LogLevel, output io.Writer) {
	isTUIMode = false
	filterLevel = filter
	defaultLogger = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: filter.SlogLevel()}))
	slog.SetDefault(defaultLogger)
}

// InitForServe configures JSON logging to stdout for the headless server.
func InitForServe(filter LogLevel, service string) {
	isTUIMode = false
	filterLevel = filter
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: filter.SlogLevel()})
	defaultLogger = slog.New(handler).With("service", service)
	slog.SetDefault(defaultLogger)
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	if level < filterLevel {
		return
	}

	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	if isTUIMode {
		if tuiLogChannel == nil {
			// Should not happen if InitForTUI was called; last-ditch stderr.
			fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", level, subsystem, msg)
			return
		}
		entry := LogEntry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		select {
		case tuiLogChannel <- entry:
		default:
			// Overlay consumer fell behind; dropping beats deadlocking the UI.
		}
		return
	}

	if defaultLogger == nil {
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", level, subsystem, msg)
		return
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	defaultLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message for the given subsystem.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message for the given subsystem.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning for the given subsystem.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error with its cause for the given subsystem.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

// CloseTUIChannel closes the TUI log channel on application shutdown.
func CloseTUIChannel() {
	if tuiLogChannel != nil {
		close(tuiLogChannel)
		tuiLogChannel = nil
	}
}
