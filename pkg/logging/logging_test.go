package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{" error ", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLogEntryFormat(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	entry := LogEntry{Timestamp: ts, Level: LevelWarn, Subsystem: "Ingest", Message: "slow detector"}
	assert.Equal(t, "09:26:53 [WARN] Ingest: slow detector", entry.Format())

	entry.Err = errors.New("timeout")
	assert.Equal(t, "09:26:53 [WARN] Ingest: slow detector (error: timeout)", entry.Format())
}

func TestTUIModeDeliversThroughChannel(t *testing.T) {
	ch := InitForTUI(LevelDebug)
	defer CloseTUIChannel()

	Info("Catalog", "loaded %d companies", 21)

	select {
	case entry := <-ch:
		assert.Equal(t, LevelInfo, entry.Level)
		assert.Equal(t, "Catalog", entry.Subsystem)
		assert.Equal(t, "loaded 21 companies", entry.Message)
	case <-time.After(time.Second):
		t.Fatal("expected a log entry on the TUI channel")
	}
}

func TestTUIModeFiltersBelowLevel(t *testing.T) {
	ch := InitForTUI(LevelWarn)
	defer CloseTUIChannel()

	Debug("Catalog", "ignored")
	Info("Catalog", "also ignored")
	Warn("Catalog", "kept")

	entry := <-ch
	assert.Equal(t, "kept", entry.Message)
	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra entry: %+v", extra)
	default:
	}
}

func TestTUIModeDropsWhenFull(t *testing.T) {
	_ = InitForTUI(LevelDebug)
	defer CloseTUIChannel()

	// Nothing drains the channel; overflow must not block the caller.
	done := make(chan struct{})
	go func() {
		for i := 0; i < tuiChannelBufferSize+50; i++ {
			Info("Flood", "entry %d", i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("logging blocked on a full TUI channel")
	}
}

func TestCLIModeWritesText(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Error("Detect", errors.New("boom"), "lookup for %s", "stripe.com")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "lookup for stripe.com")
	assert.Contains(t, out, "subsystem=Detect")
	assert.Contains(t, out, "boom")
}
