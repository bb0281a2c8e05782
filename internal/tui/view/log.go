package view

import (
	"strings"

	"cloudboard/internal/tui/design"
	"cloudboard/internal/tui/model"
)

// PrepareLogContent re-styles the activity log into the log viewport and
// jumps to the newest entry. Called when the overlay opens, resizes, or new
// entries arrive while it is visible.
func PrepareLogContent(m *model.Model) {
	if len(m.ActivityLog) == 0 {
		m.LogViewport.SetContent(design.DimStyle.Render("No activity yet"))
		m.ActivityLogDirty = false
		return
	}

	lines := make([]string, 0, len(m.ActivityLog))
	for _, entry := range m.ActivityLog {
		lines = append(lines, styleLogLine(entry))
	}

	m.LogViewport.SetContent(strings.Join(lines, "\n"))
	m.LogViewport.GotoBottom()
	m.ActivityLogDirty = false
}

// styleLogLine picks a color per level marker. Lines without a marker render
// as plain info text.
func styleLogLine(line string) string {
	switch {
	case strings.Contains(line, "[ERROR]"):
		return design.LogErrorStyle.Render(line)
	case strings.Contains(line, "[WARN]"):
		return design.LogWarnStyle.Render(line)
	case strings.Contains(line, "[DEBUG]"):
		return design.LogDebugStyle.Render(line)
	default:
		return design.LogInfoStyle.Render(line)
	}
}
