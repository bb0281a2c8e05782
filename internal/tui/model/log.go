package model

// AddRawLineToActivityLog adds a pre-formatted log entry to the model's
// activity log, capping it at MaxActivityLogLines and setting the dirty flag
// so viewports refresh on the next pass.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}
