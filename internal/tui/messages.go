package tui

import "time"

// tickMsg drives the playback time-sync loop at display cadence.
type tickMsg time.Time

// tagLayoutMsg is sent from the tag engine's debounce timer when a
// re-measure changed the layout; it triggers a repaint.
type tagLayoutMsg struct{}

// errMsg wraps an error for display in the status bar.
type errMsg struct {
	err error
}
