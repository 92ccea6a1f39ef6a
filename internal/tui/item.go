package tui

import (
	"strings"

	"chorus/internal/library"
)

// trackItem adapts a library track to the bubbles list item interface.
type trackItem struct {
	track library.Track
}

func (i trackItem) Title() string { return i.track.Title }

func (i trackItem) Description() string {
	parts := make([]string, 0, 2)
	if i.track.Artist != "" {
		parts = append(parts, i.track.Artist)
	}
	if len(i.track.Tags) > 0 {
		parts = append(parts, strings.Join(i.track.Tags, ", "))
	}
	return strings.Join(parts, " · ")
}

func (i trackItem) FilterValue() string {
	return i.track.Title + " " + i.track.Artist + " " + strings.Join(i.track.Tags, " ")
}
