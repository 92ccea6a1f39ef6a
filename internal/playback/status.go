// Package playback owns the view-state for a single playing track: a
// finite-state machine mirroring the bound media resource's lifecycle and
// the displayed time/duration pair derived from it.
package playback

// Status represents the displayed playback state of the bound resource.
// Exactly one value holds at any time, and transitions happen only in
// response to resource events or rebinding.
type Status int

const (
	// StatusPaused indicates playback is stopped and can be resumed.
	// It is the initial state.
	StatusPaused Status = iota

	// StatusPlaying indicates the resource is producing audio.
	StatusPlaying

	// StatusLoading indicates playback was requested but the resource is
	// still buffering or loading data.
	StatusLoading

	// StatusPlayed indicates playback ran to the end of the media. The
	// track can be replayed from this state.
	StatusPlayed
)

// String returns a human-readable label for the status.
func (s Status) String() string {
	switch s {
	case StatusPaused:
		return "paused"
	case StatusPlaying:
		return "playing"
	case StatusLoading:
		return "loading"
	case StatusPlayed:
		return "played"
	default:
		return "unknown"
	}
}

// Snapshot is the derived display state, recomputed per event.
type Snapshot struct {
	Status      Status
	CurrentTime float64 // seconds
	Duration    float64 // seconds; 0 until a numeric value is observed
}
