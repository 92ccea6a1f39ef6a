package event

import "time"

// Media resource event types. These mirror the lifecycle a playable
// resource goes through: intent (play/pause), readiness (waiting/playing),
// progress (timeupdate/durationchange), and completion (ended).
const (
	TypePlay           = "media.play"
	TypePause          = "media.pause"
	TypeEnded          = "media.ended"
	TypeTimeUpdate     = "media.timeupdate"
	TypeDurationChange = "media.durationchange"
	TypeWaiting        = "media.waiting"
	TypePlaying        = "media.playing"
)

// Event is the interface all media events implement.
type Event interface {
	// EventType returns the string identifier for this event type.
	// Convention: "media.<action>" (e.g., "media.timeupdate").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// PlayEvent is emitted when playback of a resource has been requested.
// The resource may not be able to produce audio yet; PlayingEvent follows
// once it actually starts.
type PlayEvent struct {
	baseEvent
}

// NewPlayEvent creates a PlayEvent.
func NewPlayEvent() PlayEvent {
	return PlayEvent{baseEvent: newBaseEvent(TypePlay)}
}

// PauseEvent is emitted when a resource has been paused.
type PauseEvent struct {
	baseEvent
}

// NewPauseEvent creates a PauseEvent.
func NewPauseEvent() PauseEvent {
	return PauseEvent{baseEvent: newBaseEvent(TypePause)}
}

// EndedEvent is emitted when a resource reaches the end of its media.
type EndedEvent struct {
	baseEvent
}

// NewEndedEvent creates an EndedEvent.
func NewEndedEvent() EndedEvent {
	return EndedEvent{baseEvent: newBaseEvent(TypeEnded)}
}

// TimeUpdateEvent is emitted periodically while the playback position
// advances. Seconds carries the position at emission time; consumers that
// poll the resource clock themselves may ignore it as stale.
type TimeUpdateEvent struct {
	baseEvent
	Seconds float64
}

// NewTimeUpdateEvent creates a TimeUpdateEvent.
func NewTimeUpdateEvent(seconds float64) TimeUpdateEvent {
	return TimeUpdateEvent{baseEvent: newBaseEvent(TypeTimeUpdate), Seconds: seconds}
}

// DurationChangeEvent is emitted when a resource learns its duration,
// typically once metadata becomes available.
type DurationChangeEvent struct {
	baseEvent
	Seconds float64
}

// NewDurationChangeEvent creates a DurationChangeEvent.
func NewDurationChangeEvent(seconds float64) DurationChangeEvent {
	return DurationChangeEvent{baseEvent: newBaseEvent(TypeDurationChange), Seconds: seconds}
}

// WaitingEvent is emitted when a resource stalls waiting for data.
type WaitingEvent struct {
	baseEvent
}

// NewWaitingEvent creates a WaitingEvent.
func NewWaitingEvent() WaitingEvent {
	return WaitingEvent{baseEvent: newBaseEvent(TypeWaiting)}
}

// PlayingEvent is emitted when a resource has started producing audio.
type PlayingEvent struct {
	baseEvent
}

// NewPlayingEvent creates a PlayingEvent.
func NewPlayingEvent() PlayingEvent {
	return PlayingEvent{baseEvent: newBaseEvent(TypePlaying)}
}
