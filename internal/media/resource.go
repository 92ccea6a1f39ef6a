package media

import (
	"math"
	"time"

	"chorus/internal/event"
)

// Resource is an externally owned playable media object. A controller holds
// a back reference to one: it subscribes to the resource's event bus and
// reads its clock, but never owns its lifecycle.
//
// Duration returns NaN until the resource knows its length, mirroring a
// media element before metadata arrives.
type Resource interface {
	Play() error
	Pause()
	CurrentTime() float64
	SetCurrentTime(seconds float64)
	Duration() float64
	Paused() bool
	Ended() bool
	Events() *event.Bus
}

// ClockResource is a Resource whose playback position advances with the
// wall clock. It lets the UI run without a real audio backend while still
// exercising the full event lifecycle: play, durationchange, playing,
// timeupdate, pause, ended.
//
// ClockResource is confined to the UI event loop and is not safe for
// concurrent use.
type ClockResource struct {
	bus      *event.Bus
	duration float64

	playing   bool
	ended     bool
	offset    float64 // accumulated position while not playing
	startedAt time.Time

	metadataKnown bool

	now func() time.Time // test seam
}

// NewClockResource creates a stopped ClockResource of the given length.
func NewClockResource(durationSeconds float64) *ClockResource {
	return &ClockResource{
		bus:      event.NewBus(),
		duration: durationSeconds,
		now:      time.Now,
	}
}

// Play starts the clock. Playing from the ended position restarts from zero.
// The first Play also surfaces metadata: durationchange fires before the
// playing event, like a media element loading its source on demand.
func (r *ClockResource) Play() error {
	if r.playing {
		return nil
	}
	if r.ended {
		r.offset = 0
		r.ended = false
	}
	r.playing = true
	r.startedAt = r.now()
	r.bus.Publish(event.NewPlayEvent())

	if !r.metadataKnown {
		r.metadataKnown = true
		r.bus.Publish(event.NewDurationChangeEvent(r.duration))
	}
	r.bus.Publish(event.NewPlayingEvent())
	return nil
}

// Pause freezes the clock at the current position.
func (r *ClockResource) Pause() {
	if !r.playing {
		return
	}
	r.offset = r.position()
	r.playing = false
	r.bus.Publish(event.NewPauseEvent())
	r.bus.Publish(event.NewTimeUpdateEvent(r.offset))
}

// CurrentTime returns the playback position in seconds. Reaching the end of
// the media is detected here: the position clamps to the duration and the
// ended event fires once.
func (r *ClockResource) CurrentTime() float64 {
	if !r.playing {
		return r.offset
	}
	pos := r.position()
	if pos >= r.duration {
		r.offset = r.duration
		r.playing = false
		r.ended = true
		r.bus.Publish(event.NewTimeUpdateEvent(r.offset))
		r.bus.Publish(event.NewEndedEvent())
		return r.offset
	}
	return pos
}

// SetCurrentTime seeks to the given position, clamped to [0, duration].
// Seeking away from the end clears the ended flag.
func (r *ClockResource) SetCurrentTime(seconds float64) {
	if math.IsNaN(seconds) {
		return
	}
	seconds = math.Max(0, math.Min(seconds, r.duration))
	r.offset = seconds
	if r.playing {
		r.startedAt = r.now()
	}
	if r.ended && seconds < r.duration {
		r.ended = false
	}
	r.bus.Publish(event.NewTimeUpdateEvent(seconds))
}

// Duration returns the media length, or NaN before metadata is known.
func (r *ClockResource) Duration() float64 {
	if !r.metadataKnown {
		return math.NaN()
	}
	return r.duration
}

// Paused reports whether the clock is stopped. Like a media element, an
// ended resource is also paused.
func (r *ClockResource) Paused() bool { return !r.playing }

// Ended reports whether playback ran to completion.
func (r *ClockResource) Ended() bool { return r.ended }

// Events returns the resource's event bus.
func (r *ClockResource) Events() *event.Bus { return r.bus }

// position computes the live playback position while playing.
func (r *ClockResource) position() float64 {
	return r.offset + r.now().Sub(r.startedAt).Seconds()
}
