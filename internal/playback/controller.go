package playback

import (
	"math"
	"strconv"

	"chorus/internal/analytics"
	"chorus/internal/event"
	"chorus/internal/logging"
	"chorus/internal/media"
)

// Controller mirrors one media resource's playback lifecycle into display
// state. It subscribes to the resource's events, derives a Snapshot, and
// exposes the user intents: toggle and seek.
//
// The controller is confined to the UI event loop. Resource events are
// delivered synchronously, so no locking is needed; it is not safe for
// concurrent use.
type Controller struct {
	res  media.Resource
	subs []string

	status   Status
	current  float64
	duration float64

	mediaType string
	mediaID   string

	coord *media.Coordinator
	props *media.PropertyStore
	sink  analytics.Sink
	log   *logging.Logger
}

// NewController creates an unbound Controller. Every operation is a no-op
// until Bind attaches a resource.
func NewController(coord *media.Coordinator, props *media.PropertyStore, sink analytics.Sink, log *logging.Logger) *Controller {
	if sink == nil {
		sink = analytics.NopSink{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Controller{
		coord: coord,
		props: props,
		sink:  sink,
		log:   log.WithComponent("playback"),
	}
}

// Bind swaps the controller onto a new resource as one atomic step: all
// listeners come off the previous resource before any attach to the new
// one, so no event from the old resource is processed after rebinding
// begins. Displayed time and duration are initialized from the new
// resource, and the status is reconciled from the resource's own flags —
// by the time the swap is observed the resource may already have fired
// several lifecycle events of its own, so the status cannot be assumed to
// start at a default.
//
// Bind(nil, ...) detaches and leaves the controller unbound.
func (c *Controller) Bind(res media.Resource, mediaType, mediaID string) {
	if c.res != nil {
		bus := c.res.Events()
		for _, id := range c.subs {
			bus.Unsubscribe(id)
		}
		c.subs = nil
	}

	c.res = res
	c.mediaType = mediaType
	c.mediaID = mediaID

	if res == nil {
		c.status = StatusPaused
		c.current = 0
		c.duration = 0
		return
	}

	bus := res.Events()
	c.subs = append(c.subs,
		bus.Subscribe(event.TypePlay, func(event.Event) { c.onPlay() }),
		bus.Subscribe(event.TypePause, func(event.Event) { c.status = StatusPaused }),
		bus.Subscribe(event.TypeEnded, func(event.Event) { c.status = StatusPlayed }),
		bus.Subscribe(event.TypeTimeUpdate, func(event.Event) { c.onTimeUpdate() }),
		bus.Subscribe(event.TypeDurationChange, func(event.Event) { c.syncDuration() }),
		bus.Subscribe(event.TypeWaiting, func(event.Event) { c.status = StatusLoading }),
		bus.Subscribe(event.TypePlaying, func(event.Event) { c.onPlaying() }),
	)

	c.current = res.CurrentTime()
	c.duration = 0
	c.syncDuration()

	switch {
	case res.Ended():
		c.status = StatusPlayed
	case res.Paused():
		c.status = StatusPaused
	default:
		c.status = StatusPlaying
	}

	c.log.Debug("resource bound",
		"media_type", mediaType, "media_id", mediaID, "status", c.status.String())
}

// onPlay handles the resource's play event: playback was requested. If the
// media is known to have loaded before, it shows as playing immediately;
// otherwise it passes through loading until the playing event arrives.
func (c *Controller) onPlay() {
	if c.props != nil && c.props.HasLoaded(c.mediaType, c.mediaID) {
		c.status = StatusPlaying
	} else {
		c.status = StatusLoading
	}
}

// onPlaying handles the resource actually producing audio. The loaded flag
// is persisted so future plays skip the loading state.
func (c *Controller) onPlaying() {
	c.status = StatusPlaying
	if c.props != nil {
		c.props.SetLoaded(c.mediaType, c.mediaID)
	}
}

// onTimeUpdate syncs the displayed time from the resource — but only while
// the sync loop does not own it. During active playback the per-frame Tick
// is the single writer of the displayed time; a timeupdate then carries a
// position that may already be stale. A timeupdate in the played state also
// downgrades to paused, clearing the replay affordance once the position
// moves again.
func (c *Controller) onTimeUpdate() {
	if c.status != StatusPlaying {
		c.current = c.res.CurrentTime()
	}
	if c.status == StatusPlayed {
		c.status = StatusPaused
	}
}

// syncDuration copies the resource duration into the snapshot, treating
// NaN as "not yet known" so it never overwrites the displayed value.
func (c *Controller) syncDuration() {
	if d := c.res.Duration(); !math.IsNaN(d) {
		c.duration = d
	}
}

// Syncing reports whether the time-sync loop should run: the displayed
// time follows the resource clock while playing or loading.
func (c *Controller) Syncing() bool {
	return c.status == StatusPlaying || c.status == StatusLoading
}

// Tick advances the time-sync loop by one display frame: it reads the
// resource clock into the snapshot and reports whether the loop should be
// re-armed. The guard is re-checked on every tick, so the loop terminates
// itself as soon as the status leaves playing/loading — no cancellation
// token needed.
func (c *Controller) Tick() bool {
	if c.res == nil || !c.Syncing() {
		return false
	}
	c.current = c.res.CurrentTime()
	return c.Syncing()
}

// Toggle flips playback: playing becomes paused, anything else becomes
// playing. No-op when unbound.
func (c *Controller) Toggle() {
	if c.status == StatusPlaying {
		c.ToggleTo(StatusPaused)
	} else {
		c.ToggleTo(StatusPlaying)
	}
}

// ToggleTo drives playback toward an explicit target state. Playing is
// delegated to the coordinator, since only one resource may be audible
// process-wide; pausing goes straight to the resource. Targets other than
// playing/paused are ignored and emit nothing.
func (c *Controller) ToggleTo(target Status) {
	if c.res == nil {
		return
	}

	switch target {
	case StatusPlaying:
		if c.coord != nil {
			c.coord.PlayAudio(c.res)
		} else {
			_ = c.res.Play()
		}
		c.sink.Emit("play", c.eventParams())
	case StatusPaused:
		c.res.Pause()
		c.sink.Emit("pause", c.eventParams())
	}
}

// Seek moves the playback position to the given fraction of the displayed
// duration. Fractions are clamped to [0, 1]. No-op when unbound.
func (c *Controller) Seek(fraction float64) {
	if c.res == nil || math.IsNaN(fraction) {
		return
	}
	fraction = math.Max(0, math.Min(fraction, 1))

	c.res.SetCurrentTime(fraction * c.duration)

	params := c.eventParams()
	params["fraction"] = strconv.FormatFloat(fraction, 'f', 3, 64)
	c.sink.Emit("seek", params)
}

// Snapshot returns the current derived display state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Status:      c.status,
		CurrentTime: c.current,
		Duration:    c.duration,
	}
}

// Bound reports whether a resource is currently attached.
func (c *Controller) Bound() bool { return c.res != nil }

// Resource returns the bound resource, or nil.
func (c *Controller) Resource() media.Resource { return c.res }

func (c *Controller) eventParams() map[string]string {
	return map[string]string{
		"media_type": c.mediaType,
		"media_id":   c.mediaID,
	}
}
