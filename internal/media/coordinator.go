package media

import (
	"sync"

	"chorus/internal/locale"
	"chorus/internal/logging"
)

// Coordinator designates at most one resource as the active, audible one.
// All play requests funnel through it so that starting a track always
// pauses whichever track was playing before.
type Coordinator struct {
	mu        sync.Mutex
	active    Resource
	statusMsg string

	loc *locale.Localizer
	log *logging.Logger
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(loc *locale.Localizer, log *logging.Logger) *Coordinator {
	if log == nil {
		log = logging.Nop()
	}
	return &Coordinator{loc: loc, log: log.WithComponent("coordinator")}
}

// PlayAudio makes the given resource the active one and starts it. The
// previously active resource, if different, is paused first so only one
// resource plays at a time process-wide. A play failure does not dethrone
// the resource; it is recorded as a status message for the UI to display.
func (c *Coordinator) PlayAudio(r Resource) {
	if r == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil && c.active != r {
		c.active.Pause()
	}
	c.active = r
	c.statusMsg = ""

	if err := r.Play(); err != nil {
		c.log.Warn("play request rejected", "error", err)
		if c.loc != nil {
			c.statusMsg = c.loc.T("playback_blocked", map[string]any{"Reason": err.Error()})
		} else {
			c.statusMsg = err.Error()
		}
	}
}

// Active returns the currently designated resource, or nil.
func (c *Coordinator) Active() Resource {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// StatusMessage returns the display text for the most recent playback
// problem, or an empty string when the last play request succeeded.
func (c *Coordinator) StatusMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusMsg
}
