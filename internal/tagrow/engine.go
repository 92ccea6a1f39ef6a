package tagrow

import (
	"strconv"
	"sync"
	"time"

	"chorus/internal/analytics"
	"chorus/internal/logging"
)

const (
	// DefaultMaxRows caps how many tag rows show while collapsed.
	DefaultMaxRows = 3

	// DefaultDebounce is the quiet period after a width change before the
	// row layout is recomputed.
	DefaultDebounce = 300 * time.Millisecond
)

// Options configures an Engine. Zero values fall back to the defaults.
type Options struct {
	MaxRows  int
	Debounce time.Duration
	Sink     analytics.Sink
	Logger   *logging.Logger

	// OnLayout is called after a debounced re-measure changes the layout,
	// from the timer goroutine. The TUI uses it to request a repaint.
	OnLayout func()
}

// Engine tracks which tags are visible for one track: the normalized tag
// list, the measured row break, and the expanded flag. Width samples arrive
// from the renderer; recomputation is debounced so continuous resizes do
// not thrash the layout.
//
// The debounce timer fires off the UI goroutine, so all state is
// mutex-guarded.
type Engine struct {
	mu sync.Mutex

	tags     []string
	rowBreak int // first index of the row past the cap; -1 until measured
	expanded bool
	width    float64 // last observed container width; -1 before first sample

	inspector Inspector
	maxRows   int
	debounce  time.Duration
	timer     *time.Timer

	sink     analytics.Sink
	log      *logging.Logger
	onLayout func()
}

// NewEngine creates an Engine over the given inspector. Tags are supplied
// via SetTags; nothing is measured until the first width sample arrives.
func NewEngine(inspector Inspector, opts Options) *Engine {
	if opts.MaxRows <= 0 {
		opts.MaxRows = DefaultMaxRows
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Sink == nil {
		opts.Sink = analytics.NopSink{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	return &Engine{
		rowBreak:  -1,
		width:     -1,
		inspector: inspector,
		maxRows:   opts.MaxRows,
		debounce:  opts.Debounce,
		sink:      opts.Sink,
		log:       opts.Logger.WithComponent("tagrow"),
		onLayout:  opts.OnLayout,
	}
}

// SetTags replaces the tag list, deduplicating by exact match. The row
// break resets to unmeasured and the row collapses; if a width is already
// known the new list is measured right away.
func (e *Engine) SetTags(tags []string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cancelPendingLocked()
	e.tags = Normalize(tags)
	e.rowBreak = -1
	e.expanded = false
	if e.width >= 0 {
		e.measureLocked()
	}
}

// ObserveWidth feeds a container width sample from the renderer. The first
// sample measures immediately (the mount pass); later changes debounce the
// re-measure by the configured quiet period. Widening additionally reveals
// all tags up front, so the stale narrower break is never visible while the
// debounce runs; narrowing keeps the current break until the re-measure.
func (e *Engine) ObserveWidth(w float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if w == e.width {
		return
	}
	first := e.width < 0
	widened := !first && w > e.width
	e.width = w

	if first {
		e.measureLocked()
		return
	}
	if widened {
		e.rowBreak = len(e.tags)
	}

	e.cancelPendingLocked()
	e.timer = time.AfterFunc(e.debounce, func() {
		e.mu.Lock()
		e.measureLocked()
		e.mu.Unlock()
		if e.onLayout != nil {
			e.onLayout()
		}
	})
}

// Remeasure recomputes the row break from the current width immediately,
// bypassing the debounce. The TUI calls it after a render pass that changed
// the flowed content.
func (e *Engine) Remeasure() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelPendingLocked()
	if e.width >= 0 {
		e.measureLocked()
	}
}

// Toggle flips the expanded state and returns the index that should receive
// input focus, or -1 when no focus move is needed. Expanding focuses the
// first newly revealed tag so it is reachable without traversing the whole
// row again.
func (e *Engine) Toggle() (focus int, expanded bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.expanded = !e.expanded

	name := "collapsed"
	if e.expanded {
		name = "expanded"
	}
	e.sink.Emit(name, map[string]string{
		"tag_count": strconv.Itoa(len(e.tags)),
	})

	focus = -1
	if e.expanded && e.rowBreak >= 0 && e.rowBreak < len(e.tags) {
		focus = e.rowBreak
	}
	return focus, e.expanded
}

// VisibleTags returns the tags to render: everything when expanded or when
// no overflow exists, otherwise the leading tags up to the row break.
func (e *Engine) VisibleTags() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.expanded || !e.hasOverflowLocked() {
		return e.tags
	}
	return e.tags[:e.rowBreak]
}

// HasOverflow reports whether tags are hidden while collapsed. It is false
// before the first measurement.
func (e *Engine) HasOverflow() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hasOverflowLocked()
}

// Expanded reports whether the row is expanded.
func (e *Engine) Expanded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.expanded
}

// Tags returns the full normalized tag list.
func (e *Engine) Tags() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tags
}

// HiddenCount returns how many tags the collapsed row is hiding.
func (e *Engine) HiddenCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.expanded || !e.hasOverflowLocked() {
		return 0
	}
	return len(e.tags) - e.rowBreak
}

// Stop cancels any pending debounced re-measure.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelPendingLocked()
}

// cancelPendingLocked stops the scheduled re-measure, if any. Callers hold
// e.mu; a timer callback that already fired blocks on the mutex and then
// measures anyway, which is harmless because it recomputes from the
// current width.
func (e *Engine) cancelPendingLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine) hasOverflowLocked() bool {
	return e.rowBreak >= 0 && e.rowBreak < len(e.tags)
}

func (e *Engine) measureLocked() {
	offsets := e.inspector.Offsets(e.tags, e.width)
	e.rowBreak = RowStartIndex(offsets, e.inspector.RTL(), e.maxRows)
	e.log.Debug("tag row measured",
		"width", e.width, "tags", len(e.tags), "row_break", e.rowBreak)
}
