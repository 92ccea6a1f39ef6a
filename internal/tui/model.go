package tui

import (
	"hash/fnv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"chorus/internal/config"
	"chorus/internal/library"
	"chorus/internal/locale"
	"chorus/internal/logging"
	"chorus/internal/media"
	"chorus/internal/playback"
	"chorus/internal/tagrow"
	"chorus/internal/tui/keymap"
	"chorus/internal/tui/styles"
)

// Layout constants
const (
	nowPlayingHeight = 6 // bordered pane plus tag row baseline
	horizontalMargin = 2
)

// Model is the root bubbletea model: a library list on top and a
// now-playing pane with the tag row underneath.
type Model struct {
	cfg *config.Config
	loc *locale.Localizer
	log *logging.Logger

	lib  *library.Library
	list list.Model
	help help.Model
	keys keymap.KeyMap

	ctrl   *playback.Controller
	coord  *media.Coordinator
	engine *tagrow.Engine

	// resources caches one clock per track so rebinding back to a track
	// resumes from where it left off.
	resources map[string]*media.ClockResource
	current   *library.Track

	tagFocus int
	showHelp bool
	ticking  bool

	width  int
	height int
	err    error
}

// NewModel assembles the root model from its collaborators.
func NewModel(cfg *config.Config, lib *library.Library, ctrl *playback.Controller, coord *media.Coordinator, engine *tagrow.Engine, loc *locale.Localizer, log *logging.Logger) Model {
	items := make([]list.Item, 0, lib.Len())
	for _, t := range lib.Tracks() {
		items = append(items, trackItem{track: t})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(styles.PrimaryColor).
		BorderLeftForeground(styles.PrimaryColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(styles.MutedColor).
		BorderLeftForeground(styles.PrimaryColor)

	l := list.New(items, delegate, 0, 0)
	l.Title = loc.T("library_title", nil)
	l.Styles.Title = styles.Title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	return Model{
		cfg:       cfg,
		loc:       loc,
		log:       log.WithComponent("tui"),
		lib:       lib,
		list:      l,
		help:      help.New(),
		keys:      keymap.Default(),
		ctrl:      ctrl,
		coord:     coord,
		engine:    engine,
		resources: make(map[string]*media.ClockResource),
		tagFocus:  -1,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-horizontalMargin, msg.Height-nowPlayingHeight-tagRowHeight(m.engine))
		m.engine.ObserveWidth(float64(msg.Width - horizontalMargin))
		return m, nil

	case tickMsg:
		if m.ctrl.Tick() {
			return m, m.tickCmd()
		}
		m.ticking = false
		return m, nil

	case tagLayoutMsg:
		m.clampTagFocus()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter input is active it owns every key.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.engine.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m.playSelected()

	case key.Matches(msg, m.keys.TogglePlay):
		m.ctrl.Toggle()
		return m.ensureTicking()

	case key.Matches(msg, m.keys.SeekFwd):
		return m.seekBy(m.cfg.Playback.SeekStep), nil

	case key.Matches(msg, m.keys.SeekBack):
		return m.seekBy(-m.cfg.Playback.SeekStep), nil

	case key.Matches(msg, m.keys.ToggleTags):
		focus, _ := m.engine.Toggle()
		if focus >= 0 {
			m.tagFocus = focus
		} else {
			m.clampTagFocus()
		}
		return m, nil

	case key.Matches(msg, m.keys.TagPrev):
		m.moveTagFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.TagNext):
		m.moveTagFocus(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// playSelected binds the controller to the selected track's resource and
// starts playback.
func (m Model) playSelected() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(trackItem)
	if !ok {
		return m, nil
	}
	track := item.track

	res := m.resourceFor(track)
	m.ctrl.Bind(res, track.Type, track.ID)
	m.current = &track

	m.engine.SetTags(track.Tags)
	m.tagFocus = -1
	if len(track.Tags) > 0 {
		m.tagFocus = 0
	}

	m.ctrl.ToggleTo(playback.StatusPlaying)
	m.log.Info("track selected", "track", track.ID)
	return m.ensureTicking()
}

// resourceFor returns the cached clock for a track, creating it on first
// play.
func (m Model) resourceFor(track library.Track) *media.ClockResource {
	if res, ok := m.resources[track.ID]; ok {
		return res
	}
	res := media.NewClockResource(trackDuration(track))
	m.resources[track.ID] = res
	return res
}

// trackDuration picks a playback length: the scanned duration when known,
// otherwise a stable pseudo-length derived from the track ID.
func trackDuration(track library.Track) float64 {
	if track.Duration > 0 {
		return track.Duration.Seconds()
	}
	h := fnv.New32a()
	h.Write([]byte(track.ID))
	return float64(120 + h.Sum32()%180)
}

// seekBy nudges the playback position by a signed fraction of the duration.
func (m Model) seekBy(step float64) Model {
	snap := m.ctrl.Snapshot()
	if snap.Duration <= 0 {
		return m
	}
	m.ctrl.Seek(snap.CurrentTime/snap.Duration + step)
	return m
}

// ensureTicking arms the time-sync tick when playback needs it and it is
// not already running. The tick re-arms itself until the controller reports
// syncing is over.
func (m Model) ensureTicking() (tea.Model, tea.Cmd) {
	if m.ticking || !m.ctrl.Syncing() {
		return m, nil
	}
	m.ticking = true
	return m, m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.Playback.TickRate(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) moveTagFocus(delta int) {
	visible := len(m.engine.VisibleTags())
	if visible == 0 {
		m.tagFocus = -1
		return
	}
	if m.tagFocus < 0 {
		m.tagFocus = 0
		return
	}
	m.tagFocus += delta
	if m.tagFocus < 0 {
		m.tagFocus = 0
	}
	if m.tagFocus >= visible {
		m.tagFocus = visible - 1
	}
}

// clampTagFocus keeps the focus inside the visible range after a layout
// change hides tags.
func (m *Model) clampTagFocus() {
	visible := len(m.engine.VisibleTags())
	if visible == 0 {
		m.tagFocus = -1
		return
	}
	if m.tagFocus >= visible {
		m.tagFocus = visible - 1
	}
}
