package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"chorus/internal/analytics"
	"chorus/internal/config"
	"chorus/internal/library"
	"chorus/internal/locale"
	"chorus/internal/logging"
	"chorus/internal/media"
	"chorus/internal/playback"
	"chorus/internal/tagrow"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	root := t.TempDir()
	for _, p := range []string{"jazz/live/one.mp3", "rock/two.mp3"} {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	lib, err := library.Scan(root, nil, logging.Nop())
	if err != nil {
		t.Fatal(err)
	}

	loc := locale.New()
	coord := media.NewCoordinator(loc, logging.Nop())
	props := media.NewPropertyStore(filepath.Join(t.TempDir(), "p.json"), logging.Nop())
	ctrl := playback.NewController(coord, props, analytics.NopSink{}, logging.Nop())
	engine := tagrow.NewEngine(tagrow.CellInspector{Gap: 1, Pad: 1}, tagrow.Options{
		Debounce: time.Hour,
		Sink:     analytics.NopSink{},
	})
	t.Cleanup(engine.Stop)

	return NewModel(config.Default(), lib, ctrl, coord, engine, loc, logging.Nop())
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModel_SelectBindsAndPlays(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.ctrl.Bound() {
		t.Fatal("Selecting a track should bind the controller")
	}
	if got := m.ctrl.Snapshot().Status; got != playback.StatusPlaying {
		t.Errorf("Expected playing after select, got %s", got)
	}
	if cmd == nil {
		t.Error("Selecting should arm the tick loop")
	}
	if len(m.engine.Tags()) == 0 {
		t.Error("Selecting should load the track's tags into the engine")
	}
}

func TestModel_TickRearmsOnlyWhileSyncing(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(m, tickMsg(time.Now()))
	if cmd == nil {
		t.Error("Tick should re-arm while playing")
	}

	// Pause, then the next tick should let the loop die.
	m.ctrl.Toggle()
	m, cmd = update(m, tickMsg(time.Now()))
	if cmd != nil {
		t.Error("Tick should not re-arm once paused")
	}
	if m.ticking {
		t.Error("Ticking flag should clear when the loop stops")
	}
}

func TestModel_ToggleAfterPauseRestartsTick(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(m, tickMsg(time.Now()))

	// space pauses; the running loop dies on its next tick.
	m, _ = update(m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(m, tickMsg(time.Now()))

	// space again resumes and must arm a fresh tick.
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeySpace})
	if got := m.ctrl.Snapshot().Status; got != playback.StatusPlaying {
		t.Fatalf("Expected playing after resume, got %s", got)
	}
	if cmd == nil {
		t.Error("Resuming should re-arm the tick loop")
	}
}

func TestModel_WindowSizeFeedsTagEngine(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter}) // bind with tags
	m, _ = update(m, tea.WindowSizeMsg{Width: 30, Height: 24})

	// The engine measured: visible tags are defined (possibly all).
	if got := m.engine.VisibleTags(); len(got) == 0 {
		t.Errorf("Expected visible tags after a width sample, got %v", got)
	}
}

func TestModel_TagFocusStaysInRange(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	for i := 0; i < 10; i++ {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	}
	if max := len(m.engine.VisibleTags()) - 1; m.tagFocus != max {
		t.Errorf("Focus should clamp at %d, got %d", max, m.tagFocus)
	}

	for i := 0; i < 10; i++ {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
	}
	if m.tagFocus != 0 {
		t.Errorf("Focus should clamp at 0, got %d", m.tagFocus)
	}
}

func TestModel_ViewRendersNowPlaying(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	if out := m.View(); out == "" {
		t.Fatal("View should render")
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	out := m.View()
	if out == "" {
		t.Fatal("View should render while playing")
	}
}
