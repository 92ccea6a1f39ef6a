// Package tui implements the terminal player: a library list, a
// now-playing pane driven by the playback controller, and the collapsible
// tag row.
package tui

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

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

// App wraps the Bubbletea program and owns the wiring between the playback
// controller, the tag engine, and the model.
type App struct {
	program *tea.Program
	model   Model
	engine  *tagrow.Engine
	log     *logging.Logger
}

// New assembles the application from config: analytics sink, coordinator,
// property store, controller, tag engine, and the root model.
func New(cfg *config.Config, lib *library.Library, loc *locale.Localizer, log *logging.Logger) *App {
	var sink analytics.Sink = analytics.NopSink{}
	if cfg.Analytics.Enabled {
		path := cfg.Analytics.Path
		if path == "" {
			path = filepath.Join(config.StateDir(), "analytics.jsonl")
		}
		sink = analytics.NewFileSink(path, log)
	}

	coord := media.NewCoordinator(loc, log)
	props := media.NewPropertyStore(filepath.Join(config.StateDir(), "media.json"), log)
	ctrl := playback.NewController(coord, props, sink, log)

	app := &App{log: log.WithComponent("app")}

	app.engine = tagrow.NewEngine(tagrow.CellInspector{Gap: 1, Pad: 1}, tagrow.Options{
		MaxRows:  cfg.Tags.MaxRows,
		Debounce: cfg.Tags.Debounce(),
		Sink:     sink,
		Logger:   log,
		// The debounce timer fires off the UI goroutine; route the layout
		// change back through the program's mailbox.
		OnLayout: func() {
			if app.program != nil {
				app.program.Send(tagLayoutMsg{})
			}
		},
	})

	app.model = NewModel(cfg, lib, ctrl, coord, app.engine, loc, log)
	return app
}

// Run starts the TUI and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(a.model, tea.WithAltScreen())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()

	signal.Stop(sigChan)
	a.engine.Stop()
	return err
}
