// Package analytics provides best-effort usage event emission. Events are
// fire-and-forget: there is no response handling and no retry, and a sink
// that cannot record an event drops it rather than disturb playback.
package analytics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"chorus/internal/logging"
)

// Sink receives named events with a flat parameter mapping.
type Sink interface {
	Emit(name string, params map[string]string)
}

// Record is the shape of a single persisted analytics event.
type Record struct {
	ID     string            `json:"id"`
	Time   time.Time         `json:"time"`
	Name   string            `json:"name"`
	Params map[string]string `json:"params,omitempty"`
}

// FileSink appends events as JSON lines to a single file.
type FileSink struct {
	path string
	log  *logging.Logger

	mu sync.Mutex
}

// NewFileSink creates a FileSink writing to the given path. The parent
// directory is created on first emit, not here, so constructing a sink can
// never fail.
func NewFileSink(path string, log *logging.Logger) *FileSink {
	if log == nil {
		log = logging.Nop()
	}
	return &FileSink{path: path, log: log}
}

// Emit appends one event record. Failures are logged at debug level and
// otherwise ignored.
func (s *FileSink) Emit(name string, params map[string]string) {
	rec := Record{
		ID:     uuid.NewString(),
		Time:   time.Now().UTC(),
		Name:   name,
		Params: params,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		s.log.Debug("analytics marshal failed", "event", name, "error", err)
		return
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		s.log.Debug("analytics dir create failed", "error", err)
		return
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		s.log.Debug("analytics open failed", "error", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		s.log.Debug("analytics write failed", "event", name, "error", err)
	}
}

// NopSink discards all events. Used when analytics is disabled and in tests.
type NopSink struct{}

// Emit discards the event.
func (NopSink) Emit(name string, params map[string]string) {}

// MemorySink records events in memory so tests can assert on emissions.
type MemorySink struct {
	mu     sync.Mutex
	events []Record
}

// Emit records the event.
func (s *MemorySink) Emit(name string, params map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Record{
		ID:     uuid.NewString(),
		Time:   time.Now().UTC(),
		Name:   name,
		Params: params,
	})
}

// Events returns a copy of everything emitted so far.
func (s *MemorySink) Events() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.events))
	copy(out, s.events)
	return out
}

// Names returns just the event names, in emission order.
func (s *MemorySink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.events))
	for i, e := range s.events {
		names[i] = e.Name
	}
	return names
}
