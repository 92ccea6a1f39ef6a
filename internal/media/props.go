package media

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"chorus/internal/logging"
)

// Properties holds the persisted per-media flags.
type Properties struct {
	// HasLoaded records that the media has produced audio at least once.
	// A later play request can then show "playing" immediately instead of
	// passing through a loading state.
	HasLoaded bool `json:"has_loaded"`
}

// PropertyStore persists Properties keyed by media type and id. Persistence
// is best effort: a store that cannot read or write its file still serves
// in-memory state and never fails a caller.
type PropertyStore struct {
	path string
	log  *logging.Logger

	mu    sync.Mutex
	props map[string]Properties
}

// NewPropertyStore creates a store backed by the given JSON file. A missing
// or unreadable file starts the store empty.
func NewPropertyStore(path string, log *logging.Logger) *PropertyStore {
	if log == nil {
		log = logging.Nop()
	}
	s := &PropertyStore{
		path:  path,
		log:   log.WithComponent("props"),
		props: make(map[string]Properties),
	}
	s.load()
	return s
}

// HasLoaded reports whether the media has been marked as loaded.
func (s *PropertyStore) HasLoaded(mediaType, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.props[propKey(mediaType, id)].HasLoaded
}

// SetLoaded marks the media as having loaded and persists the change.
func (s *PropertyStore) SetLoaded(mediaType, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := propKey(mediaType, id)
	p := s.props[key]
	if p.HasLoaded {
		return
	}
	p.HasLoaded = true
	s.props[key] = p
	s.save()
}

func propKey(mediaType, id string) string {
	return mediaType + ":" + id
}

// load reads the backing file. Errors leave the store empty.
func (s *PropertyStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Debug("property store read failed", "path", s.path, "error", err)
		}
		return
	}
	if err := json.Unmarshal(data, &s.props); err != nil {
		s.log.Warn("property store corrupt, starting empty", "path", s.path, "error", err)
		s.props = make(map[string]Properties)
	}
}

// save writes the backing file. Callers must hold s.mu.
func (s *PropertyStore) save() {
	data, err := json.MarshalIndent(s.props, "", "  ")
	if err != nil {
		s.log.Debug("property store marshal failed", "error", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		s.log.Debug("property store dir create failed", "error", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.log.Debug("property store write failed", "path", s.path, "error", err)
	}
}
