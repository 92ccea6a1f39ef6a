// Package library loads the browsable track catalog from a music
// directory. Tags are derived from the directory segments between the
// library root and the file, so a folder layout like jazz/live/take5.flac
// yields the tags jazz and live.
package library

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"chorus/internal/logging"
	"chorus/internal/tagrow"
)

// Track is one playable entry in the catalog.
type Track struct {
	ID       string
	Title    string
	Artist   string
	Path     string
	Type     string // media type for property keys, always "track" for files
	Duration time.Duration
	Tags     []string
}

// Library holds the scanned catalog.
type Library struct {
	root   string
	tracks []Track
	log    *logging.Logger
}

// DefaultExtensions lists the file extensions treated as audio during a
// scan.
var DefaultExtensions = []string{".mp3", ".flac", ".ogg", ".wav", ".m4a"}

// Scan walks root and builds the catalog from files matching the given
// extensions (DefaultExtensions when empty). A missing or empty root is not
// an error; it produces an empty catalog.
func Scan(root string, extensions []string, log *logging.Logger) (*Library, error) {
	if log == nil {
		log = logging.Nop()
	}
	log = log.WithComponent("library")

	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = struct{}{}
	}

	lib := &Library{root: root, log: log}
	if root == "" {
		return lib, nil
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		log.Warn("library directory does not exist", "dir", root)
		return lib, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := exts[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}
		lib.tracks = append(lib.tracks, trackFromPath(root, path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan library: %w", err)
	}

	sort.Slice(lib.tracks, func(i, j int) bool {
		return lib.tracks[i].Title < lib.tracks[j].Title
	})
	log.Info("library scanned", "dir", root, "tracks", len(lib.tracks))
	return lib, nil
}

// trackFromPath derives a Track from a file's location under the library
// root. The relative path doubles as the stable track ID.
func trackFromPath(root, path string) Track {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	segs := strings.Split(rel, "/")
	tags := tagrow.Normalize(segs[:len(segs)-1])

	base := segs[len(segs)-1]
	title := strings.TrimSuffix(base, filepath.Ext(base))

	// An "Artist - Title" file name splits into both fields.
	artist := ""
	if before, after, ok := strings.Cut(title, " - "); ok {
		artist, title = before, after
	}

	return Track{
		ID:     rel,
		Title:  title,
		Artist: artist,
		Path:   path,
		Type:   "track",
		Tags:   tags,
	}
}

// Tracks returns the catalog in title order.
func (l *Library) Tracks() []Track { return l.tracks }

// Len returns the number of tracks.
func (l *Library) Len() int { return len(l.tracks) }

// Search returns tracks whose title, artist, or any tag contains the query,
// case-insensitively. An empty query returns the whole catalog.
func (l *Library) Search(query string) []Track {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return l.tracks
	}

	var out []Track
	for _, t := range l.tracks {
		if matches(t, query) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t Track, query string) bool {
	if strings.Contains(strings.ToLower(t.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Artist), query) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
