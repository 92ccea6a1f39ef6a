package analytics

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"chorus/internal/logging"
)

func TestFileSink_Emit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analytics.jsonl")
	sink := NewFileSink(path, logging.Nop())

	sink.Emit("play", map[string]string{"track_id": "t1"})
	sink.Emit("pause", nil)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Expected analytics file to exist: %v", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("Line is not valid JSON: %v", err)
		}
		records = append(records, rec)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].Name != "play" {
		t.Errorf("Expected first event 'play', got %q", records[0].Name)
	}
	if records[0].Params["track_id"] != "t1" {
		t.Errorf("Expected track_id param, got %v", records[0].Params)
	}
	if records[0].ID == "" || records[1].ID == "" {
		t.Error("Every record should carry an event ID")
	}
	if records[0].ID == records[1].ID {
		t.Error("Event IDs should be unique")
	}
}

func TestFileSink_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "analytics.jsonl")
	sink := NewFileSink(path, logging.Nop())

	sink.Emit("seek", map[string]string{"fraction": "0.5"})

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file at %s: %v", path, err)
	}
}

func TestFileSink_UnwritablePathDoesNotPanic(t *testing.T) {
	// A directory path cannot be opened as a file; Emit must swallow it.
	dir := t.TempDir()
	sink := NewFileSink(dir, logging.Nop())

	sink.Emit("play", nil)
}

func TestMemorySink(t *testing.T) {
	sink := &MemorySink{}

	sink.Emit("expanded", map[string]string{"tags": "7"})
	sink.Emit("collapsed", nil)

	names := sink.Names()
	if len(names) != 2 || names[0] != "expanded" || names[1] != "collapsed" {
		t.Errorf("Unexpected event names: %v", names)
	}
	if sink.Events()[0].Params["tags"] != "7" {
		t.Errorf("Expected params to be preserved, got %v", sink.Events()[0].Params)
	}
}
