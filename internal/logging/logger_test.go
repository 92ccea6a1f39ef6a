package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelInfo)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("test message", "key", "value")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "chorus.log"))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("Log entry is not valid JSON: %v", err)
	}
	if entry["msg"] != "test message" {
		t.Errorf("Expected msg 'test message', got %v", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("Expected key 'value', got %v", entry["key"])
	}
}

func TestNew_CreatesStateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")

	logger, err := New(dir, LevelInfo)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("State directory should have been created: %v", err)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelWarn)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Close()

	data, _ := os.ReadFile(filepath.Join(dir, "chorus.log"))
	out := string(data)

	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Error("Messages below WARN should be filtered out")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("WARN messages should be logged")
	}
}

func TestLogger_WithComponent(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelInfo)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.WithComponent("playback").Info("bound")
	logger.Close()

	data, _ := os.ReadFile(filepath.Join(dir, "chorus.log"))
	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("Log entry is not valid JSON: %v", err)
	}
	if entry["component"] != "playback" {
		t.Errorf("Expected component 'playback', got %v", entry["component"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	logger := Nop()
	logger.Info("this should vanish")
	logger.WithTrack("t1").Error("so should this")
	if err := logger.Close(); err != nil {
		t.Errorf("Close on a nop logger should not error: %v", err)
	}
}
