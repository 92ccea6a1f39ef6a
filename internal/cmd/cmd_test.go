package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func setupLibrary(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	full := filepath.Join(root, "jazz", "Miles Davis - So What.mp3")
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestScanCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	initConfig()
	viper.Set("library.dir", setupLibrary(t))

	out, err := executeCommand(rootCmd, "scan")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "1 tracks") {
		t.Errorf("Expected track count in output, got %q", out)
	}
	if !strings.Contains(out, "Miles Davis - So What") {
		t.Errorf("Expected track line in output, got %q", out)
	}
	if !strings.Contains(out, "[jazz]") {
		t.Errorf("Expected tags in output, got %q", out)
	}
}

func TestScanCommandQuery(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	initConfig()

	root := setupLibrary(t)
	full := filepath.Join(root, "rock", "Queen - Tie Your Mother Down.mp3")
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	viper.Set("library.dir", root)

	out, err := executeCommand(rootCmd, "scan", "jazz")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "1 tracks") {
		t.Errorf("Expected the query to narrow to 1 track, got %q", out)
	}
	if !strings.Contains(out, "So What") {
		t.Errorf("Expected the jazz track in output, got %q", out)
	}
	if strings.Contains(out, "Queen") {
		t.Errorf("Expected the rock track filtered out, got %q", out)
	}
}

func TestConfigCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	initConfig()

	out, err := executeCommand(rootCmd, "config")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "tags.max_rows:    3") {
		t.Errorf("Expected default max rows in output, got %q", out)
	}
	if !strings.Contains(out, "tags.debounce:    300ms") {
		t.Errorf("Expected default debounce in output, got %q", out)
	}
}
