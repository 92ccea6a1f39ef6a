package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete chorus configuration
type Config struct {
	Library   LibraryConfig   `mapstructure:"library"`
	Tags      TagsConfig      `mapstructure:"tags"`
	Playback  PlaybackConfig  `mapstructure:"playback"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// LibraryConfig controls where tracks are discovered
type LibraryConfig struct {
	// Dir is the root directory scanned for playable media files
	Dir string `mapstructure:"dir"`
	// Extensions lists the file extensions treated as playable media
	Extensions []string `mapstructure:"extensions"`
}

// TagsConfig controls the collapsible tag row
type TagsConfig struct {
	// MaxRows is the number of tag rows shown while collapsed
	MaxRows int `mapstructure:"max_rows"`
	// DebounceMs is the quiet period after a width change before the tag
	// row is re-measured
	DebounceMs int `mapstructure:"debounce_ms"`
}

// PlaybackConfig controls the playback view
type PlaybackConfig struct {
	// TickRateMs is how often the time display is refreshed while playing,
	// the terminal stand-in for the display refresh cadence
	TickRateMs int `mapstructure:"tick_rate_ms"`
	// SeekStep is the fraction of the track duration a single seek key
	// press moves the position by
	SeekStep float64 `mapstructure:"seek_step"`
}

// AnalyticsConfig controls the best-effort usage event sink
type AnalyticsConfig struct {
	// Enabled turns event emission on or off
	Enabled bool `mapstructure:"enabled"`
	// Path is the JSONL file events are appended to; empty means
	// {state_dir}/analytics.jsonl
	Path string `mapstructure:"path"`
}

// LoggingConfig controls debug log output
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Dir is where the log file lives; empty means the state directory
	Dir string `mapstructure:"dir"`
}

// Default returns a Config populated with default values
func Default() *Config {
	return &Config{
		Library: LibraryConfig{
			Dir:        defaultLibraryDir(),
			Extensions: []string{".mp3", ".flac", ".ogg", ".wav", ".m4a"},
		},
		Tags: TagsConfig{
			MaxRows:    3,
			DebounceMs: 300,
		},
		Playback: PlaybackConfig{
			TickRateMs: 33,
			SeekStep:   0.05,
		},
		Analytics: AnalyticsConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Debounce returns the tag re-measure debounce as a duration
func (t *TagsConfig) Debounce() time.Duration {
	return time.Duration(t.DebounceMs) * time.Millisecond
}

// TickRate returns the playback refresh cadence as a duration
func (p *PlaybackConfig) TickRate() time.Duration {
	return time.Duration(p.TickRateMs) * time.Millisecond
}

// SetDefaults registers all defaults with viper so they apply even when no
// config file exists
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("library.dir", defaults.Library.Dir)
	viper.SetDefault("library.extensions", defaults.Library.Extensions)

	viper.SetDefault("tags.max_rows", defaults.Tags.MaxRows)
	viper.SetDefault("tags.debounce_ms", defaults.Tags.DebounceMs)

	viper.SetDefault("playback.tick_rate_ms", defaults.Playback.TickRateMs)
	viper.SetDefault("playback.seek_step", defaults.Playback.SeekStep)

	viper.SetDefault("analytics.enabled", defaults.Analytics.Enabled)
	viper.SetDefault("analytics.path", defaults.Analytics.Path)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load unmarshals the current viper state into a validated Config
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chorus")
	}
	// Fall back to ~/.config/chorus
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chorus"
	}
	return filepath.Join(home, ".config", "chorus")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the path where chorus keeps mutable state: logs, the
// persisted media properties, and the analytics file
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "chorus")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chorus"
	}
	return filepath.Join(home, ".local", "state", "chorus")
}

func defaultLibraryDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Music")
}
