package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"chorus/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "config file:      %s\n", config.ConfigFile())
	fmt.Fprintf(out, "state dir:        %s\n", config.StateDir())
	fmt.Fprintf(out, "library.dir:      %s\n", cfg.Library.Dir)
	fmt.Fprintf(out, "library.ext:      %v\n", cfg.Library.Extensions)
	fmt.Fprintf(out, "tags.max_rows:    %d\n", cfg.Tags.MaxRows)
	fmt.Fprintf(out, "tags.debounce:    %s\n", cfg.Tags.Debounce())
	fmt.Fprintf(out, "playback.tick:    %s\n", cfg.Playback.TickRate())
	fmt.Fprintf(out, "playback.seek:    %.2f\n", cfg.Playback.SeekStep)
	fmt.Fprintf(out, "analytics:        %v\n", cfg.Analytics.Enabled)
	fmt.Fprintf(out, "logging.level:    %s\n", cfg.Logging.Level)
	return nil
}
