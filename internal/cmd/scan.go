package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"chorus/internal/config"
	"chorus/internal/library"
	"chorus/internal/logging"
)

var scanCmd = &cobra.Command{
	Use:   "scan [query]",
	Short: "Scan the library and list what was found",
	Long: `Scan the configured music directory and print the resulting catalog
without starting the player. Useful for checking how folder names map
to tags. An optional query narrows the listing to tracks whose title,
artist, or tags match it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	lib, err := library.Scan(cfg.Library.Dir, cfg.Library.Extensions, logging.Nop())
	if err != nil {
		return err
	}

	tracks := lib.Tracks()
	if len(args) > 0 {
		tracks = lib.Search(args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d tracks in %s\n", len(tracks), cfg.Library.Dir)
	for _, t := range tracks {
		line := t.Title
		if t.Artist != "" {
			line = t.Artist + " - " + line
		}
		if len(t.Tags) > 0 {
			line += "  [" + strings.Join(t.Tags, ", ") + "]"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}
