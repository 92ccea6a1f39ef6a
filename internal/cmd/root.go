// Package cmd wires the CLI: cobra commands, viper configuration, and the
// handoff into the TUI player.
package cmd

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"chorus/internal/config"
	"chorus/internal/library"
	"chorus/internal/locale"
	"chorus/internal/logging"
	"chorus/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "chorus",
	Short: "Terminal music browser and player",
	Long: `Chorus scans a music directory into a browsable, taggable library
and plays tracks from a terminal UI. Tags come from the folder layout,
so organizing music into directories is all the curation needed.`,
	RunE: runPlayer,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/chorus/config.yaml)")
	rootCmd.PersistentFlags().StringP("library", "L", "", "music directory to scan")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("library.dir", rootCmd.PersistentFlags().Lookup("library"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/chorus")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CHORUS")
	// CHORUS_LIBRARY_DIR overrides library.dir and so on for nested keys
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runPlayer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logging.New(config.StateDir(), cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer log.Close()

	// Changes land on the next restart; the watch just surfaces them in
	// the log so a stale session is explainable.
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Info("config file changed", "file", e.Name)
	})
	viper.WatchConfig()

	lib, err := library.Scan(cfg.Library.Dir, cfg.Library.Extensions, log)
	if err != nil {
		return err
	}

	loc := locale.New()
	if lib.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), loc.T("library_empty", map[string]any{"Dir": cfg.Library.Dir}))
	}

	return tui.New(cfg, lib, loc, log).Run()
}
