package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings a game would start with, after the search path:
--config, ~/.pong/settings.*, ./settings.*, then the built-in defaults.

The output can be saved as a settings file.

Examples:
  pong config
  pong config --format toml > ~/.pong/settings.toml
  pong config --format json`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml, toml or json")
}

func runConfig(_ *cobra.Command, _ []string) {
	logger := mustLogger(os.Stderr)

	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		fatal(logger, "invalid --format", err)
	}

	settings, source, err := config.Load(flagConfig)
	if err != nil {
		fatal(logger, "cannot load settings", err)
	}
	logger.Info("settings loaded", "source", source)

	data, err := config.Marshal(settings, format)
	if err != nil {
		fatal(logger, "cannot encode settings", err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fatal(logger, "cannot write settings", err)
	}
}
