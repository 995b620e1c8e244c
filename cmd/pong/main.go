// pong is a two-player Pong for the terminal, a desktop window and SSH.
//
// Usage:
//
//	pong play                - Play in the terminal
//	pong window              - Play in a desktop window
//	pong serve               - Start SSH server for remote play
//	pong replay <id>         - Replay a stored recording headlessly
//	pong recordings          - List or browse stored recordings
//	pong config              - Print the effective settings
//
// Global flags:
//
//	--config <path>   - Settings file (yaml, toml or json)
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.pong/recordings.db)
//	--log-level <l>   - debug, info, warn or error
//	--log-file <path> - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// logsOnStderr is set when the process logger writes to stderr.
var logsOnStderr bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two players, one ball",
	Long: `Pong is the classic two-player game. Player 1 defends the right side
with the arrow keys, player 2 the left side with W and S.

Available commands:
  play        - Play in the terminal
  window      - Play in a desktop window
  serve       - Start SSH server for remote play
  replay      - Replay a stored recording
  recordings  - List stored recordings
  config      - Print the effective settings

Examples:
  pong play
  pong play --record --seed 42
  pong window --config ./settings.toml
  pong serve --ssh :2222
  pong recordings`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file (yaml, toml or json)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/recordings.db", "Path to recordings database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(recordingsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Output goes to --log-file when set,
// otherwise to fallback.
func newLogger(fallback io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
	}
	logsOnStderr = w == io.Writer(os.Stderr)

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           level,
	}), nil
}

// mustLogger is newLogger for command entry points.
func mustLogger(fallback io.Writer) *log.Logger {
	logger, err := newLogger(fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger
}

// fatal logs err and exits with status 1.
func fatal(logger *log.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	if !logsOnStderr {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	}
	os.Exit(1)
}

// loadSettings reads settings along the search path.
func loadSettings(logger *log.Logger) config.Settings {
	settings, source, err := config.Load(flagConfig)
	if err != nil {
		fatal(logger, "cannot load settings", err)
	}
	logger.Debug("settings loaded", "source", source)
	return settings
}

// openStore opens the recordings database. Without required, a failure only
// warns and returns nil.
func openStore(logger *log.Logger, required bool) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		if required {
			fatal(logger, "cannot open recordings database", err)
		}
		logger.Warn("could not open recordings database", "error", err)
		return nil
	}
	return store
}
