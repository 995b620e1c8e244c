package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform"
	"github.com/vovakirdan/tui-pong/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a two-player game in a desktop window.

The window size, fullscreen and vsync come from the graphics section of the
settings file. Controls are the same as for 'pong play'; held paddle keys
repeat.

Examples:
  pong window
  pong window --record --config ./settings.toml`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the session for replay")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := mustLogger(os.Stderr)
	settings := loadSettings(logger)

	session, err := platform.NewSession("window", settings, flagSeed, flagRecord)
	if err != nil {
		fatal(logger, "cannot create game", err)
	}

	store := recordingStore(logger)
	sound := startSound(logger, settings)
	defer sound.Cleanup()

	logger.Info("opening window",
		"size", settings.Graphics.WindowSize,
		"fullscreen", settings.Graphics.Fullscreen,
		"seed", session.Seed,
	)

	runErr := window.Run(window.Options{
		Session:  session,
		Sound:    sound,
		Store:    store,
		Logger:   logger,
		TickRate: flagFPS,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal(logger, "cannot run game", runErr)
	}
}
