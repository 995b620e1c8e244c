package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/platform"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagRecord bool
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a two-player game in the terminal.

Controls:
  Up/Down    - Player 1 (right paddle), menu selection while paused
  W/S        - Player 2 (left paddle)
  Space      - Pause/resume
  Enter      - Activate the highlighted menu item
  R          - Restart
  K          - New ball angle
  Q/Esc      - Quit

Logs are written to --log-file, or discarded, so they do not
disturb the game screen.

Examples:
  pong play
  pong play --record
  pong play --seed 42 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the session for replay")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := mustLogger(io.Discard)
	settings := loadSettings(logger)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	session, err := platform.NewSession("tui", settings, flagSeed, flagRecord)
	if err != nil {
		fatal(logger, "cannot create game", err)
	}

	store := recordingStore(logger)
	sound := startSound(logger, settings)
	defer sound.Cleanup()

	runErr := tui.Run(tui.Options{
		Session:  session,
		Sound:    sound,
		Store:    store,
		Logger:   logger,
		Width:    width,
		Height:   height,
		TickRate: flagFPS,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal(logger, "cannot run game", runErr)
	}
}

// recordingStore opens the database only when the session is recorded.
func recordingStore(logger *log.Logger) *storage.Store {
	if !flagRecord {
		return nil
	}
	return openStore(logger, true)
}

// startSound initializes audio at the configured effects volume. Failures
// degrade to silent play.
func startSound(logger *log.Logger, settings config.Settings) *audio.SoundManager {
	volume := settings.Sound.EffectsVolume
	if flagMute {
		volume = 0
	}

	sound := audio.NewSoundManager(volume)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return audio.NewSoundManager(0)
	}
	return sound
}
