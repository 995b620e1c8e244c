package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Sound: SoundOptions{
			EffectsVolume: 0.5,
			MusicVolume:   0.5,
		},
		Graphics: GraphicsOptions{
			WindowSize: [2]float64{640, 360},
			Fullscreen: false,
			VSync:      true,
		},
		Game: GameOptions{
			Difficulty: DifficultyMedium,
			LossPolicy: string(pong.LossRestart),
		},
		Arena: ArenaOptions{
			Width:  600,
			Height: 400,
			Margin: 15,
		},
		Physics: PhysicsOptions{
			BallSpeed:    pong.DefaultBallSpeed,
			GrowthFactor: pong.DefaultGrowthFactor,
			MaxSpeed:     pong.DefaultMaxSpeed,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
