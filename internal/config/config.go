// Package config provides settings loading for the game: window, sound and
// difficulty options plus arena and physics tuning, read from YAML, TOML or
// the classic settings.json layout.
package config

import (
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Settings contains everything a frontend needs to build and present a game.
type Settings struct {
	Sound    SoundOptions    `yaml:"sound" toml:"sound" json:"sound_options"`
	Graphics GraphicsOptions `yaml:"graphics" toml:"graphics" json:"graphics_options"`
	Game     GameOptions     `yaml:"game" toml:"game" json:"game_options"`
	Arena    ArenaOptions    `yaml:"arena" toml:"arena" json:"arena"`
	Physics  PhysicsOptions  `yaml:"physics" toml:"physics" json:"physics"`
}

// SoundOptions defines playback volumes in [0, 1].
type SoundOptions struct {
	EffectsVolume float64 `yaml:"effects_volume" toml:"effects_volume" json:"effects_volume"`
	MusicVolume   float64 `yaml:"music_volume" toml:"music_volume" json:"music_volume"`
}

// GraphicsOptions defines the window used by the desktop frontend.
type GraphicsOptions struct {
	WindowSize [2]float64 `yaml:"window_size" toml:"window_size" json:"window_size"` // Width, height
	Fullscreen bool       `yaml:"fullscreen" toml:"fullscreen" json:"fullscreen"`
	VSync      bool       `yaml:"vsync" toml:"vsync" json:"vsync"`
}

// GameOptions defines gameplay rules.
type GameOptions struct {
	// The JSON key keeps the spelling used by existing settings.json files.
	Difficulty Difficulty `yaml:"difficulty" toml:"difficulty" json:"dificulty"`
	LossPolicy string     `yaml:"loss_policy" toml:"loss_policy" json:"loss_policy,omitempty"`
}

// ArenaOptions defines the playfield in world units.
type ArenaOptions struct {
	Width  float64 `yaml:"width" toml:"width" json:"width"`
	Height float64 `yaml:"height" toml:"height" json:"height"`
	Margin float64 `yaml:"margin" toml:"margin" json:"margin"`
}

// PhysicsOptions defines ball speed behaviour.
type PhysicsOptions struct {
	BallSpeed    float64 `yaml:"ball_speed" toml:"ball_speed" json:"ball_speed"`          // Launch speed before difficulty scaling
	GrowthFactor float64 `yaml:"growth_factor" toml:"growth_factor" json:"growth_factor"` // Multiplier per bounce
	MaxSpeed     float64 `yaml:"max_speed" toml:"max_speed" json:"max_speed"`             // Per-axis cap
}

// WindowSizes lists the supported window resolutions.
var WindowSizes = [][2]float64{
	{320, 240},
	{640, 360},
	{800, 600},
	{1024, 768},
	{1280, 720},
	{1366, 768},
	{1440, 900},
	{1600, 900},
	{1920, 1080},
}

// LaunchSpeed returns the ball speed after difficulty scaling.
func (s Settings) LaunchSpeed() float64 {
	return s.Physics.BallSpeed * s.Game.Difficulty.SpeedScale()
}

// PongOptions converts the settings into game options with the given seed.
// The settings are expected to be valid.
func (s Settings) PongOptions(seed int64) pong.Options {
	policy, _ := pong.ParseLossPolicy(s.Game.LossPolicy)
	return pong.Options{
		Width:        s.Arena.Width,
		Height:       s.Arena.Height,
		Margin:       s.Arena.Margin,
		BallSpeed:    s.LaunchSpeed(),
		GrowthFactor: s.Physics.GrowthFactor,
		MaxSpeed:     s.Physics.MaxSpeed,
		LossPolicy:   policy,
		Seed:         seed,
	}
}
