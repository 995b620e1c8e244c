package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Validate reports the first setting that cannot be used.
func (s Settings) Validate() error {
	if _, err := ParseDifficulty(string(s.Game.Difficulty)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := pong.ParseLossPolicy(s.Game.LossPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if v := s.Sound.EffectsVolume; v < 0 || v > 1 {
		return fmt.Errorf("%w: effects_volume %g outside [0, 1]", ErrInvalid, v)
	}
	if v := s.Sound.MusicVolume; v < 0 || v > 1 {
		return fmt.Errorf("%w: music_volume %g outside [0, 1]", ErrInvalid, v)
	}

	if !supportedWindowSize(s.Graphics.WindowSize) {
		return fmt.Errorf("%w: window_size %gx%g is not supported",
			ErrInvalid, s.Graphics.WindowSize[0], s.Graphics.WindowSize[1])
	}

	if _, err := pong.NewField(s.Arena.Width, s.Arena.Height, s.Arena.Margin); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	p := s.Physics
	if p.GrowthFactor < 1 {
		return fmt.Errorf("%w: growth_factor %g below 1", ErrInvalid, p.GrowthFactor)
	}
	if p.MaxSpeed <= 0 {
		return fmt.Errorf("%w: max_speed %g must be positive", ErrInvalid, p.MaxSpeed)
	}
	if p.BallSpeed <= 0 {
		return fmt.Errorf("%w: ball_speed %g must be positive", ErrInvalid, p.BallSpeed)
	}
	if speed := s.LaunchSpeed(); speed > p.MaxSpeed {
		return fmt.Errorf("%w: launch speed %g exceeds max_speed %g", ErrInvalid, speed, p.MaxSpeed)
	}

	return nil
}

func supportedWindowSize(size [2]float64) bool {
	for _, s := range WindowSizes {
		if s == size {
			return true
		}
	}
	return false
}
