package platform

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// OptionLines describes settings for the read-only options overlay. The
// first line is the title and the last one the close hint.
func OptionLines(cfg config.Settings) []string {
	return []string{
		"OPTIONS",
		"",
		fmt.Sprintf("difficulty    %s", cfg.Game.Difficulty),
		fmt.Sprintf("loss policy   %s", cfg.Game.LossPolicy),
		fmt.Sprintf("effects vol   %.0f%%", cfg.Sound.EffectsVolume*100),
		fmt.Sprintf("music vol     %.0f%%", cfg.Sound.MusicVolume*100),
		fmt.Sprintf("window        %gx%g", cfg.Graphics.WindowSize[0], cfg.Graphics.WindowSize[1]),
		fmt.Sprintf("arena         %gx%g", cfg.Arena.Width, cfg.Arena.Height),
		fmt.Sprintf("launch speed  %.2f", cfg.LaunchSpeed()),
		fmt.Sprintf("growth        x%.2f", cfg.Physics.GrowthFactor),
		fmt.Sprintf("speed cap     %.1f", cfg.Physics.MaxSpeed),
		"",
		"esc to close",
	}
}
