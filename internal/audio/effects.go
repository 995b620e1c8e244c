package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Effect describes a short pitched blip.
type Effect struct {
	StartFreq float64 // Hz
	EndFreq   float64 // Hz, linear sweep from StartFreq
	Duration  time.Duration
	Amplitude float64
}

// Effects for each event kind.
var (
	EffectPaddle = Effect{StartFreq: 480, EndFreq: 520, Duration: 60 * time.Millisecond, Amplitude: 0.35}
	EffectWall   = Effect{StartFreq: 240, EndFreq: 240, Duration: 40 * time.Millisecond, Amplitude: 0.25}
	EffectLost   = Effect{StartFreq: 300, EndFreq: 90, Duration: 350 * time.Millisecond, Amplitude: 0.4}
)

// EffectFor picks the sound for a game event.
func EffectFor(ev pong.Event) Effect {
	switch ev.Kind {
	case pong.EventPaddleHit:
		return EffectPaddle
	case pong.EventRoundLost:
		return EffectLost
	default:
		return EffectWall
	}
}

// Streamer returns a finite streamer for the effect.
func (e Effect) Streamer(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(e.Duration), NewSweepGenerator(sr, e))
}

// SweepGenerator generates a square-ish tone sweeping between two
// frequencies with a short fade out.
type SweepGenerator struct {
	sr    beep.SampleRate
	e     Effect
	pos   int
	total int
	phase float64
}

// NewSweepGenerator creates a sweep generator for an effect.
func NewSweepGenerator(sr beep.SampleRate, e Effect) *SweepGenerator {
	total := sr.N(e.Duration)
	if total < 1 {
		total = 1
	}
	return &SweepGenerator{sr: sr, e: e, total: total}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := g.e.StartFreq + (g.e.EndFreq-g.e.StartFreq)*progress

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		// Sine plus a third harmonic for a retro edge
		sample := math.Sin(g.phase) + 0.3*math.Sin(3*g.phase)
		sample *= g.e.Amplitude / 1.3 * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
