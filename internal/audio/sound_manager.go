// Package audio plays short synthesized sound effects for game events.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager mixes effect sounds onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // Linear gain in [0, 1]
	initialized bool
}

// NewSoundManager creates a sound manager at the given volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(1, volume)),
	}
}

// Initialize sets up the speaker. A zero volume skips device setup.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.volume == 0 {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Enabled reports whether sounds will be heard.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayEvents plays one effect per event.
func (sm *SoundManager) PlayEvents(events []pong.Event) {
	if len(events) == 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, ev := range events {
		sm.mixer.Add(sm.withVolume(EffectFor(ev).Streamer(sampleRate)))
	}
}

// withVolume applies the manager's gain to a streamer.
func (sm *SoundManager) withVolume(s beep.Streamer) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   Gain(sm.volume),
		Silent:   sm.volume == 0,
	}
}

// Gain converts a linear volume in (0, 1] into a base-2 exponent for
// effects.Volume. Zero maps to a very quiet gain; callers mark it silent.
func Gain(volume float64) float64 {
	if volume <= 0 {
		return -10
	}
	return math.Log2(volume)
}
