package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

func TestSweepGeneratorRange(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, e := range []Effect{EffectPaddle, EffectWall, EffectLost} {
		gen := NewSweepGenerator(rate, e)

		samples := make([][2]float64, 512)
		n, ok := gen.Stream(samples)
		if !ok || n != 512 {
			t.Fatalf("Stream() = %d, %v; expected 512, true", n, ok)
		}

		for i := 0; i < n; i++ {
			if math.Abs(samples[i][0]) > e.Amplitude+1e-9 {
				t.Fatalf("sample %d = %f exceeds amplitude %f", i, samples[i][0], e.Amplitude)
			}
			if samples[i][0] != samples[i][1] {
				t.Fatalf("sample %d is not mono", i)
			}
		}
		if gen.Err() != nil {
			t.Errorf("Err() = %v, expected nil", gen.Err())
		}
	}
}

func TestEffectStreamerIsFinite(t *testing.T) {
	rate := beep.SampleRate(48000)
	e := Effect{StartFreq: 440, EndFreq: 440, Duration: 10 * time.Millisecond, Amplitude: 0.5}

	s := e.Streamer(rate)
	want := rate.N(e.Duration)

	total := 0
	buf := make([][2]float64, 128)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > want*2 {
			t.Fatal("streamer did not stop")
		}
	}

	if total != want {
		t.Errorf("streamed %d samples, expected %d", total, want)
	}
}

func TestEffectFor(t *testing.T) {
	tests := []struct {
		event    pong.Event
		expected Effect
	}{
		{pong.Event{Kind: pong.EventPaddleHit, Player: 1}, EffectPaddle},
		{pong.Event{Kind: pong.EventWallBounce, Wall: pong.WallTop}, EffectWall},
		{pong.Event{Kind: pong.EventRoundLost, Player: 2}, EffectLost},
	}

	for _, tc := range tests {
		t.Run(tc.event.Kind.String(), func(t *testing.T) {
			if got := EffectFor(tc.event); got != tc.expected {
				t.Errorf("EffectFor() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestGain(t *testing.T) {
	if Gain(1) != 0 {
		t.Errorf("Gain(1) = %v, expected 0", Gain(1))
	}
	if Gain(0.5) != -1 {
		t.Errorf("Gain(0.5) = %v, expected -1", Gain(0.5))
	}
	if Gain(0) >= Gain(0.1) {
		t.Error("Gain(0) should be quieter than Gain(0.1)")
	}
}

func TestSilentManagerSkipsDevice(t *testing.T) {
	sm := NewSoundManager(0)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	if sm.Enabled() {
		t.Error("muted manager should not be enabled")
	}

	// Must be a no-op without a device
	sm.PlayEvents([]pong.Event{{Kind: pong.EventPaddleHit, Player: 1}})
	sm.Cleanup()
}
