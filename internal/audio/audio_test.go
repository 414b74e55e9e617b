package audio

import (
	"math"
	"testing"
	"time"
)

func drain(t *testing.T, id string) (int, float64) {
	t.Helper()
	s := Cue(id)
	if s == nil {
		t.Fatalf("Cue(%q) = nil", id)
	}

	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 1000 {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("Cue(%q) did not end", id)
	return 0, 0
}

func TestCuesAreShortAndQuiet(t *testing.T) {
	tests := []struct {
		id      string
		samples int
		peak    float64
	}{
		{"pop", sampleRate.N(30*time.Millisecond) + sampleRate.N(50*time.Millisecond), 0.35},
		{"blip", sampleRate.N(60 * time.Millisecond), 0.3},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			n, peak := drain(t, tc.id)
			if n != tc.samples {
				t.Errorf("samples = %d, expected %d", n, tc.samples)
			}
			if peak > tc.peak+1e-9 || peak == 0 {
				t.Errorf("peak = %v, expected in (0, %v]", peak, tc.peak)
			}
		})
	}
}

func TestUnknownSounds(t *testing.T) {
	if Cue("kazoo") != nil {
		t.Error("Cue() should return nil for unknown ids")
	}
	if Music("kazoo") != nil {
		t.Error("Music() should return nil for unknown ids")
	}
}

func TestMusicIsEndless(t *testing.T) {
	s := Music("background")
	if s == nil {
		t.Fatal("Music(background) = nil")
	}

	buf := make([][2]float64, 4096)
	for range 100 {
		n, ok := s.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("Stream() = %d, %v; music should never end", n, ok)
		}
		for _, smp := range buf {
			if math.Abs(smp[0]) > 0.12+1e-9 {
				t.Fatalf("sample %v exceeds track volume", smp[0])
			}
		}
	}
}

func TestPlayerSilentBeforeInit(t *testing.T) {
	p := New(nil)
	if p.Enabled() {
		t.Fatal("player should start disabled")
	}

	// None of these may touch the speaker
	p.SetLoopingMusic("background")
	p.PlayCue("pop")
	p.PlayCue("kazoo")
	p.Close()

	if p.musicID != "background" {
		t.Errorf("musicID = %q, requested track should be remembered for Init", p.musicID)
	}
}
