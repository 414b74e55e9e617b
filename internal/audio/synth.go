package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Cue returns a fresh streamer for a one-shot sound, or nil for unknown ids.
func Cue(id string) beep.Streamer {
	switch id {
	case "pop":
		return pop()
	case "blip":
		return tone(440, 60*time.Millisecond, 0.3)
	default:
		return nil
	}
}

// Music returns a fresh endless streamer for a music track, or nil for
// unknown ids.
func Music(id string) beep.Streamer {
	switch id {
	case "background":
		return newBassline(sampleRate, []float64{110, 110, 146.83, 130.81}, 300*time.Millisecond, 0.12)
	default:
		return nil
	}
}

// pop is a short falling chirp.
func pop() beep.Streamer {
	return beep.Seq(
		tone(880, 30*time.Millisecond, 0.35),
		tone(660, 50*time.Millisecond, 0.25),
	)
}

// tone is a sine burst with a linear fade-out.
func tone(freq float64, d time.Duration, volume float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return &fade{streamer: beep.Take(sampleRate.N(d), sine), total: sampleRate.N(d), volume: volume}
}

// fade scales a finite stream from volume down to zero over total samples.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	volume   float64
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := range n {
		gain := f.volume
		if f.total > 0 {
			gain *= 1 - float64(f.pos)/float64(f.total)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// bassline cycles through notes forever, each with a soft attack and decay.
type bassline struct {
	sr     beep.SampleRate
	notes  []float64
	step   int
	volume float64
	pos    int
}

func newBassline(sr beep.SampleRate, notes []float64, noteLen time.Duration, volume float64) *bassline {
	return &bassline{sr: sr, notes: notes, step: sr.N(noteLen), volume: volume}
}

func (b *bassline) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (b.pos / b.step) % len(b.notes)
		inNote := b.pos % b.step
		t := float64(inNote) / float64(b.sr)

		env := math.Min(float64(inNote)/float64(b.sr.N(10*time.Millisecond)), 1)
		env *= math.Exp(-t * 4)

		v := b.volume * env * math.Sin(2*math.Pi*b.notes[note]*t)
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *bassline) Err() error { return nil }
