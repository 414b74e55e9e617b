// Package audio plays the game's sound cues and background music through
// the system speaker. All sounds are synthesized; there are no asset files.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player implements the game's Sound interface on top of a beep mixer.
// Until Init succeeds every call is a no-op, so a machine without an audio
// device plays silently.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicID     string
	initialized bool
	logger      *log.Logger
}

// New creates a player. A nil logger discards output.
func New(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker. It is safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true

	// Music requested before the speaker opened
	if p.musicID != "" {
		p.startMusic()
	}
	return nil
}

// Enabled reports whether sound reaches the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlayCue plays a one-shot sound. Unknown ids are logged and ignored.
func (p *Player) PlayCue(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Cue(id)
	if s == nil {
		p.logger.Debug("unknown sound cue", "id", id)
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetLoopingMusic replaces the background track. An empty id stops it.
func (p *Player) SetLoopingMusic(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if id == p.musicID && p.music != nil {
		return
	}
	p.musicID = id

	if !p.initialized {
		return
	}
	p.startMusic()
}

// startMusic swaps the mixer's music track for p.musicID.
// The caller holds p.mu and the speaker is initialized.
func (p *Player) startMusic() {
	speaker.Lock()
	defer speaker.Unlock()

	if p.music != nil {
		p.music.Paused = true
		p.music.Streamer = nil
		p.music = nil
	}
	if p.musicID == "" {
		return
	}
	s := Music(p.musicID)
	if s == nil {
		p.logger.Debug("unknown music track", "id", p.musicID)
		return
	}
	p.music = &beep.Ctrl{Streamer: s}
	p.mixer.Add(p.music)
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.music = nil
	p.initialized = false
}
