package muncher

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/muncher/internal/config"
	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/registry"
)

// Screen is the top-level state of a session.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenGame
)

// String returns a human-readable name for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenGame:
		return "game"
	default:
		return "unknown"
	}
}

// Options configures a new Session.
type Options struct {
	Config config.MuncherConfig
	Modes  *registry.Registry
	Atlas  Atlas       // Defaults to a Catalog of Config.Sprites
	Sound  Sound       // Defaults to NopSound
	Logger *log.Logger // Defaults to a discarding logger
	Seed   int64
}

// RoundResult summarizes a finished round.
type RoundResult struct {
	ModeID      string
	ModeName    string
	TokensEaten int
	EnemyEaten  int
	Ticks       uint64
	Players     int
}

// Session owns the menu/game state machine, the device slots and the world
// of the current round.
type Session struct {
	rules   Rules
	modes   *registry.Registry
	sprites map[string]SpriteInfo
	sound   Sound
	logger  *log.Logger
	rng     *rand.Rand

	screen    Screen
	paused    bool
	modeIndex int
	world     *World
	stepped   bool

	slots   [Slots]core.Device
	held    [Slots][core.ButtonCount]bool
	pressed [core.ButtonCount]bool
}

// New creates a session on the menu screen. Every sprite of every mode is
// loaded up front; a missing sprite is an error.
func New(opts Options) (*Session, error) {
	if opts.Modes == nil || opts.Modes.Len() == 0 {
		return nil, errors.New("muncher: no game modes")
	}
	rules := RulesFromConfig(opts.Config)
	if rules.Width <= 0 || rules.Height <= 0 {
		return nil, fmt.Errorf("muncher: invalid arena %dx%d", rules.Width, rules.Height)
	}

	atlas := opts.Atlas
	if atlas == nil {
		atlas = NewCatalog(opts.Config.Sprites)
	}
	sprites, err := preload(atlas, opts.Modes.Modes())
	if err != nil {
		return nil, fmt.Errorf("muncher: loading sprites: %w", err)
	}

	s := &Session{
		rules:   rules,
		modes:   opts.Modes,
		sprites: sprites,
		sound:   opts.Sound,
		logger:  opts.Logger,
		rng:     rand.New(rand.NewSource(opts.Seed)),
	}
	if s.sound == nil {
		s.sound = NopSound{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.sound.SetLoopingMusic(rules.Music)
	return s, nil
}

// Screen returns the current screen.
func (s *Session) Screen() Screen {
	return s.screen
}

// Paused reports whether the game screen is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// ModeIndex returns the selected menu index.
func (s *Session) ModeIndex() int {
	return s.modeIndex
}

// Mode returns the selected mode.
func (s *Session) Mode() registry.Mode {
	return s.modes.At(s.modeIndex)
}

// Modes lists the selectable modes in menu order.
func (s *Session) Modes() []registry.ModeInfo {
	return s.modes.List()
}

// World returns the world of the current round, or nil before the first
// round starts.
func (s *Session) World() *World {
	return s.world
}

// Rules returns the simulation rules.
func (s *Session) Rules() Rules {
	return s.rules
}

// Sprite returns a loaded sprite by id.
func (s *Session) Sprite(id string) (SpriteInfo, bool) {
	info, ok := s.sprites[id]
	return info, ok
}

// SelectMode moves the menu cursor by delta, clamped to the mode table.
func (s *Session) SelectMode(delta int) {
	s.modeIndex = s.modes.Clamp(s.modeIndex + delta)
}

// SelectModeByID moves the menu cursor to the mode with the given id.
func (s *Session) SelectModeByID(id string) error {
	i := s.modes.Index(id)
	if i < 0 {
		return fmt.Errorf("muncher: unknown mode %q", id)
	}
	s.modeIndex = i
	return nil
}

// StartRound leaves the menu and begins a fresh round of the selected mode
// with one player per occupied device slot.
func (s *Session) StartRound() {
	var controllers []int
	for i, d := range s.slots {
		if d != nil {
			controllers = append(controllers, i)
		}
	}

	mode := s.Mode()
	s.world = newWorld(s.rules, mode, s.sprites, s.rng, s.sound, s.logger, controllers)
	s.world.Relink(s.slots)
	s.screen = ScreenGame
	s.paused = false
	s.logger.Info("round started", "mode", mode.ID, "players", len(s.world.Players))
}

// ReturnToMenu leaves the game screen and clears pause.
func (s *Session) ReturnToMenu() {
	s.screen = ScreenMenu
	s.paused = false
	s.logger.Debug("returned to menu")
}

// TogglePause flips the pause flag and plays the pause cue.
func (s *Session) TogglePause() {
	if s.screen != ScreenGame {
		return
	}
	s.paused = !s.paused
	s.sound.PlayCue(s.rules.PauseCue)
}

// Update processes one frame: it samples button edges, applies screen
// transitions and, on an unpaused game screen, steps the world.
func (s *Session) Update(dt float64) {
	s.sample()
	s.stepped = false

	switch s.screen {
	case ScreenMenu:
		if s.pressed[core.ButtonDPadLeft] {
			s.SelectMode(-1)
		}
		if s.pressed[core.ButtonDPadRight] {
			s.SelectMode(1)
		}
		if s.pressed[core.ButtonA] {
			s.StartRound()
		}

	case ScreenGame:
		if s.pressed[core.ButtonB] {
			s.ReturnToMenu()
			return
		}
		if s.pressed[core.ButtonStart] {
			s.TogglePause()
		}
		if !s.paused {
			s.world.Step(dt)
			s.stepped = true
		}
	}
}

// Events returns the world events of the most recent Update, or nil if the
// world did not step.
func (s *Session) Events() []Event {
	if !s.stepped || s.world == nil {
		return nil
	}
	return s.world.Events()
}

// Result summarizes the current round.
func (s *Session) Result() RoundResult {
	if s.world == nil {
		return RoundResult{ModeID: s.Mode().ID, ModeName: s.Mode().Name}
	}
	m := s.world.Mode()
	return RoundResult{
		ModeID:      m.ID,
		ModeName:    m.Name,
		TokensEaten: s.world.TokensEaten,
		EnemyEaten:  s.world.EnemyEaten,
		Ticks:       s.world.Tick,
		Players:     len(s.world.Players),
	}
}

// State returns the session state in the shape shared by all frontends.
func (s *Session) State() core.GameState {
	st := core.GameState{
		Paused: s.paused,
		InMenu: s.screen == ScreenMenu,
	}
	if s.world != nil {
		st.Score = s.world.TokensEaten
		st.GameOver = s.world.GameOver()
	}
	return st
}

// sample records which buttons went from released to held on any slot
// device since the previous frame.
func (s *Session) sample() {
	s.pressed = [core.ButtonCount]bool{}
	for i, d := range s.slots {
		if d == nil || !d.Attached() {
			s.held[i] = [core.ButtonCount]bool{}
			continue
		}
		for b := core.Button(0); b < core.ButtonCount; b++ {
			down := d.Button(b)
			if down && !s.held[i][b] {
				s.pressed[b] = true
			}
			s.held[i][b] = down
		}
	}
}
