package muncher

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/registry"
)

// HUD and menu texts.
const (
	GameOverText = "You died! Press A to restart."
	PausedText   = "GAME PAUSED"
	MenuTitle    = "MUNCHER"
	MenuHint     = "Left/Right: choose mode   A: start   B: back   Start: pause"
)

// Drawable is one sprite placed in the arena.
type Drawable struct {
	Kind   Kind
	Sprite string
	Rect   core.Rect
	Glyph  rune
	Color  core.Color
	Evil   bool
}

// MenuFrame is the content of the mode selection screen.
type MenuFrame struct {
	Title    string
	Items    []string
	Selected int
	Detail   string
	Hint     string
}

// Frame is everything a renderer needs to draw one frame.
// Renderers never read the world directly.
type Frame struct {
	Screen        Screen
	Width, Height int

	Sprites []Drawable // Back to front
	HUD     []string
	Overlay string // Centered text such as the pause banner
	Black   bool   // Draw on a black background

	Menu MenuFrame
}

// Frame composes the render frame for the current state.
func (s *Session) Frame() Frame {
	f := Frame{
		Screen: s.screen,
		Width:  s.rules.Width,
		Height: s.rules.Height,
	}

	if s.screen == ScreenMenu || s.world == nil {
		f.Screen = ScreenMenu
		f.Menu = s.menuFrame()
		return f
	}

	w := s.world
	if !w.GameOver() {
		f.Sprites = make([]Drawable, 0, len(w.Players)+len(w.Enemies)+len(w.Tokens))
		for _, group := range [][]*Entity{w.Players, w.Enemies, w.Tokens} {
			for _, e := range group {
				f.Sprites = append(f.Sprites, s.drawable(e))
			}
		}
	} else if w.mode.Has(registry.BlackEndScreen) {
		f.Black = true
	}

	f.HUD = HUDLines(w, s.rules)
	if s.paused {
		f.Overlay = PausedText
	}
	return f
}

func (s *Session) drawable(e *Entity) Drawable {
	info := s.sprites[e.Sprite]
	return Drawable{
		Kind:   e.Kind,
		Sprite: e.Sprite,
		Rect:   e.Bounds,
		Glyph:  info.Glyph,
		Color:  info.Color,
		Evil:   e.Evil,
	}
}

func (s *Session) menuFrame() MenuFrame {
	list := s.modes.List()
	items := make([]string, len(list))
	for i, info := range list {
		items[i] = info.Name
	}
	return MenuFrame{
		Title:    MenuTitle,
		Items:    items,
		Selected: s.modeIndex,
		Detail:   ModeDetail(s.Mode()),
		Hint:     MenuHint,
	}
}

// ModeDetail describes a mode's goal and modifiers in one line.
func ModeDetail(m registry.Mode) string {
	mods := m.Modifiers.String()
	if mods == "" {
		mods = "none"
	}
	return fmt.Sprintf("Eat %d %s to lose. Modifiers: %s", m.Goal, strings.ToLower(m.EnemyLabel), mods)
}

// HUDLines returns the HUD text for a world, top to bottom.
func HUDLines(w *World, rules Rules) []string {
	m := w.mode

	var lines []string
	if m.Has(registry.AltUI) {
		if w.GameOver() {
			lines = append(lines, GameOverText)
		} else {
			lines = append(lines, fmt.Sprintf("%s | %s %d/%d | %s %d",
				m.Name, m.EnemyLabel, w.EnemyEaten, m.Goal, m.TokenLabel, w.TokensEaten))
		}
	} else {
		if w.GameOver() {
			lines = append(lines, GameOverText)
		} else {
			lines = append(lines, fmt.Sprintf("%s Eaten: %d/%d", m.EnemyLabel, w.EnemyEaten, m.Goal))
		}
		lines = append(lines,
			fmt.Sprintf("%s Eaten: %d", m.TokenLabel, w.TokensEaten),
			m.Name,
		)
	}

	if w.CapReached {
		lines = append(lines, fmt.Sprintf("%s limit reached (%d)", m.EnemyLabel, rules.EnemyCap))
	}
	return lines
}
