package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/muncher/internal/config"
	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/games/muncher"
	"github.com/vovakirdan/muncher/internal/registry"
)

func newTestSession(t *testing.T) *muncher.Session {
	t.Helper()

	cfg := config.DefaultMuncherConfig()
	reg, err := registry.FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig() failed: %v", err)
	}
	s, err := muncher.New(muncher.Options{Config: cfg, Modes: reg, Seed: 7})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

// screenRow returns row y of the screen as plain text.
func screenRow(scr *core.Screen, y int) string {
	return strings.Split(scr.String(), "\n")[y]
}

func TestScaleRect(t *testing.T) {
	area := core.NewRect(0, 2, 96, 27) // 1920x1080 at 1/20 x 1/40

	tests := []struct {
		name     string
		r        core.Rect
		expected core.Rect
	}{
		{"centered sprite", core.NewRect(960, 540, 94, 110), core.NewRect(48, 15, 5, 4)},
		{"tiny sprite keeps a cell", core.NewRect(0, 0, 1, 1), core.NewRect(0, 2, 1, 1)},
		{"clipped at the corner", core.NewRect(1900, 1070, 94, 110), core.NewRect(95, 28, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scaleRect(tt.r, 1920, 1080, area)
			if got != tt.expected {
				t.Errorf("scaleRect() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestDrawFrameMenu(t *testing.T) {
	s := newTestSession(t)
	scr := core.NewScreen(100, 30)

	DrawFrame(scr, s.Frame())
	out := scr.String()

	for _, want := range []string{"M U N C H E R", "> Classic", "  Picnic", muncher.ModeDetail(s.Mode())} {
		if !strings.Contains(out, want) {
			t.Errorf("menu screen missing %q:\n%s", want, out)
		}
	}
}

func TestDrawFrameGame(t *testing.T) {
	s := newTestSession(t)
	pad := core.NewPad(0)
	s.ResolveDevices(core.Pads{pad})
	s.StartRound()

	scr := core.NewScreen(100, 30)
	f := s.Frame()
	DrawFrame(scr, f)

	if got := strings.TrimSpace(screenRow(scr, 0)); got != f.HUD[0] {
		t.Errorf("row 0 = %q, expected HUD %q", got, f.HUD[0])
	}
	if !strings.HasPrefix(screenRow(scr, len(f.HUD)), "───") {
		t.Errorf("separator missing below the HUD: %q", screenRow(scr, len(f.HUD)))
	}

	player, _ := s.Sprite(s.Mode().PlayerSprite)
	if !strings.ContainsRune(scr.String(), player.Glyph) {
		t.Errorf("player glyph %q not drawn", player.Glyph)
	}

	s.TogglePause()
	DrawFrame(scr, s.Frame())
	if !strings.Contains(scr.String(), muncher.PausedText) {
		t.Error("pause banner not drawn")
	}
}

func TestRenderFrameKeepsText(t *testing.T) {
	s := newTestSession(t)
	scr := core.NewScreen(100, 30)

	f := s.Frame()
	out := RenderFrame(scr, f)
	if !strings.Contains(out, "Classic") {
		t.Error("rendered output lost the menu text")
	}

	f.Black = true
	if out := RenderFrame(scr, f); !strings.Contains(out, "Classic") {
		t.Error("black background lost the menu text")
	}
}

func TestRenderScreenRows(t *testing.T) {
	scr := core.NewScreen(4, 3)
	scr.SetColored(1, 1, 'x', core.ColorRed)

	lines := strings.Split(RenderScreen(scr), "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() produced %d lines, expected 3", len(lines))
	}
	if !strings.Contains(lines[1], "x") {
		t.Errorf("row 1 = %q, expected the colored cell", lines[1])
	}
}
