package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/games/muncher"
	"github.com/vovakirdan/muncher/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m := NewModel(newTestSession(t), Options{
		Store:   store,
		Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60},
	})
	m.Init()
	return m
}

func sendKey(t *testing.T, m Model, k string, now time.Time) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.handleKey(keyMsg(k), now)
	return next.(Model), cmd
}

func tick(t *testing.T, m Model, now time.Time) Model {
	t.Helper()
	next, cmd := m.handleTick(now)
	if cmd == nil {
		t.Fatal("tick did not schedule the next tick")
	}
	return next.(Model)
}

func TestModelStartsRoundFromKeyboard(t *testing.T) {
	m := newTestModel(t, nil)
	t0 := time.Unix(1000, 0)

	m, _ = sendKey(t, m, "right", t0)
	m = tick(t, m, t0.Add(time.Millisecond))
	if m.Session().ModeIndex() != 1 {
		t.Fatalf("ModeIndex() = %d, expected 1 after pressing right", m.Session().ModeIndex())
	}

	// Held through auto-repeat: still a single step
	m, _ = sendKey(t, m, "right", t0.Add(50*time.Millisecond))
	m = tick(t, m, t0.Add(60*time.Millisecond))
	if m.Session().ModeIndex() != 1 {
		t.Fatalf("ModeIndex() = %d, a held key must not repeat", m.Session().ModeIndex())
	}

	m = tick(t, m, t0.Add(time.Second))
	m, _ = sendKey(t, m, " ", t0.Add(time.Second))
	m = tick(t, m, t0.Add(time.Second+time.Millisecond))
	if m.Session().Screen() != muncher.ScreenGame {
		t.Fatalf("Screen() = %s, expected game after pressing space", m.Session().Screen())
	}
	if got := m.Session().World().Mode().ID; got != "picnic" {
		t.Errorf("round mode = %q, expected picnic", got)
	}
}

func TestModelSavesFinishedRound(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	t0 := time.Unix(1000, 0)

	m, _ = sendKey(t, m, " ", t0)
	m = tick(t, m, t0.Add(time.Millisecond))
	m = tick(t, m, t0.Add(time.Second)) // release A

	s := m.Session()
	w := s.World()
	w.EnemyEaten = s.Mode().Goal - 1
	e := w.Enemies[0]
	mouth := s.Rules().Mouth.Of(w.Players[0])
	e.FX, e.FY, e.HV, e.VV = float64(mouth.X), float64(mouth.Y), 0, 0
	e.Sync()

	m = tick(t, m, t0.Add(time.Second+time.Millisecond))
	if !s.State().GameOver {
		t.Fatal("round should be over")
	}
	m = tick(t, m, t0.Add(time.Second+2*time.Millisecond))

	rounds, err := store.TopRounds("classic", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("expected exactly 1 saved round, got %d", len(rounds))
	}
	r := rounds[0]
	if r.EnemyEaten != s.Mode().Goal || r.Players != 1 || r.Frontend != "tui" || r.Ticks == 0 {
		t.Errorf("saved round = %+v", r)
	}
}

func TestModelScoreboard(t *testing.T) {
	m := newTestModel(t, nil)
	now := time.Now()

	m, _ = sendKey(t, m, "tab", now)
	if m.board == nil {
		t.Fatal("tab on the menu should open the scoreboard")
	}
	if v := m.View(); v == "" {
		t.Error("scoreboard view is empty")
	}

	// Keys go to the board, not the pads
	m, _ = sendKey(t, m, " ", now)
	if m.keyboard.Pad(0).Button(core.ButtonA) {
		t.Error("key reached the game while the scoreboard was open")
	}

	m, cmd := sendKey(t, m, "esc", now)
	if m.board != nil || m.quitting || cmd != nil {
		t.Error("esc should close the scoreboard and keep the program running")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := sendKey(t, m, "q", time.Now())
	if !m.quitting || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)

	next, _ := m.handleResize(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, expected 60x19", m.screen.Width(), m.screen.Height())
	}
}

func TestModelDefaultsTickRate(t *testing.T) {
	m := NewModel(newTestSession(t), Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24},
	})
	if m.config.TickRate != 60 {
		t.Errorf("TickRate = %d, expected the default 60", m.config.TickRate)
	}
	if m.config.TickInterval() != time.Second/60 {
		t.Errorf("TickInterval() = %v", m.config.TickInterval())
	}
	if m.Init() == nil {
		t.Error("Init() should start the tick loop")
	}
}
