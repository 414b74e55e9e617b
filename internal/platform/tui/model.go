package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/games/muncher"
	"github.com/vovakirdan/muncher/internal/storage"
)

// Options configures a terminal game model.
type Options struct {
	Store    *storage.Store // Optional; rounds are not recorded without it
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Frontend string // Recorded with each round; defaults to "tui"
}

// Model is the Bubble Tea model that drives a muncher session.
// The bottom terminal row shows the frontend key help; the rest is the game.
type Model struct {
	session  *muncher.Session
	screen   *core.Screen
	keyboard *Keyboard
	store    *storage.Store
	config   core.RuntimeConfig
	logger   *log.Logger
	frontend string
	keys     AppKeyMap
	help     help.Model
	board    *ScoreboardModel
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *muncher.Session, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	frontend := opts.Frontend
	if frontend == "" {
		frontend = "tui"
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:  session,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		keyboard: NewKeyboard(),
		store:    opts.Store,
		config:   cfg,
		logger:   logger,
		frontend: frontend,
		keys:     DefaultAppKeys(),
		help:     h,
	}
}

// Init assigns the keyboard pads to the session and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.session.ResolveDevices(m.keyboard)
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if m.board != nil {
		return m.updateBoard(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Scoreboard):
		if m.session.Screen() == muncher.ScreenMenu {
			board := NewScoreboardModel(m.store, m.session.Modes(), m.config.ScreenW, m.config.ScreenH)
			m.board = &board
		}
		return m, nil
	}

	m.keyboard.Press(msg, now)
	return m, nil
}

// updateBoard forwards a message to the open scoreboard.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if board, ok := next.(ScoreboardModel); ok {
		m.board = &board
	}
	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		m.board = nil
	}
	return m, cmd
}

// handleResize processes window resize events.
// The arena is rescaled; the round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width

	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m, nil
}

// handleTick releases expired keys, re-resolves the pads, advances the
// session by one fixed step and records a finished round.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.keyboard.Expire(now)
	m.session.ResolveDevices(m.keyboard)
	m.session.Update(m.config.Dt())

	for _, ev := range m.session.Events() {
		if ev.Kind == muncher.EventGameOver {
			m.saveRound()
		}
	}

	return m, tickCmd(m.config)
}

// saveRound records the current round in the score store.
func (m Model) saveRound() {
	if m.store == nil {
		return
	}
	r := m.session.Result()
	_, err := m.store.SaveRound(storage.Round{
		ModeID:     r.ModeID,
		Score:      r.TokensEaten,
		EnemyEaten: r.EnemyEaten,
		Ticks:      r.Ticks,
		Players:    r.Players,
		Frontend:   m.frontend,
	})
	if err != nil {
		m.logger.Warn("could not save round", "mode", r.ModeID, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawFrame(m.screen, m.session.Frame())

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".muncher", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.session.Mode().ID, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	return RenderFrame(m.screen, m.session.Frame()) + "\n" + m.help.View(m.keys)
}

// Session returns the driven session.
func (m Model) Session() *muncher.Session {
	return m.session
}

// Run starts the Bubble Tea program for the session.
func Run(session *muncher.Session, opts Options) error {
	model := NewModel(session, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
