// Package tui provides the Bubble Tea frontend for muncher, both for local
// terminals and for players connecting over SSH. Keys drive virtual
// gamepads; the game is drawn as colored glyphs scaled to the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/muncher/internal/core"
)

// TickMsg asks the model to advance the session by one fixed step.
// It carries the wall-clock time used to expire held keys.
type TickMsg time.Time

// tickCmd schedules the next simulation tick one interval of cfg from now.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
