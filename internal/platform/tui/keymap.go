package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/games/muncher"
)

// DefaultHoldTimeout is how long a key counts as held after its last
// press or auto-repeat. Terminals report no key releases.
const DefaultHoldTimeout = 150 * time.Millisecond

// PadKeyMap binds keys to the buttons of one virtual gamepad.
type PadKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	A     key.Binding
	B     key.Binding
	Start key.Binding
}

// buttons pairs each binding with the pad button it drives.
func (k PadKeyMap) buttons() []struct {
	binding key.Binding
	button  core.Button
} {
	return []struct {
		binding key.Binding
		button  core.Button
	}{
		{k.Up, core.ButtonDPadUp},
		{k.Down, core.ButtonDPadDown},
		{k.Left, core.ButtonDPadLeft},
		{k.Right, core.ButtonDPadRight},
		{k.A, core.ButtonA},
		{k.B, core.ButtonB},
		{k.Start, core.ButtonStart},
	}
}

// DefaultPlayerOneKeys returns the bindings for the first player.
func DefaultPlayerOneKeys() PadKeyMap {
	return PadKeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right: key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		A:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "A")),
		B:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Start: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
	}
}

// DefaultPlayerTwoKeys returns the bindings for the second player.
// The second pad only appears once one of these keys is pressed.
func DefaultPlayerTwoKeys() PadKeyMap {
	return PadKeyMap{
		Up:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "up")),
		Down:  key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "down")),
		Left:  key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "left")),
		Right: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "right")),
		A:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "A")),
		B:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "back")),
		Start: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "pause")),
	}
}

// AppKeyMap holds the bindings handled by the terminal frontend itself.
type AppKeyMap struct {
	Quit       key.Binding
	Screenshot key.Binding
	Scoreboard key.Binding
}

// ShortHelp implements help.KeyMap.
func (k AppKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scoreboard, k.Screenshot, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k AppKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultAppKeys returns the frontend bindings.
func DefaultAppKeys() AppKeyMap {
	return AppKeyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Scoreboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
	}
}

// Keyboard turns key messages into virtual gamepads. Each press holds its
// button until DefaultHoldTimeout passes without a repeat.
// It implements core.DeviceSource.
type Keyboard struct {
	maps    [muncher.Slots]PadKeyMap
	pads    [muncher.Slots]*core.Pad
	seen    [muncher.Slots][core.ButtonCount]time.Time
	timeout time.Duration
}

// NewKeyboard creates a keyboard with the default bindings. The first pad
// is attached immediately.
func NewKeyboard() *Keyboard {
	k := &Keyboard{
		maps:    [muncher.Slots]PadKeyMap{DefaultPlayerOneKeys(), DefaultPlayerTwoKeys()},
		timeout: DefaultHoldTimeout,
	}
	for i := range k.pads {
		k.pads[i] = core.NewPad(i)
		k.pads[i].SetAttached(i == 0)
	}
	return k
}

// SetHoldTimeout overrides the hold timeout.
func (k *Keyboard) SetHoldTimeout(d time.Duration) {
	if d > 0 {
		k.timeout = d
	}
}

// Press handles a key message at the given time.
// Returns false if the key is not bound to any pad.
func (k *Keyboard) Press(msg tea.KeyMsg, now time.Time) bool {
	for i, m := range k.maps {
		for _, b := range m.buttons() {
			if !key.Matches(msg, b.binding) {
				continue
			}
			pad := k.pads[i]
			pad.SetAttached(true)
			pad.SetButton(b.button, true)
			k.seen[i][b.button] = now
			return true
		}
	}
	return false
}

// Expire releases buttons whose last press is older than the hold timeout.
func (k *Keyboard) Expire(now time.Time) {
	for i, pad := range k.pads {
		for b := core.Button(0); b < core.ButtonCount; b++ {
			if pad.Button(b) && now.Sub(k.seen[i][b]) >= k.timeout {
				pad.SetButton(b, false)
			}
		}
	}
}

// Pad returns the virtual pad for a slot.
func (k *Keyboard) Pad(i int) *core.Pad {
	if i < 0 || i >= len(k.pads) {
		return nil
	}
	return k.pads[i]
}

// Devices implements core.DeviceSource.
func (k *Keyboard) Devices() []core.Device {
	return core.Pads(k.pads[:]).Devices()
}
