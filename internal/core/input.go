package core

// Button identifies a digital control on an input device.
// Platforms map their physical buttons or keys onto these.
type Button int

const (
	ButtonA         Button = iota // Action: start, invulnerability, restart
	ButtonB                       // Back to menu
	ButtonStart                   // Pause toggle
	ButtonDPadUp                  // Digital up
	ButtonDPadDown                // Digital down
	ButtonDPadLeft                // Digital left
	ButtonDPadRight               // Digital right

	ButtonCount
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonStart:
		return "Start"
	case ButtonDPadUp:
		return "Up"
	case ButtonDPadDown:
		return "Down"
	case ButtonDPadLeft:
		return "Left"
	case ButtonDPadRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Axis identifies an analog control on an input device.
type Axis int

const (
	AxisLeftX Axis = iota // Negative is left
	AxisLeftY             // Negative is up

	AxisCount
)

// AxisMax is the magnitude of a fully deflected axis.
const AxisMax = 32768

// Device is an input device as seen by the game: a gamepad, or a keyboard
// pretending to be one.
type Device interface {
	// Button reports whether the button is currently held.
	Button(b Button) bool

	// Axis returns the current axis value in [-32768, 32767].
	Axis(a Axis) int16

	// Attached reports whether the device is currently connected.
	Attached() bool

	// PlayerIndex returns the logical player index reported by the platform,
	// or -1 if none.
	PlayerIndex() int
}

// DeviceSource enumerates the currently known input devices.
type DeviceSource interface {
	Devices() []Device
}

// Pad is an in-memory Device whose state is driven by the platform layer.
// The terminal frontend feeds keyboard input into pads; tests use them as fakes.
type Pad struct {
	index    int
	attached bool
	buttons  [ButtonCount]bool
	axes     [AxisCount]int16
}

// NewPad creates an attached pad reporting the given player index.
func NewPad(playerIndex int) *Pad {
	return &Pad{index: playerIndex, attached: true}
}

// Button implements Device.
func (p *Pad) Button(b Button) bool {
	if b < 0 || b >= ButtonCount {
		return false
	}
	return p.buttons[b]
}

// Axis implements Device.
func (p *Pad) Axis(a Axis) int16 {
	if a < 0 || a >= AxisCount {
		return 0
	}
	return p.axes[a]
}

// Attached implements Device.
func (p *Pad) Attached() bool {
	return p.attached
}

// PlayerIndex implements Device.
func (p *Pad) PlayerIndex() int {
	return p.index
}

// SetButton sets the held state of a button.
func (p *Pad) SetButton(b Button, down bool) {
	if b < 0 || b >= ButtonCount {
		return
	}
	p.buttons[b] = down
}

// SetAxis sets an axis value.
func (p *Pad) SetAxis(a Axis, v int16) {
	if a < 0 || a >= AxisCount {
		return
	}
	p.axes[a] = v
}

// SetAttached marks the pad as connected or disconnected.
func (p *Pad) SetAttached(attached bool) {
	p.attached = attached
}

// Release clears all buttons and centers all axes.
func (p *Pad) Release() {
	p.buttons = [ButtonCount]bool{}
	p.axes = [AxisCount]int16{}
}

// Pads is a DeviceSource over a fixed list of pads.
type Pads []*Pad

// Devices implements DeviceSource. Detached pads are omitted.
func (ps Pads) Devices() []Device {
	out := make([]Device, 0, len(ps))
	for _, p := range ps {
		if p != nil && p.Attached() {
			out = append(out, p)
		}
	}
	return out
}
