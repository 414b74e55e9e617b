// Package gamepad tracks connected gamepads for the window frontend and
// exposes them to the game as core devices. It knows nothing about the
// windowing library; the frontend polls raw state and feeds it in.
package gamepad

import (
	"slices"

	"github.com/vovakirdan/muncher/internal/core"
)

// State is one poll of a gamepad's controls.
type State struct {
	Buttons [core.ButtonCount]bool
	Axes    [core.AxisCount]int16
}

// AxisFromFloat converts a [-1, 1] axis reading to the device range.
func AxisFromFloat(v float64) int16 {
	switch {
	case v != v: // NaN
		return 0
	case v <= -1:
		return -core.AxisMax
	case v >= 1:
		return core.AxisMax - 1
	case v < 0:
		return int16(v * core.AxisMax)
	default:
		return int16(v * (core.AxisMax - 1))
	}
}

// Hub holds the connected gamepads. Each pad gets the lowest player index
// not taken by another connected pad, so a replugged controller returns to
// its old slot when that slot is free.
type Hub struct {
	pads  map[int]*core.Pad
	order []int // Connection order
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{pads: make(map[int]*core.Pad)}
}

// Sync reconciles the hub with the ids currently reported by the platform.
// It returns the ids that were connected and disconnected by this call.
func (h *Hub) Sync(ids []int) (added, removed []int) {
	for _, id := range slices.Clone(h.order) {
		if !slices.Contains(ids, id) {
			h.Disconnect(id)
			removed = append(removed, id)
		}
	}
	for _, id := range ids {
		if _, ok := h.pads[id]; !ok {
			h.Connect(id)
			added = append(added, id)
		}
	}
	return added, removed
}

// Connect registers a gamepad and returns its pad. Connecting a known id
// returns the existing pad.
func (h *Hub) Connect(id int) *core.Pad {
	if p, ok := h.pads[id]; ok {
		return p
	}
	p := core.NewPad(h.freeIndex())
	h.pads[id] = p
	h.order = append(h.order, id)
	return p
}

// Disconnect detaches and forgets a gamepad. Anything still holding the pad
// sees it as detached.
func (h *Hub) Disconnect(id int) {
	p, ok := h.pads[id]
	if !ok {
		return
	}
	p.Release()
	p.SetAttached(false)
	delete(h.pads, id)
	h.order = slices.DeleteFunc(h.order, func(v int) bool { return v == id })
}

// Set stores a fresh poll for a connected gamepad.
func (h *Hub) Set(id int, s State) {
	p, ok := h.pads[id]
	if !ok {
		return
	}
	for b := core.Button(0); b < core.ButtonCount; b++ {
		p.SetButton(b, s.Buttons[b])
	}
	for a := core.Axis(0); a < core.AxisCount; a++ {
		p.SetAxis(a, s.Axes[a])
	}
}

// Pad returns the pad for a connected gamepad.
func (h *Hub) Pad(id int) (*core.Pad, bool) {
	p, ok := h.pads[id]
	return p, ok
}

// Len returns the number of connected gamepads.
func (h *Hub) Len() int {
	return len(h.order)
}

// Devices implements core.DeviceSource, in connection order.
func (h *Hub) Devices() []core.Device {
	out := make([]core.Device, 0, len(h.order))
	for _, id := range h.order {
		out = append(out, h.pads[id])
	}
	return out
}

func (h *Hub) freeIndex() int {
	taken := make(map[int]bool, len(h.pads))
	for _, p := range h.pads {
		taken[p.PlayerIndex()] = true
	}
	i := 0
	for taken[i] {
		i++
	}
	return i
}
