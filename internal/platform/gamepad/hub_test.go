package gamepad

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/muncher/internal/core"
)

func TestAxisFromFloat(t *testing.T) {
	tests := []struct {
		in       float64
		expected int16
	}{
		{0, 0},
		{1, 32767},
		{-1, -32768},
		{2, 32767},
		{-5, -32768},
		{0.5, 16383},
		{-0.5, -16384},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := AxisFromFloat(tt.in); got != tt.expected {
			t.Errorf("AxisFromFloat(%v) = %d, expected %d", tt.in, got, tt.expected)
		}
	}
}

func indices(h *Hub) []int {
	var out []int
	for _, d := range h.Devices() {
		out = append(out, d.PlayerIndex())
	}
	return out
}

func TestHubAssignsLowestFreeIndex(t *testing.T) {
	h := NewHub()
	h.Connect(10)
	h.Connect(20)
	if got := indices(h); !slices.Equal(got, []int{0, 1}) {
		t.Fatalf("indices = %v, expected [0 1]", got)
	}

	old, _ := h.Pad(10)
	h.Disconnect(10)
	if old.Attached() {
		t.Error("disconnected pad should report detached")
	}

	// A new controller takes the freed slot
	h.Connect(30)
	if got := indices(h); !slices.Equal(got, []int{1, 0}) {
		t.Errorf("indices = %v, expected [1 0]", got)
	}
}

func TestHubConnectIsIdempotent(t *testing.T) {
	h := NewHub()
	a := h.Connect(1)
	b := h.Connect(1)
	if a != b || h.Len() != 1 {
		t.Error("connecting the same id twice should keep one pad")
	}
	h.Disconnect(99) // unknown id is ignored
	if h.Len() != 1 {
		t.Error("Disconnect() of an unknown id changed the hub")
	}
}

func TestHubSync(t *testing.T) {
	h := NewHub()

	added, removed := h.Sync([]int{3, 4})
	if !slices.Equal(added, []int{3, 4}) || len(removed) != 0 {
		t.Fatalf("Sync() = %v, %v", added, removed)
	}

	added, removed = h.Sync([]int{3, 4})
	if len(added) != 0 || len(removed) != 0 {
		t.Errorf("second Sync() with the same ids = %v, %v", added, removed)
	}

	added, removed = h.Sync([]int{4, 7})
	if !slices.Equal(added, []int{7}) || !slices.Equal(removed, []int{3}) {
		t.Errorf("Sync() = %v, %v, expected [7], [3]", added, removed)
	}
	p, _ := h.Pad(7)
	if p.PlayerIndex() != 0 {
		t.Errorf("replacement pad index = %d, expected the freed 0", p.PlayerIndex())
	}
}

func TestHubSet(t *testing.T) {
	h := NewHub()
	p := h.Connect(5)

	var s State
	s.Buttons[core.ButtonA] = true
	s.Axes[core.AxisLeftX] = -20000
	h.Set(5, s)

	if !p.Button(core.ButtonA) || p.Axis(core.AxisLeftX) != -20000 {
		t.Error("Set() did not reach the pad")
	}

	h.Set(5, State{})
	if p.Button(core.ButtonA) || p.Axis(core.AxisLeftX) != 0 {
		t.Error("Set() did not clear released controls")
	}

	h.Set(6, s) // unknown id is ignored
}

func TestHubDrivesSessionSlots(t *testing.T) {
	h := NewHub()
	h.Connect(1)
	h.Connect(2)

	var src core.DeviceSource = h
	if len(src.Devices()) != 2 {
		t.Fatalf("Devices() = %d, expected 2", len(src.Devices()))
	}
	h.Disconnect(1)
	devs := src.Devices()
	if len(devs) != 1 || devs[0].PlayerIndex() != 1 {
		t.Error("remaining pad should keep player index 1")
	}
}
