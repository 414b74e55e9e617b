package core

import "testing"

func TestPadButtonsAndAxes(t *testing.T) {
	p := NewPad(1)

	if !p.Attached() {
		t.Error("NewPad should be attached")
	}
	if p.PlayerIndex() != 1 {
		t.Errorf("PlayerIndex() = %d, expected 1", p.PlayerIndex())
	}

	p.SetButton(ButtonA, true)
	p.SetAxis(AxisLeftX, -20000)
	if !p.Button(ButtonA) {
		t.Error("ButtonA should be held")
	}
	if p.Button(ButtonB) {
		t.Error("ButtonB should not be held")
	}
	if p.Axis(AxisLeftX) != -20000 {
		t.Errorf("Axis(AxisLeftX) = %d, expected -20000", p.Axis(AxisLeftX))
	}

	// Out of range controls are ignored
	p.SetButton(ButtonCount, true)
	if p.Button(ButtonCount) {
		t.Error("out of range button should read false")
	}
	if p.Axis(Axis(-1)) != 0 {
		t.Error("out of range axis should read 0")
	}

	p.Release()
	if p.Button(ButtonA) || p.Axis(AxisLeftX) != 0 {
		t.Error("Release should clear buttons and axes")
	}
}

func TestPadsDevicesSkipsDetached(t *testing.T) {
	a := NewPad(0)
	b := NewPad(1)
	b.SetAttached(false)

	devices := Pads{a, b, nil}.Devices()
	if len(devices) != 1 {
		t.Fatalf("Devices() returned %d devices, expected 1", len(devices))
	}
	if devices[0].PlayerIndex() != 0 {
		t.Errorf("expected pad 0, got index %d", devices[0].PlayerIndex())
	}
}

func TestButtonString(t *testing.T) {
	if ButtonStart.String() != "Start" {
		t.Errorf("ButtonStart.String() = %q", ButtonStart.String())
	}
	if Button(99).String() != "Unknown" {
		t.Errorf("Button(99).String() = %q", Button(99).String())
	}
}
