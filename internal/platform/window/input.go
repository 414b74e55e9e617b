package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/platform/gamepad"
)

// standardButtons maps the standard (Xbox-style) layout onto game buttons.
var standardButtons = map[core.Button]ebiten.StandardGamepadButton{
	core.ButtonA:         ebiten.StandardGamepadButtonRightBottom,
	core.ButtonB:         ebiten.StandardGamepadButtonRightRight,
	core.ButtonStart:     ebiten.StandardGamepadButtonCenterRight,
	core.ButtonDPadUp:    ebiten.StandardGamepadButtonLeftTop,
	core.ButtonDPadDown:  ebiten.StandardGamepadButtonLeftBottom,
	core.ButtonDPadLeft:  ebiten.StandardGamepadButtonLeftLeft,
	core.ButtonDPadRight: ebiten.StandardGamepadButtonLeftRight,
}

// rawButtons is the fallback for controllers without a known layout.
var rawButtons = map[core.Button]ebiten.GamepadButton{
	core.ButtonA:     ebiten.GamepadButton0,
	core.ButtonB:     ebiten.GamepadButton1,
	core.ButtonStart: ebiten.GamepadButton7,
}

// keyboardKeys drives the keyboard pad, which plays as player one when no
// controller claims that slot.
var keyboardKeys = map[core.Button][]ebiten.Key{
	core.ButtonA:         {ebiten.KeySpace, ebiten.KeyEnter},
	core.ButtonB:         {ebiten.KeyBackspace, ebiten.KeyB},
	core.ButtonStart:     {ebiten.KeyP},
	core.ButtonDPadUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ButtonDPadDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ButtonDPadLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ButtonDPadRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// gamepadIDs lists the connected controllers.
func gamepadIDs() []int {
	raw := ebiten.AppendGamepadIDs(nil)
	ids := make([]int, len(raw))
	for i, id := range raw {
		ids[i] = int(id)
	}
	return ids
}

// readGamepad polls one controller.
func readGamepad(id ebiten.GamepadID) gamepad.State {
	var s gamepad.State

	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		for b, sb := range standardButtons {
			s.Buttons[b] = ebiten.IsStandardGamepadButtonPressed(id, sb)
		}
		s.Axes[core.AxisLeftX] = gamepad.AxisFromFloat(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal))
		s.Axes[core.AxisLeftY] = gamepad.AxisFromFloat(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical))
		return s
	}

	for b, gb := range rawButtons {
		s.Buttons[b] = ebiten.IsGamepadButtonPressed(id, gb)
	}
	if ebiten.GamepadAxisCount(id) >= 2 {
		s.Axes[core.AxisLeftX] = gamepad.AxisFromFloat(ebiten.GamepadAxisValue(id, 0))
		s.Axes[core.AxisLeftY] = gamepad.AxisFromFloat(ebiten.GamepadAxisValue(id, 1))
	}
	return s
}

// readKeyboard copies the held keys onto the keyboard pad.
func readKeyboard(p *core.Pad) {
	for b, keys := range keyboardKeys {
		down := false
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		p.SetButton(b, down)
	}
}
