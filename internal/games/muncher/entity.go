// Package muncher implements the simulation core of the muncher arcade game:
// entities, steering, collision, the per-frame world step, mode modifiers and
// the menu/game session state machine.
//
// Nothing in this package draws or plays anything. Platforms feed input
// through core.Device, receive a Frame to render and implement Sound.
package muncher

import (
	"math"

	"github.com/vovakirdan/muncher/internal/core"
)

// Kind identifies the role of an entity in the world.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindToken
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindToken:
		return "token"
	default:
		return "unknown"
	}
}

// Entity is a sprite-backed object in the arena.
// FX/FY is the authoritative position; Bounds is the integer render rect
// derived from it.
type Entity struct {
	Kind   Kind
	Sprite string // Current sprite id

	FX, FY float64   // Position in arena pixels
	HV, VV float64   // Velocity in pixels per second
	Bounds core.Rect // Render rect, floor of FX/FY

	Angle float64 // Orbit phase in radians, NaN until the first orbit

	ProtectingToken      bool
	Invulnerable         bool
	Immobile             bool
	PreviousInvulnerable bool
	Evil                 bool
	EvilTimer            int // Ticks left while evil

	ControllerID int         // Device slot, players only
	Device       core.Device // nil when the slot is empty
}

func newEntity(kind Kind, sprite SpriteInfo, x, y, hv, vv float64) *Entity {
	e := &Entity{
		Kind:   kind,
		Sprite: sprite.ID,
		FX:     x,
		FY:     y,
		HV:     hv,
		VV:     vv,
		Bounds: core.NewRect(0, 0, sprite.W, sprite.H),
		Angle:  math.NaN(),
	}
	e.Sync()
	return e
}

// Sync derives the render rect from the float position.
func (e *Entity) Sync() {
	e.Bounds.X = core.Floor(e.FX)
	e.Bounds.Y = core.Floor(e.FY)
}

// Integrate advances the position by one step of the current velocity.
func (e *Entity) Integrate(dt float64) {
	e.FX += e.HV * dt
	e.FY += e.VV * dt
}

// Active reports whether a player entity has a connected device.
func (e *Entity) Active() bool {
	return e.Device != nil && e.Device.Attached()
}
