package muncher

import "github.com/vovakirdan/muncher/internal/core"

// Hitbox is a rectangle placed relative to an entity's render rect.
type Hitbox struct {
	X, Y, W, H int
}

// DefaultMouth is the mouth region of the default player sprite.
var DefaultMouth = Hitbox{X: 27, Y: 88, W: 40, H: 20}

// Of returns the hitbox in arena coordinates for the given entity.
func (h Hitbox) Of(e *Entity) core.Rect {
	return e.Bounds.Offset(h.X, h.Y, h.W, h.H)
}

// Bites reports whether the player's mouth touches the other entity.
// Shared edges count as contact.
func (h Hitbox) Bites(player, other *Entity) bool {
	return h.Of(player).Touches(other.Bounds)
}
