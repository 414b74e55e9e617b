package muncher

import "math"

// Horizontal classifies where a target lies horizontally relative to a mover.
type Horizontal int

const (
	HorizontalEqual Horizontal = iota
	HorizontalRight
	HorizontalLeft
)

// Vertical classifies where a target lies vertically relative to a mover.
// There is no equal class: a zero delta counts as VerticalBottom.
type Vertical int

const (
	VerticalBottom Vertical = iota
	VerticalTop
)

// classify returns the direction classes of target relative to mover.
// VerticalTop means the target's FY is greater than the mover's.
func classify(target, mover *Entity) (Horizontal, Vertical) {
	h := HorizontalEqual
	switch dx := target.FX - mover.FX; {
	case dx > 0:
		h = HorizontalRight
	case dx < 0:
		h = HorizontalLeft
	}

	v := VerticalBottom
	if target.FY-mover.FY > 0 {
		v = VerticalTop
	}
	return h, v
}

// Attract flips the sign of the mover's velocity components so it heads
// toward target. Magnitudes are never changed.
func Attract(target, mover *Entity) {
	h, v := classify(target, mover)

	if (h == HorizontalLeft && mover.HV > 0) || (h == HorizontalRight && mover.HV < 0) {
		mover.HV = -mover.HV
	}
	if (v == VerticalTop && mover.VV < 0) || (v == VerticalBottom && mover.VV > 0) {
		mover.VV = -mover.VV
	}
}

// Orbit places orbiter on a circle of the given radius around center's
// position and advances its phase by step radians.
func Orbit(center, orbiter *Entity, radius, step float64) {
	if math.IsNaN(orbiter.Angle) {
		orbiter.Angle = 0
	}

	orbiter.FX = center.FX + radius*math.Cos(orbiter.Angle)
	orbiter.FY = center.FY + radius*math.Sin(orbiter.Angle)
	orbiter.Angle = math.Mod(orbiter.Angle+step, 2*math.Pi)
	orbiter.Sync()
}

// Distance returns the Euclidean distance between two entity positions.
func Distance(a, b *Entity) float64 {
	return math.Hypot(a.FX-b.FX, a.FY-b.FY)
}
