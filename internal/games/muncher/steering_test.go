package muncher

import (
	"math"
	"testing"
)

func TestAttractFlipsSignOnly(t *testing.T) {
	tests := []struct {
		name           string
		target, mover  Entity
		wantHV, wantVV float64
	}{
		{
			name:   "target left, moving right",
			target: Entity{FX: 0, FY: 500},
			mover:  Entity{FX: 100, FY: 100, HV: 5, VV: 7},
			wantHV: -5, wantVV: 7,
		},
		{
			name:   "target right, moving left",
			target: Entity{FX: 300, FY: 500},
			mover:  Entity{FX: 100, FY: 100, HV: -5, VV: 7},
			wantHV: 5, wantVV: 7,
		},
		{
			name:   "larger FY is top",
			target: Entity{FX: 100, FY: 500},
			mover:  Entity{FX: 100, FY: 100, HV: 5, VV: -7},
			wantHV: 5, wantVV: 7,
		},
		{
			name:   "smaller FY is bottom",
			target: Entity{FX: 100, FY: 0},
			mover:  Entity{FX: 100, FY: 100, HV: 5, VV: 7},
			wantHV: 5, wantVV: -7,
		},
		{
			name:   "equal FY counts as bottom",
			target: Entity{FX: 100, FY: 100},
			mover:  Entity{FX: 100, FY: 100, HV: 5, VV: 7},
			wantHV: 5, wantVV: -7,
		},
		{
			name:   "equal FX never flips",
			target: Entity{FX: 100, FY: 100},
			mover:  Entity{FX: 100, FY: 100, HV: -5, VV: -7},
			wantHV: -5, wantVV: -7,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			target, mover := tc.target, tc.mover
			Attract(&target, &mover)
			if mover.HV != tc.wantHV || mover.VV != tc.wantVV {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", mover.HV, mover.VV, tc.wantHV, tc.wantVV)
			}
		})
	}
}

func TestAttractIsStable(t *testing.T) {
	target := Entity{FX: 0, FY: 0}
	mover := Entity{FX: 100, FY: 0, HV: 5}

	Attract(&target, &mover)
	if mover.HV != -5 {
		t.Fatalf("first Attract: HV = %v, expected -5", mover.HV)
	}
	Attract(&target, &mover)
	if mover.HV != -5 {
		t.Errorf("second Attract: HV = %v, expected to stay -5", mover.HV)
	}
}

func TestOrbitFromUnsetAngle(t *testing.T) {
	center := Entity{FX: 500, FY: 400}
	orbiter := Entity{Angle: math.NaN()}

	Orbit(&center, &orbiter, 190, 0.04)

	if orbiter.FX != 690 || orbiter.FY != 400 {
		t.Errorf("position = (%v, %v), expected (690, 400)", orbiter.FX, orbiter.FY)
	}
	if orbiter.Angle != 0.04 {
		t.Errorf("Angle = %v, expected 0.04", orbiter.Angle)
	}
	if orbiter.Bounds.X != 690 || orbiter.Bounds.Y != 400 {
		t.Errorf("Bounds = %+v, expected synced to (690, 400)", orbiter.Bounds)
	}

	Orbit(&center, &orbiter, 190, 0.04)
	wantX := 500 + 190*math.Cos(0.04)
	wantY := 400 + 190*math.Sin(0.04)
	if math.Abs(orbiter.FX-wantX) > 1e-9 || math.Abs(orbiter.FY-wantY) > 1e-9 {
		t.Errorf("second orbit = (%v, %v), expected (%v, %v)", orbiter.FX, orbiter.FY, wantX, wantY)
	}
}

func TestOrbitWrapsAngle(t *testing.T) {
	center := Entity{}
	orbiter := Entity{Angle: 2*math.Pi - 0.01}

	Orbit(&center, &orbiter, 10, 0.04)

	if math.Abs(orbiter.Angle-0.03) > 1e-9 {
		t.Errorf("Angle = %v, expected 0.03", orbiter.Angle)
	}
}

func TestDistance(t *testing.T) {
	a := Entity{FX: 0, FY: 0}
	b := Entity{FX: 3, FY: 4}
	if d := Distance(&a, &b); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}
}

func TestMouthHitbox(t *testing.T) {
	player := &Entity{}
	player.FX, player.FY = 100, 200
	player.Bounds.W, player.Bounds.H = 94, 110
	player.Sync()

	mouth := DefaultMouth.Of(player)
	if mouth.X != 127 || mouth.Y != 288 || mouth.W != 40 || mouth.H != 20 {
		t.Fatalf("mouth = %+v, expected (127, 288, 40, 20)", mouth)
	}

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"overlapping", 130, 290, true},
		{"touching right edge", 167, 288, true},
		{"touching bottom edge", 127, 308, true},
		{"one pixel past right edge", 168, 288, false},
		{"far away", 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			other := &Entity{}
			other.Bounds.X, other.Bounds.Y, other.Bounds.W, other.Bounds.H = tc.x, tc.y, 10, 10
			if got := DefaultMouth.Bites(player, other); got != tc.expected {
				t.Errorf("Bites() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
