package muncher

import "math"

// entityFields is the number of ints recorded per entity.
const entityFields = 11

// Snapshot contains the complete round state for determinism checks and
// debugging. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64
	Screen          int
	Paused          bool
	ModeIndex       int
	ModeID          string
	TokensEaten     int
	EnemyEaten      int
	CeleryCountdown int
	CapReached      bool

	// Entities are flattened, 11 ints each: X, Y, W, H, then the bits of
	// FX, FY, HV, VV, Angle, then a flag word and EvilTimer.
	PlayerData []int
	EnemyData  []int
	TokenData  []int
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Screen:    int(s.screen),
		Paused:    s.paused,
		ModeIndex: s.modeIndex,
	}
	w := s.world
	if w == nil {
		return snap
	}

	snap.Tick = w.Tick
	snap.ModeID = w.mode.ID
	snap.TokensEaten = w.TokensEaten
	snap.EnemyEaten = w.EnemyEaten
	snap.CeleryCountdown = w.celeryCountdown
	snap.CapReached = w.CapReached
	snap.PlayerData = flatten(w.Players)
	snap.EnemyData = flatten(w.Enemies)
	snap.TokenData = flatten(w.Tokens)
	return snap
}

func flatten(entities []*Entity) []int {
	data := make([]int, 0, len(entities)*entityFields)
	for _, e := range entities {
		angle := e.Angle
		if math.IsNaN(angle) {
			angle = -1
		}
		data = append(data,
			e.Bounds.X, e.Bounds.Y, e.Bounds.W, e.Bounds.H,
			int(math.Float64bits(e.FX)),  //#nosec G115 -- hash input
			int(math.Float64bits(e.FY)),  //#nosec G115 -- hash input
			int(math.Float64bits(e.HV)),  //#nosec G115 -- hash input
			int(math.Float64bits(e.VV)),  //#nosec G115 -- hash input
			int(math.Float64bits(angle)), //#nosec G115 -- hash input
			flagWord(e),
			e.EvilTimer,
		)
	}
	return data
}

func flagWord(e *Entity) int {
	var f int
	for i, set := range []bool{e.ProtectingToken, e.Invulnerable, e.Immobile, e.PreviousInvulnerable, e.Evil} {
		if set {
			f |= 1 << i
		}
	}
	return f
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Screen) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + uint64(snap.ModeIndex)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TokensEaten)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyEaten)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CeleryCountdown) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.CapReached)

	for _, c := range snap.ModeID {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, data := range [][]int{snap.PlayerData, snap.EnemyData, snap.TokenData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
