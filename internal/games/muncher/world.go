package muncher

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/registry"
)

// Slots is the number of device slots a session tracks.
const Slots = 2

// playerSpacing separates the spawn points of multiple players.
const playerSpacing = 150

// World is the state of one round: entities, counters and timers.
// A World is driven by a single goroutine.
type World struct {
	rules   Rules
	mode    registry.Mode
	sprites map[string]SpriteInfo
	rng     *rand.Rand
	sound   Sound
	logger  *log.Logger

	Players []*Entity
	Enemies []*Entity
	Tokens  []*Entity

	TokensEaten int
	EnemyEaten  int
	Tick        uint64
	CapReached  bool

	celeryCountdown int
	evil            *Entity
	ended           bool
	events          []Event
}

func newWorld(rules Rules, mode registry.Mode, sprites map[string]SpriteInfo, rng *rand.Rand, sound Sound, logger *log.Logger, controllers []int) *World {
	w := &World{
		rules:   rules,
		mode:    mode,
		sprites: sprites,
		rng:     rng,
		sound:   sound,
		logger:  logger,
	}
	if len(controllers) == 0 {
		controllers = []int{0}
	}
	for _, id := range controllers {
		w.Players = append(w.Players, w.newPlayer(id, len(w.Players)))
	}
	w.populate()
	return w
}

// Mode returns the mode this world was started with.
func (w *World) Mode() registry.Mode {
	return w.mode
}

// GameOver reports whether the enemy-eaten goal has been reached.
func (w *World) GameOver() bool {
	return w.EnemyEaten >= w.mode.Goal
}

// Events returns the events emitted by the most recent step.
func (w *World) Events() []Event {
	return w.events
}

// CeleryCountdown returns the ticks left before the next evil activation.
func (w *World) CeleryCountdown() int {
	return w.celeryCountdown
}

func (w *World) newPlayer(controllerID, seat int) *Entity {
	p := newEntity(KindPlayer, w.sprites[w.mode.PlayerSprite],
		float64(w.rules.Width/2+seat*playerSpacing), float64(w.rules.Height/2), 0, 0)
	p.ControllerID = controllerID
	return p
}

// populate spawns the mode's starting enemies and tokens and resets counters.
func (w *World) populate() {
	w.Enemies = w.Enemies[:0]
	w.Tokens = w.Tokens[:0]
	w.TokensEaten = 0
	w.EnemyEaten = 0
	w.CapReached = false
	w.celeryCountdown = w.rules.EvilCountdown
	w.evil = nil
	w.ended = false

	for range w.mode.StartingEnemies {
		w.spawnEnemy()
	}
	for range w.mode.StartingTokens {
		w.spawnToken()
	}
}

// Relink points every player at the device in its slot.
func (w *World) Relink(slots [Slots]core.Device) {
	for _, p := range w.Players {
		if p.ControllerID >= 0 && p.ControllerID < Slots {
			p.Device = slots[p.ControllerID]
		} else {
			p.Device = nil
		}
	}
}

// Restart resets the round, keeping the player roster and its devices.
func (w *World) Restart() {
	old := w.Players
	w.Players = make([]*Entity, 0, len(old))
	for seat, p := range old {
		np := w.newPlayer(p.ControllerID, seat)
		np.Device = p.Device
		w.Players = append(w.Players, np)
	}
	w.populate()
	w.emit(Event{Kind: EventRestart})
	w.logger.Info("round restarted", "mode", w.mode.ID)
}

// Step advances the world by one tick of dt seconds.
func (w *World) Step(dt float64) {
	w.Tick++
	w.events = w.events[:0]

	// Movement and invulnerability
	moved := 0
	restart := false
	for _, p := range w.Players {
		if !p.Active() {
			continue
		}
		if w.movePlayer(p, dt) {
			moved++
		}
		w.toggleInvulnerable(p)
		if p.Device.Button(core.ButtonA) && w.GameOver() {
			restart = true
		}
	}
	if restart {
		w.Restart()
		moved = 0
	}

	w.resolveCollisions()
	w.updateEnemies(dt)
	w.applyModifiers(dt, moved)

	for _, t := range w.Tokens {
		t.Sync()
	}

	if w.GameOver() && !w.ended {
		w.ended = true
		w.emit(Event{Kind: EventGameOver})
		w.logger.Info("game over", "mode", w.mode.ID, "tokens", w.TokensEaten, "ticks", w.Tick)
	}
}

// movePlayer applies directional input and wraps around arena edges.
// Returns true if the player moved.
func (w *World) movePlayer(p *Entity, dt float64) bool {
	if p.Immobile || w.GameOver() {
		return false
	}

	dev := p.Device
	step := w.mode.PlayerSpeed * dt

	var dx, dy float64
	digital := false
	if dev.Button(core.ButtonDPadUp) {
		dy -= step
		digital = true
	}
	if dev.Button(core.ButtonDPadDown) {
		dy += step
		digital = true
	}
	if dev.Button(core.ButtonDPadLeft) {
		dx -= step
		digital = true
	}
	if dev.Button(core.ButtonDPadRight) {
		dx += step
		digital = true
	}
	if !digital {
		dx = w.stick(dev.Axis(core.AxisLeftX), step)
		dy = w.stick(dev.Axis(core.AxisLeftY), step)
	}
	if dx == 0 && dy == 0 {
		return false
	}

	maxX := float64(w.rules.Width - p.Bounds.W)
	maxY := float64(w.rules.Height - p.Bounds.H)
	margin := w.rules.WrapMargin

	p.FY += dy
	switch {
	case dy < 0 && p.FY < -margin:
		p.FY = maxY
	case dy > 0 && p.FY > maxY+margin:
		p.FY = 0
	}

	p.FX += dx
	switch {
	case dx < 0 && p.FX < -margin:
		p.FX = maxX
	case dx > 0 && p.FX > maxX+margin:
		p.FX = 0
	}

	p.Sync()
	return true
}

// stick converts an analog axis value into a displacement, honoring the
// deadzone.
func (w *World) stick(v int16, step float64) float64 {
	deflection := float64(v) / core.AxisMax
	if deflection <= w.rules.StickDeadzone && deflection >= -w.rules.StickDeadzone {
		return 0
	}
	return deflection * step
}

// toggleInvulnerable follows the A button. The sprite only changes on edges.
func (w *World) toggleInvulnerable(p *Entity) {
	held := p.Device.Button(core.ButtonA)
	if held == p.PreviousInvulnerable {
		p.Invulnerable = held
		p.Immobile = held
		return
	}

	if held {
		p.Sprite = w.mode.InvulnerableSprite
	} else {
		p.Sprite = w.mode.PlayerSprite
	}
	p.Invulnerable = held
	p.Immobile = held
	p.PreviousInvulnerable = held
	w.emit(Event{Kind: EventSpriteSwap, Player: p.ControllerID})
}

func (w *World) resolveCollisions() {
	for _, p := range w.Players {
		if !p.Active() {
			continue
		}

		if !p.Invulnerable {
			for _, e := range w.Enemies {
				if w.rules.Mouth.Bites(p, e) {
					w.EnemyEaten++
					w.relocate(e)
					w.emit(Event{Kind: EventEnemyEaten, Player: p.ControllerID})
				}
			}
		}

		for _, t := range w.Tokens {
			if !w.rules.Mouth.Bites(p, t) {
				continue
			}
			w.sound.PlayCue(w.rules.EatCue)
			w.TokensEaten++
			w.relocate(t)
			w.emit(Event{Kind: EventTokenEaten, Player: p.ControllerID})
			if w.rules.SpawnEveryTokens > 0 && w.TokensEaten%w.rules.SpawnEveryTokens == 0 {
				w.spawnEnemy()
			}
		}
	}
}

// protecting reports whether enemies guard tokens this tick.
func (w *World) protecting() bool {
	n := len(w.Enemies)
	if n == 0 || len(w.Tokens) == 0 || w.mode.Has(registry.NoCircle) {
		return false
	}
	return w.rules.ProtectGroup > 0 && n%w.rules.ProtectGroup == 0
}

// Bucket returns the token index guarded by enemy i out of enemies,
// splitting enemies into equal contiguous groups per token.
func Bucket(i, enemies, tokens int) int {
	if enemies <= 0 || tokens <= 0 {
		return 0
	}
	b := i * tokens / enemies
	if b >= tokens {
		b = tokens - 1
	}
	return b
}

func (w *World) updateEnemies(dt float64) {
	protecting := w.protecting()
	n, t := len(w.Enemies), len(w.Tokens)

	for i, e := range w.Enemies {
		e.ProtectingToken = protecting
		if !protecting {
			e.Integrate(dt)
		} else {
			token := w.Tokens[Bucket(i, n, t)]
			if Distance(e, token) >= w.rules.ProtectDistance {
				Attract(token, e)
				e.Integrate(dt)
			} else {
				Orbit(token, e, w.rules.OrbitRadius, w.rules.OrbitStep)
			}
		}
		w.bounceOffEdges(e)
		e.Sync()
	}
}

func (w *World) bounceOffEdges(e *Entity) {
	maxX := float64(w.rules.Width - e.Bounds.W)
	maxY := float64(w.rules.Height - e.Bounds.H)

	if e.FX < 0 {
		e.FX = 0
		e.HV = -e.HV
	} else if e.FX > maxX {
		e.FX = maxX
		e.HV = -e.HV
	}

	if e.FY < 0 {
		e.FY = 0
		e.VV = -e.VV
	} else if e.FY > maxY {
		e.FY = maxY
		e.VV = -e.VV
	}
}

// relocate moves an entity to a uniformly random in-bounds position.
func (w *World) relocate(e *Entity) {
	e.FX, e.FY = w.randPosition(e.Bounds.W, e.Bounds.H)
	e.Sync()
}

// randPosition returns a uniform integer position at which a sprite of the
// given size lies fully inside the arena.
func (w *World) randPosition(width, height int) (float64, float64) {
	x := w.randInt(0, max(w.rules.Width-width, 0))
	y := w.randInt(0, max(w.rules.Height-height, 0))
	return float64(x), float64(y)
}

// spawnEnemy adds one enemy unless suppressed by the mode or the cap.
// Returns true if an enemy was added.
func (w *World) spawnEnemy() bool {
	if w.mode.Has(registry.NoEnemy) {
		return false
	}
	if len(w.Enemies) >= w.rules.EnemyCap {
		if !w.CapReached {
			w.CapReached = true
			w.emit(Event{Kind: EventCapReached})
			w.logger.Warn("enemy cap reached", "cap", w.rules.EnemyCap)
		}
		return false
	}

	sprite := w.sprites[w.mode.EnemySprite]
	if w.mode.Has(registry.RandomSizeEnemies) {
		scale := w.randFloat(w.rules.SizeMin, w.rules.SizeMax)
		sprite.W = max(1, int(float64(sprite.W)*scale))
		sprite.H = max(1, int(float64(sprite.H)*scale))
	}

	x, y := w.randPosition(sprite.W, sprite.H)
	hv := w.randFloat(w.rules.EnemySpeedMin, w.rules.EnemySpeedMax)
	vv := w.randFloat(w.rules.EnemySpeedMin, w.rules.EnemySpeedMax)

	w.Enemies = append(w.Enemies, newEntity(KindEnemy, sprite, x, y, hv, vv))
	w.emit(Event{Kind: EventEnemySpawned})
	return true
}

func (w *World) spawnToken() {
	sprite := w.sprites[w.mode.TokenSprite]
	x, y := w.randPosition(sprite.W, sprite.H)
	w.Tokens = append(w.Tokens, newEntity(KindToken, sprite, x, y, 0, 0))
}

// randInt returns a uniform integer in [lo, hi].
func (w *World) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo+1)
}

// randFloat returns a uniform float in [lo, hi).
func (w *World) randFloat(lo, hi float64) float64 {
	return lo + w.rng.Float64()*(hi-lo)
}

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}
