package muncher

import "github.com/vovakirdan/muncher/internal/registry"

// applyModifiers runs the per-tick effects of the mode's modifiers.
// moved is the number of players that moved this tick.
func (w *World) applyModifiers(dt float64, moved int) {
	if w.mode.Has(registry.SpawnEnemyOnMove) {
		for range moved {
			w.spawnEnemy()
		}
	}
	if w.mode.Has(registry.AngryCelery) {
		w.angryCelery()
	}
	if w.mode.Has(registry.EnemiesBounce) {
		w.bounceEnemies(dt)
	}
}

// angryCelery counts down to the next activation while no enemy is evil.
// At zero, enemy 0 turns evil for the configured duration at boosted speed.
func (w *World) angryCelery() {
	if w.evil != nil {
		w.evil.EvilTimer--
		if w.evil.EvilTimer > 0 {
			return
		}
		e := w.evil
		e.Evil = false
		e.EvilTimer = 0
		e.HV /= w.rules.EvilSpeedFactor
		e.VV /= w.rules.EvilSpeedFactor
		e.Sprite = w.mode.EnemySprite
		w.evil = nil
		w.celeryCountdown = w.rules.EvilCountdown
		w.emit(Event{Kind: EventEvilEnd})
		return
	}

	w.celeryCountdown--
	if w.celeryCountdown > 0 {
		return
	}
	if len(w.Enemies) == 0 {
		w.celeryCountdown = w.rules.EvilCountdown
		return
	}

	e := w.Enemies[0]
	e.Evil = true
	e.EvilTimer = w.rules.EvilDuration
	e.HV *= w.rules.EvilSpeedFactor
	e.VV *= w.rules.EvilSpeedFactor
	e.Sprite = w.mode.EvilEnemySprite
	w.evil = e
	w.emit(Event{Kind: EventEvilStart})
	w.logger.Debug("enemy turned evil", "ticks", w.rules.EvilDuration)
}

// bounceEnemies tests every ordered pair of enemies. On overlap the first
// enemy of the pair reverses and is nudged along its new heading.
func (w *World) bounceEnemies(dt float64) {
	nudge := dt * w.rules.BounceNudge
	for i, a := range w.Enemies {
		for j, b := range w.Enemies {
			if i == j || !a.Bounds.Intersects(b.Bounds) {
				continue
			}
			a.HV = -a.HV
			a.VV = -a.VV
			a.FX += a.HV * nudge
			a.FY += a.VV * nudge
			a.Sync()
		}
	}
}
