package muncher

import "github.com/vovakirdan/muncher/internal/config"

// Rules holds the mode-independent constants of the simulation.
type Rules struct {
	Width, Height int // Arena size in pixels

	Mouth         Hitbox
	WrapMargin    float64 // Distance past an edge before a player wraps
	StickDeadzone float64 // Fraction of full deflection ignored

	EnemySpeedMin    float64
	EnemySpeedMax    float64
	EnemyCap         int
	SpawnEveryTokens int
	ProtectGroup     int
	ProtectDistance  float64
	OrbitRadius      float64
	OrbitStep        float64
	BounceNudge      float64

	EvilCountdown   int // Ticks between angry celery activations
	EvilDuration    int
	EvilSpeedFactor float64

	SizeMin, SizeMax float64

	EatCue   string
	PauseCue string
	Music    string
}

// RulesFromConfig extracts simulation rules from the loaded configuration.
func RulesFromConfig(cfg config.MuncherConfig) Rules {
	return Rules{
		Width:  cfg.Arena.Width,
		Height: cfg.Arena.Height,
		Mouth: Hitbox{
			X: cfg.Player.MouthX,
			Y: cfg.Player.MouthY,
			W: cfg.Player.MouthWidth,
			H: cfg.Player.MouthHeight,
		},
		WrapMargin:       cfg.Player.WrapMargin,
		StickDeadzone:    cfg.Player.StickDeadzone,
		EnemySpeedMin:    cfg.Enemy.SpeedMin,
		EnemySpeedMax:    cfg.Enemy.SpeedMax,
		EnemyCap:         cfg.Enemy.Cap,
		SpawnEveryTokens: cfg.Enemy.SpawnEveryTokens,
		ProtectGroup:     cfg.Enemy.ProtectGroup,
		ProtectDistance:  cfg.Enemy.ProtectDistance,
		OrbitRadius:      cfg.Enemy.OrbitRadius,
		OrbitStep:        cfg.Enemy.OrbitStep,
		BounceNudge:      cfg.Enemy.BounceNudge,
		EvilCountdown:    cfg.AngryCelery.Countdown,
		EvilDuration:     cfg.AngryCelery.Duration,
		EvilSpeedFactor:  cfg.AngryCelery.SpeedFactor,
		SizeMin:          cfg.RandomSize.Min,
		SizeMax:          cfg.RandomSize.Max,
		EatCue:           cfg.Sounds.Eat,
		PauseCue:         cfg.Sounds.Pause,
		Music:            cfg.Sounds.Music,
	}
}

// DefaultRules returns the rules of the default configuration.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultMuncherConfig())
}
