package config

import (
	_ "embed"
)

//go:embed defaults/muncher.yaml
var defaultMuncherYAML []byte

// DefaultMuncherConfig returns the hardcoded default configuration.
// It mirrors defaults/muncher.yaml.
func DefaultMuncherConfig() MuncherConfig {
	return MuncherConfig{
		Arena: ArenaConfig{
			Width:  1920,
			Height: 1080,
		},
		Player: PlayerConfig{
			MouthX:        27,
			MouthY:        88,
			MouthWidth:    40,
			MouthHeight:   20,
			WrapMargin:    80,
			StickDeadzone: 0.1,
		},
		Enemy: EnemyConfig{
			SpeedMin:         120,
			SpeedMax:         240,
			Cap:              200,
			SpawnEveryTokens: 3,
			ProtectGroup:     4,
			ProtectDistance:  200,
			OrbitRadius:      190,
			OrbitStep:        0.04,
			BounceNudge:      3,
		},
		AngryCelery: AngryCeleryConfig{
			Countdown:   1800, // 30 seconds at 60fps
			Duration:    900,
			SpeedFactor: 3,
		},
		RandomSize: RandomSizeConfig{
			Min: 0.5,
			Max: 2.0,
		},
		Sounds: SoundConfig{
			Eat:   "pop",
			Pause: "pop",
			Music: "background",
		},
		Sprites: map[string]SpriteConfig{
			"cage":       {Width: 94, Height: 110, Glyph: "@", Color: "bright_yellow"},
			"cage_armor": {Width: 94, Height: 110, Glyph: "#", Color: "bright_cyan"},
			"celery":     {Width: 40, Height: 96, Glyph: "|", Color: "green"},
			"celery_mad": {Width: 40, Height: 96, Glyph: "!", Color: "bright_red"},
			"chicken":    {Width: 64, Height: 64, Glyph: "o", Color: "orange"},
			"ghost":      {Width: 94, Height: 110, Glyph: "@", Color: "gray"},
			"ghost_hide": {Width: 94, Height: 110, Glyph: "%", Color: "white"},
			"bat":        {Width: 64, Height: 40, Glyph: "v", Color: "magenta"},
			"moth":       {Width: 64, Height: 40, Glyph: "V", Color: "bright_magenta"},
			"candle":     {Width: 32, Height: 72, Glyph: "i", Color: "yellow"},
		},
		Modes: []ModeConfig{
			{
				ID: "classic", Name: "Classic",
				PlayerSprite: "cage", InvulnerableSprite: "cage_armor",
				EnemySprite: "celery", EvilEnemySprite: "celery_mad", TokenSprite: "chicken",
				EnemyLabel: "Celery", TokenLabel: "Chicken",
				Goal: 3, StartingEnemies: 1, StartingTokens: 1, PlayerSpeed: 250,
			},
			{
				ID: "picnic", Name: "Picnic",
				PlayerSprite: "cage", InvulnerableSprite: "cage_armor",
				EnemySprite: "celery", EvilEnemySprite: "celery_mad", TokenSprite: "chicken",
				EnemyLabel: "Celery", TokenLabel: "Chicken",
				Goal: 3, StartingEnemies: 0, StartingTokens: 5, PlayerSpeed: 300,
				Modifiers: []string{"noEnemy"},
			},
			{
				ID: "angry", Name: "Angry Celery",
				PlayerSprite: "cage", InvulnerableSprite: "cage_armor",
				EnemySprite: "celery", EvilEnemySprite: "celery_mad", TokenSprite: "chicken",
				EnemyLabel: "Celery", TokenLabel: "Chicken",
				Goal: 5, StartingEnemies: 2, StartingTokens: 2, PlayerSpeed: 275,
				Modifiers: []string{"angryCelery"},
			},
			{
				ID: "bumper", Name: "Bumper Crop",
				PlayerSprite: "cage", InvulnerableSprite: "cage_armor",
				EnemySprite: "celery", EvilEnemySprite: "celery_mad", TokenSprite: "chicken",
				EnemyLabel: "Celery", TokenLabel: "Chicken",
				Goal: 5, StartingEnemies: 4, StartingTokens: 2, PlayerSpeed: 250,
				Modifiers: []string{"enemiesBounce", "randomSizeEnemies"},
			},
			{
				ID: "stampede", Name: "Stampede",
				PlayerSprite: "cage", InvulnerableSprite: "cage_armor",
				EnemySprite: "celery", EvilEnemySprite: "celery_mad", TokenSprite: "chicken",
				EnemyLabel: "Celery", TokenLabel: "Chicken",
				Goal: 10, StartingEnemies: 1, StartingTokens: 3, PlayerSpeed: 350,
				Modifiers: []string{"spawnEnemyOnMove", "noCircle"},
			},
			{
				ID: "haunted", Name: "Haunted",
				PlayerSprite: "ghost", InvulnerableSprite: "ghost_hide",
				EnemySprite: "bat", EvilEnemySprite: "moth", TokenSprite: "candle",
				EnemyLabel: "Bats", TokenLabel: "Candles",
				Goal: 3, StartingEnemies: 4, StartingTokens: 2, PlayerSpeed: 250,
				Modifiers: []string{"angryCelery", "altUI", "blackEndScreen"},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMuncherYAML
}
