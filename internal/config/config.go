// Package config provides YAML-based game configuration loading and
// difficulty presets for the muncher game.
package config

// MuncherConfig contains all configuration for the game: arena, rule
// constants, the sprite catalog and the ordered mode table.
type MuncherConfig struct {
	Arena       ArenaConfig             `yaml:"arena"`
	Player      PlayerConfig            `yaml:"player"`
	Enemy       EnemyConfig             `yaml:"enemy"`
	AngryCelery AngryCeleryConfig       `yaml:"angry_celery"`
	RandomSize  RandomSizeConfig        `yaml:"random_size"`
	Sounds      SoundConfig             `yaml:"sounds"`
	Sprites     map[string]SpriteConfig `yaml:"sprites"`
	Modes       []ModeConfig            `yaml:"modes"`
}

// ArenaConfig defines the logical playfield size in pixels.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines player movement and hitbox parameters.
type PlayerConfig struct {
	MouthX        int     `yaml:"mouth_x"`
	MouthY        int     `yaml:"mouth_y"`
	MouthWidth    int     `yaml:"mouth_width"`
	MouthHeight   int     `yaml:"mouth_height"`
	WrapMargin    float64 `yaml:"wrap_margin"`    // Distance past an edge before wrapping
	StickDeadzone float64 `yaml:"stick_deadzone"` // Fraction of full deflection ignored
}

// EnemyConfig defines enemy spawning and steering parameters.
type EnemyConfig struct {
	SpeedMin         float64 `yaml:"speed_min"`
	SpeedMax         float64 `yaml:"speed_max"`
	Cap              int     `yaml:"cap"`
	SpawnEveryTokens int     `yaml:"spawn_every_tokens"`
	ProtectGroup     int     `yaml:"protect_group"` // Enemies protect tokens when count % group == 0
	ProtectDistance  float64 `yaml:"protect_distance"`
	OrbitRadius      float64 `yaml:"orbit_radius"`
	OrbitStep        float64 `yaml:"orbit_step"` // Radians per tick
	BounceNudge      float64 `yaml:"bounce_nudge"`
}

// AngryCeleryConfig defines the evil enemy timers.
type AngryCeleryConfig struct {
	Countdown   int     `yaml:"countdown"`    // Ticks between activations
	Duration    int     `yaml:"duration"`     // Ticks an enemy stays evil
	SpeedFactor float64 `yaml:"speed_factor"` // Velocity multiplier while evil
}

// RandomSizeConfig defines the spawn-time scale range.
type RandomSizeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// SoundConfig names the audio cues.
type SoundConfig struct {
	Eat   string `yaml:"eat"`
	Pause string `yaml:"pause"`
	Music string `yaml:"music"`
}

// SpriteConfig describes one sprite asset.
// Width and Height are arena pixels; Glyph and Color are used by the
// terminal renderer and Color also by the window renderer.
type SpriteConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Glyph  string `yaml:"glyph"`
	Color  string `yaml:"color"`
}

// ModeConfig describes one selectable game mode.
type ModeConfig struct {
	ID                 string   `yaml:"id"`
	Name               string   `yaml:"name"`
	PlayerSprite       string   `yaml:"player_sprite"`
	InvulnerableSprite string   `yaml:"invulnerable_sprite"`
	EnemySprite        string   `yaml:"enemy_sprite"`
	EvilEnemySprite    string   `yaml:"evil_enemy_sprite"`
	TokenSprite        string   `yaml:"token_sprite"`
	EnemyLabel         string   `yaml:"enemy_label"`
	TokenLabel         string   `yaml:"token_label"`
	Goal               int      `yaml:"goal"`
	StartingEnemies    int      `yaml:"starting_enemies"`
	StartingTokens     int      `yaml:"starting_tokens"`
	PlayerSpeed        float64  `yaml:"player_speed"`
	Modifiers          []string `yaml:"modifiers"`
}

// SpriteIDs returns every sprite id referenced by the mode.
func (m ModeConfig) SpriteIDs() []string {
	return []string{m.PlayerSprite, m.InvulnerableSprite, m.EnemySprite, m.EvilEnemySprite, m.TokenSprite}
}
