package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	def := DefaultMuncherConfig()

	if cfg.Arena != def.Arena {
		t.Errorf("arena = %+v, expected %+v", cfg.Arena, def.Arena)
	}
	if cfg.Player != def.Player {
		t.Errorf("player = %+v, expected %+v", cfg.Player, def.Player)
	}
	if cfg.Enemy != def.Enemy {
		t.Errorf("enemy = %+v, expected %+v", cfg.Enemy, def.Enemy)
	}
	if cfg.AngryCelery != def.AngryCelery {
		t.Errorf("angry_celery = %+v, expected %+v", cfg.AngryCelery, def.AngryCelery)
	}
	if len(cfg.Modes) != len(def.Modes) {
		t.Fatalf("got %d modes, expected %d", len(cfg.Modes), len(def.Modes))
	}
	for i := range cfg.Modes {
		if cfg.Modes[i].ID != def.Modes[i].ID {
			t.Errorf("mode %d id = %q, expected %q", i, cfg.Modes[i].ID, def.Modes[i].ID)
		}
	}
	if len(cfg.Sprites) != len(def.Sprites) {
		t.Errorf("got %d sprites, expected %d", len(cfg.Sprites), len(def.Sprites))
	}
}

func TestDefaultModeIsClassic(t *testing.T) {
	m := DefaultMuncherConfig().Modes[0]
	if m.ID != "classic" {
		t.Fatalf("first mode = %q, expected classic", m.ID)
	}
	if m.Goal != 3 || m.StartingEnemies != 1 || m.StartingTokens != 1 {
		t.Errorf("classic = goal %d, enemies %d, tokens %d; expected 3, 1, 1",
			m.Goal, m.StartingEnemies, m.StartingTokens)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
enemy:
  cap: 50
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Enemy.Cap != 50 {
		t.Errorf("cap = %d, expected 50", cfg.Enemy.Cap)
	}
	// Untouched values keep defaults
	if cfg.Enemy.SpeedMax != 240 {
		t.Errorf("speed_max = %f, expected default 240", cfg.Enemy.SpeedMax)
	}
	if len(cfg.Modes) != len(DefaultMuncherConfig().Modes) {
		t.Errorf("modes should keep defaults when not given")
	}
}

func TestParseReplacesModes(t *testing.T) {
	data := []byte(`
modes:
  - id: solo
    name: Solo
    player_sprite: cage
    invulnerable_sprite: cage_armor
    enemy_sprite: celery
    evil_enemy_sprite: celery_mad
    token_sprite: chicken
    goal: 7
    starting_tokens: 1
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(cfg.Modes) != 1 || cfg.Modes[0].ID != "solo" {
		t.Fatalf("modes = %+v, expected only solo", cfg.Modes)
	}
	if cfg.Modes[0].Goal != 7 {
		t.Errorf("goal = %d, expected 7", cfg.Modes[0].Goal)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MuncherConfig)
		want   string
	}{
		{"no modes", func(c *MuncherConfig) { c.Modes = nil }, "at least one mode"},
		{"bad arena", func(c *MuncherConfig) { c.Arena.Width = 0 }, "arena size"},
		{"speed range", func(c *MuncherConfig) { c.Enemy.SpeedMin = 500 }, "speed_min"},
		{"duplicate id", func(c *MuncherConfig) { c.Modes[1].ID = c.Modes[0].ID }, "duplicate mode id"},
		{"zero goal", func(c *MuncherConfig) { c.Modes[0].Goal = 0 }, "goal must be positive"},
		{"protect group", func(c *MuncherConfig) { c.Enemy.ProtectGroup = 0 }, "protect_group"},
		{"zero speed factor", func(c *MuncherConfig) { c.AngryCelery.SpeedFactor = 0 }, "speed_factor"},
		{"negative speed factor", func(c *MuncherConfig) { c.AngryCelery.SpeedFactor = -2 }, "speed_factor"},
		{"nan speed factor", func(c *MuncherConfig) { c.AngryCelery.SpeedFactor = math.NaN() }, "speed_factor"},
		{"negative countdown", func(c *MuncherConfig) { c.AngryCelery.Countdown = -1 }, "countdown"},
		{"negative duration", func(c *MuncherConfig) { c.AngryCelery.Duration = -1 }, "duration"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMuncherConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadMuncherCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("arena:\n  width: 800\n  height: 600\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMuncher(path)
	if err != nil {
		t.Fatalf("LoadMuncher() failed: %v", err)
	}
	if cfg.Arena.Width != 800 || cfg.Arena.Height != 600 {
		t.Errorf("arena = %+v, expected 800x600", cfg.Arena)
	}
}

func TestLoadMuncherMissingCustomPath(t *testing.T) {
	_, err := LoadMuncher(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadMuncher() should fail for a missing custom file")
	}
}

func TestLoadMuncherInvalidCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("modes: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMuncher(path); err == nil {
		t.Fatal("LoadMuncher() should reject an empty mode table")
	}
}

func TestLoadMuncherRejectsZeroSpeedFactor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "angry.yaml")
	data := "angry_celery:\n  countdown: 1\n  duration: 1\n  speed_factor: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadMuncher(path)
	if err == nil {
		t.Fatal("LoadMuncher() should reject speed_factor 0")
	}
	if !strings.Contains(err.Error(), "speed_factor") {
		t.Errorf("error %q should mention speed_factor", err)
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		name    string
		wantMin float64
		wantErr bool
	}{
		{"", 120, false},
		{"normal", 120, false},
		{"easy", 90, false},
		{"hard", 180, false},
		{"insane", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			preset, err := ParseDifficulty(tc.name)
			if tc.wantErr {
				if err == nil {
					t.Fatal("ParseDifficulty() should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDifficulty() failed: %v", err)
			}
			cfg := DefaultMuncherConfig()
			ApplyMuncherPreset(&cfg, preset)
			if cfg.Enemy.SpeedMin != tc.wantMin {
				t.Errorf("speed_min = %f, expected %f", cfg.Enemy.SpeedMin, tc.wantMin)
			}
		})
	}
}
