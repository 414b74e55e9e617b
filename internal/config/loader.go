package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config dirs.
const ConfigFile = "muncher.yaml"

// LoadMuncher loads the game configuration.
// Search order: customPath -> ~/.muncher/configs/muncher.yaml -> ./configs/muncher.yaml -> embedded default
func LoadMuncher(customPath string) (MuncherConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MuncherConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return MuncherConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultMuncherYAML)
	if err != nil {
		return DefaultMuncherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so partial files only
// override what they mention, and validates the result.
func Parse(data []byte) (MuncherConfig, error) {
	cfg := DefaultMuncherConfig()
	// Modes and sprites are replaced wholesale when present
	var probe struct {
		Sprites map[string]SpriteConfig `yaml:"sprites"`
		Modes   []ModeConfig            `yaml:"modes"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return MuncherConfig{}, err
	}
	if probe.Sprites != nil {
		cfg.Sprites = nil
	}
	if probe.Modes != nil {
		cfg.Modes = nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MuncherConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MuncherConfig{}, err
	}
	return cfg, nil
}

// Validate checks structural consistency of the configuration.
// Modifier names are checked by the registry when modes are resolved.
func (c MuncherConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size must be positive, got %dx%d", c.Arena.Width, c.Arena.Height))
	}
	if c.Enemy.SpeedMin > c.Enemy.SpeedMax {
		errs = append(errs, fmt.Errorf("enemy speed_min %.1f exceeds speed_max %.1f", c.Enemy.SpeedMin, c.Enemy.SpeedMax))
	}
	if c.Enemy.ProtectGroup <= 0 {
		errs = append(errs, errors.New("enemy protect_group must be positive"))
	}
	if c.Enemy.SpawnEveryTokens <= 0 {
		errs = append(errs, errors.New("enemy spawn_every_tokens must be positive"))
	}
	if !(c.AngryCelery.SpeedFactor > 0) {
		errs = append(errs, fmt.Errorf("angry_celery speed_factor must be positive, got %v", c.AngryCelery.SpeedFactor))
	}
	if c.AngryCelery.Countdown < 0 || c.AngryCelery.Duration < 0 {
		errs = append(errs, errors.New("angry_celery countdown and duration must not be negative"))
	}
	if c.RandomSize.Min <= 0 || c.RandomSize.Min > c.RandomSize.Max {
		errs = append(errs, fmt.Errorf("random_size range [%.2f, %.2f] is invalid", c.RandomSize.Min, c.RandomSize.Max))
	}
	if len(c.Modes) == 0 {
		errs = append(errs, errors.New("at least one mode is required"))
	}
	seen := make(map[string]bool, len(c.Modes))
	for i, m := range c.Modes {
		if m.ID == "" {
			errs = append(errs, fmt.Errorf("mode %d has no id", i))
			continue
		}
		if seen[m.ID] {
			errs = append(errs, fmt.Errorf("duplicate mode id %q", m.ID))
		}
		seen[m.ID] = true
		if m.Goal <= 0 {
			errs = append(errs, fmt.Errorf("mode %q: goal must be positive", m.ID))
		}
		if m.StartingEnemies < 0 || m.StartingTokens < 0 {
			errs = append(errs, fmt.Errorf("mode %q: starting populations must not be negative", m.ID))
		}
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".muncher", "configs", filename)
}
