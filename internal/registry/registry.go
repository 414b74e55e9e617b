// Package registry provides the ordered table of game modes.
// Modes are resolved once at startup from configuration and are read-only
// afterwards, so one Registry can be shared by concurrent sessions.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/muncher/internal/config"
)

// Mode is the immutable configuration of one selectable game mode.
type Mode struct {
	ID   string
	Name string

	PlayerSprite       string
	InvulnerableSprite string
	EnemySprite        string
	EvilEnemySprite    string
	TokenSprite        string

	EnemyLabel string
	TokenLabel string

	Goal            int     // Enemy-eaten count that ends the round
	StartingEnemies int     // Enemies spawned at round start
	StartingTokens  int     // Tokens spawned at round start
	PlayerSpeed     float64 // Pixels per second

	Modifiers Modifiers
}

// Has reports whether the mode carries the modifier.
func (m Mode) Has(mod Modifier) bool {
	return m.Modifiers.Has(mod)
}

// SpriteIDs returns every sprite id the mode may display.
func (m Mode) SpriteIDs() []string {
	return []string{m.PlayerSprite, m.InvulnerableSprite, m.EnemySprite, m.EvilEnemySprite, m.TokenSprite}
}

// ModeInfo contains display metadata about a registered mode.
type ModeInfo struct {
	Index int
	ID    string
	Name  string
}

// Registry is an ordered, index-addressable collection of modes.
// Menu navigation depends on registration order.
type Registry struct {
	mu    sync.RWMutex
	modes []Mode
	byID  map[string]int
}

// New creates a registry holding the given modes in order.
// Panics if two modes share an ID.
func New(modes ...Mode) *Registry {
	r := &Registry{byID: make(map[string]int, len(modes))}
	for _, m := range modes {
		r.Register(m)
	}
	return r
}

// FromConfig resolves every configured mode, including its modifier names.
func FromConfig(cfg config.MuncherConfig) (*Registry, error) {
	if len(cfg.Modes) == 0 {
		return nil, errors.New("registry: no modes configured")
	}

	r := &Registry{byID: make(map[string]int, len(cfg.Modes))}
	for _, mc := range cfg.Modes {
		if _, exists := r.byID[mc.ID]; exists {
			return nil, fmt.Errorf("registry: mode %q already registered", mc.ID)
		}
		mods, err := ParseModifiers(mc.Modifiers)
		if err != nil {
			return nil, fmt.Errorf("registry: mode %q: %w", mc.ID, err)
		}
		name := mc.Name
		if name == "" {
			name = mc.ID
		}
		r.Register(Mode{
			ID:                 mc.ID,
			Name:               name,
			PlayerSprite:       mc.PlayerSprite,
			InvulnerableSprite: mc.InvulnerableSprite,
			EnemySprite:        mc.EnemySprite,
			EvilEnemySprite:    mc.EvilEnemySprite,
			TokenSprite:        mc.TokenSprite,
			EnemyLabel:         labelOr(mc.EnemyLabel, "Enemies"),
			TokenLabel:         labelOr(mc.TokenLabel, "Tokens"),
			Goal:               mc.Goal,
			StartingEnemies:    mc.StartingEnemies,
			StartingTokens:     mc.StartingTokens,
			PlayerSpeed:        mc.PlayerSpeed,
			Modifiers:          mods,
		})
	}
	return r, nil
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

// Register appends a mode to the registry.
// Panics if a mode with the same ID is already registered.
func (r *Registry) Register(m Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", m.ID))
	}
	r.byID[m.ID] = len(r.modes)
	r.modes = append(r.modes, m)
}

// Len returns the number of registered modes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modes)
}

// At returns the mode at index i, clamped into range.
// The registry must not be empty.
func (r *Registry) At(i int) Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.modes[r.clamp(i)]
}

// Clamp restricts a menu index to the valid range.
func (r *Registry) Clamp(i int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clamp(i)
}

func (r *Registry) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(r.modes) {
		return len(r.modes) - 1
	}
	return i
}

// Lookup returns the mode with the given ID.
func (r *Registry) Lookup(id string) (Mode, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return Mode{}, false
	}
	return r.modes[i], true
}

// Index returns the menu index of the mode with the given ID, or -1.
func (r *Registry) Index(id string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i, ok := r.byID[id]; ok {
		return i
	}
	return -1
}

// Exists checks if a mode with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	return r.Index(id) >= 0
}

// List returns information about all registered modes in menu order.
func (r *Registry) List() []ModeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]ModeInfo, 0, len(r.modes))
	for i, m := range r.modes {
		result = append(result, ModeInfo{Index: i, ID: m.ID, Name: m.Name})
	}
	return result
}

// Modes returns a copy of all registered modes in menu order.
func (r *Registry) Modes() []Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Mode, len(r.modes))
	copy(out, r.modes)
	return out
}
