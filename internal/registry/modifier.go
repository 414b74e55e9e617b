package registry

import (
	"fmt"
	"strings"
)

// Modifier is a named rule toggle carried by a game mode.
type Modifier uint16

const (
	NoEnemy           Modifier = 1 << iota // No enemies spawn, ever
	SpawnEnemyOnMove                       // Each tick a player moves spawns an enemy
	AngryCelery                            // Enemy 0 periodically turns evil
	EnemiesBounce                          // Enemies bounce off each other
	RandomSizeEnemies                      // Enemies get a random size at spawn
	NoCircle                               // Enemies never protect tokens
	AltUI                                  // Compact single-line HUD
	BlackEndScreen                         // Game-over screen on black

	modifierEnd
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{NoEnemy, "noEnemy"},
	{SpawnEnemyOnMove, "spawnEnemyOnMove"},
	{AngryCelery, "angryCelery"},
	{EnemiesBounce, "enemiesBounce"},
	{RandomSizeEnemies, "randomSizeEnemies"},
	{NoCircle, "noCircle"},
	{AltUI, "altUI"},
	{BlackEndScreen, "blackEndScreen"},
}

// String returns the configuration name of the modifier.
func (m Modifier) String() string {
	for _, n := range modifierNames {
		if n.mod == m {
			return n.name
		}
	}
	return fmt.Sprintf("Modifier(%d)", uint16(m))
}

// ParseModifier resolves a configuration name. Matching is case-insensitive.
func ParseModifier(name string) (Modifier, error) {
	trimmed := strings.TrimSpace(name)
	for _, n := range modifierNames {
		if strings.EqualFold(n.name, trimmed) {
			return n.mod, nil
		}
	}
	return 0, fmt.Errorf("unknown modifier %q", name)
}

// Modifiers is a set of modifiers.
type Modifiers uint16

// NewModifiers builds a set from individual modifiers.
func NewModifiers(mods ...Modifier) Modifiers {
	var s Modifiers
	for _, m := range mods {
		s |= Modifiers(m)
	}
	return s
}

// ParseModifiers resolves a list of configuration names into a set.
func ParseModifiers(names []string) (Modifiers, error) {
	var s Modifiers
	for _, name := range names {
		m, err := ParseModifier(name)
		if err != nil {
			return 0, err
		}
		s |= Modifiers(m)
	}
	return s, nil
}

// Has reports whether the set contains the modifier.
func (s Modifiers) Has(m Modifier) bool {
	return s&Modifiers(m) != 0
}

// List returns the modifiers in declaration order.
func (s Modifiers) List() []Modifier {
	var out []Modifier
	for m := Modifier(1); m < modifierEnd; m <<= 1 {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

// String joins the modifier names with commas.
func (s Modifiers) String() string {
	mods := s.List()
	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.String()
	}
	return strings.Join(names, ",")
}
