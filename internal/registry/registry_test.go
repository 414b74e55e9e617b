package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/muncher/internal/config"
)

func TestFromConfigKeepsOrder(t *testing.T) {
	cfg := config.DefaultMuncherConfig()
	r, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig() failed: %v", err)
	}

	if r.Len() != len(cfg.Modes) {
		t.Fatalf("Len() = %d, expected %d", r.Len(), len(cfg.Modes))
	}
	for i, info := range r.List() {
		if info.Index != i || info.ID != cfg.Modes[i].ID {
			t.Errorf("List()[%d] = %+v, expected id %q", i, info, cfg.Modes[i].ID)
		}
	}

	classic := r.At(0)
	if classic.Goal != 3 || classic.StartingEnemies != 1 || classic.StartingTokens != 1 {
		t.Errorf("classic mode = %+v", classic)
	}
	if classic.Modifiers != 0 {
		t.Errorf("classic should carry no modifiers, got %s", classic.Modifiers)
	}
}

func TestFromConfigResolvesModifiers(t *testing.T) {
	r, err := FromConfig(config.DefaultMuncherConfig())
	if err != nil {
		t.Fatalf("FromConfig() failed: %v", err)
	}

	bumper, ok := r.Lookup("bumper")
	if !ok {
		t.Fatal("bumper mode not found")
	}
	if !bumper.Has(EnemiesBounce) || !bumper.Has(RandomSizeEnemies) {
		t.Errorf("bumper modifiers = %s", bumper.Modifiers)
	}
	if bumper.Has(NoEnemy) {
		t.Error("bumper should not have noEnemy")
	}
}

func TestFromConfigUnknownModifier(t *testing.T) {
	cfg := config.DefaultMuncherConfig()
	cfg.Modes[0].Modifiers = []string{"flyingCelery"}

	_, err := FromConfig(cfg)
	if err == nil {
		t.Fatal("FromConfig() should reject unknown modifiers")
	}
	if !strings.Contains(err.Error(), "flyingCelery") {
		t.Errorf("error %q should name the modifier", err)
	}
}

func TestFromConfigEmpty(t *testing.T) {
	cfg := config.DefaultMuncherConfig()
	cfg.Modes = nil
	if _, err := FromConfig(cfg); err == nil {
		t.Fatal("FromConfig() should reject an empty mode table")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on duplicate id")
		}
	}()
	New(Mode{ID: "a"}, Mode{ID: "a"})
}

func TestClampAndLookup(t *testing.T) {
	r := New(Mode{ID: "a"}, Mode{ID: "b"}, Mode{ID: "c"})

	tests := []struct {
		in, expected int
	}{
		{-1, 0},
		{0, 0},
		{2, 2},
		{3, 2},
		{100, 2},
	}
	for _, tc := range tests {
		if got := r.Clamp(tc.in); got != tc.expected {
			t.Errorf("Clamp(%d) = %d, expected %d", tc.in, got, tc.expected)
		}
	}

	if r.At(99).ID != "c" {
		t.Errorf("At(99) = %q, expected c", r.At(99).ID)
	}
	if r.Index("b") != 1 || r.Index("zzz") != -1 {
		t.Error("Index() returned wrong positions")
	}
	if !r.Exists("a") || r.Exists("zzz") {
		t.Error("Exists() returned wrong results")
	}
}

func TestModifierParsing(t *testing.T) {
	mods, err := ParseModifiers([]string{"noCircle", " ANGRYCELERY "})
	if err != nil {
		t.Fatalf("ParseModifiers() failed: %v", err)
	}
	if !mods.Has(NoCircle) || !mods.Has(AngryCelery) {
		t.Errorf("parsed set = %s", mods)
	}
	if mods.String() != "angryCelery,noCircle" {
		t.Errorf("String() = %q, expected declaration order", mods.String())
	}
	if NewModifiers(AltUI, BlackEndScreen) != Modifiers(AltUI|BlackEndScreen) {
		t.Error("NewModifiers() should OR its arguments")
	}
}
