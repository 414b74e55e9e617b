package muncher

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/muncher/internal/config"
	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/registry"
)

// ErrMissingSprite is returned when a sprite id is not in the atlas.
var ErrMissingSprite = errors.New("missing sprite")

// SpriteInfo describes a loaded sprite asset.
type SpriteInfo struct {
	ID    string
	W, H  int // Size in arena pixels
	Glyph rune
	Color core.Color
}

// Atlas loads sprite assets by id.
type Atlas interface {
	Sprite(id string) (SpriteInfo, error)
}

// Catalog is an Atlas backed by the configured sprite table.
type Catalog map[string]SpriteInfo

// NewCatalog builds a catalog from sprite configuration.
// Unknown color names fall back to white; an empty glyph becomes '#'.
func NewCatalog(sprites map[string]config.SpriteConfig) Catalog {
	c := make(Catalog, len(sprites))
	for id, sc := range sprites {
		glyph := '#'
		for _, r := range sc.Glyph {
			glyph = r
			break
		}
		color, ok := core.ParseColor(sc.Color)
		if !ok {
			color = core.ColorWhite
		}
		c[id] = SpriteInfo{ID: id, W: sc.Width, H: sc.Height, Glyph: glyph, Color: color}
	}
	return c
}

// Sprite implements Atlas.
func (c Catalog) Sprite(id string) (SpriteInfo, error) {
	info, ok := c[id]
	if !ok {
		return SpriteInfo{}, fmt.Errorf("%w: %q", ErrMissingSprite, id)
	}
	if info.W <= 0 || info.H <= 0 {
		return SpriteInfo{}, fmt.Errorf("sprite %q has invalid size %dx%d", id, info.W, info.H)
	}
	return info, nil
}

// IDs returns the sprite ids in sorted order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// preload resolves every sprite used by every mode.
// All failures are reported together.
func preload(atlas Atlas, modes []registry.Mode) (map[string]SpriteInfo, error) {
	loaded := make(map[string]SpriteInfo)
	var errs []error
	for _, m := range modes {
		for _, id := range m.SpriteIDs() {
			if _, done := loaded[id]; done {
				continue
			}
			info, err := atlas.Sprite(id)
			if err != nil {
				errs = append(errs, fmt.Errorf("mode %q: %w", m.ID, err))
				continue
			}
			loaded[id] = info
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return loaded, nil
}
