package leveldata

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/blutti/config"
)

// Validate reports every problem found in the level, joined.
func (l *LevelData) Validate() error {
	var errs []error

	want := cfg.Level.TilesH * cfg.Level.TilesV
	if len(l.Tiles) != want {
		errs = append(errs, fmt.Errorf("%w: got %d, want %d", ErrTileCount, len(l.Tiles), want))
	}
	for i, t := range l.Tiles {
		if t < 0 || t > SpriteCount {
			errs = append(errs, fmt.Errorf("%w: tile %d has sprite %d", ErrTileSprite, i, t))
		}
	}

	for _, c := range []struct{ field, name string }{
		{"background_color", l.BackgroundColor},
		{"font_color", l.FontColor},
	} {
		if _, ok := cfg.Palette[c.name]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s %q", ErrUnknownColor, c.field, c.name))
		}
	}

	for i, m := range l.Monsters {
		if !m.Collision.Valid() {
			errs = append(errs, fmt.Errorf("%w: monster %d: %q", ErrUnknownCollision, i, m.Collision))
		}
		if !m.Movement.Valid() {
			errs = append(errs, fmt.Errorf("%w: monster %d: %q", ErrUnknownMovement, i, m.Movement))
		}
		if len(m.Sprites) == 0 {
			errs = append(errs, fmt.Errorf("%w: monster %d", ErrNoSprites, i))
		}
	}

	return errors.Join(errs...)
}

// Collider returns the collider of the tile at idx. Empty tiles are None.
func (l *LevelData) Collider(idx int) Collider {
	if idx < 0 || idx >= len(l.Tiles) || l.Tiles[idx] == 0 {
		return None
	}
	return SpriteCollider(l.Tiles[idx] - 1)
}
