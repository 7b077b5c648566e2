// Package levels embeds the shipped Blutti levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/leveldata"
)

//go:embed *.json *.tmx *.tsx
var levelFS embed.FS

var ErrMissingLevel = errors.New("missing level")

// Source serves levels by number in the configured order.
type Source struct {
	byName map[string]*leveldata.LevelData
	names  []string
}

// Load decodes every embedded level.
func Load() (*Source, error) {
	return LoadFS(levelFS, ".", cfg.Level.Names)
}

// LoadFS decodes the levels in dir; names fixes the numbering.
func LoadFS(fsys fs.FS, dir string, names []string) (*Source, error) {
	all, _, err := leveldata.LoadAll(fsys, dir)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if _, ok := all[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingLevel, name)
		}
	}
	return &Source{byName: all, names: names}, nil
}

func MustLoad() *Source {
	s, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return s
}

// Level returns the pristine asset for level n. Callers copy before mutating.
func (s *Source) Level(n int) (*leveldata.LevelData, error) {
	if n < 0 || n >= len(s.names) {
		return nil, fmt.Errorf("%w: number %d", ErrMissingLevel, n)
	}
	return s.byName[s.names[n]], nil
}

func (s *Source) Count() int {
	return len(s.names)
}

func (s *Source) Names() []string {
	return s.names
}

// FS exposes the embedded files, e.g. for the level tool.
func FS() fs.FS {
	return levelFS
}
