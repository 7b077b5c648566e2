package components

import (
	"testing"

	cfg "github.com/automoto/blutti/config"
	"github.com/stretchr/testify/assert"
)

func TestProgressRecord(t *testing.T) {
	var p ProgressData

	p.Record(cfg.ProgressStars, 1)
	p.Record(cfg.ProgressStars, 1)
	p.Record(cfg.ProgressDeaths, 1)
	p.Record(cfg.ProgressLevels, 1)

	assert.Equal(t, ProgressData{Stars: 2, Levels: 1, Deaths: 1, Dirty: true}, p)

	p.Dirty = false
	p.Record(cfg.ProgressKind(99), 5)
	assert.False(t, p.Dirty)
}
