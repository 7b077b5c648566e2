package components

import (
	cfg "github.com/automoto/blutti/config"
	"github.com/yohamta/donburi"
)

// ProgressData counts lifetime achievements across sessions.
type ProgressData struct {
	Stars        int `json:"stars"`
	Levels       int `json:"levels"`
	Deaths       int `json:"deaths"`
	HighestLevel int `json:"highestLevel"`

	Dirty bool `json:"-"` // changed since the last save
}

// Record adds amount to the counter for kind.
func (p *ProgressData) Record(kind cfg.ProgressKind, amount int) {
	switch kind {
	case cfg.ProgressStars:
		p.Stars += amount
	case cfg.ProgressLevels:
		p.Levels += amount
	case cfg.ProgressDeaths:
		p.Deaths += amount
	default:
		return
	}
	p.Dirty = true
}

var Progress = donburi.NewComponentType[ProgressData]()
