package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/blutti/components"
	cfg "github.com/automoto/blutti/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const progressKey = "progress"

// itemStore is the part of gdata.Manager persistence needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "blutti",
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// LoadProgress reads saved counters. A missing save is not an error.
func LoadProgress() (*components.ProgressData, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress components.ProgressData
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}
	return &progress, nil
}

// SaveProgress writes the counters to disk
func SaveProgress(p *components.ProgressData) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return err
	}

	if err := store.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}

// UpdatePersistence saves changed progress once a run stops, so nothing is
// written while playing.
func UpdatePersistence(e *ecs.ECS) {
	entry, ok := components.Progress.First(e.World)
	if !ok {
		return
	}
	progress := components.Progress.Get(entry)
	if !progress.Dirty {
		return
	}
	if g, ok := gameFrom(e.World); ok && g.State == cfg.StatePlaying {
		return
	}
	// A failed save is logged and not retried until the next change.
	_ = SaveProgress(progress)
	progress.Dirty = false
}
