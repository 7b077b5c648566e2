package core

import cfg "github.com/automoto/blutti/config"

// Effects receives the fire-and-forget side effects of the simulation.
type Effects interface {
	PlaySound(id cfg.SoundID)
	RecordProgress(kind cfg.ProgressKind, amount int)
}

// NopEffects discards everything.
type NopEffects struct{}

func (NopEffects) PlaySound(cfg.SoundID)                {}
func (NopEffects) RecordProgress(cfg.ProgressKind, int) {}
