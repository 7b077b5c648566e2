package animations

import cfg "github.com/automoto/blutti/config"

// Animation steps through a sprite sequence, one frame every
// TicksPerFrame+1 updates. A one-shot animation sets Finished when it wraps
// and keeps showing its first frame afterwards.
type Animation struct {
	Sprites       []int
	TicksPerFrame int
	Looping       bool
	Finished      bool
	frame         int
	frameTimer    int
}

// NewAnimation panics on an empty sequence.
func NewAnimation(sprites []int, ticksPerFrame int, looping bool) *Animation {
	if len(sprites) == 0 {
		panic("animations: empty sprite sequence")
	}
	return &Animation{
		Sprites:       sprites,
		TicksPerFrame: ticksPerFrame,
		Looping:       looping,
	}
}

func NewLooping(sprites []int, ticksPerFrame int) *Animation {
	return NewAnimation(sprites, ticksPerFrame, true)
}

func NewOnce(sprites []int, ticksPerFrame int) *Animation {
	return NewAnimation(sprites, ticksPerFrame, false)
}

// FromDef builds an animation from a configured definition.
func FromDef(def cfg.AnimationDef) *Animation {
	return NewAnimation(def.Sprites, def.TicksPerFrame, def.Looping)
}

func (a *Animation) Update() {
	if a.Finished {
		return
	}
	a.frameTimer++
	if a.frameTimer > a.TicksPerFrame {
		a.nextFrame()
	}
}

func (a *Animation) nextFrame() {
	a.frameTimer = 0
	a.frame++
	if a.frame >= len(a.Sprites) {
		a.frame = 0
		if !a.Looping {
			a.Finished = true
		}
	}
}

// Sprite is the sheet index of the current frame.
func (a *Animation) Sprite() int {
	return a.Sprites[a.frame]
}

func (a *Animation) Frame() int {
	return a.frame
}

// Restart rewinds to the first frame. Finished is left alone.
func (a *Animation) Restart() {
	a.frame = 0
	a.frameTimer = 0
}
