package animations

// Set animates every tile of a multi-tile actor in lockstep.
type Set []*Animation

// NewSet makes one looping animation per first sprite, each running over
// frames consecutive sprites.
func NewSet(firstSprites []int, frames, ticksPerFrame int) Set {
	set := make(Set, 0, len(firstSprites))
	for _, first := range firstSprites {
		sprites := make([]int, frames)
		for i := range sprites {
			sprites[i] = first + i
		}
		set = append(set, NewLooping(sprites, ticksPerFrame))
	}
	return set
}

func (s Set) Update() {
	for _, a := range s {
		a.Update()
	}
}

func (s Set) Restart() {
	for _, a := range s {
		a.Restart()
	}
}

// Sprites returns the current sprite of each tile.
func (s Set) Sprites() []int {
	out := make([]int, len(s))
	for i, a := range s {
		out[i] = a.Sprite()
	}
	return out
}
