package config

// AnimationDef is a sprite sequence played at a fixed rate.
// Sprites are 0-based indices into the sprite sheet.
type AnimationDef struct {
	Sprites       []int
	TicksPerFrame int
	Looping       bool
}

// PlayerAnimations holds every Blutti animation.
type PlayerAnimations struct {
	IdleLeft     AnimationDef
	IdleRight    AnimationDef
	RunningLeft  AnimationDef
	RunningRight AnimationDef
	ClimbLeft    AnimationDef
	ClimbRight   AnimationDef
	Death        AnimationDef
	ExitLeft     AnimationDef
	ExitRight    AnimationDef
}

// ParticleSprites are the one-shot effect animations spawned by the player.
// Dash, jump and turn effects follow Blutti's facing.
type ParticleSprites struct {
	DashLeft   AnimationDef
	DashRight  AnimationDef
	JumpLeft   AnimationDef
	JumpRight  AnimationDef
	TurnLeft   AnimationDef
	TurnRight  AnimationDef
	Collection AnimationDef
}

var (
	Animations PlayerAnimations
	Particles  ParticleSprites
)

func init() {
	Animations = PlayerAnimations{
		IdleLeft:     AnimationDef{Sprites: []int{162, 163}, TicksPerFrame: 10, Looping: true},
		IdleRight:    AnimationDef{Sprites: []int{160, 161}, TicksPerFrame: 10, Looping: true},
		RunningLeft:  AnimationDef{Sprites: []int{168, 169, 170, 171}, TicksPerFrame: 10, Looping: true},
		RunningRight: AnimationDef{Sprites: []int{164, 165, 166, 167}, TicksPerFrame: 10, Looping: true},
		ClimbLeft:    AnimationDef{Sprites: []int{174, 175}, TicksPerFrame: 10, Looping: true},
		ClimbRight:   AnimationDef{Sprites: []int{172, 173}, TicksPerFrame: 10, Looping: true},
		Death:        AnimationDef{Sprites: []int{176, 177, 178, 179}, TicksPerFrame: 5},
		ExitLeft:     AnimationDef{Sprites: []int{184, 185, 186, 187}, TicksPerFrame: 5},
		ExitRight:    AnimationDef{Sprites: []int{180, 181, 182, 183}, TicksPerFrame: 5},
	}

	Particles = ParticleSprites{
		DashLeft:   AnimationDef{Sprites: []int{192, 193, 194}, TicksPerFrame: 5},
		DashRight:  AnimationDef{Sprites: []int{195, 196, 197}, TicksPerFrame: 5},
		JumpLeft:   AnimationDef{Sprites: []int{198, 199, 200}, TicksPerFrame: 5},
		JumpRight:  AnimationDef{Sprites: []int{201, 202, 203}, TicksPerFrame: 5},
		TurnLeft:   AnimationDef{Sprites: []int{204, 205}, TicksPerFrame: 5},
		TurnRight:  AnimationDef{Sprites: []int{206, 207}, TicksPerFrame: 5},
		Collection: AnimationDef{Sprites: []int{208, 209, 210, 211}, TicksPerFrame: 5},
	}
}
