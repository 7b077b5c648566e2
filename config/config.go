package config

import "image/color"

// ScreenConfig is the logical resolution the game renders at.
type ScreenConfig struct {
	Width  int
	Height int
	Scale  int // window scale factor
	Title  string
	TPS    int
}

// LevelConfig describes the tile grid every level shares.
type LevelConfig struct {
	TileSize int // tiles are square
	TilesH   int // tiles per row
	TilesV   int // rows
	SpritesH int // sprite sheet columns
	SpritesV int // sprite sheet rows

	// Names are the level asset names, index = level number.
	// Level 0 is a debug level and is skipped when wrapping around.
	Names      []string
	StartLevel int

	// OutOfRangeSprite is the 1-based sprite id reported for points outside
	// the grid. It must map to a Full collider so the bottom row reads as floor.
	OutOfRangeSprite int
}

// PhysicsConfig holds acceleration constants shared by the player and monsters.
type PhysicsConfig struct {
	GravityAcceleration float64
	GravityMax          float64
}

// PlayerConfig contains all Blutti tuning values. Velocities are pixels per
// tick, accelerations pixels per tick squared, times are ticks.
type PlayerConfig struct {
	// Running
	RunningAcceleration float64
	RunningStopTime     int
	MaxVelocity         float64

	// Air control
	FallingXAcceleration float64
	MaxFallingVelocity   float64

	// Jumping
	JumpAcceleration  float64
	JumpVelocity      float64
	JumpTime          int
	JumpBuffer        int
	CoyoteThreshold   int
	JumpRiseAccel     float64
	JumpRiseTarget    float64
	JumpStopAccel     float64
	JumpStopTarget    float64
	SlipperyJumpRatio int // jump budget divisor on slippery tiles

	// Dashing
	DashVelocity     float64
	DashAcceleration float64
	DashTime         int
	DashWaitTime     int

	// Climbing
	ClimbSidewaysAcceleration float64
	ClimbSidewaysVelocity     float64
	ClimbStopAcceleration     float64
	ClimbAcceleration         float64
	ClimbVelocity             float64
	ClimbHoldAcceleration     float64
	LadderReach               int // pixels of horizontal slack when grabbing a ladder

	// Conveyor belts
	ConveyorAcceleration float64
	ConveyorSpeed        float64

	// Hazards
	MaxFallHeight int

	// Bookkeeping
	StartingLives int
	StartX        int
	StartY        int
}

// MonsterConfig contains values shared by all monsters.
type MonsterConfig struct {
	TicksPerFrame int
}

// ParticleConfig controls ambient and ability particles.
type ParticleConfig struct {
	Speed           int
	SpawnExtraWidth int // ambient particles spawn up to this far right of the screen
	SpawnY          int
	AmbientTicks    int
	OneShotTicks    int
	DashOffset      int
	TurnRaise       int
	DriftRightAbove int // roll >= value drifts right
	DriftLeftAbove  int // roll >= value drifts left
	DriftUpAbove    int
	DriftDownAbove  int
	RollRange       int
}

// HUDConfig places the points counter and the hearts.
type HUDConfig struct {
	HeartSprite int
	Margin      int
	HeartRight  int
	FontSize    float64
	LineHeight  int
}

// DebugConfig holds developer switches.
type DebugConfig struct {
	Overlay       bool
	Invulnerable  bool // iddqd
	CheatsEnabled bool
	CheatLives    int
	CheatPoints   int
	SkipTitle     bool
}

// FadeConfig controls the screen fade between game states.
type FadeConfig struct {
	Duration float32 // seconds
	MaxAlpha float32
}

// Config is the global window configuration
type Config struct {
	Width  int
	Height int
}

var (
	C        *Config
	Screen   ScreenConfig
	Level    LevelConfig
	Physics  PhysicsConfig
	Player   PlayerConfig
	Monster  MonsterConfig
	Particle ParticleConfig
	HUD      HUDConfig
	Debug    DebugConfig
	Fade     FadeConfig
)

// Facing directions
const (
	DirectionLeft  = -1
	DirectionRight = 1
	DirectionUp    = -1
	DirectionDown  = 1
)

// ColorNames lists the palette in the order Tiled level properties index it.
var ColorNames = []string{
	"Black",
	"Purple",
	"Red",
	"Orange",
	"Yellow",
	"LightGreen",
	"Green",
	"DarkGreen",
	"DarkBlue",
	"Blue",
	"LightBlue",
	"Cyan",
	"White",
	"LightGray",
	"Gray",
	"DarkGray",
}

// Palette maps a color name to its RGBA value.
var Palette = map[string]color.RGBA{
	"Black":      {0x1a, 0x1c, 0x2c, 0xff},
	"Purple":     {0x5d, 0x27, 0x5d, 0xff},
	"Red":        {0xb1, 0x3e, 0x53, 0xff},
	"Orange":     {0xef, 0x7d, 0x57, 0xff},
	"Yellow":     {0xff, 0xcd, 0x75, 0xff},
	"LightGreen": {0xa7, 0xf0, 0x70, 0xff},
	"Green":      {0x38, 0xb7, 0x64, 0xff},
	"DarkGreen":  {0x25, 0x71, 0x79, 0xff},
	"DarkBlue":   {0x29, 0x36, 0x6f, 0xff},
	"Blue":       {0x3b, 0x5d, 0xc9, 0xff},
	"LightBlue":  {0x41, 0xa6, 0xf6, 0xff},
	"Cyan":       {0x73, 0xef, 0xf7, 0xff},
	"White":      {0xf4, 0xf4, 0xf4, 0xff},
	"LightGray":  {0x94, 0xb0, 0xc2, 0xff},
	"Gray":       {0x56, 0x6c, 0x86, 0xff},
	"DarkGray":   {0x33, 0x3c, 0x57, 0xff},
}

func init() {
	Screen = ScreenConfig{
		Width:  240,
		Height: 160,
		Scale:  4,
		Title:  "Blutti",
		TPS:    60,
	}
	C = &Config{
		Width:  Screen.Width,
		Height: Screen.Height,
	}

	Level = LevelConfig{
		TileSize:         8,
		TilesH:           30,
		TilesV:           20,
		SpritesH:         16,
		SpritesV:         16,
		Names:            []string{"level0", "level1", "level2", "level3", "level4", "level5"},
		StartLevel:       1,
		OutOfRangeSprite: 4,
	}

	Physics = PhysicsConfig{
		GravityAcceleration: 0.2,
		GravityMax:          2.0,
	}

	Player = PlayerConfig{
		RunningAcceleration: 0.5,
		RunningStopTime:     4,
		MaxVelocity:         2.0,

		FallingXAcceleration: 0.1,
		MaxFallingVelocity:   0.8,

		JumpAcceleration:  0.6,
		JumpVelocity:      2.5,
		JumpTime:          9,
		JumpBuffer:        2,
		CoyoteThreshold:   5,
		JumpRiseAccel:     -1.5,
		JumpRiseTarget:    -2.0,
		JumpStopAccel:     2.0,
		JumpStopTarget:    5.0,
		SlipperyJumpRatio: 2,

		DashVelocity:     8.0,
		DashAcceleration: 1.2,
		DashTime:         8,
		DashWaitTime:     32,

		ClimbSidewaysAcceleration: 0.3,
		ClimbSidewaysVelocity:     1.5,
		ClimbStopAcceleration:     0.5,
		ClimbAcceleration:         0.4,
		ClimbVelocity:             1.0,
		ClimbHoldAcceleration:     -0.2,
		LadderReach:               3,

		ConveyorAcceleration: 0.2,
		ConveyorSpeed:        2.0,

		MaxFallHeight: 30,

		StartingLives: 3,
		StartX:        Screen.Width/2 - 8,
		StartY:        Screen.Height - 16,
	}

	Monster = MonsterConfig{
		TicksPerFrame: 10,
	}

	Particle = ParticleConfig{
		Speed:           1,
		SpawnExtraWidth: 64,
		SpawnY:          -3,
		AmbientTicks:    15,
		OneShotTicks:    5,
		DashOffset:      8,
		TurnRaise:       2,
		DriftRightAbove: 90,
		DriftLeftAbove:  60,
		DriftUpAbove:    90,
		DriftDownAbove:  40,
		RollRange:       100,
	}

	HUD = HUDConfig{
		HeartSprite: 11,
		Margin:      4,
		HeartRight:  3,
		FontSize:    7,
		LineHeight:  8,
	}

	Debug = DebugConfig{
		Overlay:       false,
		Invulnerable:  false,
		CheatsEnabled: false,
		CheatLives:    3,
		CheatPoints:   10,
		SkipTitle:     false,
	}

	Fade = FadeConfig{
		Duration: 0.35,
		MaxAlpha: 1.0,
	}
}
