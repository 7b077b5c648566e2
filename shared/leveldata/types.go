// Package leveldata decodes Blutti level assets, either the exported JSON
// format or Tiled TMX maps. It has no dependencies on ebitengine or donburi.
package leveldata

import "github.com/automoto/blutti/shared/gamemath"

// MonsterCollision is how a monster interacts with the player and other monsters.
type MonsterCollision string

const (
	CollisionBlocking        MonsterCollision = "Blocking"
	CollisionBlockingMonster MonsterCollision = "BlockingMonster"
	CollisionDeadly          MonsterCollision = "Deadly"
	CollisionNone            MonsterCollision = "None"
)

func (c MonsterCollision) Valid() bool {
	switch c {
	case CollisionBlocking, CollisionBlockingMonster, CollisionDeadly, CollisionNone:
		return true
	}
	return false
}

// MonsterMovement is a monster's movement policy.
type MonsterMovement string

const (
	MovementFlying        MonsterMovement = "Flying"
	MovementFollowsPlayer MonsterMovement = "FollowsPlayer"
	MovementMoving        MonsterMovement = "Moving"
	MovementTurnsAtEdge   MonsterMovement = "TurnsAtEdge"
)

func (m MonsterMovement) Valid() bool {
	switch m {
	case MovementFlying, MovementFollowsPlayer, MovementMoving, MovementTurnsAtEdge:
		return true
	}
	return false
}

// LevelData is one decoded level.
type LevelData struct {
	Name            string         `json:"-"`
	Tiles           []int          `json:"tiles" jsonschema:"description=1-based sprite ids row by row; 0 is an empty tile"`
	BackgroundColor string         `json:"background_color" jsonschema:"enum=Black,enum=Purple,enum=Red,enum=Orange,enum=Yellow,enum=LightGreen,enum=Green,enum=DarkGreen,enum=DarkBlue,enum=Blue,enum=LightBlue,enum=Cyan,enum=White,enum=LightGray,enum=Gray,enum=DarkGray"`
	FontColor       string         `json:"font_color" jsonschema:"enum=Black,enum=Purple,enum=Red,enum=Orange,enum=Yellow,enum=LightGreen,enum=Green,enum=DarkGreen,enum=DarkBlue,enum=Blue,enum=LightBlue,enum=Cyan,enum=White,enum=LightGray,enum=Gray,enum=DarkGray"`
	Stars           int            `json:"stars" jsonschema:"description=stars needed before the exit opens"`
	StartPosition   gamemath.Point `json:"start_position"`
	ParticleChance  int            `json:"particle_chance" jsonschema:"description=percent chance per tick to spawn an ambient particle"`
	ParticleSprite  int            `json:"particle_sprite"`
	Monsters        []MonsterData  `json:"monsters"`
}

// MonsterData is a monster's spawn description.
type MonsterData struct {
	Collision MonsterCollision `json:"collision,omitempty" jsonschema:"enum=Blocking,enum=BlockingMonster,enum=Deadly,enum=None"`
	Movement  MonsterMovement  `json:"movement,omitempty" jsonschema:"enum=Flying,enum=FollowsPlayer,enum=Moving,enum=TurnsAtEdge"`
	Gravity   bool             `json:"gravity"`
	Frames    int              `json:"frames"`
	Position  gamemath.Point   `json:"position"`
	Velocity  gamemath.Vec2    `json:"velocity"`

	// Sprites holds the first sprite of each tile of the monster, column by column.
	Sprites        []int `json:"sprites,omitempty"`
	ReverseSprites []int `json:"reverse_sprites,omitempty"`

	// Sprite and ReverseSprite are the single-tile shorthand written by the
	// Tiled export script.
	Sprite        *int `json:"sprite,omitempty"`
	ReverseSprite *int `json:"reverse_sprite,omitempty"`

	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}
