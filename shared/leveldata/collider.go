package leveldata

// ColliderKind is the collision category a tile sprite maps to.
type ColliderKind int

const (
	ColliderNone ColliderKind = iota
	ColliderFull
	ColliderClimbable
	ColliderSlippery
	ColliderConveyor
	ColliderExit
	ColliderDeadly
	ColliderStar
	ColliderExtraLife
	ColliderCollectible
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderNone:
		return "None"
	case ColliderFull:
		return "Full"
	case ColliderClimbable:
		return "Climbable"
	case ColliderSlippery:
		return "Slippery"
	case ColliderConveyor:
		return "Conveyor"
	case ColliderExit:
		return "Exit"
	case ColliderDeadly:
		return "Deadly"
	case ColliderStar:
		return "Star"
	case ColliderExtraLife:
		return "ExtraLife"
	case ColliderCollectible:
		return "Collectible"
	}
	return "Unknown"
}

// Collider is a tile's collision kind. Points is only set for collectibles.
type Collider struct {
	Kind   ColliderKind
	Points int
}

var (
	None      = Collider{Kind: ColliderNone}
	Full      = Collider{Kind: ColliderFull}
	Climbable = Collider{Kind: ColliderClimbable}
	Slippery  = Collider{Kind: ColliderSlippery}
	Conveyor  = Collider{Kind: ColliderConveyor}
	Exit      = Collider{Kind: ColliderExit}
	Deadly    = Collider{Kind: ColliderDeadly}
	Star      = Collider{Kind: ColliderStar}
	ExtraLife = Collider{Kind: ColliderExtraLife}
)

func Collectible(points int) Collider {
	return Collider{Kind: ColliderCollectible, Points: points}
}

// Blocking colliders stop movement.
func (c Collider) Blocking() bool {
	switch c.Kind {
	case ColliderFull, ColliderSlippery, ColliderConveyor:
		return true
	}
	return false
}

// SpriteCount is the number of sprites in the sheet.
const SpriteCount = 256

// colliders is indexed by 0-based sprite index. Unlisted sprites are None.
var colliders = func() [SpriteCount]Collider {
	var t [SpriteCount]Collider
	set := func(from, to int, c Collider) {
		for i := from; i <= to; i++ {
			t[i] = c
		}
	}
	set(3, 8, Full)
	t[9] = Climbable
	t[10] = Star
	t[11] = ExtraLife
	t[12] = Exit
	set(14, 15, Deadly)
	t[16] = Collectible(1)
	t[17] = Collectible(5)
	t[18] = Collectible(10)
	set(19, 21, Full)
	t[22] = Deadly
	t[24] = Full
	t[25] = Slippery
	set(26, 29, Full)
	set(32, 33, Full)
	t[37] = Deadly
	set(38, 42, Full)
	set(48, 54, Full)
	t[55] = Climbable
	set(56, 57, Full)
	set(58, 60, Conveyor)
	t[61] = Exit
	return t
}()

// SpriteCollider returns the collider for a 0-based sprite index.
func SpriteCollider(sprite int) Collider {
	if sprite < 0 || sprite >= SpriteCount {
		return None
	}
	return colliders[sprite]
}
