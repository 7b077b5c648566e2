package tags

import "github.com/yohamta/donburi"

var (
	Game = donburi.NewTag().SetName("Game")
	Fade = donburi.NewTag().SetName("Fade")
)

// Resolv tags for the monster broadphase
const (
	ResolvMonster         = "monster"
	ResolvBlocking        = "blocking"
	ResolvBlockingMonster = "blocking_monster"
	ResolvDeadly          = "deadly"
	ResolvProbe           = "probe"
)
