package config

// GameStateID identifies the top-level screen the game is on.
type GameStateID int

const (
	StateTitle GameStateID = iota
	StateCredits
	StateInfo
	StatePlaying
	StateDied
	StateGameOver
)

func (s GameStateID) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StateCredits:
		return "Credits"
	case StateInfo:
		return "Info"
	case StatePlaying:
		return "Playing"
	case StateDied:
		return "Died"
	case StateGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// ProgressKind is a persistent counter the game reports to.
type ProgressKind int

const (
	ProgressStars ProgressKind = iota + 1
	ProgressLevels
	ProgressDeaths
)

func (p ProgressKind) String() string {
	switch p {
	case ProgressStars:
		return "stars"
	case ProgressLevels:
		return "levels"
	case ProgressDeaths:
		return "deaths"
	}
	return "unknown"
}

// Screen texts
var (
	Credits = []string{
		"Credits:",
		"Programming: Olle Wreede",
		"Graphics: Olle Wreede",
		"Level design: Olle Wreede",
		"Music: Zane Little Music",
		"SFX: @Shades, Luke.RUSTLTD, sauer2",
		"",
		"Press <Enter> to go back to game",
	}
	Info = []string{
		"Controls:",
		"Arrows or left stick to move and climb",
		"Press <Z> to jump",
		"Press <X> to dash",
		"",
		"Press <Enter> to go back to game",
	}
)

// Centered messages per screen
var (
	TitleMessage    = []string{"Press <Enter> to start!", "<C> credits  <I> info"}
	DiedMessage     = []string{"You died!", "Press <Enter> to restart level"}
	WonMessage      = []string{"You win!", "Press <Enter> to start next level!"}
	GameOverMessage = []string{"Game Over!", "Press <Enter> to start again!"}
)
