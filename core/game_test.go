package core

import (
	"testing"

	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exitLevel finishes as soon as the player spawns.
func exitLevel() *leveldata.LevelData {
	d := floorLevel()
	setTile(d, 2, floorRow-1, tileExit)
	return d
}

func spikeLevel() *leveldata.LevelData {
	d := floorLevel()
	setTile(d, 2, floorRow-1, tileSpikes)
	return d
}

func newTestGame(t *testing.T, levels ...*leveldata.LevelData) (*Game, *recorder) {
	t.Helper()
	rec := newRecorder()
	g, err := NewGame(memSource(levels), rec, 4711)
	require.NoError(t, err)
	return g, rec
}

func TestGameMenus(t *testing.T) {
	g, _ := newTestGame(t, floorLevel(), floorLevel())
	require.Equal(t, cfg.StateTitle, g.State)
	assert.Equal(t, cfg.Level.StartLevel, g.World.Level.Number)

	g.Update(Input{Credits: true})
	assert.Equal(t, cfg.StateCredits, g.State)
	g.Update(Input{Confirm: true})
	assert.Equal(t, cfg.StateTitle, g.State)

	g.Update(Input{Info: true})
	assert.Equal(t, cfg.StateInfo, g.State)
	g.Update(Input{Confirm: true})
	assert.Equal(t, cfg.StateTitle, g.State)

	g.Update(Input{Confirm: true})
	assert.Equal(t, cfg.StatePlaying, g.State)
}

func TestGameDeathAndRetry(t *testing.T) {
	g, _ := newTestGame(t, floorLevel(), spikeLevel())
	g.Update(Input{Confirm: true})

	g.Update(Input{})
	require.Equal(t, cfg.StateDied, g.State)
	assert.Equal(t, cfg.Player.StartingLives-1, g.World.Player.Lives)

	g.Update(Input{})
	assert.Equal(t, cfg.StateDied, g.State, "waits for confirm")

	g.Update(Input{Confirm: true})
	assert.Equal(t, cfg.StatePlaying, g.State)
	assert.False(t, g.World.Player.Died)
	assert.Equal(t, g.World.Player.Start, g.World.Player.Pos)
}

func TestGameOverWhenOutOfLives(t *testing.T) {
	g, _ := newTestGame(t, floorLevel(), spikeLevel())
	g.World.Player.Lives = 1
	g.Update(Input{Confirm: true})

	g.Update(Input{})
	require.Equal(t, cfg.StateGameOver, g.State)
	assert.False(t, g.Won)

	g.Update(Input{Confirm: true})
	assert.Equal(t, cfg.StateTitle, g.State)
	assert.Equal(t, cfg.Player.StartingLives, g.World.Player.Lives)
	assert.Equal(t, cfg.Level.StartLevel, g.World.Level.Number)
}

func TestGameAdvancesAndWraps(t *testing.T) {
	g, _ := newTestGame(t, floorLevel(), exitLevel(), exitLevel())
	g.Update(Input{Confirm: true})
	g.World.Player.Points = 7

	g.Update(Input{})
	require.Equal(t, cfg.StateGameOver, g.State)
	assert.True(t, g.Won)

	g.Update(Input{Confirm: true})
	require.Equal(t, cfg.StatePlaying, g.State)
	assert.Equal(t, 2, g.World.Level.Number)
	assert.Equal(t, 7, g.World.Player.Points)
	assert.False(t, g.World.Player.Finished)

	g.Update(Input{})
	require.Equal(t, cfg.StateGameOver, g.State)
	g.Update(Input{Confirm: true})
	assert.Equal(t, cfg.Level.StartLevel, g.World.Level.Number, "wraps past the last level, skipping level 0")
	assert.Equal(t, 7, g.World.Player.Points)
}

func TestGameDebugToggle(t *testing.T) {
	g, _ := newTestGame(t, floorLevel(), floorLevel())
	g.Update(Input{Confirm: true})
	debug := g.Debug

	g.Update(Input{ToggleDebug: true})
	assert.Equal(t, !debug, g.Debug)
}
