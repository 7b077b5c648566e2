package leveldata

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/blutti/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tileRow(n int, sprite int) []string {
	row := make([]string, n)
	for i := range row {
		row[i] = fmt.Sprint(sprite)
	}
	return row
}

// levelJSON builds a valid level with a floor along the bottom row.
func levelJSON(monsters string) string {
	tiles := append(tileRow(30*19, 0), tileRow(30, 4)...)
	return fmt.Sprintf(`{
		"tiles": [%s],
		"background_color": "DarkBlue",
		"font_color": "White",
		"stars": 2,
		"start_position": {"x": 16, "y": 144},
		"particle_chance": 3,
		"particle_sprite": 116,
		"monsters": [%s]
	}`, strings.Join(tiles, ","), monsters)
}

func TestLoadJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level1.json": {Data: []byte(levelJSON(`
			{"collision": "Blocking", "movement": "Flying", "frames": 2,
			 "position": {"x": 40, "y": 80}, "velocity": {"x": 0.5, "y": 0},
			 "sprites": [140], "reverse_sprites": [142], "width": 16},
			{"gravity": true, "frames": 2, "position": {"x": 80, "y": 144},
			 "velocity": {"x": 1}, "sprite": 128}`))},
	}

	data, err := LoadJSON(fsys, "levels/level1.json")
	require.NoError(t, err)

	assert.Equal(t, "level1", data.Name)
	assert.Len(t, data.Tiles, 600)
	assert.Equal(t, 2, data.Stars)
	assert.Equal(t, gamemath.Pt(16, 144), data.StartPosition)
	assert.Equal(t, 116, data.ParticleSprite)
	require.Len(t, data.Monsters, 2)

	platform := data.Monsters[0]
	assert.Equal(t, CollisionBlocking, platform.Collision)
	assert.Equal(t, MovementFlying, platform.Movement)
	assert.Equal(t, 16, platform.Width)
	assert.Equal(t, 8, platform.Height)
	assert.Equal(t, []int{142}, platform.ReverseSprites)

	walker := data.Monsters[1]
	assert.Equal(t, CollisionDeadly, walker.Collision, "collision defaults to Deadly")
	assert.Equal(t, MovementTurnsAtEdge, walker.Movement, "movement defaults to TurnsAtEdge")
	assert.True(t, walker.Gravity)
	assert.Equal(t, []int{128}, walker.Sprites)
	assert.Equal(t, []int{130}, walker.ReverseSprites)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	data := &LevelData{
		Tiles:           []int{1, 2, 999},
		BackgroundColor: "Mauve",
		FontColor:       "White",
		Monsters: []MonsterData{
			{Collision: "Sticky", Movement: MovementFlying},
			{Collision: CollisionNone, Movement: "Teleports", Sprites: []int{1}},
		},
	}

	err := data.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTileCount)
	assert.ErrorIs(t, err, ErrTileSprite)
	assert.ErrorIs(t, err, ErrUnknownColor)
	assert.ErrorIs(t, err, ErrUnknownCollision)
	assert.ErrorIs(t, err, ErrUnknownMovement)
	assert.ErrorIs(t, err, ErrNoSprites)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "levels/level1.yaml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func tmxMap() string {
	var rows []string
	for y := 0; y < 20; y++ {
		sprite := 0
		if y == 19 {
			sprite = 4
		}
		rows = append(rows, strings.Join(tileRow(30, sprite), ","))
	}
	return `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.11.0" orientation="orthogonal" renderorder="right-down" width="30" height="20" tilewidth="8" tileheight="8" infinite="0" nextlayerid="3" nextobjectid="3">
 <properties>
  <property name="background_color" type="int" value="9"/>
  <property name="font_color" value="White"/>
  <property name="particle_chance" type="int" value="2"/>
  <property name="particle_sprite" type="int" value="116"/>
  <property name="stars" type="int" value="1"/>
 </properties>
 <tileset firstgid="1" name="Blutti" tilewidth="8" tileheight="8" tilecount="256" columns="16">
  <image source="spritesheet.png" width="128" height="128"/>
 </tileset>
 <layer id="1" name="tiles" width="30" height="20">
  <data encoding="csv">
` + strings.Join(rows, ",\n") + `
</data>
 </layer>
 <objectgroup id="2" name="objects">
  <object id="1" class="Start" x="24" y="144" width="8" height="8"/>
  <object id="2" class="Monster" gid="129" x="64" y="144" width="8" height="8">
   <properties>
    <property name="collision" value="Blocking"/>
    <property name="frames" type="int" value="2"/>
    <property name="velocity_x" type="float" value="0.5"/>
   </properties>
  </object>
 </objectgroup>
</map>
`
}

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level2.tmx": {Data: []byte(tmxMap())},
	}

	data, err := LoadTMX(fsys, "levels/level2.tmx")
	require.NoError(t, err)

	assert.Equal(t, "level2", data.Name)
	require.Len(t, data.Tiles, 600)
	assert.Equal(t, 0, data.Tiles[0])
	assert.Equal(t, 4, data.Tiles[599])
	assert.Equal(t, "Blue", data.BackgroundColor)
	assert.Equal(t, "White", data.FontColor)
	assert.Equal(t, 1, data.Stars)
	assert.Equal(t, gamemath.Pt(24, 144), data.StartPosition)

	require.Len(t, data.Monsters, 1)
	m := data.Monsters[0]
	assert.Equal(t, CollisionBlocking, m.Collision)
	assert.Equal(t, MovementTurnsAtEdge, m.Movement)
	assert.Equal(t, []int{128}, m.Sprites)
	assert.Equal(t, []int{130}, m.ReverseSprites)
	assert.InDelta(t, 0.5, m.Velocity.X, 1e-9)
	assert.Equal(t, gamemath.Pt(64, 144), m.Position)
}

func TestLoadTMXWithoutMapProperties(t *testing.T) {
	bare := tmxMap()
	start := strings.Index(bare, " <properties>")
	end := strings.Index(bare, " </properties>\n") + len(" </properties>\n")
	bare = bare[:start] + bare[end:]
	require.NotContains(t, bare[:strings.Index(bare, "<tileset")], "<properties>")

	fsys := fstest.MapFS{
		"levels/level3.tmx": {Data: []byte(bare)},
	}
	data, err := LoadTMX(fsys, "levels/level3.tmx")
	require.NoError(t, err)

	assert.Equal(t, "Black", data.BackgroundColor)
	assert.Equal(t, "White", data.FontColor)
	assert.Zero(t, data.Stars)
	assert.Zero(t, data.ParticleChance)
	assert.Len(t, data.Monsters, 1)
}

func TestLoadAllPrefersJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level1.json": {Data: []byte(levelJSON(""))},
		"levels/level1.tmx":  {Data: []byte(tmxMap())},
		"levels/level2.tmx":  {Data: []byte(tmxMap())},
	}

	levels, names, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"level1", "level2"}, names)
	assert.Equal(t, 2, levels["level1"].Stars, "the JSON export has two stars")
	assert.Equal(t, 1, levels["level2"].Stars)
}
