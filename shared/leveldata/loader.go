package leveldata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

var (
	ErrTileCount        = errors.New("wrong number of tiles")
	ErrTileSprite       = errors.New("tile sprite out of range")
	ErrUnknownColor     = errors.New("unknown color")
	ErrUnknownCollision = errors.New("unknown monster collision")
	ErrUnknownMovement  = errors.New("unknown monster movement")
	ErrNoSprites        = errors.New("monster has no sprites")
	ErrNoTileLayer      = errors.New("no tile layer")
	ErrUnknownFormat    = errors.New("unknown level format")
)

// Decode reads a level in the exported JSON format.
func Decode(r io.Reader, name string) (*LevelData, error) {
	var data LevelData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode level %s: %w", name, err)
	}
	data.Name = name
	data.normalize()
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &data, nil
}

// LoadJSON loads an exported JSON level from fsys.
func LoadJSON(fsys fs.FS, jsonPath string) (*LevelData, error) {
	f, err := fsys.Open(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", jsonPath, err)
	}
	defer f.Close()
	return Decode(f, stem(jsonPath))
}

// LoadTMX converts a Tiled map into level data. Map properties carry the
// colors, star requirement and particle settings; an object of class
// "Start" marks the spawn point and objects of class "Monster" become monsters.
func LoadTMX(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	// Maps without a <properties> element leave the pointer nil.
	props := tiled.Properties{}
	if levelMap.Properties != nil {
		props = *levelMap.Properties
	}

	data := &LevelData{
		Name:            stem(tmxPath),
		BackgroundColor: colorProperty(props, "background_color", "Black"),
		FontColor:       colorProperty(props, "font_color", "White"),
		Stars:           props.GetInt("stars"),
		ParticleChance:  props.GetInt("particle_chance"),
		ParticleSprite:  props.GetInt("particle_sprite"),
		StartPosition:   gamemath.Pt(cfg.Player.StartX, cfg.Player.StartY),
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == "tiles" {
			layer = l
			break
		}
		if layer == nil {
			layer = l
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoTileLayer)
	}
	data.Tiles = make([]int, 0, levelMap.Width*levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				data.Tiles = append(data.Tiles, 0)
				continue
			}
			data.Tiles = append(data.Tiles, int(tile.ID)+1)
		}
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch objectClass(o) {
			case "Start":
				data.StartPosition = gamemath.Pt(int(o.X), int(o.Y))
			case "Monster":
				m, err := monsterFromObject(levelMap, o)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: object %d: %w", tmxPath, o.ID, err)
				}
				data.Monsters = append(data.Monsters, m)
			}
		}
	}

	data.normalize()
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", tmxPath, err)
	}
	return data, nil
}

// Load picks the decoder from the file extension.
func Load(fsys fs.FS, levelPath string) (*LevelData, error) {
	switch path.Ext(levelPath) {
	case ".json":
		return LoadJSON(fsys, levelPath)
	case ".tmx":
		return LoadTMX(fsys, levelPath)
	}
	return nil, fmt.Errorf("load %s: %w", levelPath, ErrUnknownFormat)
}

// LoadAll loads every .json and .tmx level in dir, keyed by stem name.
// When both formats exist for a stem the JSON export wins.
func LoadAll(fsys fs.FS, dir string) (map[string]*LevelData, []string, error) {
	var matches []string
	for _, ext := range []string{"*.tmx", "*.json"} {
		m, err := fs.Glob(fsys, path.Join(dir, ext))
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", dir, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no levels found in %s", dir)
	}

	levels := make(map[string]*LevelData, len(matches))
	for _, p := range matches {
		data, err := Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		levels[data.Name] = data
	}

	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return levels, names, nil
}

func monsterFromObject(levelMap *tiled.Map, o *tiled.Object) (MonsterData, error) {
	props := o.Properties
	if o.GID != 0 {
		tile, err := levelMap.TileGIDToTile(o.GID)
		if err != nil {
			return MonsterData{}, err
		}
		if tsTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			// Object properties override the ones set on the tileset tile.
			props = append(append(tiled.Properties{}, o.Properties...), tsTile.Properties...)
		}
		sprite := int(tile.ID)
		if _, ok := lookup(props, "sprite"); !ok {
			props = append(props, &tiled.Property{Name: "sprite", Value: strconv.Itoa(sprite)})
		}
	}

	m := MonsterData{
		Collision: MonsterCollision(props.GetString("collision")),
		Movement:  MonsterMovement(props.GetString("movement")),
		Gravity:   props.GetBool("gravity"),
		Frames:    props.GetInt("frames"),
		Position:  gamemath.Pt(int(o.X), int(o.Y)),
		Velocity: gamemath.Vec2{
			X: props.GetFloat("velocity_x"),
			Y: props.GetFloat("velocity_y"),
		},
		Width:  int(o.Width),
		Height: int(o.Height),
	}
	if m.Frames <= 0 {
		m.Frames = 1
	}

	sprite, ok := lookup(props, "sprite")
	if !ok {
		return m, ErrNoSprites
	}
	first, err := strconv.Atoi(sprite)
	if err != nil {
		return m, fmt.Errorf("sprite %q: %w", sprite, err)
	}
	count := props.GetInt("sprites")
	if count <= 0 {
		count = 1
	}
	for i := range count {
		m.Sprites = append(m.Sprites, first+i*m.Frames)
	}
	reverse := first + count*m.Frames
	if r, ok := lookup(props, "reverse_sprite"); ok {
		if v, err := strconv.Atoi(r); err == nil && v >= 0 {
			reverse = v
		}
	}
	for i := range count {
		m.ReverseSprites = append(m.ReverseSprites, reverse+i*m.Frames)
	}
	return m, nil
}

// lookup returns the first property named name.
func lookup(props tiled.Properties, name string) (string, bool) {
	for _, p := range props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX uses type= attribute
}

// colorProperty accepts either a palette name or a palette index.
func colorProperty(props tiled.Properties, name, fallback string) string {
	v := props.GetString(name)
	if v == "" {
		return fallback
	}
	if i, err := strconv.Atoi(v); err == nil && i >= 0 && i < len(cfg.ColorNames) {
		return cfg.ColorNames[i]
	}
	return v
}

func stem(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}

// normalize fills in the defaults the asset formats leave out.
func (l *LevelData) normalize() {
	for i := range l.Monsters {
		m := &l.Monsters[i]
		if m.Collision == "" {
			m.Collision = CollisionDeadly
		}
		if m.Movement == "" {
			m.Movement = MovementTurnsAtEdge
		}
		if m.Frames <= 0 {
			m.Frames = 1
		}
		if len(m.Sprites) == 0 && m.Sprite != nil {
			m.Sprites = []int{*m.Sprite}
		}
		if len(m.ReverseSprites) == 0 {
			if m.ReverseSprite != nil && *m.ReverseSprite >= 0 {
				m.ReverseSprites = []int{*m.ReverseSprite}
			} else {
				for _, s := range m.Sprites {
					m.ReverseSprites = append(m.ReverseSprites, s+m.Frames)
				}
			}
		}
		if m.Width <= 0 {
			m.Width = cfg.Level.TileSize
		}
		if m.Height <= 0 {
			m.Height = cfg.Level.TileSize
		}
	}
}
