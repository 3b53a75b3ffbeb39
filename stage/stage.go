// Package stage loads fight stages from Tiled maps.
//
// A stage map carries its display name and colours as map properties, an
// image layer named "background" and an object group "Spawns" with one
// object named "player" and one named "cpu". Spawn x is the left edge of the
// fighter frame in world coordinates; Load converts it to the home-edge
// offsets the simulation works in.
package stage

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"math/rand"
	"path"
	"strconv"
	"strings"

	cfg "github.com/automoto/brawler/config"
	"github.com/lafriks/go-tiled"
)

// ErrNoStages is returned when a directory holds no stage maps or a set is
// empty.
var ErrNoStages = errors.New("no stages")

const (
	spawnGroup      = "Spawns"
	backgroundLayer = "background"
)

// Stage is one arena.
type Stage struct {
	Name string
	Path string

	// Background is an opaque image reference resolved by the renderer.
	Background string
	SkyColor   color.RGBA
	FloorColor color.RGBA

	Width  float64
	Height float64

	// Home-edge offsets. Zero means the configured default.
	PlayerStart float64
	CPUStart    float64
}

// Load parses a single TMX stage from fsys.
func Load(fsys fs.FS, tmxPath string) (*Stage, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	// maps without a <properties> element leave the pointer nil
	props := tiled.Properties{}
	if m.Properties != nil {
		props = *m.Properties
	}

	st := &Stage{
		Name:       props.GetString("name"),
		Path:       tmxPath,
		SkyColor:   parseColor(props.GetString("skyColor"), cfg.DarkGray),
		FloorColor: parseColor(props.GetString("floorColor"), cfg.DarkGray),
		Width:      float64(m.Width * m.TileWidth),
		Height:     float64(m.Height * m.TileHeight),
	}
	if st.Name == "" {
		st.Name = strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))
	}
	if st.Width <= 0 {
		return nil, fmt.Errorf("stage %s has no width", tmxPath)
	}

	for _, layer := range m.ImageLayers {
		if layer.Name == backgroundLayer && layer.Image != nil {
			st.Background = layer.Image.Source
			break
		}
	}

	for _, og := range m.ObjectGroups {
		if og.Name != spawnGroup {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case "player":
				st.PlayerStart = o.X
			case "cpu":
				st.CPUStart = st.Width - o.X - cfg.Fighter.FrameWidth
			}
		}
	}

	return st, nil
}

// parseColor reads "#rrggbb" or "#aarrggbb" as Tiled writes colours.
func parseColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	c := color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	if len(s) == 8 {
		c.A = uint8(v >> 24)
	}
	return c
}

// Set is the collection of stages a run picks from.
type Set struct {
	stages []*Stage
}

func NewSet(stages ...*Stage) *Set {
	return &Set{stages: stages}
}

// LoadAll loads every TMX file in dir, ordered by file name.
func LoadAll(fsys fs.FS, dir string) (*Set, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read stages directory %s: %w", dir, err)
	}

	set := &Set{}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".tmx" {
			continue
		}
		st, err := Load(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		set.stages = append(set.stages, st)
	}

	if len(set.stages) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoStages, dir)
	}
	return set, nil
}

// Pick selects a stage uniformly at random.
func (s *Set) Pick(rng *rand.Rand) (*Stage, error) {
	if s == nil || len(s.stages) == 0 {
		return nil, ErrNoStages
	}
	return s.stages[rng.Intn(len(s.stages))], nil
}

// Lookup finds a stage by display name.
func (s *Set) Lookup(name string) (*Stage, bool) {
	for _, st := range s.stages {
		if st.Name == name {
			return st, true
		}
	}
	return nil, false
}

func (s *Set) Stages() []*Stage {
	return append([]*Stage(nil), s.stages...)
}

func (s *Set) Len() int {
	return len(s.stages)
}
