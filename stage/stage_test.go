package stage

import (
	"image/color"
	"math/rand"
	"testing"
	"testing/fstest"

	cfg "github.com/automoto/brawler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arenaTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="12" tilewidth="32" tileheight="32" infinite="0">
 <properties>
  <property name="name" value="Test Arena"/>
  <property name="skyColor" value="#102030"/>
  <property name="floorColor" value="#80405060"/>
 </properties>
 <imagelayer id="1" name="background">
  <image source="bg/arena.png" width="1280" height="384"/>
 </imagelayer>
 <objectgroup id="2" name="Spawns">
  <object id="1" name="player" x="200" y="184" width="140" height="200"/>
  <object id="2" name="cpu" x="900" y="184" width="140" height="200"/>
 </objectgroup>
</map>
`

const bareTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="32" tileheight="32" infinite="0">
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"stages/b_arena.tmx": {Data: []byte(arenaTMX)},
		"stages/a_bare.tmx":  {Data: []byte(bareTMX)},
		"stages/readme.txt":  {Data: []byte("not a stage")},
	}
}

func TestLoad(t *testing.T) {
	st, err := Load(testFS(), "stages/b_arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, "Test Arena", st.Name)
	assert.Equal(t, "bg/arena.png", st.Background)
	assert.Equal(t, 1280.0, st.Width)
	assert.Equal(t, 384.0, st.Height)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, st.SkyColor)
	assert.Equal(t, color.RGBA{R: 0x40, G: 0x50, B: 0x60, A: 0x80}, st.FloorColor)

	// player spawn is already a home-edge offset; cpu is mirrored
	assert.Equal(t, 200.0, st.PlayerStart)
	assert.Equal(t, 1280.0-900-140, st.CPUStart)
}

func TestLoadDefaults(t *testing.T) {
	st, err := Load(testFS(), "stages/a_bare.tmx")
	require.NoError(t, err)

	assert.Equal(t, "a_bare", st.Name, "name falls back to the file name")
	assert.Equal(t, 640.0, st.Width)
	assert.Equal(t, cfg.DarkGray, st.SkyColor)
	assert.Equal(t, cfg.DarkGray, st.FloorColor)
	assert.Zero(t, st.PlayerStart)
	assert.Zero(t, st.CPUStart)
	assert.Empty(t, st.Background)
}

func TestLoadWithoutNameProperty(t *testing.T) {
	fsys := fstest.MapFS{"night.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="32" tileheight="32" infinite="0">
 <properties>
  <property name="skyColor" value="#000010"/>
 </properties>
</map>
`)}}

	st, err := Load(fsys, "night.tmx")
	require.NoError(t, err)
	assert.Equal(t, "night", st.Name)
	assert.Equal(t, color.RGBA{B: 0x10, A: 0xff}, st.SkyColor)
	assert.Equal(t, cfg.DarkGray, st.FloorColor)
}

func TestLoadAll(t *testing.T) {
	set, err := LoadAll(testFS(), "stages")
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())

	stages := set.Stages()
	assert.Equal(t, "a_bare", stages[0].Name)
	assert.Equal(t, "Test Arena", stages[1].Name)

	st, ok := set.Lookup("Test Arena")
	require.True(t, ok)
	assert.Equal(t, "stages/b_arena.tmx", st.Path)

	_, err = LoadAll(fstest.MapFS{"stages/x.txt": {Data: []byte("x")}}, "stages")
	assert.ErrorIs(t, err, ErrNoStages)
}

func TestPick(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	_, err := NewSet().Pick(rng)
	assert.ErrorIs(t, err, ErrNoStages)

	one := &Stage{Name: "only"}
	st, err := NewSet(one).Pick(rng)
	require.NoError(t, err)
	assert.Same(t, one, st)
}

func TestParseColor(t *testing.T) {
	fallback := color.RGBA{A: 1}
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 128, A: 255}, parseColor("#ff0080", fallback))
	assert.Equal(t, fallback, parseColor("", fallback))
	assert.Equal(t, fallback, parseColor("#zzzzzz", fallback))
	assert.Equal(t, fallback, parseColor("#fff", fallback))
}
