package roster

import (
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterYAML = `
fighters:
  - id: ryu
    name: Ryu
    sprites:
      stand: ryu/stand.png
      punch: ryu/punch.png
  - id: ken
    name: Ken
  - id: guile
    name: Guile
`

func loadTestRoster(t *testing.T) *Roster {
	t.Helper()
	fsys := fstest.MapFS{"fighters.yaml": {Data: []byte(rosterYAML)}}
	r, err := Load(fsys, "fighters.yaml")
	require.NoError(t, err)
	return r
}

func TestLoad(t *testing.T) {
	r := loadTestRoster(t)
	assert.Equal(t, []string{"ryu", "ken", "guile"}, r.IDs())
	assert.Equal(t, 3, r.Len())

	_, err := Load(fstest.MapFS{}, "missing.yaml")
	assert.Error(t, err)

	bad := fstest.MapFS{"dup.yaml": {Data: []byte("fighters:\n  - id: a\n  - id: a\n")}}
	_, err = Load(bad, "dup.yaml")
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	r := loadTestRoster(t)

	f, err := r.Lookup("ryu")
	require.NoError(t, err)
	assert.Equal(t, "Ryu", f.Name)
	assert.Equal(t, "ryu/punch.png", f.Sprite("punch"))
	assert.Equal(t, "ryu/stand.png", f.Sprite("kick"), "missing pose falls back to stand")

	_, err = r.Lookup("akuma")
	assert.ErrorIs(t, err, ErrUnknownFighter)
}

func TestPickOpponent(t *testing.T) {
	r := loadTestRoster(t)
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name     string
		previous []string
		allowed  []string
	}{
		{"fresh roster", nil, []string{"ken", "guile"}},
		{"one beaten", []string{"ken"}, []string{"guile"}},
		{"everyone beaten falls back", []string{"ken", "guile"}, []string{"ken", "guile"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				id, err := r.PickOpponent(rng, "ryu", tt.previous)
				require.NoError(t, err)
				assert.Contains(t, tt.allowed, id)
			}
		})
	}
}

func TestPickOpponentAlone(t *testing.T) {
	r, err := New([]Fighter{{ID: "solo"}})
	require.NoError(t, err)

	_, err = r.PickOpponent(rand.New(rand.NewSource(1)), "solo", nil)
	assert.ErrorIs(t, err, ErrNoOpponent)
}
