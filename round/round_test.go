package round

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/stage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOpponents records what it was asked and answers from a fixed list.
type fakeOpponents struct {
	next     string
	err      error
	previous []string
}

func (f *fakeOpponents) PickOpponent(_ *rand.Rand, _ string, previous []string) (string, error) {
	f.previous = previous
	return f.next, f.err
}

type failingStore struct{}

func (failingStore) Load() (Context, bool, error) { return Context{}, false, errors.New("disk on fire") }
func (failingStore) Save(Context) error           { return errors.New("disk on fire") }

func newController(opp Opponents, stages Stages, store Store) *Controller {
	return NewController(opp, stages, store, rand.New(rand.NewSource(7)))
}

func TestNewContext(t *testing.T) {
	c := NewContext("Melissa")
	assert.Equal(t, 1, c.Round)
	assert.Equal(t, 1.0, c.Difficulty)
	assert.Empty(t, c.PreviousOpponents)
}

func TestNormalize(t *testing.T) {
	prev := []string{"a"}
	c := Context{Round: -2, Difficulty: 0.25, PreviousOpponents: prev}.Normalize()
	assert.Equal(t, 1, c.Round)
	assert.Equal(t, 1.0, c.Difficulty)

	c.PreviousOpponents[0] = "b"
	assert.Equal(t, "a", prev[0])
}

func TestNormalizeNonFiniteDifficulty(t *testing.T) {
	for _, d := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		c := Context{Difficulty: d}.Normalize()
		assert.Equal(t, 1.0, c.Difficulty, "difficulty %v", d)
	}
}

func TestNextAfterPlayerWin(t *testing.T) {
	opp := &fakeOpponents{next: "Carlos-gil"}
	store := &MemoryStore{}
	ctrl := newController(opp, nil, store)

	fight, err := ctrl.Next(Handoff{
		MatchID:           uuid.New(),
		Winner:            cfg.SidePlayer,
		PlayerFighterID:   "Melissa",
		CPUFighterID:      "Eric-Quesada",
		RoundCount:        2,
		Difficulty:        1.5,
		PreviousOpponents: []string{"David-Cabeza"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, fight.Round)
	assert.Equal(t, 2.0, fight.Difficulty)
	assert.Equal(t, []string{"David-Cabeza", "Eric-Quesada"}, fight.PreviousOpponents)
	assert.Equal(t, "Carlos-gil", fight.CPUFighter)
	assert.Equal(t, []string{"David-Cabeza", "Eric-Quesada"}, opp.previous, "beaten opponent is excluded")
	assert.Nil(t, fight.Stage)

	saved, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, fight.Context, saved)
}

func TestNextAfterCPUWinRetries(t *testing.T) {
	ctrl := newController(&fakeOpponents{next: "Melissa"}, nil, nil)

	fight, err := ctrl.Next(Handoff{
		Winner:            cfg.SideCPU,
		PlayerFighterID:   "Carlos-Freire",
		CPUFighterID:      "Jorge-Freitas",
		RoundCount:        4,
		Difficulty:        2.5,
		PreviousOpponents: []string{"a", "b", "c"},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, fight.Round)
	assert.Equal(t, 2.5, fight.Difficulty)
	assert.Equal(t, []string{"a", "b", "c"}, fight.PreviousOpponents)
	assert.Equal(t, "Melissa", fight.CPUFighter)
}

func TestNextPicksStage(t *testing.T) {
	dojo := &stage.Stage{Name: "Dojo", Width: 1280}
	ctrl := newController(&fakeOpponents{next: "x"}, stage.NewSet(dojo), nil)

	fight, err := ctrl.Next(Handoff{Winner: cfg.SidePlayer, PlayerFighterID: "p", RoundCount: 1, Difficulty: 1})
	require.NoError(t, err)
	assert.Same(t, dojo, fight.Stage)
	assert.Equal(t, "Dojo", fight.Context.Stage)

	empty := newController(&fakeOpponents{next: "x"}, stage.NewSet(), nil)
	_, err = empty.Next(Handoff{PlayerFighterID: "p"})
	assert.ErrorIs(t, err, stage.ErrNoStages)
}

func TestNextOpponentError(t *testing.T) {
	ctrl := newController(&fakeOpponents{err: errors.New("nobody")}, nil, nil)
	_, err := ctrl.Next(Handoff{PlayerFighterID: "p"})
	assert.Error(t, err)
}

func TestStartResumesSavedProgress(t *testing.T) {
	store := &MemoryStore{}
	require.NoError(t, store.Save(Context{
		PlayerFighter:     "Melissa",
		Round:             5,
		Difficulty:        3,
		PreviousOpponents: []string{"a"},
	}))
	ctrl := newController(&fakeOpponents{next: "b"}, nil, store)

	fight, err := ctrl.Start("Melissa")
	require.NoError(t, err)
	assert.Equal(t, 5, fight.Round)
	assert.Equal(t, 3.0, fight.Difficulty)
	assert.Equal(t, "b", fight.CPUFighter)

	other, err := ctrl.Start("Carlos-gil")
	require.NoError(t, err)
	assert.Equal(t, 1, other.Round, "progress of another fighter is not resumed")
	assert.Equal(t, 3, store.Saves())
}

func TestStartSurvivesBrokenStore(t *testing.T) {
	ctrl := newController(&fakeOpponents{next: "b"}, nil, failingStore{})

	fight, err := ctrl.Start("Melissa")
	require.NoError(t, err)
	assert.Equal(t, 1, fight.Round)
	assert.Equal(t, "b", fight.CPUFighter)
}
