package systems

import (
	"testing"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/scheduler"
	"github.com/automoto/brawler/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// scriptedRandom replays fixed rolls, then answers 0.99 so nothing fires.
type scriptedRandom struct {
	rolls []float64
}

func (s *scriptedRandom) Float64() float64 {
	if len(s.rolls) == 0 {
		return 0.99
	}
	r := s.rolls[0]
	s.rolls = s.rolls[1:]
	return r
}

type testMatch struct {
	w      donburi.World
	clock  *scheduler.Scheduler
	rng    *scriptedRandom
	player *donburi.Entry
	cpu    *donburi.Entry
}

// closeRange puts the centres 120 apart: inside punch reach, boxes clear.
var closeRange = factory.MatchConfig{ArenaWidth: 560, PlayerStart: 150, CPUStart: 150}

func newTestMatch(t *testing.T, mc factory.MatchConfig) *testMatch {
	t.Helper()
	tm := &testMatch{
		w:     donburi.NewWorld(),
		clock: scheduler.New(),
		rng:   &scriptedRandom{},
	}
	mc.Clock = tm.clock
	mc.Random = tm.rng
	factory.CreateMatch(tm.w, mc)

	var ok bool
	tm.player, ok = GetPlayer(tm.w)
	require.True(t, ok)
	tm.cpu, ok = GetCPU(tm.w)
	require.True(t, ok)
	return tm
}

func (tm *testMatch) script(rolls ...float64) {
	tm.rng.rolls = append(tm.rng.rolls, rolls...)
}

func (tm *testMatch) state(e *donburi.Entry) cfg.StateID {
	return components.State.Get(e).CurrentState
}

func (tm *testMatch) combatant(e *donburi.Entry) *components.CombatantData {
	return components.Combatant.Get(e)
}

func (tm *testMatch) health(e *donburi.Entry) int {
	return components.Health.Get(e).Current
}

// place moves a combatant to a home-edge offset without any checks.
func (tm *testMatch) place(e *donburi.Entry, pos float64) {
	c := components.Combatant.Get(e)
	c.Position = pos
	syncObject(e, c, arenaWidth(tm.w))
}

// input feeds one key state through the same path the engine uses.
func (tm *testMatch) input(actions ...cfg.ActionID) {
	in := UpdateInput(tm.w, cfg.Keys(actions...))
	UpdatePause(tm.w, in)
	UpdatePlayer(tm.w)
}
