package autopilot

import (
	"testing"
	"time"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/engine"
	"github.com/automoto/brawler/round"
	"github.com/automoto/brawler/stage"
	"github.com/automoto/brawler/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

func closeEngine() *engine.Engine {
	st := &stage.Stage{Name: "Close", Width: 560, PlayerStart: 150, CPUStart: 150}
	return engine.New(engine.Options{
		Fight:  round.Fight{Context: round.NewContext("Melissa"), Stage: st},
		Random: fixedRandom(0.99),
	})
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript("right*2 punch - kick+left")
	require.NoError(t, err)
	require.Equal(t, 5, s.Len())

	var snap systems.Snapshot
	want := []cfg.KeyState{
		cfg.Keys(cfg.ActionMoveRight),
		cfg.Keys(cfg.ActionMoveRight),
		cfg.Keys(cfg.ActionPunch),
		{},
		cfg.Keys(cfg.ActionKick, cfg.ActionMoveLeft),
		cfg.Keys(cfg.ActionMoveRight), // loops
	}
	for i, w := range want {
		assert.Equal(t, w, s.Next(snap), "step %d", i)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, src := range []string{"", "fly", "punch*0", "punch*x", "none"} {
		_, err := ParseScript(src)
		assert.Error(t, err, src)
	}
}

func botSnapshot(playerX, cpuX float64) systems.Snapshot {
	return systems.Snapshot{
		State:  cfg.MatchStatePlaying,
		Player: systems.CombatantSnapshot{State: cfg.Idle, CenterX: playerX},
		CPU:    systems.CombatantSnapshot{State: cfg.Idle, CenterX: cpuX},
	}
}

func TestBot(t *testing.T) {
	tests := []struct {
		name string
		snap systems.Snapshot
		want cfg.KeyState
	}{
		{"punches in punch reach", botSnapshot(220, 340), cfg.Keys(cfg.ActionPunch)},
		{"kicks in kick reach", botSnapshot(220, 380), cfg.Keys(cfg.ActionKick)},
		{"walks right toward the cpu", botSnapshot(220, 800), cfg.Keys(cfg.ActionMoveRight)},
		{"walks left toward the cpu", botSnapshot(800, 220), cfg.Keys(cfg.ActionMoveLeft)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBot(1)
			b.Aggression, b.Caution = 1, 0

			assert.Equal(t, tt.want, b.Next(tt.snap))
			assert.Equal(t, cfg.KeyState{}, b.Next(tt.snap), "press is followed by a release")
		})
	}
}

func TestBotIdlesWhenBusyOrOver(t *testing.T) {
	b := NewBot(1)
	b.Aggression = 1

	busy := botSnapshot(220, 340)
	busy.Player.State = cfg.Punch
	assert.Equal(t, cfg.KeyState{}, b.Next(busy))

	over := botSnapshot(220, 340)
	over.State = cfg.MatchStateFinished
	assert.Equal(t, cfg.KeyState{}, b.Next(over))
}

func TestPlayScriptedKnockout(t *testing.T) {
	script, err := ParseScript("punch -")
	require.NoError(t, err)

	res := Play(closeEngine(), script, PlayOptions{Step: 50 * time.Millisecond, TrailEvery: 20})

	assert.False(t, res.TimedOut)
	assert.Equal(t, cfg.SidePlayer, res.Winner)
	assert.Equal(t, 0, res.CPUHealth)
	assert.Equal(t, 100, res.PlayerHealth)
	assert.Positive(t, res.Duration)
	assert.NotEmpty(t, res.Trail)
	assert.Equal(t, cfg.MatchStateFinished, res.Final.State)
}

func TestPlayTimesOut(t *testing.T) {
	script, err := ParseScript("-")
	require.NoError(t, err)

	res := Play(closeEngine(), script, PlayOptions{Step: 100 * time.Millisecond, Limit: time.Second})
	assert.True(t, res.TimedOut)
	assert.Equal(t, 10, res.Steps)
	assert.Equal(t, cfg.SideNone, res.Winner)
}

func TestRunBatchIsDeterministic(t *testing.T) {
	opts := BatchOptions{
		Runs:  6,
		Seed:  42,
		Fight: round.Fight{Context: round.NewContext("Melissa")},
		Play:  PlayOptions{Step: 50 * time.Millisecond, Limit: 2 * time.Minute},
	}

	opts.Workers = 1
	serial := RunBatch(opts)
	opts.Workers = 4
	parallel := RunBatch(opts)

	assert.Equal(t, serial, parallel)
	assert.Equal(t, 6, serial.Runs)
	assert.Equal(t, 6, serial.PlayerWins+serial.CPUWins+serial.TimedOut)
	assert.InDelta(t, float64(serial.CPUWins)/6, serial.CPUWinRate, 1e-9)
}

func TestRunSeed(t *testing.T) {
	assert.Equal(t, int64(10), RunSeed(10, 0))
	assert.NotEqual(t, RunSeed(10, 1), RunSeed(10, 2))
}
