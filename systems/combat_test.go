package systems

import (
	"math"
	"testing"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// cpuAt returns the CPU offset that puts the centres d apart in a 560 arena
// with the player at 150.
func cpuAt(d float64) float64 {
	return 560 - 150 - cfg.Fighter.FrameWidth - d
}

func TestResolveAttackPreconditions(t *testing.T) {
	tests := []struct {
		name       string
		kind       cfg.StateID
		distance   float64
		faceAway   bool
		defender   cfg.StateID
		cooldown   bool
		wantResult HitResult
		wantDamage int
	}{
		{name: "punch lands", kind: cfg.Punch, distance: 120, wantResult: HitLanded, wantDamage: 5},
		{name: "punch at exact reach", kind: cfg.Punch, distance: 140, wantResult: HitNone},
		{name: "punch just inside reach", kind: cfg.Punch, distance: 139, wantResult: HitLanded, wantDamage: 5},
		{name: "kick lands", kind: cfg.Kick, distance: 160, wantResult: HitLanded, wantDamage: 10},
		{name: "kick at exact reach", kind: cfg.Kick, distance: 170, wantResult: HitNone},
		{name: "jump kick lands", kind: cfg.JumpKick, distance: 169, wantResult: HitLanded, wantDamage: 15},
		{name: "facing away", kind: cfg.Punch, distance: 120, faceAway: true, wantResult: HitNone},
		{name: "cooldown held", kind: cfg.Kick, distance: 120, cooldown: true, wantResult: HitNone},
		{name: "punch vs jump", kind: cfg.Punch, distance: 120, defender: cfg.Jump, wantResult: HitNone},
		{name: "kick vs jump", kind: cfg.Kick, distance: 120, defender: cfg.Jump, wantResult: HitNone},
		{name: "jump kick vs jump", kind: cfg.JumpKick, distance: 120, defender: cfg.Jump, wantResult: HitNone},
		{name: "punch vs duck", kind: cfg.Punch, distance: 120, defender: cfg.Duck, wantResult: HitLanded, wantDamage: 5},
		{name: "kick vs duck", kind: cfg.Kick, distance: 120, defender: cfg.Duck, wantResult: HitNone},
		{name: "jump kick vs duck", kind: cfg.JumpKick, distance: 120, defender: cfg.Duck, wantResult: HitLanded, wantDamage: 15},
		{name: "punch vs defence", kind: cfg.Punch, distance: 120, defender: cfg.Defence, wantResult: HitBlocked, wantDamage: 1},
		{name: "jump kick vs defence", kind: cfg.JumpKick, distance: 120, defender: cfg.Defence, wantResult: HitBlocked, wantDamage: 1},
		{name: "defence is not an attack", kind: cfg.Defence, distance: 120, wantResult: HitNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := newTestMatch(t, factory.MatchConfig{ArenaWidth: 560, PlayerStart: 150, CPUStart: cpuAt(tt.distance)})
			if tt.faceAway {
				tm.combatant(tm.player).FacingLeft = true
			}
			if tt.defender != cfg.Idle {
				require.True(t, RequestTransition(tm.w, tm.cpu, tt.defender))
			}
			if tt.cooldown {
				require.True(t, AcquireHitCooldown(tm.w, tm.cpu))
			}

			out := ResolveAttack(tm.w, tm.player, tm.cpu, tt.kind)
			assert.Equal(t, tt.wantResult, out.Result)
			assert.Equal(t, tt.wantDamage, out.Damage)
			assert.Equal(t, 100-tt.wantDamage, tm.health(tm.cpu))
			assert.Equal(t, tt.wantResult == HitLanded, tm.combatant(tm.cpu).IsHit)
		})
	}
}

func TestCPUDamageScalesWithDifficulty(t *testing.T) {
	tests := []struct {
		difficulty float64
		kind       cfg.StateID
		want       int
	}{
		{1, cfg.Punch, 5},
		{1.5, cfg.Punch, 8}, // 7.5 rounds half away from zero
		{2, cfg.Kick, 20},
		{2.5, cfg.Kick, 25},
		{3, cfg.Punch, 15},
	}

	for _, tt := range tests {
		tm := newTestMatch(t, factory.MatchConfig{ArenaWidth: 560, Difficulty: tt.difficulty})
		out := ResolveAttack(tm.w, tm.cpu, tm.player, tt.kind)
		assert.Equal(t, tt.want, out.Damage, "%s at %.1f", tt.kind, tt.difficulty)
		assert.Equal(t, 100-tt.want, tm.health(tm.player))
	}
}

func TestNonFiniteDifficultyFallsBackToOne(t *testing.T) {
	for _, d := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		tm := newTestMatch(t, factory.MatchConfig{ArenaWidth: 560, Difficulty: d})
		assert.Equal(t, 1.0, GetMatch(tm.w).Difficulty)

		out := ResolveAttack(tm.w, tm.cpu, tm.player, cfg.Punch)
		assert.Equal(t, 5, out.Damage, "difficulty %v", d)
		assert.Equal(t, 95, tm.health(tm.player))
	}
}

func TestPlayerDamageIgnoresDifficulty(t *testing.T) {
	tm := newTestMatch(t, factory.MatchConfig{ArenaWidth: 560, Difficulty: 3})
	out := ResolveAttack(tm.w, tm.player, tm.cpu, cfg.Kick)
	assert.Equal(t, 10, out.Damage)
}

// Player punches an idle CPU 120 units away.
func TestScenarioPunchLandsOnce(t *testing.T) {
	tm := newTestMatch(t, closeRange)
	require.Equal(t, 220.0, tm.combatant(tm.player).CenterX(560))
	require.Equal(t, 340.0, tm.combatant(tm.cpu).CenterX(560))

	require.True(t, PerformAction(tm.w, tm.player, cfg.Punch))
	assert.Equal(t, 95, tm.health(tm.cpu))
	assert.True(t, tm.combatant(tm.cpu).IsHit)

	tm.clock.Advance(299 * ms)
	assert.True(t, tm.combatant(tm.cpu).IsHit)
	tm.clock.Advance(ms)
	assert.False(t, tm.combatant(tm.cpu).IsHit)
	assert.Equal(t, cfg.Idle, tm.state(tm.player))

	// a second punch inside the cooldown window does nothing
	tm.clock.Advance(100 * ms)
	require.True(t, PerformAction(tm.w, tm.player, cfg.Punch))
	assert.Equal(t, 95, tm.health(tm.cpu))
}

// CPU kicks a defending player at difficulty 2.
func TestScenarioKickAgainstDefenceChips(t *testing.T) {
	tm := newTestMatch(t, factory.MatchConfig{ArenaWidth: 560, Difficulty: 2})
	require.True(t, RequestTransition(tm.w, tm.player, cfg.Defence))

	out := ResolveAttack(tm.w, tm.cpu, tm.player, cfg.Kick)
	assert.Equal(t, HitOutcome{Result: HitBlocked, Damage: 1}, out)
	assert.Equal(t, 99, tm.health(tm.player))
	assert.False(t, tm.combatant(tm.player).IsHit)
}

// A grounded kick misses a ducking CPU, a jump kick does not.
func TestScenarioJumpKickHitsDuck(t *testing.T) {
	tm := newTestMatch(t, closeRange)
	require.True(t, RequestTransition(tm.w, tm.cpu, cfg.Duck))

	require.True(t, PerformAction(tm.w, tm.player, cfg.Kick))
	assert.Equal(t, 100, tm.health(tm.cpu))
	assert.False(t, HitCooldownActive(tm.w))

	tm.clock.Advance(cfg.Timing.Kick)
	require.Equal(t, cfg.Idle, tm.state(tm.player))
	require.True(t, RequestTransition(tm.w, tm.cpu, cfg.Duck))

	require.True(t, RequestTransition(tm.w, tm.player, cfg.Jump))
	out := ResolveAttack(tm.w, tm.player, tm.cpu, cfg.JumpKick)
	assert.Equal(t, HitOutcome{Result: HitLanded, Damage: 15}, out)
	assert.Equal(t, 85, tm.health(tm.cpu))
}

// A hit that takes health to exactly 0 ends the match once.
func TestScenarioKnockoutEndsMatch(t *testing.T) {
	tm := newTestMatch(t, closeRange)
	RegisterTasks(tm.w)
	components.Health.Get(tm.cpu).Current = 5

	var ended []MatchEndedEvent
	MatchEndedEvents.Subscribe(tm.w, func(_ donburi.World, e MatchEndedEvent) {
		ended = append(ended, e)
	})

	require.True(t, PerformAction(tm.w, tm.player, cfg.Punch))
	events.ProcessAllEvents(tm.w)

	assert.Equal(t, 0, tm.health(tm.cpu))
	match := GetMatch(tm.w)
	assert.Equal(t, cfg.MatchStateFinished, match.State)
	assert.Equal(t, cfg.SidePlayer, match.Winner)
	require.Len(t, ended, 1)
	assert.Equal(t, cfg.SidePlayer, ended[0].Winner)
	assert.True(t, tm.clock.Stopped())
	assert.Empty(t, tm.clock.Tasks())

	// nothing moves any more
	assert.False(t, EndMatch(tm.w, cfg.SideCPU))
	assert.Equal(t, HitOutcome{}, ResolveAttack(tm.w, tm.cpu, tm.player, cfg.Kick))
	assert.False(t, RequestTransition(tm.w, tm.cpu, cfg.Jump))
	tm.clock.Advance(10 * cfg.Combat.HitCooldown)
	assert.Equal(t, cfg.Punch, tm.state(tm.player), "revert timers died with the clock")
	assert.Equal(t, 100, tm.health(tm.player))

	events.ProcessAllEvents(tm.w)
	assert.Len(t, ended, 1)
}

func TestHitCooldownSerialisesHits(t *testing.T) {
	tm := newTestMatch(t, closeRange)

	require.True(t, AcquireHitCooldown(tm.w, tm.player))
	assert.False(t, AcquireHitCooldown(tm.w, tm.cpu))
	assert.Equal(t, cfg.SidePlayer, getHitCooldown(tm.w).Holder)

	tm.clock.Advance(cfg.Combat.HitCooldown - ms)
	assert.True(t, HitCooldownActive(tm.w))
	tm.clock.Advance(ms)
	assert.False(t, HitCooldownActive(tm.w))
	assert.True(t, AcquireHitCooldown(tm.w, tm.cpu))
}

func TestHitEventsPublished(t *testing.T) {
	tm := newTestMatch(t, closeRange)
	var hits []HitEvent
	HitEvents.Subscribe(tm.w, func(_ donburi.World, e HitEvent) {
		hits = append(hits, e)
	})

	ResolveAttack(tm.w, tm.player, tm.cpu, cfg.Punch)
	ResolveAttack(tm.w, tm.cpu, tm.player, cfg.Punch)
	events.ProcessAllEvents(tm.w)

	require.Len(t, hits, 1)
	assert.Equal(t, cfg.SidePlayer, hits[0].Attacker)
	assert.Equal(t, 95, hits[0].DefenderHealth)
}
