package systems

import (
	"encoding/json"
	"testing"

	cfg "github.com/automoto/brawler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeSnapshot(t *testing.T) {
	tm := newTestMatch(t, closeRange)
	require.True(t, PerformAction(tm.w, tm.player, cfg.Punch))

	snap := TakeSnapshot(tm.w)
	assert.Equal(t, GetMatch(tm.w).ID, snap.MatchID)
	assert.Equal(t, cfg.MatchStatePlaying, snap.State)
	assert.Equal(t, 560.0, snap.ArenaWidth)
	assert.True(t, snap.HitCooldown)

	assert.Equal(t, cfg.Punch, snap.Player.State)
	assert.Equal(t, 220.0, snap.Player.CenterX)
	assert.False(t, snap.Player.FacingLeft)
	assert.Equal(t, 95, snap.CPU.Health)
	assert.True(t, snap.CPU.IsHit)
	assert.Equal(t, 270.0, snap.CPU.FrameLeft)
	assert.Equal(t, [2]float64{150, 250}, [2]float64{snap.Player.BoxLeft, snap.Player.BoxRight})
	assert.Equal(t, [2]float64{320, 410}, [2]float64{snap.CPU.BoxLeft, snap.CPU.BoxRight})
	assert.Equal(t, snap.CPU, snap.Combatant(cfg.SideCPU))

	// later changes do not leak into an earlier snapshot
	tm.clock.Advance(cfg.Combat.HitCooldown)
	assert.Equal(t, cfg.Punch, snap.Player.State)
	assert.Equal(t, cfg.Idle, TakeSnapshot(tm.w).Player.State)
}

func TestSnapshotJSON(t *testing.T) {
	tm := newTestMatch(t, closeRange)
	require.True(t, RequestTransition(tm.w, tm.cpu, cfg.Jump))

	b, err := json.Marshal(TakeSnapshot(tm.w))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "playing", doc["state"])
	assert.Equal(t, "none", doc["winner"])
	cpu := doc["cpu"].(map[string]any)
	assert.Equal(t, "jump", cpu["state"])
	assert.Equal(t, "cpu", cpu["side"])
}
