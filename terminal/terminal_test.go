package terminal

import (
	"strings"
	"testing"
	"time"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/systems"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionForKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want cfg.ActionID
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), cfg.ActionMoveLeft, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), cfg.ActionMoveRight, true},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), cfg.ActionJump, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), cfg.ActionDuck, true},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), cfg.ActionPunch, true},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), cfg.ActionKick, true},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), cfg.ActionDefence, true},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), cfg.ActionPause, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), cfg.ActionNone, false},
	}
	for _, tt := range tests {
		got, ok := ActionForKey(tt.ev)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.want, got)
	}
}

func TestKeyTrackerHoldWindow(t *testing.T) {
	k := NewKeyTracker(150 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	k.Press(cfg.ActionPunch, t0)
	k.Press(cfg.ActionMoveLeft, t0.Add(100*time.Millisecond))
	k.Press(cfg.ActionNone, t0)

	assert.Equal(t, cfg.Keys(cfg.ActionPunch, cfg.ActionMoveLeft), k.State(t0.Add(120*time.Millisecond)))
	assert.Equal(t, cfg.Keys(cfg.ActionMoveLeft), k.State(t0.Add(150*time.Millisecond)))
	assert.Equal(t, cfg.KeyState{}, k.State(t0.Add(time.Second)))
}

// grid is an in-memory Canvas.
type grid struct {
	w, h  int
	cells [][]rune
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([][]rune, h)}
	for y := range g.cells {
		g.cells[y] = make([]rune, w)
	}
	return g
}

func (g *grid) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	if x >= 0 && x < g.w && y >= 0 && y < g.h {
		g.cells[y][x] = r
	}
}

func (g *grid) Size() (int, int) { return g.w, g.h }

func (g *grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func testSnapshot() systems.Snapshot {
	return systems.Snapshot{
		State:      cfg.MatchStatePlaying,
		Round:      2,
		Difficulty: 1.5,
		ArenaWidth: 800,
		Player: systems.CombatantSnapshot{
			FighterID: "Melissa", FrameLeft: 100, CenterX: 170,
			State: cfg.Punch, Health: 50, MaxHealth: 100,
		},
		CPU: systems.CombatantSnapshot{
			FighterID: "Carlos-gil", FrameLeft: 500, CenterX: 570,
			State: cfg.Defence, FacingLeft: true, Health: 100, MaxHealth: 100,
		},
	}
}

func TestDraw(t *testing.T) {
	g := newGrid(80, 20)
	Draw(g, testSnapshot())
	out := g.String()

	assert.Contains(t, out, "Melissa")
	assert.Contains(t, out, "Carlos-gil")
	assert.Contains(t, out, "Round 2")
	assert.Contains(t, out, "▒", "guarding fighter")
	assert.Contains(t, out, "─", "punch reach")
	assert.Contains(t, out, "<", "cpu faces left")
	assert.NotContains(t, out, "PAUSED")

	// player bar is half full, cpu bar full
	barW := 80/2 - 4
	assert.Equal(t, barW/2, strings.Count(string(g.cells[0][1:1+barW]), "█"))
	assert.Equal(t, barW, strings.Count(string(g.cells[0][80-1-barW:80-1]), "█"))
}

func TestDrawBanners(t *testing.T) {
	snap := testSnapshot()
	snap.Paused = true
	g := newGrid(80, 20)
	Draw(g, snap)
	assert.Contains(t, g.String(), "PAUSED")

	snap.Paused = false
	snap.State = cfg.MatchStateFinished
	snap.Winner = cfg.SidePlayer
	Draw(g, snap)
	assert.Contains(t, g.String(), "PLAYER WINS")
}

func TestDrawTooSmall(t *testing.T) {
	g := newGrid(19, 5)
	Draw(g, testSnapshot())
	assert.Contains(t, g.String(), "terminal too")
}

func TestHitTone(t *testing.T) {
	tone, err := hitTone(880, 50*time.Millisecond)
	require.NoError(t, err)

	samples := make([][2]float64, sampleRate.N(time.Second))
	n, _ := tone.Stream(samples)
	assert.Equal(t, sampleRate.N(50*time.Millisecond), n)
}

func TestSilentBeeper(t *testing.T) {
	b := NewBeeper(880, 50*time.Millisecond)
	assert.NotPanics(t, func() {
		b.PlayHit()
		b.Close()
	})
}
