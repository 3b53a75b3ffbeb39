package factory

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/scheduler"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// MatchConfig is everything needed to set up one fight. Zero values fall
// back to the configured defaults.
type MatchConfig struct {
	ID                uuid.UUID
	Round             int
	Difficulty        float64
	PlayerFighter     string
	CPUFighter        string
	PreviousOpponents []string

	ArenaWidth  float64
	PlayerStart float64
	CPUStart    float64

	Clock  *scheduler.Scheduler
	Random components.RandomSource
}

// Normalize clamps out-of-range values instead of rejecting them.
func (mc MatchConfig) Normalize() MatchConfig {
	if mc.ID == uuid.Nil {
		mc.ID = uuid.New()
	}
	if mc.Round < 1 {
		mc.Round = 1
	}
	if !finite(mc.Difficulty) || mc.Difficulty < 1 {
		mc.Difficulty = 1
	}
	if !finite(mc.ArenaWidth) || mc.ArenaWidth == 0 {
		mc.ArenaWidth = cfg.Arena.Width
	}
	if mc.ArenaWidth < cfg.Arena.MinWidth {
		mc.ArenaWidth = cfg.Arena.MinWidth
	}
	if !finite(mc.PlayerStart) || mc.PlayerStart == 0 {
		mc.PlayerStart = cfg.Arena.PlayerStart
	}
	if !finite(mc.CPUStart) || mc.CPUStart == 0 {
		mc.CPUStart = cfg.Arena.CPUStart
	}
	mc.PlayerStart = ClampPosition(mc.PlayerStart, mc.ArenaWidth)
	mc.CPUStart = ClampPosition(mc.CPUStart, mc.ArenaWidth)
	mc.PlayerStart, mc.CPUStart = SeparateStarts(mc.PlayerStart, mc.CPUStart, mc.ArenaWidth)
	if mc.Clock == nil {
		mc.Clock = scheduler.New()
	}
	if mc.Random == nil {
		mc.Random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	mc.PreviousOpponents = append([]string(nil), mc.PreviousOpponents...)
	return mc
}

// ClampPosition keeps a home-edge offset inside the arena bounds.
func ClampPosition(pos, arenaWidth float64) float64 {
	upper := arenaWidth - cfg.Arena.EdgeMargin
	if pos > upper {
		pos = upper
	}
	if pos < cfg.Arena.MinPosition {
		pos = cfg.Arena.MinPosition
	}
	return pos
}

// SeparateStarts pulls both fighters back toward their home edges until the
// collision boxes have a gap between them. Touching boxes count as colliding.
func SeparateStarts(playerStart, cpuStart, arenaWidth float64) (float64, float64) {
	excess := playerStart + cfg.Fighter.PlayerCollisionWidth +
		cpuStart + cfg.Fighter.CPUCollisionWidth + 1 - arenaWidth
	if excess <= 0 {
		return playerStart, cpuStart
	}

	pull := func(start, want float64) (float64, float64) {
		take := math.Min(want, start-cfg.Arena.MinPosition)
		if take < 0 {
			take = 0
		}
		return start - take, take
	}

	var took float64
	playerStart, took = pull(playerStart, excess/2)
	excess -= took
	cpuStart, took = pull(cpuStart, excess)
	excess -= took
	if excess > 0 {
		playerStart, _ = pull(playerStart, excess)
	}
	return playerStart, cpuStart
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CreateMatch spawns the match singleton, the collision space and both
// fighters. It returns the match entry.
func CreateMatch(w donburi.World, mc MatchConfig) *donburi.Entry {
	mc = mc.Normalize()

	match := archetypes.Match.Spawn(w)
	components.Match.SetValue(match, components.MatchData{
		ID:                mc.ID,
		State:             cfg.MatchStatePlaying,
		Round:             mc.Round,
		Difficulty:        mc.Difficulty,
		PlayerFighter:     mc.PlayerFighter,
		CPUFighter:        mc.CPUFighter,
		PreviousOpponents: mc.PreviousOpponents,
		StartedAt:         mc.Clock.Now(),
	})
	components.Arena.SetValue(match, components.ArenaData{Width: mc.ArenaWidth})
	components.Clock.SetValue(match, components.ClockData{Scheduler: mc.Clock})
	components.Random.SetValue(match, components.RandomData{Source: mc.Random})

	spaceEntry := CreateSpace(w, int(mc.ArenaWidth), int(cfg.Fighter.FrameHeight), 16, 16)
	space := components.Space.Get(spaceEntry)

	player := CreateFighter(w, space, cfg.SidePlayer, mc.PlayerFighter, mc.PlayerStart, mc.ArenaWidth)
	cpu := CreateFighter(w, space, cfg.SideCPU, mc.CPUFighter, mc.CPUStart, mc.ArenaWidth)

	// Face each other from the start.
	p, c := components.Combatant.Get(player), components.Combatant.Get(cpu)
	pc, cc := p.CenterX(mc.ArenaWidth), c.CenterX(mc.ArenaWidth)
	if pc != cc {
		p.FacingLeft = cc < pc
		c.FacingLeft = pc < cc
	}

	return match
}
