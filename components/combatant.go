package components

import (
	"github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// CombatantData is the simulation view of one fighter.
type CombatantData struct {
	Side      config.Side
	FighterID string

	// Position is the offset from this side's home edge: the player measures
	// from the left of the arena, the CPU from the right.
	Position float64

	FacingLeft    bool
	IsWalking     bool
	IsHit         bool
	HitToken      uint64 // guards the timer that clears IsHit
	JumpDirection config.JumpDirection

	// LastAction is the most recent action this combatant started. The CPU
	// reacts to the player's.
	LastAction config.StateID
}

var Combatant = donburi.NewComponentType[CombatantData]()

// FrameLeft is the left edge of the fighter frame in arena coordinates.
func (c *CombatantData) FrameLeft(arenaWidth float64) float64 {
	if c.Side == config.SideCPU {
		return arenaWidth - c.Position - config.Fighter.FrameWidth
	}
	return c.Position
}

// CenterX is used for every distance and facing check.
func (c *CombatantData) CenterX(arenaWidth float64) float64 {
	return c.FrameLeft(arenaWidth) + config.Fighter.FrameWidth/2
}

// BoxWidth is the width of this side's collision box.
func (c *CombatantData) BoxWidth() float64 {
	if c.Side == config.SideCPU {
		return config.Fighter.CPUCollisionWidth
	}
	return config.Fighter.PlayerCollisionWidth
}

// Box returns the collision extent in arena coordinates. The player's box
// hugs the left of its frame and the CPU's the right.
func (c *CombatantData) Box(arenaWidth float64) (left, right float64) {
	if c.Side == config.SideCPU {
		right = arenaWidth - c.Position
		return right - c.BoxWidth(), right
	}
	return c.Position, c.Position + c.BoxWidth()
}

// OffsetDelta converts an arena-space displacement into a change of Position.
func (c *CombatantData) OffsetDelta(dx float64) float64 {
	if c.Side == config.SideCPU {
		return -dx
	}
	return dx
}
