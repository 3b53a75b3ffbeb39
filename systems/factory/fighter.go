package factory

import (
	"github.com/automoto/brawler/archetypes"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateFighter spawns one combatant at a home-edge offset and adds its
// collision box to the space.
func CreateFighter(w donburi.World, space *resolv.Space, side cfg.Side, fighterID string, position, arenaWidth float64) *donburi.Entry {
	var fighter *donburi.Entry
	var sideTag string
	if side == cfg.SideCPU {
		fighter = archetypes.CPU.Spawn(w)
		sideTag = tags.ResolvCPU
	} else {
		fighter = archetypes.Player.Spawn(w)
		sideTag = tags.ResolvPlayer
	}

	combatant := components.CombatantData{
		Side:       side,
		FighterID:  fighterID,
		Position:   position,
		FacingLeft: side == cfg.SideCPU,
		LastAction: cfg.Idle,
	}
	components.Combatant.SetValue(fighter, combatant)

	left, right := combatant.Box(arenaWidth)
	obj := resolv.NewObject(left, 0, right-left, cfg.Fighter.FrameHeight, tags.ResolvFighter, sideTag)
	obj.SetShape(resolv.NewRectangle(0, 0, right-left, cfg.Fighter.FrameHeight))
	obj.Data = fighter
	space.Add(obj)
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	components.State.SetValue(fighter, components.StateData{
		FSM:           components.NewStateMachine(),
		CurrentState:  cfg.Idle,
		PreviousState: cfg.Idle,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: cfg.Fighter.Health,
		Max:     cfg.Fighter.Health,
	})

	return fighter
}
