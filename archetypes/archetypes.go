package archetypes

import (
	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Combatant,
		components.Player,
		components.Object,
		components.Health,
		components.State,
		components.Input,
	)
	CPU = newArchetype(
		tags.CPU,
		components.Combatant,
		components.CPU,
		components.Object,
		components.Health,
		components.State,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Match,
		components.Arena,
		components.Clock,
		components.Random,
		components.HitCooldown,
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
