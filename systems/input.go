package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// UpdateInput swaps the player's key buffers and stores the new live key
// state. Must run BEFORE UpdatePause and UpdatePlayer.
func UpdateInput(w donburi.World, keys cfg.KeyState) *components.InputData {
	input := getOrCreateInput(w)

	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = keys
	return input
}

func getOrCreateInput(w donburi.World) *components.InputData {
	if player, ok := GetPlayer(w); ok {
		return components.Input.Get(player)
	}
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous tick.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
