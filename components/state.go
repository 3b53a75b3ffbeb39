package components

import (
	"time"

	"github.com/automoto/brawler/config"
	"github.com/looplab/fsm"
	"github.com/yohamta/donburi"
)

// StateData holds a combatant's state machine. CurrentState mirrors
// FSM.Current() so systems can switch on a typed value.
type StateData struct {
	FSM           *fsm.FSM
	CurrentState  config.StateID
	PreviousState config.StateID

	// Token is bumped on every transition out of idle. Revert timers carry
	// the token they were armed with and do nothing once it has moved on.
	Token uint64
	Since time.Duration // virtual time the current state was entered
}

var State = donburi.NewComponentType[StateData]()

// EventRevert returns any busy state to idle. Every other event is named
// after the state it enters.
const EventRevert = "revert"

// NewStateMachine builds the transition table shared by both fighters.
// Every action starts from idle, except a kick from jump which becomes a
// jump kick.
func NewStateMachine() *fsm.FSM {
	idle := config.Idle.String()
	busy := []string{
		config.Jump.String(),
		config.Duck.String(),
		config.Punch.String(),
		config.Kick.String(),
		config.JumpKick.String(),
		config.Defence.String(),
	}

	events := fsm.Events{
		{Name: config.Kick.String(), Src: []string{config.Jump.String()}, Dst: config.JumpKick.String()},
		{Name: EventRevert, Src: busy, Dst: idle},
	}
	for _, s := range []config.StateID{config.Punch, config.Kick, config.Defence, config.Duck, config.Jump} {
		events = append(events, fsm.EventDesc{Name: s.String(), Src: []string{idle}, Dst: s.String()})
	}

	return fsm.NewFSM(idle, events, fsm.Callbacks{})
}
