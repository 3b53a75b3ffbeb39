package components

import (
	"github.com/automoto/brawler/scheduler"
	"github.com/yohamta/donburi"
)

// ArenaData holds the playable width every position transform is based on.
type ArenaData struct {
	Width float64
}

var Arena = donburi.NewComponentType[ArenaData]()

// ClockData exposes the match scheduler to systems.
type ClockData struct {
	*scheduler.Scheduler
}

var Clock = donburi.NewComponentType[ClockData]()

// RandomSource is the only randomness systems consume.
type RandomSource interface {
	Float64() float64
}

type RandomData struct {
	Source RandomSource
}

var Random = donburi.NewComponentType[RandomData]()
