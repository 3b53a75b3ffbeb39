package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	CPU    = donburi.NewTag().SetName("CPU")
)

// Resolv tags for collision boxes
const (
	ResolvFighter = "fighter"
	ResolvPlayer  = "Player"
	ResolvCPU     = "CPU"
)
