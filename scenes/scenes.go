package scenes

import (
	"github.com/automoto/brawler/roster"
	"github.com/automoto/brawler/round"
	"github.com/automoto/brawler/stage"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Deps is what every scene needs to build the next one.
type Deps struct {
	Roster *roster.Roster
	Stages *stage.Set
	Store  round.Store // may be nil
	Seed   int64
}
