package scenes

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/automoto/brawler/round"
	"github.com/automoto/brawler/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SelectScene lets the player pick a fighter with the keyboard or the mouse.
type SelectScene struct {
	sceneChanger SceneChanger
	deps         Deps
	selectUI     *ui.SelectUI
	selected     int
	chosen       string
}

// NewSelectScene creates the fighter select screen
func NewSelectScene(sc SceneChanger, deps Deps) *SelectScene {
	ss := &SelectScene{sceneChanger: sc, deps: deps}
	ss.selectUI = ui.NewSelectUI(deps.Roster.Fighters(), func(id string) { ss.chosen = id })
	ss.highlight()
	return ss
}

func (ss *SelectScene) Update() {
	fighters := ss.deps.Roster.Fighters()
	switch {
	case justPressed(ebiten.KeyUp, ebiten.KeyW):
		ss.selected = (ss.selected + len(fighters) - 1) % len(fighters)
		ss.highlight()
	case justPressed(ebiten.KeyDown, ebiten.KeyS):
		ss.selected = (ss.selected + 1) % len(fighters)
		ss.highlight()
	case justPressed(ebiten.KeyEnter, ebiten.KeySpace):
		ss.chosen = fighters[ss.selected].ID
	}

	ss.selectUI.Update()

	if ss.chosen != "" {
		id := ss.chosen
		ss.chosen = ""
		ss.start(id)
	}
}

func (ss *SelectScene) highlight() {
	ss.selectUI.Highlight(ss.selected, ss.deps.Roster.Fighters()[ss.selected])
}

func (ss *SelectScene) start(fighterID string) {
	rng := rand.New(rand.NewSource(ss.deps.Seed))
	ctrl := round.NewController(ss.deps.Roster, ss.deps.Stages, ss.deps.Store, rng)
	fight, err := ctrl.Start(fighterID)
	if err != nil {
		log.Printf("Warning: Could not start round: %v", err)
		ss.selectUI.SetStatus(err.Error())
		return
	}
	ss.sceneChanger.ChangeScene(NewFightScene(ss.sceneChanger, ss.deps, ctrl, fight))
}

func (ss *SelectScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ss.selectUI.UI.Draw(screen)
}
