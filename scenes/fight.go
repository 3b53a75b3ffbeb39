package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/engine"
	"github.com/automoto/brawler/fonts"
	"github.com/automoto/brawler/round"
	"github.com/automoto/brawler/scenes/fx"
	"github.com/automoto/brawler/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FightScene plays rounds against the CPU until the player quits with Escape.
type FightScene struct {
	sceneChanger SceneChanger
	deps         Deps
	ctrl         *round.Controller
	rng          *rand.Rand

	engine *engine.Engine
	fight  round.Fight
	next   *round.Fight
	fx     fx.Match
	once   sync.Once
}

func NewFightScene(sc SceneChanger, deps Deps, ctrl *round.Controller, fight round.Fight) *FightScene {
	return &FightScene{
		sceneChanger: sc,
		deps:         deps,
		ctrl:         ctrl,
		rng:          rand.New(rand.NewSource(deps.Seed + 1)),
		fight:        fight,
	}
}

func (fs *FightScene) Update() {
	fs.once.Do(func() { fs.start(fs.fight) })

	if justPressed(ebiten.KeyEscape) {
		fs.sceneChanger.ChangeScene(NewSelectScene(fs.sceneChanger, fs.deps))
		return
	}
	if fs.next != nil {
		fs.start(*fs.next)
		fs.next = nil
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	fs.engine.OnInput(PollKeys())
	fs.engine.Advance(dt)
	fs.fx.Observe(fs.engine.Snapshot(), dt)
}

func (fs *FightScene) start(f round.Fight) {
	fs.fight = f
	fs.fx.Reset()
	fs.engine = engine.New(engine.Options{
		Fight:     f,
		Random:    rand.New(rand.NewSource(fs.rng.Int63())),
		OnHandoff: fs.onHandoff,
	})
}

// onHandoff runs inside Advance; the next match starts on the following
// frame.
func (fs *FightScene) onHandoff(h round.Handoff) {
	next, err := fs.ctrl.Next(h)
	if err != nil {
		log.Printf("Warning: Could not prepare next round: %v", err)
		return
	}
	fs.next = &next
}

func (fs *FightScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.engine == nil {
		return
	}
	snap := fs.engine.Snapshot()
	width := float32(cfg.C.Width)
	height := float32(cfg.C.Height)

	arena := snap.ArenaWidth
	if arena <= 0 {
		arena = cfg.Arena.Width
	}
	scale := width / float32(arena)
	floorY := height - float32(cfg.UI.FloorHeight)

	sky, floor := color.Color(cfg.DarkGray), color.Color(cfg.BlackOverlay)
	if st := fs.engine.Stage(); st != nil {
		sky, floor = st.SkyColor, st.FloorColor
	}
	screen.Fill(sky)
	vector.FillRect(screen, 0, floorY, width, height-floorY, floor, false)

	fs.drawFighter(screen, snap.Player, &fs.fx.Player, cfg.UI.PlayerColor, scale, floorY)
	fs.drawFighter(screen, snap.CPU, &fs.fx.CPU, cfg.UI.CPUColor, scale, floorY)
	drawHealthBar(screen, snap.Player, false)
	drawHealthBar(screen, snap.CPU, true)

	info := fmt.Sprintf("Round %d   %s vs %s", snap.Round, snap.Player.FighterID, snap.CPU.FighterID)
	if st := fs.engine.Stage(); st != nil {
		info += "   " + st.Name
	}
	text.Draw(screen, info, fonts.Small.Get(), int(cfg.UI.HealthBarMargin), int(cfg.UI.HealthBarMargin+cfg.UI.HealthBarHeight)+20, cfg.UI.TextColor)

	switch {
	case snap.State == cfg.MatchStateFinished:
		drawBanner(screen, fmt.Sprintf("%s WINS", strings.ToUpper(snap.Winner.String())))
	case snap.Paused:
		drawBanner(screen, "PAUSED")
	}
}

func (fs *FightScene) drawFighter(screen *ebiten.Image, c systems.CombatantSnapshot, effect *fx.Fighter, body color.RGBA, scale, floorY float32) {
	w := float32(cfg.Fighter.FrameWidth) * scale
	h := float32(cfg.Fighter.FrameHeight)
	if c.State == cfg.Duck {
		h *= 0.6
	}
	x := float32(c.FrameLeft) * scale
	y := floorY - h - float32(effect.Lift())

	vector.FillRect(screen, x, y, w, h, body, false)
	if flash := effect.Flash(); flash > 0 {
		hit := cfg.UI.HitColor
		overlay := color.NRGBA{R: hit.R, G: hit.G, B: hit.B, A: uint8(255 * flash)}
		vector.FillRect(screen, x, y, w, h, overlay, false)
	}
	if c.State == cfg.Defence {
		vector.StrokeRect(screen, x, y, w, h, 3, cfg.UI.GuardColor, false)
	}

	dir := float32(1)
	if c.FacingLeft {
		dir = -1
	}
	cx := float32(c.CenterX) * scale
	vector.FillRect(screen, cx+dir*w*0.3-3, y+h*0.2-3, 6, 6, cfg.UI.TextColor, false)

	if c.State.IsAttack() {
		reach := float32(systems.Reach(c.State)) * scale
		vector.StrokeLine(screen, cx, y+h*0.4, cx+dir*reach, y+h*0.4, 2, cfg.Yellow, false)
	}

	if cfg.Debug.ShowBoxes {
		bx := float32(c.BoxLeft) * scale
		vector.StrokeRect(screen, bx, y, float32(c.BoxRight-c.BoxLeft)*scale, h, 1, cfg.Red, false)
	}

	text.Draw(screen, c.FighterID, fonts.Small.Get(), int(x), int(y)-8, cfg.UI.TextColor)
}

func drawHealthBar(screen *ebiten.Image, c systems.CombatantSnapshot, right bool) {
	w := float32(cfg.UI.HealthBarWidth)
	h := float32(cfg.UI.HealthBarHeight)
	margin := float32(cfg.UI.HealthBarMargin)
	x := margin
	if right {
		x = float32(cfg.C.Width) - margin - w
	}

	vector.FillRect(screen, x, margin, w, h, cfg.UI.HealthBg, false)
	if c.MaxHealth > 0 && c.Health > 0 {
		fill := w * float32(c.Health) / float32(c.MaxHealth)
		fillX := x
		if right {
			fillX = x + w - fill
		}
		vector.FillRect(screen, fillX, margin, fill, h, cfg.UI.HealthFg, false)
	}
}

func drawBanner(screen *ebiten.Image, msg string) {
	width, height := float32(cfg.C.Width), float32(cfg.C.Height)
	vector.FillRect(screen, 0, 0, width, height, cfg.UI.Overlay, false)

	face := fonts.Title.Get()
	bounds := text.BoundString(face, msg)
	x := (cfg.C.Width - bounds.Dx()) / 2
	text.Draw(screen, msg, face, x, cfg.C.Height/2, cfg.UI.TextColor)
}
