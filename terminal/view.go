package terminal

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/systems"
	"github.com/gdamore/tcell/v2"
)

// Canvas is the part of tcell.Screen the view draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

const (
	standRows = 5
	duckRows  = 3
	jumpRows  = 2
	helpText  = "←/→ move  ↑ jump  ↓ duck  d punch  a kick  s defence  p pause  q quit"
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw renders snap as a side view filling the canvas.
func Draw(c Canvas, snap systems.Snapshot) {
	w, h := c.Size()
	blank := tcell.StyleDefault
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetContent(x, y, ' ', nil, blank)
		}
	}
	if w < 20 || h < 10 {
		drawText(c, 0, 0, "terminal too small", blank)
		return
	}

	arena := snap.ArenaWidth
	if arena <= 0 {
		arena = cfg.Arena.Width
	}
	scale := float64(w) / arena
	floor := h - 2

	floorStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < w; x++ {
		c.SetContent(x, floor, '▀', nil, floorStyle)
	}

	drawFighter(c, snap.Player, rgb(cfg.UI.PlayerColor), scale, floor)
	drawFighter(c, snap.CPU, rgb(cfg.UI.CPUColor), scale, floor)

	barW := w/2 - 4
	drawBar(c, 1, 0, barW, snap.Player, false)
	drawBar(c, w-1-barW, 0, barW, snap.CPU, true)

	text := tcell.StyleDefault.Foreground(rgb(cfg.UI.TextColor))
	drawText(c, 1, 1, snap.Player.FighterID, text)
	drawText(c, w-1-len([]rune(snap.CPU.FighterID)), 1, snap.CPU.FighterID, text)
	info := fmt.Sprintf("Round %d  x%.1f  %4.1fs", snap.Round, snap.Difficulty, snap.Time.Seconds())
	drawCentered(c, w, 1, info, text)
	drawCentered(c, w, h-1, helpText, floorStyle)

	banner := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	switch {
	case snap.State == cfg.MatchStateFinished:
		drawCentered(c, w, h/2-3, strings.ToUpper(snap.Winner.String())+" WINS", banner)
	case snap.Paused:
		drawCentered(c, w, h/2-3, "PAUSED", banner)
	}
}

func drawFighter(c Canvas, f systems.CombatantSnapshot, body tcell.Color, scale float64, floor int) {
	left := int(math.Round(f.FrameLeft * scale))
	width := int(math.Max(1, math.Round(cfg.Fighter.FrameWidth*scale)))
	rows := standRows
	if f.State == cfg.Duck {
		rows = duckRows
	}
	bottom := floor - 1
	if f.State.IsAirborne() {
		bottom -= jumpRows
	}
	top := bottom - rows + 1

	if f.IsHit {
		body = rgb(cfg.UI.HitColor)
	}
	glyph := '█'
	if f.State == cfg.Defence {
		glyph = '▒'
	}
	style := tcell.StyleDefault.Foreground(body)
	for y := top; y <= bottom; y++ {
		for x := left; x < left+width; x++ {
			c.SetContent(x, y, glyph, nil, style)
		}
	}

	// facing marker on the head row
	marker, mx := '>', left+width-1
	if f.FacingLeft {
		marker, mx = '<', left
	}
	c.SetContent(mx, top, marker, nil, style.Reverse(true))

	if f.State.IsAttack() {
		reach := int(math.Round(systems.Reach(f.State) * scale / 2))
		cx := int(math.Round(f.CenterX * scale))
		y := top + 1
		strike := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		for i := 1; i <= reach; i++ {
			x := cx + i
			if f.FacingLeft {
				x = cx - i
			}
			if x < left || x >= left+width {
				c.SetContent(x, y, '─', nil, strike)
			}
		}
	}
}

func drawBar(c Canvas, x, y, width int, f systems.CombatantSnapshot, right bool) {
	filled := 0
	if f.MaxHealth > 0 {
		filled = int(math.Round(float64(width) * float64(max(f.Health, 0)) / float64(f.MaxHealth)))
	}
	fg := tcell.StyleDefault.Foreground(rgb(cfg.UI.HealthFg))
	bg := tcell.StyleDefault.Foreground(rgb(cfg.UI.HealthBg))
	for i := 0; i < width; i++ {
		on := i < filled
		if right {
			on = i >= width-filled
		}
		if on {
			c.SetContent(x+i, y, '█', nil, fg)
		} else {
			c.SetContent(x+i, y, '░', nil, bg)
		}
	}
}

func drawText(c Canvas, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		c.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentered(c Canvas, width, y int, s string, style tcell.Style) {
	n := len([]rune(s))
	drawText(c, max((width-n)/2, 0), y, s, style)
}
