package spectator

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/stage"
	"github.com/automoto/brawler/systems"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Renderer draws a snapshot as a flat side view: stage colours, both
// fighter frames, attack reach and health bars.
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer() *Renderer {
	return &Renderer{
		Width:  cfg.Spectator.FrameWidth,
		Height: cfg.Spectator.FrameHeight,
	}
}

// Render draws snap. st supplies the colours and may be nil.
func (r *Renderer) Render(snap systems.Snapshot, st *stage.Stage) image.Image {
	dc := gg.NewContext(r.Width, r.Height)

	sky, floor := color.Color(cfg.DarkGray), color.Color(cfg.BlackOverlay)
	if st != nil {
		sky, floor = st.SkyColor, st.FloorColor
	}
	dc.SetColor(sky)
	dc.Clear()

	arena := snap.ArenaWidth
	if arena <= 0 {
		arena = cfg.Arena.Width
	}
	scale := float64(r.Width) / arena
	floorY := float64(r.Height) - cfg.UI.FloorHeight*scale

	dc.SetColor(floor)
	dc.DrawRectangle(0, floorY, float64(r.Width), float64(r.Height)-floorY)
	dc.Fill()

	r.drawFighter(dc, snap.Player, cfg.UI.PlayerColor, scale, floorY)
	r.drawFighter(dc, snap.CPU, cfg.UI.CPUColor, scale, floorY)
	r.drawHealth(dc, snap.Player, scale, false)
	r.drawHealth(dc, snap.CPU, scale, true)

	switch {
	case snap.State == cfg.MatchStateFinished:
		r.drawBanner(dc, fmt.Sprintf("%s WINS", strings.ToUpper(snap.Winner.String())))
	case snap.Paused:
		r.drawBanner(dc, "PAUSED")
	}

	dc.SetColor(cfg.UI.TextColor)
	dc.DrawStringAnchored(fmt.Sprintf("Round %d  x%.1f  %.1fs", snap.Round, snap.Difficulty, snap.Time.Seconds()),
		float64(r.Width)/2, 16, 0.5, 0.5)

	return dc.Image()
}

func (r *Renderer) drawFighter(dc *gg.Context, c systems.CombatantSnapshot, body color.RGBA, scale, floorY float64) {
	w := cfg.Fighter.FrameWidth * scale
	h := cfg.Fighter.FrameHeight * scale
	if c.State == cfg.Duck {
		h *= 0.6
	}
	x := c.FrameLeft * scale
	y := floorY - h
	if c.State.IsAirborne() {
		y -= cfg.UI.JumpHeight * scale
	}

	if c.IsHit {
		body = cfg.UI.HitColor
	}
	dc.SetColor(body)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	if c.State == cfg.Defence {
		dc.SetColor(cfg.UI.GuardColor)
		dc.SetLineWidth(3)
		dc.DrawRectangle(x, y, w, h)
		dc.Stroke()
	}

	// facing marker and attack reach
	dir := 1.0
	if c.FacingLeft {
		dir = -1
	}
	cx := c.CenterX * scale
	eyeY := y + h*0.2
	dc.SetColor(cfg.UI.TextColor)
	dc.DrawCircle(cx+dir*w*0.3, eyeY, 3)
	dc.Fill()

	if c.State.IsAttack() {
		reach := systems.Reach(c.State) * scale
		dc.SetColor(cfg.Yellow)
		dc.SetLineWidth(2)
		dc.DrawLine(cx, y+h*0.4, cx+dir*reach, y+h*0.4)
		dc.Stroke()
	}

	if cfg.Debug.ShowBoxes {
		dc.SetColor(cfg.Red)
		dc.SetLineWidth(1)
		dc.DrawRectangle(c.BoxLeft*scale, y, (c.BoxRight-c.BoxLeft)*scale, h)
		dc.Stroke()
	}

	dc.SetColor(cfg.UI.TextColor)
	dc.DrawStringAnchored(fmt.Sprintf("%s [%s]", c.FighterID, c.State), cx, y-8, 0.5, 0)
}

func (r *Renderer) drawHealth(dc *gg.Context, c systems.CombatantSnapshot, scale float64, right bool) {
	w := cfg.UI.HealthBarWidth * scale
	h := cfg.UI.HealthBarHeight * scale
	margin := cfg.UI.HealthBarMargin * scale
	x := margin
	if right {
		x = float64(r.Width) - margin - w
	}
	y := margin

	dc.SetColor(cfg.UI.HealthBg)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	if c.MaxHealth > 0 && c.Health > 0 {
		fill := w * float64(c.Health) / float64(c.MaxHealth)
		fx := x
		if right {
			fx = x + w - fill
		}
		dc.SetColor(cfg.UI.HealthFg)
		dc.DrawRectangle(fx, y, fill, h)
		dc.Fill()
	}
}

func (r *Renderer) drawBanner(dc *gg.Context, text string) {
	dc.SetColor(cfg.UI.Overlay)
	dc.DrawRectangle(0, 0, float64(r.Width), float64(r.Height))
	dc.Fill()
	dc.SetColor(cfg.UI.TextColor)
	dc.DrawStringAnchored(text, float64(r.Width)/2, float64(r.Height)/2, 0.5, 0.5)
}

// EncodePNG renders snap at the given scale and returns PNG bytes.
func (r *Renderer) EncodePNG(snap systems.Snapshot, st *stage.Stage, scale float64) ([]byte, error) {
	img := r.Render(snap, st)
	if scale != 1 {
		w := int(float64(r.Width) * scale)
		if w < 1 {
			w = 1
		}
		img = imaging.Resize(img, w, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return buf.Bytes(), nil
}
