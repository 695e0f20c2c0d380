package rescue

import (
	"fmt"
	"math"

	"github.com/vovakirdan/rescue-run/internal/core"
)

// Glyphs for rendering
const (
	PlayerChar    = '@'
	PuppyChar     = 'd'
	KittenChar    = 'c'
	OfficerChar   = 'P'
	TeacupChar    = 'u'
	LightningChar = 'z'
	TruckChar     = '█'
)

// viewport maps arena coordinates onto the cells inside the border.
type viewport struct {
	left, top     int
	width, height int
	scaleX        float64
	scaleY        float64
}

func newViewport(dst *core.Screen, arenaW, arenaH float64) viewport {
	// HUD on row 0, border around the rest
	w := dst.Width() - 2
	h := dst.Height() - 3
	return viewport{
		left:   1,
		top:    2,
		width:  w,
		height: h,
		scaleX: float64(w) / arenaW,
		scaleY: float64(h) / arenaH,
	}
}

// cell converts an arena rectangle into a cell rectangle of at least 1x1.
func (v viewport) cell(r core.Rect) (x, y, w, h int) {
	x = v.left + int(r.X*v.scaleX)
	y = v.top + int(r.Y*v.scaleY)
	w = max(1, int(math.Round(r.W*v.scaleX)))
	h = max(1, int(math.Round(r.H*v.scaleY)))
	return x, y, w, h
}

// fill paints r, clipped to the viewport.
func (v viewport) fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	x, y, w, h := v.cell(r)
	x0 := core.Clamp(x, v.left, v.left+v.width)
	x1 := core.Clamp(x+w, v.left, v.left+v.width)
	y0 := core.Clamp(y, v.top, v.top+v.height)
	y1 := core.Clamp(y+h, v.top, v.top+v.height)
	dst.FillRect(x0, y0, x1-x0, y1-y0, glyph, c)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.session.Snapshot()
	size := g.cfg.Arena.EntitySize
	vp := newViewport(dst, g.cfg.Arena.Width, g.cfg.Arena.Height)

	g.renderHUD(dst, snap)
	dst.DrawBox(0, 1, dst.Width(), dst.Height()-1)

	if snap.Truck != nil {
		vp.fill(dst, snap.Truck.Box(size), TruckChar, core.ColorRed)
	}
	for _, p := range snap.Powerups {
		glyph, color := TeacupChar, core.ColorWhite
		if p.Kind == PowerupLightning {
			glyph, color = LightningChar, core.ColorYellow
		}
		vp.fill(dst, p.Box(size), glyph, color)
	}

	// Trail follows to the left of the player
	for i, a := range snap.Player.Animals {
		glyph := PuppyChar
		if a.Kind == AnimalKitten {
			glyph = KittenChar
		}
		box := core.NewRect(snap.Player.X-float64(i+1)*size, snap.Player.Y, size, size)
		vp.fill(dst, box, glyph, core.ColorGreen)
	}

	for _, o := range snap.Officers {
		vp.fill(dst, o.Box(size), OfficerChar, core.ColorBlue)
	}

	playerColor := core.ColorOrange
	if snap.Player.Invincible {
		playerColor = core.ColorGray
	}
	vp.fill(dst, snap.Player.Box(size), PlayerChar, playerColor)

	g.renderOverlay(dst, snap)
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	p := snap.Player
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", p.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d  Level: %d  Trail: %d", p.Lives, p.Level, len(p.Animals)))

	if snap.EffectActive {
		effect := fmt.Sprintf("%s %ds", snap.Effect, int(math.Ceil(snap.EffectRemaining.Seconds())))
		color := core.ColorWhite
		if snap.Effect == PowerupLightning {
			color = core.ColorYellow
		}
		dst.DrawTextColored(dst.Width()-len(effect)-1, 0, effect, color)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	switch {
	case snap.GameOver:
		dst.DrawTextCentered(mid-1, "GAME OVER")
		dst.DrawTextCentered(mid, fmt.Sprintf("Final score: %d", snap.Player.Score))
		dst.DrawTextCentered(mid+1, "R to restart, Q to quit")
	case snap.Paused:
		dst.DrawTextCentered(mid, "PAUSED")
		dst.DrawTextCentered(mid+1, "Space to resume")
	}
}
