package rabduction

import (
	"math"

	"github.com/vovakirdan/rabduction/internal/core"
)

// Visual characters for rendering
const (
	FacingRightChar = '▶'
	FacingLeftChar  = '◀'
	WallChar        = '│'
	DeathLineChar   = '┄'
)

// hudRows is the number of screen rows reserved above the field.
const hudRows = 1

// viewport maps world coordinates (centred, Y up) onto screen cells.
type viewport struct {
	fieldW, fieldH float64
	cols, rows     int // Field area on screen
	scaleX, scaleY float64
}

func newViewport(fieldW, fieldH float64, screenW, screenH int) viewport {
	rows := max(screenH-hudRows, 1)
	cols := max(screenW, 1)
	return viewport{
		fieldW: fieldW,
		fieldH: fieldH,
		cols:   cols,
		rows:   rows,
		scaleX: float64(cols) / fieldW,
		scaleY: float64(rows) / fieldH,
	}
}

// rect converts a world box into a screen rectangle of at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	left := (b.Center.X - b.Size.X/2 + v.fieldW/2) * v.scaleX
	right := (b.Center.X + b.Size.X/2 + v.fieldW/2) * v.scaleX
	top := (v.fieldH/2 - (b.Center.Y + b.Size.Y/2)) * v.scaleY
	bottom := (v.fieldH/2 - (b.Center.Y - b.Size.Y/2)) * v.scaleY

	x0, x1 := int(math.Floor(left)), int(math.Ceil(right))
	y0, y1 := int(math.Floor(top)), int(math.Ceil(bottom))
	return core.NewRect(x0, y0+hudRows, max(x1-x0, 1), max(y1-y0, 1))
}

// row converts a world Y into a screen row.
func (v viewport) row(y float64) int {
	return int(math.Floor((v.fieldH/2-y)*v.scaleY)) + hudRows
}

// Render draws the latest presented frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	vp := newViewport(g.cfg.Window.Width, g.cfg.Window.Height, dst.Width(), dst.Height())

	// Death line marker along the bottom of the field
	deathRow := min(vp.row(g.cfg.Physics.DeathLine), dst.Height()-1)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, deathRow, DeathLineChar, core.ColorGray)
	}

	for _, p := range g.frame.Platforms {
		glyph, color := '▀', core.ColorRed
		if a, ok := g.catalog.Lookup(p.Archetype); ok {
			glyph, color = a.Glyph, a.Color
		}
		dst.DrawRect(vp.rect(core.Box{Center: p.Pos, Size: p.Size}), glyph, color)
	}

	if pv := g.frame.Player; pv.Spawned {
		g.drawPlayer(dst, vp, pv)
	}

	dst.DrawText(1, 0, g.scoreText)
	title := g.cfg.Window.Title
	dst.DrawText(dst.Width()-len([]rune(title))-1, 0, title)

	switch {
	case !g.frame.Player.Spawned:
		g.drawCenteredMessage(dst, g.cfg.Window.Title, "Press ←/→ or Space to drop in")
	case g.frame.Player.Dead:
		g.drawCenteredMessage(dst, "GAME OVER", g.scoreText+"  |  R to restart")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawPlayer fills the player's box and marks the facing side.
func (g *Game) drawPlayer(dst *core.Screen, vp viewport, pv PlayerView) {
	color := core.ParseColor(g.cfg.Player.Color)
	body := firstRune(g.cfg.Player.Glyph, '●')
	r := vp.rect(core.Box{Center: pv.Pos, Size: pv.Size})
	dst.DrawRect(r, body, color)

	eyeX, eye := r.Right()-1, FacingRightChar
	if pv.Facing == FacingLeft {
		eyeX, eye = r.X, FacingLeftChar
	}
	dst.SetColored(eyeX, r.Y, eye, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	titleW, subW := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Max(titleW, subW) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subW)/2, boxY+3, subtitle)
}
