package brickbreaker

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brick-breaker/internal/breaker"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	CrackChar  = '╳'
)

// Brick glyphs by kind
var brickGlyphs = map[breaker.Kind]rune{
	breaker.KindClay:   '▒',
	breaker.KindSteel:  '█',
	breaker.KindCement: '▓',
}

// Minimum terminal size
const (
	minScreenW = 40
	minScreenH = 15
)

// viewport maps arena coordinates onto screen cells.
// Row 0 is the HUD; the field is framed by a box below it.
type viewport struct {
	area  core.Rect
	field core.Rect // interior cells
	sx    float64
	sy    float64
}

func newViewport(area core.Rect, screenW, screenH int) viewport {
	field := core.NewRect(1, 2, core.Max(screenW-2, 1), core.Max(screenH-3, 1))
	return viewport{
		area:  area,
		field: field,
		sx:    float64(field.W) / float64(area.W),
		sy:    float64(field.H) / float64(area.H),
	}
}

// cell converts an arena point to a screen cell.
func (v viewport) cell(p core.Point) (int, int) {
	x := v.field.X + int(math.Floor((p.X-float64(v.area.X))*v.sx))
	y := v.field.Y + int(math.Floor((p.Y-float64(v.area.Y))*v.sy))
	return x, y
}

// rect converts an arena rectangle to screen cells, clipped to the field.
// Every non-empty rectangle covers at least one cell.
func (v viewport) rect(r core.Rect) core.Rect {
	x0, y0 := v.cell(core.Pt(r.X, r.Y))
	x1, y1 := v.cell(core.Pt(r.Right(), r.Bottom()))
	x1 = core.Max(x1, x0+1)
	y1 = core.Max(y1, y0+1)

	x0 = core.Clamp(x0, v.field.X, v.field.Right())
	x1 = core.Clamp(x1, v.field.X, v.field.Right())
	y0 = core.Clamp(y0, v.field.Y, v.field.Bottom())
	y1 = core.Clamp(y1, v.field.Y, v.field.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Resize adapts the viewport to a new terminal size without touching the
// simulation.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.screenTooSmall = screenW < minScreenW || screenH < minScreenH
	if g.wall != nil {
		g.view = newViewport(g.wall.Area(), screenW, screenH)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil || g.wall == nil {
		dst.DrawTextCentered(dst.Height()/2, "Cannot start game")
		if g.err != nil {
			dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		}
		return
	}

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(g.view.field.X-1, g.view.field.Y-1, g.view.field.W+2, g.view.field.H+2))
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the status message, score and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, g.message)

	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextCentered(0, scoreText)

	levelText := fmt.Sprintf("Level: %d/%d", g.wall.Level(), g.wall.Levels())
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

// renderBricks draws unbroken bricks, then their cracks on top.
// Neighbouring lines can share a cell row at small sizes, so all bodies
// go down before any crack.
func (g *Game) renderBricks(dst *core.Screen) {
	bricks := g.wall.Bricks()
	for _, b := range bricks {
		if !b.IsBroken() {
			dst.DrawRectColored(g.view.rect(b.Rect()), brickGlyphs[b.Kind()], b.InnerColor())
		}
	}

	for _, b := range bricks {
		if b.IsBroken() {
			continue
		}
		face := b.Face()
		cells := g.view.rect(face.Rect)
		for _, path := range face.Cracks {
			for _, p := range path {
				x, y := g.view.cell(p)
				if cells.Contains(x, y) {
					dst.SetColored(x, y, CrackChar, b.BorderColor())
				}
			}
		}
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	p := g.wall.Paddle()
	dst.DrawRectColored(g.view.rect(p.Face()), PaddleChar, p.InnerColor())
}

// renderBall draws the ball if it is inside the field.
func (g *Game) renderBall(dst *core.Screen) {
	b := g.wall.Ball()
	x, y := g.view.cell(b.Position())
	if g.view.field.Contains(x, y) {
		dst.SetColored(x, y, BallChar, b.InnerColor())
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateReady:
		dst.DrawTextCentered(dst.Height()-1, " Press SPACE to launch ")

	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Bricks: %d  |  SPACE continue  R restart", g.score)
		drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Bricks: %d  |  Press R to restart", g.score)
		drawCenteredBox(dst, MsgAllWalls, subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
