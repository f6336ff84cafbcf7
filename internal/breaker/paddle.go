package breaker

import "github.com/vovakirdan/brick-breaker/internal/core"

// Paddle defaults in arena units.
const (
	DefaultPaddleWidth  = 150
	DefaultPaddleHeight = 10
	DefaultPaddleSpeed  = 5
)

// Paddle is a rectangle sliding on a horizontal track at the bottom of the
// arena. The anchor is the middle of the top edge.
type Paddle struct {
	face       core.Rect
	anchorX    int
	anchorY    int
	speed      int
	moveAmount int
	min        int
	max        int

	inner  core.Color
	border core.Color
}

// NewPaddle creates a paddle anchored at anchor and constrained to the
// horizontal extent of container.
func NewPaddle(anchor core.Point, width, height, speed int, container core.Rect) *Paddle {
	p := &Paddle{
		anchorX: int(anchor.X),
		anchorY: int(anchor.Y),
		speed:   speed,
		inner:   core.ColorGreen,
		border:  core.ColorDarkGreen,
	}
	p.face = core.NewRect(p.anchorX-width/2, p.anchorY, width, height)
	p.min = container.X + width/2
	p.max = p.min + container.W - width
	return p
}

// Move shifts the paddle by the current move amount. A move that would take
// the anchor outside [min, max] is discarded.
func (p *Paddle) Move() {
	x := p.anchorX + p.moveAmount
	if x < p.min || x > p.max {
		return
	}
	p.anchorX = x
	p.face.X = x - p.face.W/2
}

// MoveLeft starts moving left.
func (p *Paddle) MoveLeft() {
	p.moveAmount = -p.speed
}

// MoveRight starts moving right.
func (p *Paddle) MoveRight() {
	p.moveAmount = p.speed
}

// Stop halts the paddle.
func (p *Paddle) Stop() {
	p.moveAmount = 0
}

// MoveTo repositions the anchor. The current move amount is kept.
func (p *Paddle) MoveTo(anchor core.Point) {
	p.anchorX = int(anchor.X)
	p.anchorY = int(anchor.Y)
	p.face = p.face.MoveTo(p.anchorX-p.face.W/2, p.anchorY)
}

// Impact reports whether the ball rests on the paddle: both its center and
// its bottom sample point are inside the face.
func (p *Paddle) Impact(b *Ball) bool {
	return p.face.ContainsPoint(b.Position()) && p.face.ContainsPoint(b.Down())
}

// Face returns the paddle rectangle.
func (p *Paddle) Face() core.Rect {
	return p.face
}

// Anchor returns the middle of the top edge.
func (p *Paddle) Anchor() core.Point {
	return core.Pt(p.anchorX, p.anchorY)
}

// MoveAmount returns the per-tick horizontal displacement.
func (p *Paddle) MoveAmount() int {
	return p.moveAmount
}

// Bounds returns the allowed range of the anchor x coordinate.
func (p *Paddle) Bounds() (min, max int) {
	return p.min, p.max
}

// InnerColor returns the fill color.
func (p *Paddle) InnerColor() core.Color {
	return p.inner
}

// BorderColor returns the outline color.
func (p *Paddle) BorderColor() core.Color {
	return p.border
}
