package breaker

import "github.com/vovakirdan/brick-breaker/internal/core"

// CrackDirection is the direction a crack travels from the impact point.
type CrackDirection int

// Crack directions. A crack runs toward the opposite edge: CrackLeft ends on
// the right edge, CrackUp on the bottom edge, and so on.
const (
	CrackLeft CrackDirection = iota + 1
	CrackRight
	CrackUp
	CrackDown
)

func (d CrackDirection) String() string {
	switch d {
	case CrackLeft:
		return "left"
	case CrackRight:
		return "right"
	case CrackUp:
		return "up"
	case CrackDown:
		return "down"
	default:
		return "none"
	}
}

const (
	DefaultCrackDepth = 1
	DefaultCrackSteps = 35

	jumpFactor      = 5
	jumpProbability = 0.7
)

// Crack accumulates jittered polylines across a brick.
type Crack struct {
	depth int
	steps int
	paths [][]core.Point
	rng   Random
}

// NewCrack creates an empty crack generator. Steps below 1 are raised to 1.
func NewCrack(depth, steps int, rng Random) *Crack {
	if steps < 1 {
		steps = 1
	}
	if depth < 0 {
		depth = 0
	}
	return &Crack{depth: depth, steps: steps, rng: rng}
}

// Make adds a path from impact to a random point on the edge of bounds
// opposite the crack direction. Unknown directions add nothing.
func (c *Crack) Make(bounds core.Rect, impact core.Point, dir CrackDirection) {
	start := core.Pt(int(impact.X), int(impact.Y))

	var end core.Point
	switch dir {
	case CrackLeft:
		end = core.Pt(bounds.Right(), c.randomAlong(bounds.Y, bounds.H))
	case CrackRight:
		end = core.Pt(bounds.X, c.randomAlong(bounds.Y, bounds.H))
	case CrackUp:
		end = core.Pt(c.randomAlong(bounds.X, bounds.W), bounds.Bottom())
	case CrackDown:
		end = core.Pt(c.randomAlong(bounds.X, bounds.W), bounds.Y)
	default:
		return
	}

	horizontal := dir == CrackLeft || dir == CrackRight
	c.paths = append(c.paths, c.path(start, end, horizontal))
}

// randomAlong picks a uniform integer in [from, from+span).
func (c *Crack) randomAlong(from, span int) int {
	if span <= 0 {
		return from
	}
	return c.rng.IntN(span) + from
}

// path interpolates steps segments between start and end. Interior points
// are jittered on the axis perpendicular to travel.
func (c *Crack) path(start, end core.Point, horizontal bool) []core.Point {
	pts := make([]core.Point, 0, c.steps+1)
	pts = append(pts, start)

	w := (end.X - start.X) / float64(c.steps)
	h := (end.Y - start.Y) / float64(c.steps)

	for i := 1; i < c.steps; i++ {
		p := core.Point{X: start.X + float64(i)*w, Y: start.Y + float64(i)*h}
		offset := c.randomInBounds(c.depth)
		if c.inMiddle(i) {
			offset += c.jump(c.depth * jumpFactor)
		}
		if horizontal {
			p.Y += float64(offset)
		} else {
			p.X += float64(offset)
		}
		pts = append(pts, p)
	}

	return append(pts, end)
}

func (c *Crack) randomInBounds(bound int) int {
	return c.rng.IntN(2*bound+1) - bound
}

func (c *Crack) inMiddle(i int) bool {
	low := c.steps / 3
	return i > low && i < 2*low
}

func (c *Crack) jump(bound int) int {
	if c.rng.Float64() > jumpProbability {
		return c.randomInBounds(bound)
	}
	return 0
}

// Paths returns a copy of all crack paths made since the last Reset.
func (c *Crack) Paths() [][]core.Point {
	if len(c.paths) == 0 {
		return nil
	}
	out := make([][]core.Point, len(c.paths))
	for i, p := range c.paths {
		out[i] = append([]core.Point(nil), p...)
	}
	return out
}

// Reset removes every path.
func (c *Crack) Reset() {
	c.paths = nil
}

// Depth returns the jitter bound.
func (c *Crack) Depth() int {
	return c.depth
}

// Steps returns the number of segments per path.
func (c *Crack) Steps() int {
	return c.steps
}
