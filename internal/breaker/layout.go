package breaker

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brick-breaker/internal/core"
)

// LevelsCount is the number of built-in levels.
const LevelsCount = 4

// levelKinds lists the material pair of each level. A single entry means a
// single-type level.
var levelKinds = [LevelsCount][]Kind{
	{KindClay},
	{KindClay, KindCement},
	{KindClay, KindSteel},
	{KindSteel, KindCement},
}

// layout computes brick positions for an arena.
type layout struct {
	area      core.Rect
	brickCnt  int
	lineCnt   int
	ratio     float64
	rng       Random
	materials Materials
}

// MakeLevels builds the four level layouts for p, drawing randomness for
// the bricks from rng.
func MakeLevels(p Params, rng Random) ([][]*Brick, error) {
	l := layout{
		area:      p.Area,
		brickCnt:  p.BrickCount,
		lineCnt:   p.LineCount,
		ratio:     p.BrickRatio,
		rng:       rng,
		materials: p.Materials,
	}

	levels := make([][]*Brick, 0, LevelsCount)
	for i, kinds := range levelKinds {
		var (
			bricks []*Brick
			err    error
		)
		if len(kinds) == 1 {
			bricks, err = l.singleType(kinds[0])
		} else {
			bricks, err = l.chessboard(kinds[0], kinds[1])
		}
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		levels = append(levels, bricks)
	}
	return levels, nil
}

// geometry returns bricks per line, brick size and total brick count
// including the extra bricks that fill the gaps of shifted lines.
func (l layout) geometry() (perLine int, brickLen, brickHgt float64, total int) {
	cnt := l.brickCnt - l.brickCnt%l.lineCnt
	perLine = cnt / l.lineCnt
	brickLen = float64(l.area.W) / float64(perLine)
	brickHgt = brickLen / l.ratio
	total = cnt + l.lineCnt/2
	return perLine, brickLen, brickHgt, total
}

func (l layout) singleType(kind Kind) ([]*Brick, error) {
	return l.build(func(line, col, i int) Kind { return kind }, KindClay)
}

func (l layout) chessboard(a, b Kind) ([]*Brick, error) {
	perLine, _, _, _ := l.geometry()
	centerLeft := perLine/2 - 1
	centerRight := perLine/2 + 1

	pick := func(line, col, i int) Kind {
		if line%2 == 0 {
			if i%2 == 0 {
				return a
			}
			return b
		}
		if col > centerLeft && col <= centerRight {
			return a
		}
		return b
	}
	return l.build(pick, a)
}

// build lays out full lines with odd lines shifted left by half a brick,
// then appends one extra brick per shifted line at the right edge.
func (l layout) build(pick func(line, col, i int) Kind, extra Kind) ([]*Brick, error) {
	perLine, brickLen, brickHgt, total := l.geometry()
	w := int(brickLen)
	h := int(brickHgt)

	bricks := make([]*Brick, 0, total)
	i := 0
	for ; i < total; i++ {
		line := i / perLine
		if line == l.lineCnt {
			break
		}
		col := i % perLine
		x := float64(col) * brickLen
		if line%2 == 1 {
			x -= brickLen / 2
		}
		y := float64(line) * brickHgt

		b, err := l.brick(pick(line, col, i), x, y, w, h)
		if err != nil {
			return nil, err
		}
		bricks = append(bricks, b)
	}

	for y := brickHgt; i < total; i++ {
		x := float64(perLine)*brickLen - brickLen/2
		b, err := l.brick(extra, x, y, w, h)
		if err != nil {
			return nil, err
		}
		bricks = append(bricks, b)
		y += 2 * brickHgt
	}
	return bricks, nil
}

func (l layout) brick(kind Kind, x, y float64, w, h int) (*Brick, error) {
	rect := core.NewRect(round(x)+l.area.X, round(y)+l.area.Y, w, h)
	return NewBrickWith(kind, rect, l.rng, l.materials)
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
