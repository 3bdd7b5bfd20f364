// SPDX-License-Identifier: MIT

package render

import (
	"math"

	"github.com/katalvlaran/primespiral/spiral"
)

// rect is a pixel rectangle [X0,X1]×[Y0,Y1], Y growing downward.
type rect struct {
	X0, Y0, X1, Y1 float64
}

func (r rect) width() float64  { return r.X1 - r.X0 }
func (r rect) height() float64 { return r.Y1 - r.Y0 }

// transform maps model coordinates (Y up) into pixels (Y down):
//
//	px = sx·x + tx
//	py = ty - sy·y
type transform struct {
	sx, sy, tx, ty float64
}

func (t transform) apply(p spiral.Point) spiral.Point {
	return spiral.Point{X: t.sx*p.X + t.tx, Y: t.ty - t.sy*p.Y}
}

// equalAspect fits b into r with one scale for both axes, centred.
// A degenerate box (zero width and height) maps to the centre at scale 1.
func equalAspect(b spiral.Bounds, r rect) transform {
	bw, bh := b.Width(), b.Height()
	var s float64
	switch {
	case bw > 0 && bh > 0:
		s = math.Min(r.width()/bw, r.height()/bh)
	case bw > 0:
		s = r.width() / bw
	case bh > 0:
		s = r.height() / bh
	default:
		s = 1
	}
	cx, cy := (b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2
	px, py := (r.X0+r.X1)/2, (r.Y0+r.Y1)/2

	return transform{sx: s, sy: s, tx: px - s*cx, ty: py + s*cy}
}

// axes stretches b to fill r, each axis scaled independently.
// A zero-span axis is treated as span 1.
func axes(b spiral.Bounds, r rect) transform {
	bw, bh := b.Width(), b.Height()
	if bw == 0 {
		bw = 1
	}
	if bh == 0 {
		bh = 1
	}
	sx, sy := r.width()/bw, r.height()/bh

	return transform{sx: sx, sy: sy, tx: r.X0 - sx*b.MinX, ty: r.Y1 + sy*b.MinY}
}
