// SPDX-License-Identifier: MIT

package spiral

import (
	"fmt"
	"math"
)

// Point is a vertex of the spiral in model units (one unit per prime value).
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Path is the coordinate sequence of a spiral: vertex 0 is the origin and
// vertex i is the position after the i-th prime segment.
type Path []Point

// Len returns the number of segments (len(path)-1, or 0 for an empty path).
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// StepLengths returns the Euclidean distance between consecutive vertices.
// For a path built by Generate, StepLengths()[i] ≈ primes[i].
// Complexity: O(N).
func (p Path) StepLengths() []float64 {
	if len(p) < 2 {
		return []float64{}
	}
	out := make([]float64, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = p[i].Sub(p[i-1]).Norm()
	}

	return out
}

// Bounds returns the axis-aligned bounding box of all vertices.
// An empty path yields the zero (empty) Bounds.
// Complexity: O(N).
func (p Path) Bounds() Bounds {
	if len(p) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: p[0].X, MinY: p[0].Y, MaxX: p[0].X, MaxY: p[0].Y}
	for _, v := range p[1:] {
		b.MinX = math.Min(b.MinX, v.X)
		b.MinY = math.Min(b.MinY, v.Y)
		b.MaxX = math.Max(b.MaxX, v.X)
		b.MaxY = math.Max(b.MaxY, v.Y)
	}

	return b
}

// Bounds is an axis-aligned rectangle in model units.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX-MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Empty reports whether the box has zero area in both directions.
func (b Bounds) Empty() bool { return b.Width() == 0 && b.Height() == 0 }

// Pad grows the box by margin on every side.
func (b Bounds) Pad(margin float64) Bounds {
	return Bounds{MinX: b.MinX - margin, MinY: b.MinY - margin, MaxX: b.MaxX + margin, MaxY: b.MaxY + margin}
}

// Square expands the shorter side symmetrically so Width() == Height(),
// giving an equal-aspect view box.
func (b Bounds) Square() Bounds {
	w, h := b.Width(), b.Height()
	switch {
	case w > h:
		d := (w - h) / 2
		b.MinY -= d
		b.MaxY += d
	case h > w:
		d := (h - w) / 2
		b.MinX -= d
		b.MaxX += d
	}

	return b
}

// Direction fixes the sign of the cumulative rotation.
type Direction int

const (
	// Clockwise turns by -θ per segment (heading_i = -i·θ). Default.
	Clockwise Direction = iota

	// CounterClockwise turns by +θ per segment (heading_i = +i·θ).
	CounterClockwise
)

// String returns "clockwise" or "counterclockwise".
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "unknown"
	}
}

// sign returns -1 for Clockwise and +1 for CounterClockwise.
func (d Direction) sign() float64 {
	if d == CounterClockwise {
		return 1
	}

	return -1
}

// ParseDirection maps "clockwise"/"cw" and "counterclockwise"/"ccw" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "clockwise", "cw":
		return Clockwise, nil
	case "counterclockwise", "ccw":
		return CounterClockwise, nil
	default:
		return Clockwise, fmt.Errorf("ParseDirection(%q): %w", s, ErrUnknownDirection)
	}
}
