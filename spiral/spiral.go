// SPDX-License-Identifier: MIT

package spiral

import (
	"fmt"
	"math"
)

// Generate folds primes into the spiral path for a turn angle in degrees.
//
// The returned Path has len(primes)+1 vertices; vertex 0 is the origin and
// segment i has length primes[i] along Heading(i, turnDegrees, dir).
// Empty primes yields the single-vertex path {(0,0)}.
//
// Errors:
//   - ErrNonFiniteAngle  if turnDegrees is NaN or ±Inf.
//   - ErrInvalidPrime    if any primes[i] <= 0.
//   - ErrNonFiniteVertex if a coordinate overflows to ±Inf.
//
// Complexity: O(N) time, O(N) memory.
func Generate(primes []int, turnDegrees float64, opts ...Option) (Path, error) {
	if math.IsNaN(turnDegrees) || math.IsInf(turnDegrees, 0) {
		return nil, fmt.Errorf("Generate(θ=%v): %w", turnDegrees, ErrNonFiniteAngle)
	}
	for i, p := range primes {
		if p <= 0 {
			return nil, fmt.Errorf("Generate: primes[%d]=%d: %w", i, p, ErrInvalidPrime)
		}
	}
	o := resolve(opts)

	path := make(Path, 1, len(primes)+1)
	var (
		cur Point
		h   float64
	)
	for i, p := range primes {
		h = Heading(i, turnDegrees, o.Direction)
		cur = Point{
			X: cur.X + float64(p)*math.Cos(h),
			Y: cur.Y + float64(p)*math.Sin(h),
		}
		if !cur.IsFinite() {
			return nil, fmt.Errorf("Generate: vertex %d: %w", i+1, ErrNonFiniteVertex)
		}
		path = append(path, cur)
	}

	return path, nil
}

// Heading returns the direction of segment i in radians: sign·i·radians(θ).
// The product is taken per index rather than accumulated, so heading error
// does not grow with i.
func Heading(i int, turnDegrees float64, dir Direction) float64 {
	return dir.sign() * float64(i) * Radians(turnDegrees)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
