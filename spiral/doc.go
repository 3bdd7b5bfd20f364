// Package spiral generates the vertices of a prime turning spiral.
//
// 🚀 What does it compute?
//
//	Given primes p_0, p_1, ... and a turn angle θ (degrees), segment i has
//	heading h_i = s·i·θ (radians) and length p_i, where s = -1 for Clockwise
//	(default) and s = +1 for CounterClockwise. The path is the running sum:
//
//	  v_0     = (0, 0)
//	  v_{i+1} = v_i + p_i·(cos h_i, sin h_i)
//
//	so len(path) == len(primes)+1 and |v_{i+1} - v_i| == p_i for every θ.
//
// ✨ Properties:
//   - pure fold: the result is a fresh Path, no shared state is mutated
//   - deterministic for a given (primes, θ, direction)
//   - θ = 0 → a straight ray along +X; θ = 180 → alternating ±X steps
//   - non-positive primes and NaN/Inf angles fail fast
//
// ⚙️ Usage:
//
//	ps, _ := primes.First(100)
//	path, err := spiral.Generate(ps, 30)
//	box := path.Bounds().Pad(1) // view box used by the renderers
//
// Numeric policy:
//
//	Plain IEEE-754 float64 trigonometry. Accumulated rounding over a few
//	hundred segments is accepted and not corrected.
package spiral
