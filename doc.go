// Package primespiral is a small numeric toolkit for drawing primes as a
// "turning spiral" and for hunting repeating shapes across turn angles.
//
// 🚀 What is a turning spiral?
//
//	Start at the origin facing along +X. For every prime p (2, 3, 5, 7, ...)
//	walk p units, then rotate the heading by a fixed turn angle θ. The
//	visited vertices form the spiral. θ = 0 is a straight ray, θ = 180 folds
//	back and forth, angles whose period divides 360 close into rosettes.
//
// ✨ What is inside?
//
//	primes/  - the primes source (sieve of Eratosthenes, first-n helper)
//	spiral/  - coordinate generator: cumulative rotation + prime-length steps
//	sweep/   - inclusive angle ranges (start..end step s) with stable labels
//	pattern/ - distance histograms per angle and Regular/Irregular classification
//	render/  - SVG / PNG frames, GIF / MP4 animations, pattern charts
//	report/  - text, table, TSV, JSON, JSONL and YAML writers for classifications
//
// The command-line tool lives in cmd/primespiral.
//
// Error taxonomy:
//
//	Every package returns its own sentinel errors. Each of them wraps one of the
//	two roots declared here, so callers can branch on the broad kind:
//
//	  errors.Is(err, primespiral.ErrInvalidInput)      // bad counts, steps, ranges, primes
//	  errors.Is(err, primespiral.ErrNumericDegenerate) // NaN / ±Inf headings or vertices
//
// Quick ASCII example (θ = 90, primes 2, 3, 5, 7, clockwise):
//
//	(-3,4) •
//	       │
//	       7       (0,0) ──2──┐
//	       │                  3
//	(-3,-3)└───────5──────────┘ (2,-3)
//
//	go get github.com/katalvlaran/primespiral
package primespiral
