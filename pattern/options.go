// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"
	"math"
	"runtime"

	"github.com/katalvlaran/primespiral/spiral"
)

// DefaultTolerance is the relative tolerance Histogram uses during Analyze.
const DefaultTolerance = 1e-9

// Options configures Analyze.
//
// Workers   – upper bound on concurrent angle tasks (>= 1).
// Tolerance – relative grouping tolerance for distances (>= 0).
// Direction – rotation sign passed to spiral.Generate.
// Observer  – optional hook invoked once per finished angle.
type Options struct {
	Workers   int
	Tolerance float64
	Direction spiral.Direction
	Observer  func(AngleResult)
}

// Option represents a functional option for configuring Analyze.
type Option func(*Options)

// DefaultOptions returns GOMAXPROCS workers, DefaultTolerance and Clockwise rotation.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		Tolerance: DefaultTolerance,
		Direction: spiral.Clockwise,
	}
}

// WithWorkers bounds the number of angles processed concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("WithWorkers: n must be ≥ 1, got %d", n))
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithTolerance sets the relative distance grouping tolerance; 0 means exact.
// Panics if eps is negative or not finite.
func WithTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("WithTolerance: eps must be finite and ≥ 0, got %g", eps))
	}

	return func(o *Options) {
		o.Tolerance = eps
	}
}

// WithDirection selects the rotation sign used for every angle.
// Panics on an unknown direction.
func WithDirection(d spiral.Direction) Option {
	spiral.WithDirection(d) // panics on an unknown direction

	return func(o *Options) {
		o.Direction = d
	}
}

// WithObserver registers fn to be called after each angle completes.
// Calls are serialized but arrive in completion order, not sweep order.
func WithObserver(fn func(AngleResult)) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
