// SPDX-License-Identifier: MIT

package spiral

import "fmt"

// Options configures Generate.
//
// Direction – sign of the cumulative rotation (default Clockwise).
type Options struct {
	Direction Direction
}

// Option represents a functional option for configuring Generate.
type Option func(*Options)

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Direction: Clockwise}
}

// WithDirection selects the rotation sign.
// Panics if d is neither Clockwise nor CounterClockwise.
func WithDirection(d Direction) Option {
	if d != Clockwise && d != CounterClockwise {
		panic(fmt.Sprintf("WithDirection: unknown direction %d", int(d)))
	}

	return func(o *Options) {
		o.Direction = d
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
