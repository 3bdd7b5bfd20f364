// SPDX-License-Identifier: MIT

package render

import (
	"context"
	"fmt"
	"image"
	"iter"
	"math"

	"github.com/katalvlaran/primespiral/spiral"
	"github.com/katalvlaran/primespiral/sweep"
)

// DefaultFPS plays one frame every 40 ms.
const DefaultFPS = 25

// Frame is one step of an angle sweep.
type Frame struct {
	Index int
	Angle float64
	Path  spiral.Path
}

// FrameSeq is a validated angle sweep whose paths are generated on demand.
type FrameSeq struct {
	primes []int
	angles []float64
	dir    spiral.Direction
}

// NewFrameSeq validates primes and r up front.
func NewFrameSeq(primes []int, r sweep.Range, dir spiral.Direction) (*FrameSeq, error) {
	for i, p := range primes {
		if p <= 0 {
			return nil, fmt.Errorf("NewFrameSeq: primes[%d]=%d: %w", i, p, spiral.ErrInvalidPrime)
		}
	}
	angles, err := r.Angles()
	if err != nil {
		return nil, fmt.Errorf("NewFrameSeq: %w", err)
	}

	return &FrameSeq{primes: primes, angles: angles, dir: dir}, nil
}

// Len returns the number of frames.
func (s *FrameSeq) Len() int { return len(s.angles) }

// All yields frames in sweep order. Iteration stops at the first error.
func (s *FrameSeq) All() iter.Seq2[Frame, error] {
	return func(yield func(Frame, error) bool) {
		for i, a := range s.angles {
			path, err := spiral.Generate(s.primes, a, spiral.WithDirection(s.dir))
			if err != nil {
				yield(Frame{Index: i, Angle: a}, err)
				return
			}
			if !yield(Frame{Index: i, Angle: a, Path: path}, nil) {
				return
			}
		}
	}
}

// Encoder turns a stream of equally sized images into an animation.
// Begin is called once, then AddFrame per frame, then Close exactly once.
// AddFrame must not retain img after it returns.
type Encoder interface {
	Begin(width, height int, fps float64) error
	AddFrame(img image.Image) error
	Close() error
}

// AnimationOptions configures Animate.
//
// Frame    – per-frame drawing options; Frame.Direction selects the rotation.
// FPS      – playback rate (> 0).
// Observer – optional hook called after each frame is encoded.
type AnimationOptions struct {
	Frame    FrameOptions
	FPS      float64
	Observer func(Frame)
}

// DefaultAnimationOptions returns a 400×400 frame at DefaultFPS.
func DefaultAnimationOptions() AnimationOptions {
	f := DefaultFrameOptions()
	f.Width, f.Height = 400, 400

	return AnimationOptions{Frame: f, FPS: DefaultFPS}
}

// Validate reports the first out-of-range field.
func (o AnimationOptions) Validate() error {
	if err := o.Frame.Validate(); err != nil {
		return err
	}
	if o.FPS <= 0 || math.IsNaN(o.FPS) || math.IsInf(o.FPS, 0) {
		return fmt.Errorf("fps %v: %w", o.FPS, ErrInvalidOptions)
	}

	return nil
}

// Animate renders every angle of r in order and feeds the frames to enc.
// It returns the number of frames encoded. enc is closed on every path
// after a successful Begin; the first error wins.
func Animate(ctx context.Context, enc Encoder, primes []int, r sweep.Range, opts AnimationOptions) (n int, err error) {
	if err = opts.Validate(); err != nil {
		return 0, fmt.Errorf("Animate: %w", err)
	}
	seq, err := NewFrameSeq(primes, r, opts.Frame.Direction)
	if err != nil {
		return 0, err
	}
	if err = enc.Begin(opts.Frame.Width, opts.Frame.Height, opts.FPS); err != nil {
		return 0, fmt.Errorf("Animate: begin: %w", err)
	}
	defer func() {
		if cerr := enc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("Animate: close: %w", cerr)
		}
	}()

	canvas := NewRasterCanvas(opts.Frame.Width, opts.Frame.Height)
	for f, ferr := range seq.All() {
		if ferr != nil {
			return n, fmt.Errorf("Animate: frame %d: %w", f.Index, ferr)
		}
		if cerr := ctx.Err(); cerr != nil {
			return n, cerr
		}
		DrawFrame(canvas, f.Path, f.Angle, opts.Frame)
		if err = enc.AddFrame(canvas.Image()); err != nil {
			return n, fmt.Errorf("Animate: frame %d (θ=%s): %w", f.Index, sweep.FormatAngle(f.Angle), err)
		}
		n++
		if opts.Observer != nil {
			opts.Observer(f)
		}
	}

	return n, nil
}
