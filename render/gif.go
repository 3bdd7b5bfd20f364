// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"
)

// GIFEncoder collects paletted frames and writes one looping GIF on Close.
// Frames are quantized to the Plan9 palette without dithering.
type GIFEncoder struct {
	w     io.Writer
	anim  gif.GIF
	delay int
	state encState
}

type encState int

const (
	stateNew encState = iota
	stateOpen
	stateClosed
)

// NewGIFEncoder returns an encoder that writes to w on Close.
func NewGIFEncoder(w io.Writer) *GIFEncoder {
	return &GIFEncoder{w: w}
}

// Begin records the canvas size and frame delay (1/100 s units, at least 1).
func (g *GIFEncoder) Begin(width, height int, fps float64) error {
	if g.state != stateNew {
		return fmt.Errorf("GIFEncoder.Begin: %w", ErrEncoderState)
	}
	g.delay = max(1, int(math.Round(100/fps)))
	g.anim = gif.GIF{
		LoopCount: 0,
		Config:    image.Config{ColorModel: color.Palette(palette.Plan9), Width: width, Height: height},
	}
	g.state = stateOpen

	return nil
}

// AddFrame quantizes img into a new paletted frame.
func (g *GIFEncoder) AddFrame(img image.Image) error {
	if g.state != stateOpen {
		return fmt.Errorf("GIFEncoder.AddFrame: %w", ErrEncoderState)
	}
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.Draw(p, b, img, b.Min, draw.Src)
	g.anim.Image = append(g.anim.Image, p)
	g.anim.Delay = append(g.anim.Delay, g.delay)

	return nil
}

// Frames returns the number of frames added so far.
func (g *GIFEncoder) Frames() int { return len(g.anim.Image) }

// Close encodes the animation. Closing twice is an error.
func (g *GIFEncoder) Close() error {
	if g.state != stateOpen {
		return fmt.Errorf("GIFEncoder.Close: %w", ErrEncoderState)
	}
	g.state = stateClosed
	if len(g.anim.Image) == 0 {
		return fmt.Errorf("GIFEncoder.Close: no frames: %w", ErrEncoderState)
	}

	return gif.EncodeAll(g.w, &g.anim)
}
