// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/katalvlaran/primespiral/spiral"
	"github.com/katalvlaran/primespiral/sweep"
)

// titleBand is the pixel height reserved above the plot when a title is drawn.
const titleBand = 28

// Format names an image output format.
type Format string

// Supported image formats.
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat accepts "png" or "svg", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// Ext returns the file extension for f, without the dot.
func (f Format) Ext() string { return string(f) }

// Title is the caption drawn above a frame.
func Title(angle float64) string {
	return "Turn Angle: " + sweep.FormatAngle(angle) + " degrees"
}

// DrawFrame paints path onto c: background, spiral polyline, rays from the
// origin to every later vertex, and the title. opts is not validated here.
func DrawFrame(c Canvas, path spiral.Path, angle float64, opts FrameOptions) {
	w, h := c.Size()
	c.Fill(opts.Background)

	top := 0.0
	if opts.Title {
		top = titleBand
	}
	t := equalAspect(path.Bounds().Pad(opts.Margin), rect{X0: 0, Y0: top, X1: float64(w), Y1: float64(h)})

	px := make([]spiral.Point, len(path))
	for i, p := range path {
		px[i] = t.apply(p)
	}
	if len(px) > 1 {
		c.Polyline(px, opts.Spiral, opts.StrokeWidth)
		if opts.Rays {
			segs := make([]Segment, len(px)-1)
			for i, p := range px[1:] {
				segs[i] = Segment{A: px[0], B: p}
			}
			c.Lines(segs, opts.Ray, opts.RayWidth)
		}
	}
	if opts.Title {
		c.Text(spiral.Point{X: float64(w) / 2, Y: titleBand - 9}, Title(angle), opts.Text, AnchorMiddle)
	}
}

// Rasterize draws path into a new image.
func Rasterize(path spiral.Path, angle float64, opts FrameOptions) (*image.RGBA, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("Rasterize: %w", err)
	}
	c := NewRasterCanvas(opts.Width, opts.Height)
	DrawFrame(c, path, angle, opts)

	return c.Image(), nil
}

// WritePNG encodes a rasterized frame to w.
func WritePNG(w io.Writer, path spiral.Path, angle float64, opts FrameOptions) error {
	img, err := Rasterize(path, angle, opts)
	if err != nil {
		return err
	}

	return encodePNG(w, img)
}

// WriteSVG streams the frame to w as SVG.
func WriteSVG(w io.Writer, path spiral.Path, angle float64, opts FrameOptions) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("WriteSVG: %w", err)
	}
	c := NewSVGCanvas(w, opts.Width, opts.Height)
	DrawFrame(c, path, angle, opts)

	return c.Close()
}

// WriteFrame dispatches to WritePNG or WriteSVG.
func WriteFrame(w io.Writer, f Format, path spiral.Path, angle float64, opts FrameOptions) error {
	switch f {
	case FormatPNG:
		return WritePNG(w, path, angle, opts)
	case FormatSVG:
		return WriteSVG(w, path, angle, opts)
	default:
		return fmt.Errorf("WriteFrame(%q): %w", f, ErrUnknownFormat)
	}
}

func encodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}

	return enc.Encode(w, img)
}
