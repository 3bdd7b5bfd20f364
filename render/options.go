// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/primespiral/spiral"
)

// Canvas size limits, in pixels.
const (
	MinSize = 64
	MaxSize = 8192
)

// Named colors used by the defaults.
var (
	Blue  = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	Red   = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}

	// Tab10Blue is the first color of the common plotting "tab10" cycle.
	Tab10Blue = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

	// GridGray is the light gray used for chart grid lines.
	GridGray = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
)

// FrameOptions configures DrawFrame.
//
// Width, Height – canvas size in pixels, each in [MinSize, MaxSize].
// Margin        – model units added around the path bounds (>= 0).
// Rays          – draw a ray from the origin to every vertex.
// Title         – draw "Turn Angle: <a> degrees" above the plot.
// StrokeWidth   – spiral line width in pixels (> 0).
// RayWidth      – ray line width in pixels (> 0).
// Direction     – rotation sign used by Animate when generating paths.
type FrameOptions struct {
	Width, Height int
	Margin        float64
	Rays          bool
	Title         bool
	StrokeWidth   float64
	RayWidth      float64
	Spiral        color.RGBA
	Ray           color.RGBA
	Background    color.RGBA
	Text          color.RGBA
	Direction     spiral.Direction
}

// DefaultFrameOptions returns an 800×800 frame with rays and title, blue
// spiral, red rays on white, padded by one model unit.
func DefaultFrameOptions() FrameOptions {
	return FrameOptions{
		Width:       800,
		Height:      800,
		Margin:      1,
		Rays:        true,
		Title:       true,
		StrokeWidth: 1.5,
		RayWidth:    0.75,
		Spiral:      Blue,
		Ray:         Red,
		Background:  White,
		Text:        Black,
		Direction:   spiral.Clockwise,
	}
}

// Validate reports the first out-of-range field.
func (o FrameOptions) Validate() error {
	if err := validSize(o.Width, o.Height); err != nil {
		return err
	}
	if !finiteNonNeg(o.Margin) {
		return fmt.Errorf("margin %v: %w", o.Margin, ErrInvalidOptions)
	}
	if !finitePos(o.StrokeWidth) || !finitePos(o.RayWidth) {
		return fmt.Errorf("stroke %v / ray %v: widths must be > 0: %w", o.StrokeWidth, o.RayWidth, ErrInvalidOptions)
	}

	return nil
}

// ChartOptions configures DrawChart.
type ChartOptions struct {
	Width, Height int
	StrokeWidth   float64
	MarkerRadius  float64
	Line          color.RGBA
	Grid          color.RGBA
	Axis          color.RGBA
	Background    color.RGBA
	Text          color.RGBA
}

// DefaultChartOptions returns a 1000×600 chart with tab10-blue line and markers.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Width:        1000,
		Height:       600,
		StrokeWidth:  1.5,
		MarkerRadius: 3,
		Line:         Tab10Blue,
		Grid:         GridGray,
		Axis:         Black,
		Background:   White,
		Text:         Black,
	}
}

// Validate reports the first out-of-range field.
func (o ChartOptions) Validate() error {
	if err := validSize(o.Width, o.Height); err != nil {
		return err
	}
	if !finitePos(o.StrokeWidth) || !finiteNonNeg(o.MarkerRadius) {
		return fmt.Errorf("stroke %v / marker %v: %w", o.StrokeWidth, o.MarkerRadius, ErrInvalidOptions)
	}

	return nil
}

// ParseColor reads "#rgb", "#rrggbb", "#rrggbbaa" or one of the names
// blue, red, white, black, gray.
func ParseColor(s string) (color.RGBA, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue":
		return Blue, nil
	case "red":
		return Red, nil
	case "white":
		return White, nil
	case "black":
		return Black, nil
	case "gray", "grey":
		return GridGray, nil
	}

	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 || !strings.HasPrefix(strings.TrimSpace(s), "#") {
		return color.RGBA{}, fmt.Errorf("ParseColor(%q): %w", s, ErrInvalidColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("ParseColor(%q): %w", s, ErrInvalidColor)
	}

	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// HexColor formats c as "#rrggbb", appending alpha only when it is not opaque.
func HexColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}

	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func validSize(w, h int) error {
	if w < MinSize || h < MinSize || w > MaxSize || h > MaxSize {
		return fmt.Errorf("size %dx%d outside [%d, %d]: %w", w, h, MinSize, MaxSize, ErrInvalidOptions)
	}

	return nil
}

func finitePos(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func finiteNonNeg(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
