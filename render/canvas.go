// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"github.com/katalvlaran/primespiral/spiral"
)

// FontSize is the pixel height of text drawn by both backends.
const FontSize = 13

// Anchor aligns text horizontally relative to its position.
type Anchor int

const (
	// AnchorStart places the text to the right of the position.
	AnchorStart Anchor = iota
	// AnchorMiddle centres the text on the position.
	AnchorMiddle
	// AnchorEnd places the text to the left of the position.
	AnchorEnd
)

// Segment is a straight line between two pixel positions.
type Segment struct {
	A, B spiral.Point
}

// Canvas is a pixel-space drawing surface. Coordinates are in pixels with
// the origin at the top-left corner and Y growing downward.
type Canvas interface {
	// Size returns the canvas dimensions in pixels.
	Size() (width, height int)
	// Fill paints the whole canvas.
	Fill(c color.RGBA)
	// Polyline strokes the open path through pts.
	Polyline(pts []spiral.Point, c color.RGBA, width float64)
	// Lines strokes every segment.
	Lines(segs []Segment, c color.RGBA, width float64)
	// Dots fills a disc of radius r around every centre.
	Dots(centers []spiral.Point, r float64, c color.RGBA)
	// Text draws s with its baseline at at.Y, aligned by a.
	Text(at spiral.Point, s string, c color.RGBA, a Anchor)
	// VText draws s rotated a quarter turn counter-clockwise, centred on at.
	VText(at spiral.Point, s string, c color.RGBA)
}
