// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/primespiral/spiral"
)

// discSides is the polygon resolution used for markers.
const discSides = 16

// RasterCanvas draws anti-aliased shapes into an *image.RGBA.
// Each drawing call accumulates its shapes in one rasterizer pass and
// composites them with draw.Over.
type RasterCanvas struct {
	img  *image.RGBA
	z    *vector.Rasterizer
	face font.Face
}

// NewRasterCanvas allocates a transparent width×height canvas.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		z:    vector.NewRasterizer(width, height),
		face: basicfont.Face7x13,
	}
}

// Image returns the backing image. It is overwritten by later draws.
func (r *RasterCanvas) Image() *image.RGBA { return r.img }

// Size returns the canvas dimensions.
func (r *RasterCanvas) Size() (int, int) {
	b := r.img.Bounds()

	return b.Dx(), b.Dy()
}

// Fill replaces every pixel with c.
func (r *RasterCanvas) Fill(c color.RGBA) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Polyline strokes consecutive segments of pts.
func (r *RasterCanvas) Polyline(pts []spiral.Point, c color.RGBA, width float64) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		r.quad(pts[i-1], pts[i], width)
	}
	r.flush(c)
}

// Lines strokes every segment.
func (r *RasterCanvas) Lines(segs []Segment, c color.RGBA, width float64) {
	if len(segs) == 0 {
		return
	}
	for _, s := range segs {
		r.quad(s.A, s.B, width)
	}
	r.flush(c)
}

// Dots fills a polygonal disc around every centre.
func (r *RasterCanvas) Dots(centers []spiral.Point, radius float64, c color.RGBA) {
	if len(centers) == 0 || radius <= 0 {
		return
	}
	for _, p := range centers {
		for k := 0; k <= discSides; k++ {
			a := 2 * math.Pi * float64(k) / discSides
			x, y := float32(p.X+radius*math.Cos(a)), float32(p.Y+radius*math.Sin(a))
			if k == 0 {
				r.z.MoveTo(x, y)
				continue
			}
			r.z.LineTo(x, y)
		}
		r.z.ClosePath()
	}
	r.flush(c)
}

// Text draws s with basicfont.Face7x13.
func (r *RasterCanvas) Text(at spiral.Point, s string, c color.RGBA, a Anchor) {
	x := at.X
	switch a {
	case AnchorMiddle:
		x -= float64(font.MeasureString(r.face, s).Ceil()) / 2
	case AnchorEnd:
		x -= float64(font.MeasureString(r.face, s).Ceil())
	}
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(at.Y))),
	}
	d.DrawString(s)
}

// VText renders s horizontally into a scratch image and copies it rotated
// a quarter turn counter-clockwise so that it reads bottom to top.
func (r *RasterCanvas) VText(at spiral.Point, s string, c color.RGBA) {
	tw := font.MeasureString(r.face, s).Ceil()
	m := r.face.Metrics()
	th := (m.Ascent + m.Descent).Ceil()
	if tw == 0 || th == 0 {
		return
	}

	flat := image.NewRGBA(image.Rect(0, 0, tw, th))
	d := font.Drawer{Dst: flat, Src: image.NewUniform(c), Face: r.face, Dot: fixed.P(0, m.Ascent.Ceil())}
	d.DrawString(s)

	rot := image.NewRGBA(image.Rect(0, 0, th, tw))
	for y := 0; y < th; y++ {
		for x := 0; x < tw; x++ {
			rot.SetRGBA(y, tw-1-x, flat.RGBAAt(x, y))
		}
	}

	x0 := int(math.Round(at.X)) - th/2
	y0 := int(math.Round(at.Y)) - tw/2
	draw.Draw(r.img, image.Rect(x0, y0, x0+th, y0+tw), rot, image.Point{}, draw.Over)
}

// quad adds the rectangle of the given width around segment a→b.
// All quads share one winding so overlaps saturate instead of cancelling.
func (r *RasterCanvas) quad(a, b spiral.Point, width float64) {
	d := b.Sub(a)
	l := d.Norm()
	if l == 0 {
		return
	}
	h := width / 2
	nx, ny := -d.Y/l*h, d.X/l*h
	r.z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	r.z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	r.z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	r.z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	r.z.ClosePath()
}

// flush composites the accumulated coverage in color c and resets the rasterizer.
func (r *RasterCanvas) flush(c color.RGBA) {
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
}
