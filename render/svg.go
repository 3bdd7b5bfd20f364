// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/primespiral/spiral"
)

// SVGCanvas streams SVG elements to an io.Writer.
// The first write error is kept and returned by Close; later calls are no-ops.
type SVGCanvas struct {
	w             io.Writer
	width, height int
	err           error
	closed        bool
}

// NewSVGCanvas writes the SVG prologue and returns a canvas of the given size.
func NewSVGCanvas(w io.Writer, width, height int) *SVGCanvas {
	s := &SVGCanvas{w: w, width: width, height: height}
	s.printf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d">
`, width, height, width, height)

	return s
}

func (s *SVGCanvas) printf(format string, a ...interface{}) {
	if s.err != nil || s.closed {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

// Size returns the canvas dimensions.
func (s *SVGCanvas) Size() (int, int) { return s.width, s.height }

// Fill paints a full-size background rectangle.
func (s *SVGCanvas) Fill(c color.RGBA) {
	s.printf("<rect x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" %s/>\n", s.width, s.height, paint("fill", c))
}

// Polyline emits one <polyline> element.
func (s *SVGCanvas) Polyline(pts []spiral.Point, c color.RGBA, width float64) {
	if len(pts) < 2 {
		return
	}
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(num(p.X))
		b.WriteByte(',')
		b.WriteString(num(p.Y))
	}
	s.printf("<polyline fill=\"none\" %s stroke-width=\"%s\" stroke-linejoin=\"round\" points=\"%s\"/>\n",
		paint("stroke", c), num(width), b.String())
}

// Lines emits every segment as one <path> of move/line pairs.
func (s *SVGCanvas) Lines(segs []Segment, c color.RGBA, width float64) {
	if len(segs) == 0 {
		return
	}
	var b strings.Builder
	for i, sg := range segs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "M%s %sL%s %s", num(sg.A.X), num(sg.A.Y), num(sg.B.X), num(sg.B.Y))
	}
	s.printf("<path fill=\"none\" %s stroke-width=\"%s\" d=\"%s\"/>\n", paint("stroke", c), num(width), b.String())
}

// Dots emits a group of <circle> elements.
func (s *SVGCanvas) Dots(centers []spiral.Point, r float64, c color.RGBA) {
	if len(centers) == 0 || r <= 0 {
		return
	}
	s.printf("<g %s>\n", paint("fill", c))
	for _, p := range centers {
		s.printf("<circle cx=\"%s\" cy=\"%s\" r=\"%s\"/>\n", num(p.X), num(p.Y), num(r))
	}
	s.printf("</g>\n")
}

// Text emits a <text> element.
func (s *SVGCanvas) Text(at spiral.Point, str string, c color.RGBA, a Anchor) {
	s.printf("<text x=\"%s\" y=\"%s\" font-family=\"monospace\" font-size=\"%d\" text-anchor=\"%s\" %s>%s</text>\n",
		num(at.X), num(at.Y), FontSize, anchorName(a), paint("fill", c), html.EscapeString(str))
}

// VText emits a <text> element rotated by -90 degrees around at.
func (s *SVGCanvas) VText(at spiral.Point, str string, c color.RGBA) {
	x, y := num(at.X), num(at.Y)
	s.printf("<text x=\"%s\" y=\"%s\" transform=\"rotate(-90 %s %s)\" font-family=\"monospace\" font-size=\"%d\" text-anchor=\"middle\" dominant-baseline=\"middle\" %s>%s</text>\n",
		x, y, x, y, FontSize, paint("fill", c), html.EscapeString(str))
}

// Close writes the closing tag and returns the first write error.
func (s *SVGCanvas) Close() error {
	s.printf("</svg>\n")
	s.closed = true

	return s.err
}

// paint renders a fill/stroke attribute, adding an opacity attribute for translucent colors.
func paint(attr string, c color.RGBA) string {
	rgb := fmt.Sprintf("%s=\"#%02x%02x%02x\"", attr, c.R, c.G, c.B)
	if c.A == 0xff {
		return rgb
	}

	return rgb + fmt.Sprintf(" %s-opacity=\"%s\"", attr, num(float64(c.A)/0xff))
}

func anchorName(a Anchor) string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

// num formats v with at most two decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}

	return s
}
