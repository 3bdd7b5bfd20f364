// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/primespiral/pattern"
	"github.com/katalvlaran/primespiral/spiral"
)

// Pattern chart captions.
const (
	ChartTitle  = "Pattern Analysis of Points per Spiral Curve"
	ChartXLabel = "Turn Angle (degrees)"
	ChartYLabel = "Mean Count of Points per Curve"
)

// Plot-area insets in pixels.
const (
	chartLeft   = 80
	chartRight  = 24
	chartTop    = 44
	chartBottom = 56
)

// MeanSeries returns (angle, mean points per curve) for every classification, in order.
func MeanSeries(cs []pattern.Classification) (xs, ys []float64) {
	xs = make([]float64, len(cs))
	ys = make([]float64, len(cs))
	for i, c := range cs {
		xs[i] = c.Angle
		ys[i] = c.Mean()
	}

	return xs, ys
}

// DrawChart plots angle against mean points per curve with markers, grid,
// tick labels, axis labels and title. opts is not validated here.
func DrawChart(c Canvas, cs []pattern.Classification, opts ChartOptions) {
	w, h := c.Size()
	c.Fill(opts.Background)

	area := rect{X0: chartLeft, Y0: chartTop, X1: float64(w - chartRight), Y1: float64(h - chartBottom)}
	xs, ys := MeanSeries(cs)
	b := dataBounds(xs, ys)
	t := axes(b, area)

	xt, yt := ticks(b.MinX, b.MaxX, 8), ticks(b.MinY, b.MaxY, 6)
	grid := make([]Segment, 0, len(xt)+len(yt))
	for _, v := range xt {
		x := t.apply(spiral.Point{X: v}).X
		grid = append(grid, Segment{A: spiral.Point{X: x, Y: area.Y0}, B: spiral.Point{X: x, Y: area.Y1}})
	}
	for _, v := range yt {
		y := t.apply(spiral.Point{Y: v}).Y
		grid = append(grid, Segment{A: spiral.Point{X: area.X0, Y: y}, B: spiral.Point{X: area.X1, Y: y}})
	}
	c.Lines(grid, opts.Grid, 0.8)
	c.Lines([]Segment{
		{A: spiral.Point{X: area.X0, Y: area.Y0}, B: spiral.Point{X: area.X1, Y: area.Y0}},
		{A: spiral.Point{X: area.X1, Y: area.Y0}, B: spiral.Point{X: area.X1, Y: area.Y1}},
		{A: spiral.Point{X: area.X1, Y: area.Y1}, B: spiral.Point{X: area.X0, Y: area.Y1}},
		{A: spiral.Point{X: area.X0, Y: area.Y1}, B: spiral.Point{X: area.X0, Y: area.Y0}},
	}, opts.Axis, 1)

	xd, yd := tickDecimals(xt), tickDecimals(yt)
	for _, v := range xt {
		x := t.apply(spiral.Point{X: v}).X
		c.Text(spiral.Point{X: x, Y: area.Y1 + 18}, strconv.FormatFloat(v, 'f', xd, 64), opts.Text, AnchorMiddle)
	}
	for _, v := range yt {
		y := t.apply(spiral.Point{Y: v}).Y
		c.Text(spiral.Point{X: area.X0 - 8, Y: y + 4}, strconv.FormatFloat(v, 'f', yd, 64), opts.Text, AnchorEnd)
	}

	if len(xs) > 0 {
		pts := make([]spiral.Point, len(xs))
		for i := range xs {
			pts[i] = t.apply(spiral.Point{X: xs[i], Y: ys[i]})
		}
		c.Polyline(pts, opts.Line, opts.StrokeWidth)
		c.Dots(pts, opts.MarkerRadius, opts.Line)
	}

	c.Text(spiral.Point{X: float64(w) / 2, Y: chartTop - 16}, ChartTitle, opts.Text, AnchorMiddle)
	c.Text(spiral.Point{X: (area.X0 + area.X1) / 2, Y: float64(h) - 14}, ChartXLabel, opts.Text, AnchorMiddle)
	c.VText(spiral.Point{X: 18, Y: (area.Y0 + area.Y1) / 2}, ChartYLabel, opts.Text)
}

// WriteChartSVG streams the chart to w as SVG.
func WriteChartSVG(w io.Writer, cs []pattern.Classification, opts ChartOptions) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("WriteChartSVG: %w", err)
	}
	c := NewSVGCanvas(w, opts.Width, opts.Height)
	DrawChart(c, cs, opts)

	return c.Close()
}

// WriteChartPNG encodes the rasterized chart to w.
func WriteChartPNG(w io.Writer, cs []pattern.Classification, opts ChartOptions) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("WriteChartPNG: %w", err)
	}
	c := NewRasterCanvas(opts.Width, opts.Height)
	DrawChart(c, cs, opts)

	return encodePNG(w, c.Image())
}

// WriteChart dispatches to WriteChartPNG or WriteChartSVG.
func WriteChart(w io.Writer, f Format, cs []pattern.Classification, opts ChartOptions) error {
	switch f {
	case FormatPNG:
		return WriteChartPNG(w, cs, opts)
	case FormatSVG:
		return WriteChartSVG(w, cs, opts)
	default:
		return fmt.Errorf("WriteChart(%q): %w", f, ErrUnknownFormat)
	}
}

// dataBounds returns the data extent padded by 5% per axis.
// A zero-span axis is widened by 1 on each side; no data yields [0,1]².
func dataBounds(xs, ys []float64) spiral.Bounds {
	if len(xs) == 0 {
		return spiral.Bounds{MaxX: 1, MaxY: 1}
	}
	b := spiral.Bounds{MinX: xs[0], MaxX: xs[0], MinY: ys[0], MaxY: ys[0]}
	for i := range xs {
		b.MinX, b.MaxX = math.Min(b.MinX, xs[i]), math.Max(b.MaxX, xs[i])
		b.MinY, b.MaxY = math.Min(b.MinY, ys[i]), math.Max(b.MaxY, ys[i])
	}
	b.MinX, b.MaxX = padSpan(b.MinX, b.MaxX)
	b.MinY, b.MaxY = padSpan(b.MinY, b.MaxY)

	return b
}

func padSpan(lo, hi float64) (float64, float64) {
	if hi == lo {
		return lo - 1, hi + 1
	}
	m := (hi - lo) * 0.05

	return lo - m, hi + m
}

// ticks returns round values in [lo, hi] spaced by a 1-2-5 step near (hi-lo)/n.
func ticks(lo, hi float64, n int) []float64 {
	step := niceStep((hi - lo) / float64(n))
	start := math.Ceil(lo/step) * step
	out := []float64{}
	for k := 0; ; k++ {
		v := start + float64(k)*step
		if v > hi+step*1e-9 {
			break
		}
		out = append(out, math.Round(v/step)*step)
	}

	return out
}

// niceStep rounds raw up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	p := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / p; {
	case f <= 1:
		return p
	case f <= 2:
		return 2 * p
	case f <= 5:
		return 5 * p
	default:
		return 10 * p
	}
}

// tickDecimals returns the fractional digits needed to print a tick sequence.
func tickDecimals(ts []float64) int {
	if len(ts) < 2 {
		return 0
	}
	step := ts[1] - ts[0]
	if step >= 1 {
		return 0
	}

	return int(-math.Floor(math.Log10(step) + 1e-9))
}
