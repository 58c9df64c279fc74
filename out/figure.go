// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements figures made of subplots and the renderers that save them
package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	X     []float64 // x-values
	Y     []float64 // y-values
	Style plt.A     // style; Style.L is the legend label
	Right bool      // plotted against the secondary y-axis
}

// RefLine holds a horizontal or vertical reference line
type RefLine struct {
	V     float64 // y-value of horizontal lines or x-value of vertical lines
	Style plt.A   // style
	Right bool    // horizontal line on the secondary y-axis
}

// Splot stores all data for one subplot
type Splot struct {
	Id     string       // unique identifier
	Title  string       // title of subplot
	Xlbl   string       // x-axis label; may contain TeX, e.g. "$t\\;[s]$"
	Ylbl   string       // y-axis label
	Y2lbl  string       // secondary y-axis label
	Ylog   bool         // logarithmic y-axis
	Data   []*PltEntity // data and styles to be plotted
	Hlines []*RefLine   // horizontal lines
	Vlines []*RefLine   // vertical lines
}

// Figure holds subplots and the size of the image
type Figure struct {
	Width  float64  // width in inches
	Height float64  // height in inches
	Dpi    int      // resolution
	Nrow   int      // number of rows; 0 means computed
	Ncol   int      // number of columns; 0 means computed
	Splots []*Splot // all subplots
}

// NewFigure returns a new figure
func NewFigure(width, height float64, dpi int) *Figure {
	return &Figure{Width: width, Height: height, Dpi: dpi}
}

// Splot activates a new subplot
func (o *Figure) Splot(id, title string) *Splot {
	s := &Splot{Id: id, Title: title}
	o.Splots = append(o.Splots, s)
	return s
}

// Layout returns the number of rows and columns of subplots
func (o *Figure) Layout() (nr, nc int) {
	if o.Nrow > 0 && o.Ncol > 0 {
		return o.Nrow, o.Ncol
	}
	n := len(o.Splots)
	if n < 2 {
		return 1, 1
	}
	return utl.BestSquare(n)
}

// Check verifies that the figure can be rendered
func (o *Figure) Check() error {
	if o.Width <= 0 || o.Height <= 0 || o.Dpi <= 0 {
		return chk.Err("figure size and dpi must be positive. width=%g, height=%g, dpi=%d", o.Width, o.Height, o.Dpi)
	}
	if len(o.Splots) == 0 {
		return chk.Err("figure has no subplot")
	}
	nr, nc := o.Layout()
	if nr*nc < len(o.Splots) {
		return chk.Err("layout %d×%d cannot hold %d subplots", nr, nc, len(o.Splots))
	}
	for _, s := range o.Splots {
		if len(s.Data) == 0 {
			return chk.Err("subplot %q has no data", s.Id)
		}
		for i, d := range s.Data {
			if len(d.X) != len(d.Y) {
				return chk.Err("subplot %q, entity %d: lengths of x- and y-series are different. len(x)=%d, len(y)=%d", s.Id, i, len(d.X), len(d.Y))
			}
			if len(d.X) == 0 {
				return chk.Err("subplot %q, entity %d: series is empty", s.Id, i)
			}
		}
	}
	return nil
}

// Labels sets the axes labels
func (o *Splot) Labels(xlbl, ylbl, y2lbl string) *Splot {
	o.Xlbl, o.Ylbl, o.Y2lbl = xlbl, ylbl, y2lbl
	return o
}

// Plot adds a curve against the primary y-axis
func (o *Splot) Plot(x, y []float64, style plt.A) {
	o.Data = append(o.Data, &PltEntity{X: x, Y: y, Style: style})
}

// PlotRight adds a curve against the secondary y-axis
func (o *Splot) PlotRight(x, y []float64, style plt.A) {
	o.Data = append(o.Data, &PltEntity{X: x, Y: y, Style: style, Right: true})
}

// Hline adds a horizontal line
func (o *Splot) Hline(y float64, right bool, style plt.A) {
	o.Hlines = append(o.Hlines, &RefLine{V: y, Style: style, Right: right})
}

// Vline adds a vertical line
func (o *Splot) Vline(x float64, style plt.A) {
	o.Vlines = append(o.Vlines, &RefLine{V: x, Style: style})
}

// HasRight tells whether something is plotted against the secondary y-axis
func (o *Splot) HasRight() bool {
	for _, d := range o.Data {
		if d.Right {
			return true
		}
	}
	for _, l := range o.Hlines {
		if l.Right {
			return true
		}
	}
	return false
}

// Xrange returns the limits of x over all entities
func (o *Splot) Xrange() (xmin, xmax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, d := range o.Data {
		for _, v := range d.X {
			xmin, xmax = math.Min(xmin, v), math.Max(xmax, v)
		}
	}
	for _, l := range o.Vlines {
		xmin, xmax = math.Min(xmin, l.V), math.Max(xmax, l.V)
	}
	return
}

// Yrange returns the limits of y on one axis. With positive, only y > 0 is considered,
// as needed by logarithmic axes
func (o *Splot) Yrange(right, positive bool) (ymin, ymax float64) {
	ymin, ymax = math.Inf(1), math.Inf(-1)
	add := func(v float64) {
		if positive && v <= 0 {
			return
		}
		ymin, ymax = math.Min(ymin, v), math.Max(ymax, v)
	}
	for _, d := range o.Data {
		if d.Right == right {
			for _, v := range d.Y {
				add(v)
			}
		}
	}
	for _, l := range o.Hlines {
		if l.Right == right {
			add(l.V)
		}
	}
	return
}

// padRange widens degenerate or empty ranges so axes can be drawn
func padRange(vmin, vmax float64) (float64, float64) {
	if math.IsInf(vmin, 0) || math.IsInf(vmax, 0) {
		return 0, 1
	}
	if vmax > vmin {
		return vmin, vmax
	}
	δ := math.Max(math.Abs(vmin)*0.1, 1)
	return vmin - δ, vmax + δ
}
