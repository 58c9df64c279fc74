// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"io"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// GonumRenderer draws figures with gonum/plot. A subplot with a secondary y-axis is
// drawn as two panels sharing the x-axis, the second one holding the right-hand data
type GonumRenderer struct{}

// Render saves fig to a .png, .jpg, .svg or .pdf file
func (o *GonumRenderer) Render(fig *Figure, fn string) error {
	if err := fig.Check(); err != nil {
		return err
	}

	// canvas
	w, h := vg.Length(fig.Width)*vg.Inch, vg.Length(fig.Height)*vg.Inch
	var c vg.CanvasWriterTo
	switch ext(fn) {
	case ".png":
		c = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(fig.Dpi))}
	case ".jpg", ".jpeg":
		c = vgimg.JpegCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(fig.Dpi))}
	case ".svg":
		c = vgsvg.New(w, h)
	case ".pdf":
		c = vgpdf.New(w, h)
	default:
		return chk.Err("gonum renderer saves .png, .jpg, .svg or .pdf files only. fn=%q", fn)
	}

	// panels
	var panels []*plot.Plot
	for _, spl := range fig.Splots {
		p, err := gonumPanel(spl, false)
		if err != nil {
			return err
		}
		panels = append(panels, p)
		if spl.HasRight() {
			if p, err = gonumPanel(spl, true); err != nil {
				return err
			}
			panels = append(panels, p)
		}
	}
	nr, nc := fig.Layout()
	if nr*nc < len(panels) {
		nr, nc = len(panels), 1
	}
	grid := make([][]*plot.Plot, nr)
	for i := range grid {
		grid[i] = make([]*plot.Plot, nc)
	}
	for k, p := range panels {
		grid[k/nc][k%nc] = p
	}

	// draw
	tiles := draw.Tiles{Rows: nr, Cols: nc, PadX: vg.Millimeter, PadY: vg.Millimeter, PadTop: vg.Points(2), PadBottom: vg.Points(2), PadLeft: vg.Points(2), PadRight: vg.Points(2)}
	canvases := plot.Align(grid, tiles, draw.New(c))
	for i := range grid {
		for j, p := range grid[i] {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}
	return saveAtomic(fn, func(wr io.Writer) error {
		_, err := c.WriteTo(wr)
		return err
	})
}

// gonumPanel converts the left or right part of a subplot into a plot
func gonumPanel(spl *Splot, right bool) (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = Untex(spl.Title)
	p.X.Label.Text = Untex(spl.Xlbl)
	p.Y.Label.Text = Untex(spl.Ylbl)
	logy := spl.Ylog && !right
	if right {
		p.Title.Text = ""
		p.Y.Label.Text = Untex(spl.Y2lbl)
	}
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	// ranges
	xmin, xmax := padRange(spl.Xrange())
	var ymin, ymax float64
	if logy {
		ymin, ymax = spl.Yrange(false, true)
		if ymax < ymin {
			return nil, chk.Err("subplot %q has no positive value for the logarithmic axis", spl.Id)
		}
		if ymax == ymin {
			ymin, ymax = ymin/10, ymax*10
		}
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	} else {
		ymin, ymax = padRange(spl.Yrange(right, false))
	}

	// curves
	for _, d := range spl.Data {
		if d.Right != right {
			continue
		}
		pts := gonumXYs(d.X, d.Y, logy)
		if len(pts) == 0 {
			continue
		}
		if err = gonumAdd(p, Untex(d.Style.L), pts, &d.Style); err != nil {
			return nil, chk.Err("subplot %q: %v", spl.Id, err)
		}
	}
	for _, l := range spl.Hlines {
		if l.Right != right || (logy && l.V <= 0) {
			continue
		}
		pts := plotter.XYs{{X: xmin, Y: l.V}, {X: xmax, Y: l.V}}
		if err = gonumAdd(p, Untex(l.Style.L), pts, &l.Style); err != nil {
			return nil, chk.Err("subplot %q: %v", spl.Id, err)
		}
	}
	for _, l := range spl.Vlines {
		pts := plotter.XYs{{X: l.V, Y: ymin}, {X: l.V, Y: ymax}}
		if err = gonumAdd(p, Untex(l.Style.L), pts, &l.Style); err != nil {
			return nil, chk.Err("subplot %q: %v", spl.Id, err)
		}
	}
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax
	return
}

// gonumAdd adds a line and/or markers to p
func gonumAdd(p *plot.Plot, label string, pts plotter.XYs, a *plt.A) error {
	c, err := ParseColor(a.C)
	if err != nil {
		return err
	}
	var thumbs []plot.Thumbnailer
	if HasLine(a) {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		l.LineStyle.Color = c
		l.LineStyle.Width = vg.Points(LineWidth(a))
		for _, v := range Dashes(a.Ls) {
			l.LineStyle.Dashes = append(l.LineStyle.Dashes, vg.Points(v))
		}
		p.Add(l)
		thumbs = append(thumbs, l)
	}
	if a.M != "" {
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = c
		s.GlyphStyle.Radius = vg.Points(MarkerSize(a) / 2)
		s.GlyphStyle.Shape = glyph(a.M)
		p.Add(s)
		thumbs = append(thumbs, s)
	}
	if label != "" && len(thumbs) > 0 {
		p.Legend.Add(label, thumbs...)
	}
	return nil
}

// glyph returns the shape of a matplotlib marker
func glyph(m string) draw.GlyphDrawer {
	switch m {
	case "s":
		return draw.BoxGlyph{}
	case "^":
		return draw.TriangleGlyph{}
	case "x":
		return draw.CrossGlyph{}
	case "+":
		return draw.PlusGlyph{}
	case "*":
		return draw.RingGlyph{}
	}
	return draw.CircleGlyph{}
}

// gonumXYs joins x and y; with logy, points with y <= 0 are dropped
func gonumXYs(x, y []float64, logy bool) (pts plotter.XYs) {
	for i := range x {
		if logy && y[i] <= 0 {
			continue
		}
		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}
	return
}
