// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartRenderer draws figures with go-chart. Each subplot is rendered on its own and
// the images are tiled into one PNG. Logarithmic axes are drawn as log10 of the data
// with decade ticks
type ChartRenderer struct{}

// Render saves fig to a .png file
func (o *ChartRenderer) Render(fig *Figure, fn string) error {
	if err := fig.Check(); err != nil {
		return err
	}
	if ext(fn) != ".png" {
		return chk.Err("chart renderer saves .png files only. fn=%q", fn)
	}
	nr, nc := fig.Layout()
	w := int(fig.Width*float64(fig.Dpi)) / nc
	h := int(fig.Height*float64(fig.Dpi)) / nr
	dst := image.NewRGBA(image.Rect(0, 0, w*nc, h*nr))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	for k, spl := range fig.Splots {
		ch, err := buildChart(spl, w, h, float64(fig.Dpi))
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err = ch.Render(chart.PNG, &buf); err != nil {
			return chk.Err("cannot render subplot %q:\n%v", spl.Id, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return chk.Err("cannot decode subplot %q:\n%v", spl.Id, err)
		}
		i, j := k/nc, k%nc
		draw.Draw(dst, image.Rect(j*w, i*h, (j+1)*w, (i+1)*h), img, img.Bounds().Min, draw.Src)
	}
	return saveAtomic(fn, func(wr io.Writer) error { return png.Encode(wr, dst) })
}

// buildChart converts a subplot into a chart
func buildChart(spl *Splot, w, h int, dpi float64) (*chart.Chart, error) {
	px := dpi / 72 // pixels per point
	grid := chart.Style{StrokeColor: drawing.ColorFromHex("e0e0e0"), StrokeWidth: px}

	xmin, xmax := padRange(spl.Xrange())
	ch := &chart.Chart{
		Title:      Untex(spl.Title),
		Width:      w,
		Height:     h,
		DPI:        dpi,
		Background: chart.Style{Padding: chart.Box{Top: int(30 * px), Left: int(10 * px), Right: int(10 * px), Bottom: int(10 * px)}},
		XAxis: chart.XAxis{
			Name:           Untex(spl.Xlbl),
			Range:          &chart.ContinuousRange{Min: xmin, Max: xmax},
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           Untex(spl.Ylbl),
			GridMajorStyle: grid,
		},
	}

	// primary axis
	var ymin, ymax float64
	if spl.Ylog {
		lo, hi := spl.Yrange(false, true)
		if math.IsInf(lo, 0) {
			return nil, chk.Err("subplot %q has no positive value for the logarithmic axis", spl.Id)
		}
		ymin, ymax = math.Floor(math.Log10(lo)), math.Ceil(math.Log10(hi))
		if ymax == ymin {
			ymax = ymin + 1
		}
		for k := ymin; k <= ymax; k++ {
			ch.YAxis.Ticks = append(ch.YAxis.Ticks, chart.Tick{Value: k, Label: "1e" + strconv.Itoa(int(k))})
		}
	} else {
		ymin, ymax = padRange(spl.Yrange(false, false))
	}
	ch.YAxis.Range = &chart.ContinuousRange{Min: ymin, Max: ymax}

	// secondary axis
	if spl.HasRight() {
		lo, hi := padRange(spl.Yrange(true, false))
		ch.YAxisSecondary = chart.YAxis{
			Name:  Untex(spl.Y2lbl),
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		}
	}

	// series
	for _, d := range spl.Data {
		x, y := d.X, d.Y
		if spl.Ylog && !d.Right {
			x, y = log10Positive(x, y)
			if len(x) == 0 {
				continue
			}
		}
		s, err := chartSeries(Untex(d.Style.L), x, y, &d.Style, d.Right, px)
		if err != nil {
			return nil, err
		}
		ch.Series = append(ch.Series, s)
	}
	for _, l := range spl.Hlines {
		v := l.V
		if spl.Ylog && !l.Right {
			if v <= 0 {
				continue
			}
			v = math.Log10(v)
		}
		s, err := chartSeries(Untex(l.Style.L), []float64{xmin, xmax}, []float64{v, v}, &l.Style, l.Right, px)
		if err != nil {
			return nil, err
		}
		ch.Series = append(ch.Series, s)
	}
	for _, l := range spl.Vlines {
		s, err := chartSeries(Untex(l.Style.L), []float64{l.V, l.V}, []float64{ymin, ymax}, &l.Style, false, px)
		if err != nil {
			return nil, err
		}
		ch.Series = append(ch.Series, s)
	}

	// legend with labelled series only
	named := *ch
	named.Series = nil
	for _, s := range ch.Series {
		if s.GetName() != "" {
			named.Series = append(named.Series, s)
		}
	}
	if len(named.Series) > 0 {
		ch.Elements = []chart.Renderable{chart.Legend(&named)}
	}
	return ch, nil
}

// chartSeries converts data and matplotlib style into a go-chart series
func chartSeries(name string, x, y []float64, a *plt.A, right bool, px float64) (s chart.ContinuousSeries, err error) {
	c, err := ParseColor(a.C)
	if err != nil {
		return
	}
	col := drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	st := chart.Style{StrokeColor: col, StrokeWidth: LineWidth(a) * px}
	for _, v := range Dashes(a.Ls) {
		st.StrokeDashArray = append(st.StrokeDashArray, v*px)
	}
	if !HasLine(a) {
		st.StrokeColor = drawing.ColorTransparent
	}
	if a.M != "" {
		st.DotColor = col
		st.DotWidth = MarkerSize(a) * px / 2
	}
	if len(x) == 1 {
		x, y = []float64{x[0], x[0]}, []float64{y[0], y[0]}
	}
	s = chart.ContinuousSeries{Name: name, Style: st, XValues: x, YValues: y}
	if right {
		s.YAxis = chart.YAxisSecondary
	}
	return
}

// log10Positive returns the points with y > 0 and y replaced by log10(y)
func log10Positive(x, y []float64) (xp, yp []float64) {
	for i := range y {
		if y[i] > 0 {
			xp = append(xp, x[i])
			yp = append(yp, math.Log10(y[i]))
		}
	}
	return
}
