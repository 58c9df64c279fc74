// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

// MplRenderer draws figures with matplotlib through gosl/plt
type MplRenderer struct{}

// Render saves fig to a .png or .eps file
func (o *MplRenderer) Render(fig *Figure, fn string) (err error) {
	if err = fig.Check(); err != nil {
		return
	}
	e := ext(fn)
	if e != ".png" && e != ".eps" {
		return chk.Err("matplotlib renderer saves .png or .eps files only. fn=%q", fn)
	}

	// gosl/plt panics when python fails
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("matplotlib failed:\n%v", r)
		}
	}()

	plt.Reset(true, &plt.A{Prop: fig.Height / fig.Width, WidthPt: fig.Width * 72, Dpi: fig.Dpi, Eps: e == ".eps"})
	nr, nc := fig.Layout()
	for k, spl := range fig.Splots {
		if len(fig.Splots) > 1 {
			plt.Subplot(nr, nc, k+1)
		}
		drawMpl(spl)
	}
	plt.Save(filepath.Dir(fn), strings.TrimSuffix(filepath.Base(fn), filepath.Ext(fn)))
	return
}

func drawMpl(spl *Splot) {
	if spl.Title != "" {
		plt.Title(spl.Title, nil)
	}
	for _, d := range spl.Data {
		if !d.Right {
			plt.Plot(d.X, d.Y, mplArgs(d.Style))
		}
	}
	for _, l := range spl.Hlines {
		if !l.Right {
			plt.AxHline(l.V, mplArgs(l.Style))
		}
	}
	for _, l := range spl.Vlines {
		plt.AxVline(l.V, mplArgs(l.Style))
	}
	if spl.Ylog {
		plt.SetYlog()
	}
	plt.Gll(spl.Xlbl, spl.Ylbl, &plt.A{LegLoc: "upper left"})
	if !spl.HasRight() {
		return
	}
	plt.DoubleYscale(spl.Y2lbl)
	for _, d := range spl.Data {
		if d.Right {
			plt.Plot(d.X, d.Y, mplArgs(d.Style))
		}
	}
	for _, l := range spl.Hlines {
		if l.Right {
			plt.AxHline(l.V, mplArgs(l.Style))
		}
	}
	plt.Legend(&plt.A{LegLoc: "lower right"})
}

// mplArgs returns a copy of the style; markers without line style are drawn alone
func mplArgs(a plt.A) *plt.A {
	if !HasLine(&a) {
		a.Ls = "none"
	}
	return &a
}
