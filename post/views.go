// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"path/filepath"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/mauriziocere/HiveCHT/ana"
	"github.com/mauriziocere/HiveCHT/inp"
	"github.com/mauriziocere/HiveCHT/out"
)

// HfViews plots the heat rate of the first time directory in two views: against time with
// a logarithmic axis, and against 1/sqrt(t). The second view needs two positive times.
// All samples are used
func HfViews(in *inp.Input, r out.Renderer) (res *Result, err error) {
	fn := in.File
	if fn == "" {
		fn = filepath.Join(in.Dir, "0", inp.DatNames[0])
	}
	raw, err := inp.ReadColumnsFile(fn)
	if err != nil {
		return
	}
	s := raw.Sorted()
	res = &Result{Input: fn, Nsamples: raw.Len(), Nused: s.Len()}
	t, qdot := s.Xs(), s.Ys()
	lblQdot := out.GetTexLabel("qdot", "[W]")
	data := plt.A{C: "b", M: "o", Ms: 3, L: "data"}
	fit := plt.A{C: "skyblue", Ls: "-", Lw: 1}

	// heat rate vs time
	fig := out.NewFigure(12, 5, dpi(in, 200))
	a := fig.Splot("semilogy", "Heat flux (semilogy)").Labels(out.GetTexLabel("time", "[s]"), lblQdot, "")
	a.Ylog = hasPositive(qdot)
	if !a.Ylog {
		io.Pforan("no positive heat rate: linear axis used instead of logarithmic\n")
	}
	a.Plot(t, qdot, data)
	td, qd := ana.Resample(t, qdot, in.Npts)
	a.Plot(td, qd, fit)

	// heat rate vs 1/sqrt(t)
	u, v := ana.InvSqrtView(t, qdot)
	if len(u) >= 2 {
		b := fig.Splot("invsqrt", "Heat flux vs $1/\\sqrt{t}$").Labels(out.GetTexLabel("invsqrt", "[s^{-1/2}]"), lblQdot, "")
		b.Plot(u, v, data)
		ud, vd := ana.Resample(u, v, in.Npts)
		b.Plot(ud, vd, fit)
		fig.Nrow, fig.Ncol = 1, 2
	}

	if err = render(r, []*out.Figure{fig}, []string{outName(in.Out, ViewsOut)}, res); err != nil {
		return nil, err
	}
	return
}

func hasPositive(v []float64) bool {
	for _, x := range v {
		if x > 0 {
			return true
		}
	}
	return false
}
