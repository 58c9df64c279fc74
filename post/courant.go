// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/mauriziocere/HiveCHT/inp"
	"github.com/mauriziocere/HiveCHT/out"
)

// Courant plots the mean and maximum Courant numbers of a solver log against time
func Courant(in *inp.Input, r out.Renderer) (res *Result, err error) {
	if in.Log == "" {
		return nil, chk.Err("%w: solver log was not given", inp.ErrMissingInput)
	}
	co, err := inp.ReadCourantFile(in.Log, nil)
	if err != nil {
		return
	}
	res = &Result{Input: in.Log, Nsamples: co.Len(), Nused: co.Len()}

	fig := out.NewFigure(6.4, 4.8, dpi(in, 200))
	s := fig.Splot("courant", "Courant vs Time").Labels(out.GetTexLabel("time", "[s]"), out.GetTexLabel("co", "[-]"), "")
	s.Plot(co.T, co.Mean, plt.A{C: "#1f77b4", L: "CO mean"})
	s.Plot(co.T, co.Max, plt.A{C: "#ff7f0e", L: "CO max"})

	if err = render(r, []*out.Figure{fig}, []string{outName(in.Out, CourantOut)}, res); err != nil {
		return nil, err
	}
	return
}
