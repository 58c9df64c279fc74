// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"github.com/cpmech/gosl/plt"
	"github.com/mauriziocere/HiveCHT/ana"
	"github.com/mauriziocere/HiveCHT/inp"
	"github.com/mauriziocere/HiveCHT/out"
)

// HeatFlux plots the heat rate lost through the brood patch and the heat cumulated over
// time, using the samples at full time steps
func HeatFlux(in *inp.Input, r out.Renderer) (res *Result, err error) {
	res = new(Result)
	s, err := readFullSteps(in, res)
	if err != nil {
		return nil, err
	}
	t, qdot := s.Xs(), s.Ys()
	Q := ana.CumTrapz(t, qdot)
	res.Qtotal = Q[len(Q)-1]

	fig := out.NewFigure(10, 5.8, dpi(in, 200))
	p := fig.Splot("heat", "Power ($\\dot{Q}(t)$) and heat ($Q(t)$) lost by the brood")
	p.Labels(out.GetTexLabel("time", "[s]"), out.GetTexLabel("qdot", "[W]"), out.GetTexLabel("Q", "[J]"))
	p.Plot(t, qdot, plt.A{C: "k", Lw: 1.8, L: "$\\dot{Q}(t)$ [W] (power lost)"})
	p.PlotRight(t, Q, plt.A{C: "r", Lw: 1.8, L: "$Q(t)$ [J] (heat lost until t)"})

	if err = render(r, []*out.Figure{fig}, []string{outName(in.Out, HeatOut)}, res); err != nil {
		return nil, err
	}
	return
}
