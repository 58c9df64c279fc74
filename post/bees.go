// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/mauriziocere/HiveCHT/ana"
	"github.com/mauriziocere/HiveCHT/inp"
	"github.com/mauriziocere/HiveCHT/out"
)

// BeesVsBrood compares the heat lost by the brood with the heat generated by the bees at
// constant power, counted from the first full time step. Two figures are saved: the brood
// energy with the bees power, and the two energies in stacked panels with vertical lines
// where they cross
func BeesVsBrood(in *inp.Input, r out.Renderer) (res *Result, err error) {
	res = new(Result)
	s, err := readFullSteps(in, res)
	if err != nil {
		return nil, err
	}
	P := in.BeesPower
	t, qdot := s.Xs(), s.Ys()
	Qbrood := ana.CumTrapz(t, qdot)
	Qbees := make([]float64, len(t))
	for i := range t {
		Qbees[i] = P * (t[i] - t[0])
	}
	res.Qtotal = Qbrood[len(Qbrood)-1]
	res.Crossings, err = ana.Crossings(t, Qbrood, Qbees)
	if err != nil {
		return nil, chk.Err("cannot compute crossings:\n%v", err)
	}

	// brood energy and bees power
	time := out.GetTexLabel("time", "[s]")
	lblBrood := out.GetTexLabel("Qbrood", "") + "(t) [J]"
	fig1 := out.NewFigure(10, 5.8, dpi(in, 220))
	a := fig1.Splot("power", "Heat lost ($Q_\\mathrm{Brood}(t)$) vs power generated ($\\dot{Q}_\\mathrm{bees}$)")
	a.Labels(time, "Energy [J]", out.GetTexLabel("qdot", "[W]"))
	a.Plot(t, Qbrood, plt.A{C: "r", Lw: 1.8, L: lblBrood})
	a.Hline(P, true, plt.A{C: "k", Lw: 1.8, L: io.Sf("$\\dot{Q}_\\mathrm{bees}=%.2f\\,\\mathrm{W}$", P)})

	// energies
	fig2 := out.NewFigure(10, 7.2, dpi(in, 220))
	fig2.Nrow, fig2.Ncol = 2, 1
	top := fig2.Splot("bees", "Heat generated $Q_\\mathrm{bees}(t)$ vs heat lost $Q_\\mathrm{Brood}(t)$")
	top.Labels("", "Energy [J]", "")
	top.Plot(t, Qbees, plt.A{C: "k", Lw: 1.8, L: "$Q_\\mathrm{bees}(t)=\\dot{Q}_\\mathrm{bees}\\,t$ [J]"})
	bot := fig2.Splot("brood", "").Labels(time, "Energy [J]", "")
	bot.Plot(t, Qbrood, plt.A{C: "r", Lw: 1.8, L: lblBrood})
	for _, tc := range ana.CrossingTimes(res.Crossings) {
		top.Vline(tc, plt.A{C: "#7f7f7f", Ls: ":", Lw: 1})
		bot.Vline(tc, plt.A{C: "#7f7f7f", Ls: ":", Lw: 1})
	}

	files := []string{outName(in.Out1, BeesOut1), outName(in.Out2, BeesOut2)}
	if err = render(r, []*out.Figure{fig1, fig2}, files, res); err != nil {
		return nil, err
	}
	return
}
