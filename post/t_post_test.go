// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mauriziocere/HiveCHT/ana"
	"github.com/mauriziocere/HiveCHT/inp"
	"github.com/mauriziocere/HiveCHT/out"
	"github.com/mauriziocere/HiveCHT/tests"
)

// brood generates samples every 0.05 s in [0, 1], half of them at full steps of 0.1 s
func brood(qdot func(t float64) float64) (T, Q []float64) {
	for i := 0; i <= 20; i++ {
		t := float64(i) * 0.05
		T = append(T, t)
		Q = append(Q, qdot(t))
	}
	return
}

// verboseRender saves the figures when tests are verbose
func verboseRender(tst *testing.T, mem *out.Memory) {
	if !chk.Verbose {
		return
	}
	r := new(out.ChartRenderer)
	for i, fig := range mem.Figures {
		if err := r.Render(fig, filepath.Join("/tmp/hivecht", filepath.Base(mem.Files[i]))); err != nil {
			tst.Errorf("Render failed:\n%v", err)
		}
	}
}

func Test_post01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("post01. courant")

	dir := tst.TempDir()
	T := []float64{0.001, 0.002, 0.003}
	in := inp.NewInput()
	in.Log = tests.WriteFile(tst, dir, "log.solver", tests.SolverLog(T, []float64{0.1, 0.2, 0.3}, []float64{0.5, 0.6, 0.7}))

	var mem out.Memory
	res, err := Courant(in, &mem)
	if err != nil {
		tst.Errorf("Courant failed:\n%v", err)
		return
	}
	io.Pf("%v", res)
	chk.Int(tst, "samples", res.Nsamples, 3)
	chk.Int(tst, "figures", len(mem.Figures), 1)
	chk.String(tst, mem.Files[0], CourantOut)
	chk.Int(tst, "dpi", mem.Figures[0].Dpi, 200)
	s := mem.Figures[0].Splots[0]
	chk.Int(tst, "curves", len(s.Data), 2)
	chk.Array(tst, "t", 1e-17, s.Data[0].X, T)
	chk.Array(tst, "mean", 1e-17, s.Data[0].Y, []float64{0.1, 0.2, 0.3})
	chk.Array(tst, "max", 1e-17, s.Data[1].Y, []float64{0.5, 0.6, 0.7})
	verboseRender(tst, &mem)

	// errors
	var none out.Memory
	in.Log = ""
	if _, err = Courant(in, &none); !errors.Is(err, inp.ErrMissingInput) {
		tst.Errorf("empty log should give ErrMissingInput. err = %v\n", err)
	}
	in.Log = filepath.Join(dir, "nothere.log")
	if _, err = Courant(in, &none); !errors.Is(err, inp.ErrMissingInput) {
		tst.Errorf("missing log should give ErrMissingInput. err = %v\n", err)
	}
	in.Log = tests.WriteFile(tst, dir, "empty.log", "Starting time loop\nEnd\n")
	if _, err = Courant(in, &none); !errors.Is(err, inp.ErrNoData) {
		tst.Errorf("log without Courant numbers should give ErrNoData. err = %v\n", err)
	}
	chk.Int(tst, "figures after errors", len(none.Figures), 0)
}

func Test_post02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("post02. heat flux")

	dir := tst.TempDir()
	T, Q := brood(func(t float64) float64 { return 3 })
	tests.WriteFile(tst, dir, "pp/0/surfaceFieldValue.dat", tests.SurfaceDat([]float64{0, 0.1}, []float64{1, 1}))
	latest := tests.WriteFile(tst, dir, "pp/0.5/surfaceFieldValue.dat", tests.SurfaceDat(T, Q))

	in := inp.NewInput()
	in.Dir = filepath.Join(dir, "pp")
	in.Out = filepath.Join(dir, "heat.png")
	var mem out.Memory
	res, err := HeatFlux(in, &mem)
	if err != nil {
		tst.Errorf("HeatFlux failed:\n%v", err)
		return
	}
	io.Pf("%v", res)
	chk.String(tst, res.Input, latest)
	chk.Int(tst, "samples", res.Nsamples, 21)
	chk.Int(tst, "used", res.Nused, 11)
	chk.Float64(tst, "Q(1)", 1e-14, res.Qtotal, 3)
	chk.String(tst, mem.Files[0], in.Out)
	s := mem.Figures[0].Splots[0]
	chk.Int(tst, "curves", len(s.Data), 2)
	if s.Data[0].Right || !s.Data[1].Right {
		tst.Errorf("heat rate should be on the left and heat on the right\n")
	}
	chk.Array(tst, "Q", 1e-14, s.Data[1].Y, []float64{0, 0.3, 0.6, 0.9, 1.2, 1.5, 1.8, 2.1, 2.4, 2.7, 3})
	verboseRender(tst, &mem)

	// no full step
	var none out.Memory
	in.File = tests.WriteFile(tst, dir, "half.dat", tests.SurfaceDat([]float64{0.05, 0.15, 0.25}, []float64{1, 2, 3}))
	_, err = HeatFlux(in, &none)
	if !errors.Is(err, ana.ErrNoFullSteps) {
		tst.Errorf("half steps should give ErrNoFullSteps. err = %v\n", err)
	}
	io.Pforan("%v\n", err)

	// no data
	in.File = tests.WriteFile(tst, dir, "comments.dat", "# Time\tq\n# nothing\n")
	if _, err = HeatFlux(in, &none); !errors.Is(err, inp.ErrNoData) {
		tst.Errorf("file without data should give ErrNoData. err = %v\n", err)
	}

	// missing
	in.File = ""
	in.Dir = filepath.Join(dir, "nothere")
	if _, err = HeatFlux(in, &none); !errors.Is(err, inp.ErrMissingInput) {
		tst.Errorf("missing directory should give ErrMissingInput. err = %v\n", err)
	}
	chk.Int(tst, "figures after errors", len(none.Figures), 0)
}

func Test_post03(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("post03. bees vs brood")

	// Q_brood = 10 t - 10 t² crosses Q_bees = 4.8 t at t = 0.52; the linear
	// interpolation between 0.5 and 0.6 gives 0.5 + 0.01/0.58
	dir := tst.TempDir()
	T, Q := brood(func(t float64) float64 { return 10 - 20*t })
	in := inp.NewInput()
	in.File = tests.WriteFile(tst, dir, "surfaceFieldValue.dat", tests.SurfaceDat(T, Q))

	var mem out.Memory
	res, err := BeesVsBrood(in, &mem)
	if err != nil {
		tst.Errorf("BeesVsBrood failed:\n%v", err)
		return
	}
	io.Pf("%v", res)
	tc := 0.5 + 0.01/0.58
	chk.Int(tst, "crossings", len(res.Crossings), 1)
	chk.Float64(tst, "tc", 1e-12, res.Crossings[0].X, tc)
	chk.Float64(tst, "Ec", 1e-12, res.Crossings[0].Y, 4.8*tc)
	chk.Float64(tst, "Q(1)", 1e-12, res.Qtotal, 0)
	summary := res.String()
	for _, key := range []string{"input     = " + in.File, "samples   = 21 (used 11)", "crossing  : t = "} {
		if !strings.Contains(summary, key) {
			tst.Errorf("summary should contain %q:\n%s", key, summary)
		}
	}

	chk.Int(tst, "figures", len(mem.Figures), 2)
	chk.String(tst, mem.Files[0], BeesOut1)
	chk.String(tst, mem.Files[1], BeesOut2)
	fig1, fig2 := mem.Figures[0], mem.Figures[1]
	chk.Int(tst, "dpi", fig1.Dpi, 220)
	chk.Int(tst, "hlines", len(fig1.Splots[0].Hlines), 1)
	chk.Float64(tst, "bees power", 1e-17, fig1.Splots[0].Hlines[0].V, 4.8)
	if !fig1.Splots[0].Hlines[0].Right {
		tst.Errorf("bees power should be on the secondary axis\n")
	}
	chk.Int(tst, "panels", len(fig2.Splots), 2)
	for _, s := range fig2.Splots {
		chk.Int(tst, "vlines of "+s.Id, len(s.Vlines), 1)
		chk.Float64(tst, "vline", 1e-12, s.Vlines[0].V, tc)
	}
	chk.Float64(tst, "Q_bees(1)", 1e-12, fig2.Splots[0].Data[0].Y[10], 4.8)
	verboseRender(tst, &mem)

	// relative time
	var mem2 out.Memory
	in.BeesPower = 2
	in.File = tests.WriteFile(tst, dir, "late.dat", tests.SurfaceDat([]float64{1, 1.1, 1.2}, []float64{1, 1, 1}))
	res, err = BeesVsBrood(in, &mem2)
	if err != nil {
		tst.Errorf("BeesVsBrood failed:\n%v", err)
		return
	}
	chk.Array(tst, "Q_bees", 1e-14, mem2.Figures[1].Splots[0].Data[0].Y, []float64{0, 0.2, 0.4})
	chk.Int(tst, "crossings", len(res.Crossings), 0)
}

func Test_post04(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("post04. heat flux views")

	dir := tst.TempDir()
	T, Q := brood(func(t float64) float64 { return 5 / (1 + t) })
	tests.WriteFile(tst, dir, "pp/0/surfaceFieldValue.dat", tests.SurfaceDat(T, Q))

	in := inp.NewInput()
	in.Dir = filepath.Join(dir, "pp")
	in.Npts = 50
	var mem out.Memory
	res, err := HfViews(in, &mem)
	if err != nil {
		tst.Errorf("HfViews failed:\n%v", err)
		return
	}
	io.Pf("%v", res)
	chk.Int(tst, "samples", res.Nused, 21)
	chk.String(tst, mem.Files[0], ViewsOut)
	fig := mem.Figures[0]
	chk.Int(tst, "panels", len(fig.Splots), 2)
	chk.Int(tst, "ncol", fig.Ncol, 2)
	a, b := fig.Splots[0], fig.Splots[1]
	if !a.Ylog {
		tst.Errorf("first view should be logarithmic\n")
	}
	chk.Int(tst, "resampled", len(a.Data[1].X), 50)
	chk.Int(tst, "positive times", len(b.Data[0].X), 20)
	chk.Float64(tst, "u(1)", 1e-15, b.Data[0].X[0], 1)
	chk.Float64(tst, "q(1)", 1e-15, b.Data[0].Y[0], 2.5)
	verboseRender(tst, &mem)

	// one positive time and negative rates
	var mem2 out.Memory
	in.File = tests.WriteFile(tst, dir, "short.dat", tests.SurfaceDat([]float64{0.1, 0}, []float64{-1, -2}))
	if _, err = HfViews(in, &mem2); err != nil {
		tst.Errorf("HfViews failed:\n%v", err)
		return
	}
	fig = mem2.Figures[0]
	chk.Int(tst, "panels", len(fig.Splots), 1)
	if fig.Splots[0].Ylog {
		tst.Errorf("negative rates cannot use a logarithmic axis\n")
	}
	chk.Array(tst, "t", 1e-17, fig.Splots[0].Data[0].X, []float64{0, 0.1})

	// missing default file
	in.File = ""
	in.Dir = filepath.Join(dir, "nothere")
	if _, err = HfViews(in, &mem2); !errors.Is(err, inp.ErrMissingInput) {
		tst.Errorf("missing file should give ErrMissingInput. err = %v\n", err)
	}
}
