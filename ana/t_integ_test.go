// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/mauriziocere/HiveCHT/inp"
)

func Test_integ01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("integ01. constant rate")

	c, Δ, n := 4.8, 0.1, 51
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i) * Δ
		y[i] = c
	}
	Q := CumTrapz(x, y)
	chk.Int(tst, "len(Q)", len(Q), n)
	for i := 0; i < n; i++ {
		chk.AnaNum(tst, io.Sf("Q[%d]", i), 1e-13, Q[i], c*float64(i)*Δ, chk.Verbose)
	}
}

func Test_integ02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("integ02. short series")

	chk.Array(tst, "Q (n=0)", 1e-17, CumTrapz(nil, nil), []float64{})
	chk.Array(tst, "Q (n=1)", 1e-17, CumTrapz([]float64{0.3}, []float64{7}), []float64{0})
	chk.Array(tst, "Q (n=2)", 1e-17, CumTrapz([]float64{0, 2}, []float64{1, 3}), []float64{0, 4})
}

func Test_integ03(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("integ03. linear rate and repeated times")

	x := utl.LinSpace(0, 1, 11)
	Q := CumTrapz(x, x)
	for i, v := range x {
		chk.AnaNum(tst, io.Sf("Q(%g)", v), 1e-14, Q[i], v*v/2, chk.Verbose)
	}

	Q = CumTrapz([]float64{0, 1, 1, 2}, []float64{1, 1, 5, 5})
	chk.Array(tst, "Q", 1e-15, Q, []float64{0, 1, 1, 6})

	if chk.Verbose {
		plt.Reset(false, nil)
		plt.Plot(x, x, &plt.A{C: "k", L: "rate"})
		plt.Plot(x, CumTrapz(x, x), &plt.A{C: "r", M: ".", L: "cumulative"})
		plt.Gll("$t$", "$Q$", nil)
		plt.Save("/tmp/hivecht", "test_integ03")
	}
}

func Test_integ04(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("integ04. unsorted series")

	s, _ := inp.NewSeries([]float64{0.2, 0, 0.1}, []float64{3, 1, 2})
	sorted, Q := CumTrapzSeries(s)
	chk.Array(tst, "t", 1e-17, sorted.Xs(), []float64{0, 0.1, 0.2})
	chk.Array(tst, "Q", 1e-15, Q, []float64{0, 0.15, 0.4})
}
