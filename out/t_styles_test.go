// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

func Test_styles01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("styles01. labels")

	chk.String(tst, GetTexLabel("qdot", "[W]"), "$\\dot{Q}\\;[W]$")
	chk.String(tst, GetTexLabel("time", ""), "$t$")
	chk.String(tst, GetTexLabel("other", "[-]"), "$other\\;[-]$")

	chk.String(tst, Untex(GetTexLabel("qdot", "[W]")), "dQ/dt [W]")
	chk.String(tst, Untex(GetTexLabel("Qbrood", "[J]")), "Q_Brood [J]")
	chk.String(tst, Untex(GetTexLabel("co", "")), "Co")
	chk.String(tst, Untex(GetTexLabel("invsqrt", "[s^{-1/2}]")), "1/√t [s^-1/2]")
	chk.String(tst, Untex("plain text"), "plain text")
}

func Test_styles02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("styles02. colours and lines")

	for _, c := range []struct {
		in  string
		out color.RGBA
	}{
		{"", color.RGBA{0, 0, 0, 255}},
		{"r", color.RGBA{255, 0, 0, 255}},
		{" Grey ", color.RGBA{128, 128, 128, 255}},
		{"skyblue", color.RGBA{135, 206, 235, 255}},
		{"#102030", color.RGBA{16, 32, 48, 255}},
	} {
		res, err := ParseColor(c.in)
		if err != nil {
			tst.Errorf("ParseColor(%q) failed:\n%v", c.in, err)
			return
		}
		chk.Ints(tst, c.in, []int{int(res.R), int(res.G), int(res.B), int(res.A)}, []int{int(c.out.R), int(c.out.G), int(c.out.B), int(c.out.A)})
	}
	for _, bad := range []string{"notacolour", "#12345", "#zzzzzz"} {
		if _, err := ParseColor(bad); err == nil {
			tst.Errorf("ParseColor(%q) should have failed\n", bad)
		}
	}

	chk.Array(tst, "--", 1e-17, Dashes("--"), []float64{6, 3})
	chk.Array(tst, "-.", 1e-17, Dashes("-."), []float64{6, 2, 1, 2})
	if Dashes("-") != nil {
		tst.Errorf("solid line should have no dashes\n")
	}

	for _, c := range []struct {
		a    plt.A
		line bool
	}{
		{plt.A{}, true},
		{plt.A{M: "o"}, false},
		{plt.A{M: "o", Ls: "-"}, true},
		{plt.A{Ls: "none"}, false},
		{plt.A{Ls: ":"}, true},
	} {
		if HasLine(&c.a) != c.line {
			tst.Errorf("HasLine(M=%q, Ls=%q) should be %v\n", c.a.M, c.a.Ls, c.line)
		}
	}
	chk.Float64(tst, "lw", 1e-17, LineWidth(&plt.A{}), 1.5)
	chk.Float64(tst, "lw", 1e-17, LineWidth(&plt.A{Lw: 3}), 3)
	chk.Float64(tst, "ms", 1e-17, MarkerSize(&plt.A{}), 4)
	chk.Float64(tst, "ms", 1e-17, MarkerSize(&plt.A{Ms: 3}), 3)
}
