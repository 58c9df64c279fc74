// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_interp01(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("interp01. linear interpolation")

	x := []float64{0, 1, 3}
	y := []float64{0, 2, 6}
	chk.Float64(tst, "left", 1e-17, Interp(-1, x, y), 0)
	chk.Float64(tst, "right", 1e-17, Interp(5, x, y), 6)
	chk.Float64(tst, "node", 1e-17, Interp(1, x, y), 2)
	chk.Float64(tst, "inside", 1e-15, Interp(2.5, x, y), 5)

	xd, yd := Resample(x, y, 4)
	chk.Array(tst, "xd", 1e-15, xd, []float64{0, 1, 2, 3})
	chk.Array(tst, "yd", 1e-15, yd, []float64{0, 2, 4, 6})

	xd, yd = Resample([]float64{1}, []float64{7}, 300)
	chk.Array(tst, "xd (one point)", 1e-17, xd, []float64{1})
	chk.Array(tst, "yd (one point)", 1e-17, yd, []float64{7})
}

func Test_interp02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("interp02. 1/sqrt(t) view")

	u, v := InvSqrtView([]float64{0, 0.25, 1, 4}, []float64{9, 1, 2, 3})
	chk.Array(tst, "u", 1e-15, u, []float64{0.5, 1, 2})
	chk.Array(tst, "v", 1e-17, v, []float64{3, 2, 1})

	u, v = InvSqrtView([]float64{-1, 0}, []float64{1, 2})
	chk.Int(tst, "len(u)", len(u), 0)
	chk.Int(tst, "len(v)", len(v), 0)
}
