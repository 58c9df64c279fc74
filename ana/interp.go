// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Interp evaluates the piecewise linear function through (x, y) at xq. x must be sorted
// in ascending order. Values outside the range of x are clamped to the end values
func Interp(xq float64, x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		chk.Panic("Interp needs len(x) == len(y) > 0. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	if xq <= x[0] {
		return y[0]
	}
	if xq >= x[n-1] {
		return y[n-1]
	}
	k := sort.SearchFloat64s(x, xq) // x[k-1] < xq ≤ x[k]
	if x[k] == xq {
		return y[k]
	}
	return y[k-1] + (y[k]-y[k-1])*(xq-x[k-1])/(x[k]-x[k-1])
}

// Resample returns np equally spaced points between the minimum and maximum of x with
// values linearly interpolated from (x, y), with x sorted. Less than two points are
// returned unchanged
func Resample(x, y []float64, np int) (xd, yd []float64) {
	if len(x) < 2 || np < 2 {
		return x, y
	}
	xmin, xmax := x[0], x[0]
	for _, v := range x {
		xmin = math.Min(xmin, v)
		xmax = math.Max(xmax, v)
	}
	xd = utl.LinSpace(xmin, xmax, np)
	yd = make([]float64, np)
	for i, v := range xd {
		yd[i] = Interp(v, x, y)
	}
	return
}

// InvSqrtView maps the samples with x > 0 to (1/√x, y), sorted by the new abscissa.
// Diffusion-dominated heat flux decays like 1/√t and shows as a straight line in this view
func InvSqrtView(x, y []float64) (u, v []float64) {
	type pair struct{ u, v float64 }
	var pts []pair
	for i := range x {
		if x[i] > 0 {
			pts = append(pts, pair{1.0 / math.Sqrt(x[i]), y[i]})
		}
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].u < pts[j].u })
	u = make([]float64, len(pts))
	v = make([]float64, len(pts))
	for i, p := range pts {
		u[i], v[i] = p.u, p.v
	}
	return
}
