// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/mauriziocere/HiveCHT/inp"
)

// CumTrapz integrates the rate y over x with the composite trapezoidal rule:
//
//   Q[0] = 0
//   Q[i] = Q[i-1] + ½·(y[i] + y[i-1])·(x[i] - x[i-1])
//
// x must be sorted in ascending order; repeated values add nothing to Q.
// Less than two points give zeros
func CumTrapz(x, y []float64) (Q []float64) {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	Q = make([]float64, len(x))
	for i := 1; i < len(x); i++ {
		Q[i] = Q[i-1] + 0.5*(y[i]+y[i-1])*(x[i]-x[i-1])
	}
	return
}

// CumTrapzSeries sorts a copy of s and integrates it. It returns the sorted series and
// the cumulative values at each of its points
func CumTrapzSeries(s inp.Series) (sorted inp.Series, Q []float64) {
	sorted = s.Sorted()
	Q = CumTrapz(sorted.Xs(), sorted.Ys())
	return
}
