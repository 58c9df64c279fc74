// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
)

// Crossing holds a point where a series meets its reference
type Crossing struct {
	X float64 // abscissa; e.g. time
	Y float64 // ordinate of the reference at X
}

// Crossings finds where y meets yref. Both are sampled at x (sorted). With d = y - yref:
//
//   d[k] == 0              ⇒  (x[k], y[k])
//   d[k-1]*d[k] < 0        ⇒  zero of d by linear interpolation, with yref interpolated there
//
// Each zero sample is reported once. A zero at the first sample is where both curves
// start, not a crossing, and is not reported. The result is sorted by x
func Crossings(x, y, yref []float64) (res []Crossing, err error) {
	if len(y) != len(x) || len(yref) != len(x) {
		return nil, chk.Err("x, y and yref must have the same length. len(x)=%d, len(y)=%d, len(yref)=%d", len(x), len(y), len(yref))
	}
	for k := 1; k < len(x); k++ {
		d1 := y[k-1] - yref[k-1]
		d2 := y[k] - yref[k]
		switch {
		case d2 == 0:
			res = append(res, Crossing{x[k], y[k]})
		case d1 == 0:
			// reported at the previous boundary or starting point
		case d1*d2 < 0:
			t1, t2 := x[k-1], x[k]
			tc := 0.5 * (t1 + t2)
			if d2 != d1 {
				tc = t1 - d1*(t2-t1)/(d2-d1)
			}
			yc := yref[k-1]
			if t2 != t1 {
				yc += (yref[k] - yref[k-1]) * (tc - t1) / (t2 - t1)
			}
			res = append(res, Crossing{tc, yc})
		}
	}
	return
}

// CrossingsConst finds where y meets the constant value c
func CrossingsConst(x, y []float64, c float64) ([]Crossing, error) {
	yref := make([]float64, len(y))
	for i := range yref {
		yref[i] = c
	}
	return Crossings(x, y, yref)
}

// CrossingTimes returns the abscissae of the crossings
func CrossingTimes(res []Crossing) (X []float64) {
	X = make([]float64, len(res))
	for i, c := range res {
		X[i] = c.X
	}
	return
}
