// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements numerical transforms of time series: full-step filtering,
// cumulative integration, crossings and interpolation
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/mauriziocere/HiveCHT/inp"
)

// ErrNoFullSteps is returned when no sample falls on a full time step
var ErrNoFullSteps = chk.Err("no full time step found")

// IsMultipleOf tells whether t is within tol of an integer multiple of base.
// Any t is accepted if base ≤ 0
func IsMultipleOf(t, base, tol float64) bool {
	if base <= 0 {
		return true
	}
	k := math.Round(t / base)
	return math.Abs(t-k*base) <= tol
}

// FilterFullSteps keeps the samples written at full time steps, i.e. multiples of base
// within tol, and discards intermediate writes. The result is sorted by time.
// An empty input gives inp.ErrNoData and an empty result gives ErrNoFullSteps
func FilterFullSteps(s inp.Series, base, tol float64) (res inp.Series, err error) {
	if len(s) == 0 {
		return nil, inp.ErrNoData
	}
	for _, p := range s {
		if IsMultipleOf(p.X, base, tol) {
			res = append(res, p)
		}
	}
	if len(res) == 0 {
		return nil, chk.Err("%w: stepBase=%g, tol=%g, %d samples in [%g, %g]", ErrNoFullSteps, base, tol, len(s), minX(s), maxX(s))
	}
	return res.Sorted(), nil
}

func minX(s inp.Series) (m float64) {
	m = math.Inf(1)
	for _, p := range s {
		m = math.Min(m, p.X)
	}
	return
}

func maxX(s inp.Series) (m float64) {
	m = math.Inf(-1)
	for _, p := range s {
		m = math.Max(m, p.X)
	}
	return
}
