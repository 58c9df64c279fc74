// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements readers for solver logs and surfaceFieldValue files
package inp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// error conditions
var (
	ErrMissingInput = chk.Err("input not found")   // file or directory does not exist, or discovery failed
	ErrNoData       = chk.Err("no data was parsed") // input was read but no sample matched
)

// Sample holds one (x, y) point; e.g. x = time [s] and y = heat flux [W]
type Sample struct {
	X float64 // abscissa
	Y float64 // ordinate
}

// Series is an ordered sequence of samples
type Series []Sample

// NewSeries zips x and y into a series
func NewSeries(x, y []float64) (o Series, err error) {
	if len(x) != len(y) {
		return nil, chk.Err("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	o = make(Series, len(x))
	for i := range x {
		o[i] = Sample{x[i], y[i]}
	}
	return
}

// Len returns the number of samples
func (o Series) Len() int { return len(o) }

// Xs returns a copy of the abscissae
func (o Series) Xs() []float64 {
	x := make([]float64, len(o))
	for i, s := range o {
		x[i] = s.X
	}
	return x
}

// Ys returns a copy of the ordinates
func (o Series) Ys() []float64 {
	y := make([]float64, len(o))
	for i, s := range o {
		y[i] = s.Y
	}
	return y
}

// Sorted returns a copy sorted by x in ascending order. Samples with equal x keep their
// original order
func (o Series) Sorted() Series {
	res := make(Series, len(o))
	copy(res, o)
	sort.SliceStable(res, func(i, j int) bool { return res[i].X < res[j].X })
	return res
}

// IsSorted tells whether x is non-decreasing
func (o Series) IsSorted() bool {
	return sort.SliceIsSorted(o, func(i, j int) bool { return o[i].X < o[j].X })
}
