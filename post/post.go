// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package post implements the post-processing commands: each one reads solver output,
// transforms the series and renders the figures
package post

import (
	"bytes"

	"github.com/cpmech/gosl/io"
	"github.com/mauriziocere/HiveCHT/ana"
	"github.com/mauriziocere/HiveCHT/inp"
	"github.com/mauriziocere/HiveCHT/out"
)

// default output files
const (
	CourantOut = "courant_vs_time.png"
	HeatOut    = "heat_vs_time.png"
	BeesOut1   = "beesQdot_vs_BroodHoleEnergy.png"
	BeesOut2   = "beesEnergy_vs_BroodHoleEnergy.png"
	ViewsOut   = "HF_views.png"
)

// Result summarises one command
type Result struct {
	Input     string         // file that was read
	Nsamples  int            // number of samples read
	Nused     int            // number of samples after filtering
	Qtotal    float64        // final cumulated heat [J]
	Crossings []ana.Crossing // crossings of brood and bees energies
	Files     []string       // written figures
}

// String returns a summary of the result
func (o Result) String() string {
	var b bytes.Buffer
	io.Ff(&b, "input     = %s\n", o.Input)
	io.Ff(&b, "samples   = %d (used %d)\n", o.Nsamples, o.Nused)
	if o.Qtotal != 0 {
		io.Ff(&b, "Q(tmax)   = %g J\n", o.Qtotal)
	}
	for _, c := range o.Crossings {
		io.Ff(&b, "crossing  : t = %g s, E = %g J\n", c.X, c.Y)
	}
	return b.String()
}

// readFullSteps reads the surfaceFieldValue file given by in.File or found under in.Dir
// and keeps the samples at full time steps
func readFullSteps(in *inp.Input, res *Result) (s inp.Series, err error) {
	fn, err := inp.ResolveDat(in.File, in.Dir)
	if err != nil {
		return
	}
	raw, err := inp.ReadColumnsFile(fn)
	if err != nil {
		return
	}
	s, err = ana.FilterFullSteps(raw, in.StepBase, in.Tol)
	if err != nil {
		return
	}
	res.Input, res.Nsamples, res.Nused = fn, raw.Len(), s.Len()
	return
}

// render saves all figures or none of them
func render(r out.Renderer, figs []*out.Figure, files []string, res *Result) error {
	if err := out.RenderAll(r, figs, files); err != nil {
		return err
	}
	res.Files = append(res.Files, files...)
	return nil
}

func dpi(in *inp.Input, def int) int {
	if in.Dpi > 0 {
		return in.Dpi
	}
	return def
}

func outName(fn, def string) string {
	if fn == "" {
		return def
	}
	return fn
}
