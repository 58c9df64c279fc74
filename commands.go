// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/mauriziocere/HiveCHT/inp"
	"github.com/mauriziocere/HiveCHT/post"
	"github.com/spf13/cobra"
)

var courantCmd = &cobra.Command{
	Use:   "courant",
	Short: "Courant numbers vs time from a solver log",
	Long: `Reads 'Time = t' and 'Courant Number mean: a max: b' lines of a solver log
and plots the mean and maximum Courant numbers against time.

Logs ending with .gz or .zst are decompressed on the fly.`,
	Args: cobra.NoArgs,
	RunE: run(post.Courant),
}

var heatfluxCmd = &cobra.Command{
	Use:   "heatflux",
	Short: "Heat rate and cumulated heat lost by the brood",
	Long: `Reads the surfaceFieldValue file of the latest time directory (or --file),
keeps the samples at full time steps and plots the heat rate together with the
heat cumulated by the trapezoidal rule.`,
	Args: cobra.NoArgs,
	RunE: run(post.HeatFlux),
}

var beesCmd = &cobra.Command{
	Use:   "bees",
	Short: "Heat lost by the brood vs heat generated by the bees",
	Long: `Compares the heat lost by the brood with the heat generated by the bees at
constant power (--beesPower), counted from the first full time step. The times
where both energies are equal are printed and marked in the second figure.`,
	Args: cobra.NoArgs,
	RunE: run(post.BeesVsBrood),
}

var hfviewsCmd = &cobra.Command{
	Use:   "hfviews",
	Short: "Heat rate vs time (semilogy) and vs 1/sqrt(t)",
	Long: `Reads all samples of the surfaceFieldValue file of time directory 0 (or
--file) and plots the heat rate against time with a logarithmic axis and against
1/sqrt(t), together with a linear resampling of the data.`,
	Args: cobra.NoArgs,
	RunE: run(post.HfViews),
}

func init() {
	c := courantCmd.Flags()
	c.StringVar(&opt.Log, "log", "", "solver log")
	c.StringVar(&opt.Out, "out", "", "output figure; default "+post.CourantOut)

	h := heatfluxCmd.Flags()
	h.StringVar(&opt.Dir, "dir", inp.DefaultDir, "postProcessing directory with time subdirectories")
	h.StringVar(&opt.File, "file", "", "explicit surfaceFieldValue(s).dat file; overrides --dir")
	h.StringVar(&opt.Out, "out", "", "output figure; default "+post.HeatOut)
	h.Float64Var(&opt.StepBase, "stepBase", inp.DefaultStepBase, "interval of full time steps; 0 keeps all samples")
	h.Float64Var(&opt.Tol, "tol", inp.DefaultTol, "tolerance to match full time steps")

	b := beesCmd.Flags()
	b.StringVar(&opt.Dir, "dir", inp.DefaultDir, "postProcessing directory with time subdirectories")
	b.StringVar(&opt.File, "file", "", "explicit surfaceFieldValue(s).dat file; overrides --dir")
	b.StringVar(&opt.Out1, "out1", post.BeesOut1, "figure with the bees power")
	b.StringVar(&opt.Out2, "out2", post.BeesOut2, "figure with both energies")
	b.Float64Var(&opt.StepBase, "stepBase", inp.DefaultStepBase, "interval of full time steps; 0 keeps all samples")
	b.Float64Var(&opt.Tol, "tol", inp.DefaultTol, "tolerance to match full time steps")
	b.Float64Var(&opt.BeesPower, "beesPower", inp.DefaultBeesPower, "heat rate generated by the bees [W]")

	v := hfviewsCmd.Flags()
	v.StringVar(&opt.Dir, "dir", inp.DefaultDir, "postProcessing directory; the file is read from <dir>/0")
	v.StringVar(&opt.File, "file", "", "explicit surfaceFieldValue.dat file")
	v.StringVar(&opt.Out, "out", "", "output figure; default "+post.ViewsOut)
	v.IntVar(&opt.Npts, "npts", inp.DefaultNpts, "number of points of the resampled curves")

	rootCmd.AddCommand(courantCmd, heatfluxCmd, beesCmd, hfviewsCmd)
}
