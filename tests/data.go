// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/io"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// SolverLog generates the text of a transient solver log with one Courant line per time.
// The first Courant line comes before any time line
func SolverLog(T, mean, max []float64) string {
	var b bytes.Buffer
	b.WriteString("/*---------------------------------------------------------------------------*\\\n")
	b.WriteString("Create time\n\nCreate mesh for time = 0\n\nStarting time loop\n\n")
	b.WriteString("Courant Number mean: 0 max: 0\n")
	for i, t := range T {
		io.Ff(&b, "deltaT = 0.001\n")
		io.Ff(&b, "Time = %g\n\n", t)
		io.Ff(&b, "Courant Number mean: %g max: %g\n", mean[i], max[i])
		io.Ff(&b, "PIMPLE: iteration 1\n")
		io.Ff(&b, "DILUPBiCGStab:  Solving for Ux, Initial residual = 0.001, Final residual = 1e-08, No Iterations 2\n")
		io.Ff(&b, "ExecutionTime = %g s  ClockTime = 1 s\n\n", 0.1*float64(i+1))
	}
	b.WriteString("End\n")
	return b.String()
}

// SurfaceDat generates the text of a surfaceFieldValue.dat file
func SurfaceDat(T, qdot []float64) string {
	var b bytes.Buffer
	b.WriteString("# Region type : patch BroodHole\n")
	b.WriteString("# Faces       : 1280\n")
	b.WriteString("# Area        : 4.000000e-03\n")
	b.WriteString("# Time        \tareaIntegrate(wallHeatFlux)\n")
	for i, t := range T {
		io.Ff(&b, "%g\t%g\n", t, qdot[i])
	}
	return b.String()
}

// WriteFile writes content to dir/rel creating the parent directories
func WriteFile(tst *testing.T, dir, rel, content string) (fn string) {
	fn = filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(fn), 0755); err != nil {
		tst.Fatalf("cannot create directory: %v\n", err)
	}
	if err := os.WriteFile(fn, []byte(content), 0644); err != nil {
		tst.Fatalf("cannot write file: %v\n", err)
	}
	return
}

// WriteGzip writes content compressed with gzip to dir/rel
func WriteGzip(tst *testing.T, dir, rel, content string) string {
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	if _, err := w.Write([]byte(content)); err != nil {
		tst.Fatalf("gzip failed: %v\n", err)
	}
	if err := w.Close(); err != nil {
		tst.Fatalf("gzip failed: %v\n", err)
	}
	return WriteFile(tst, dir, rel, b.String())
}

// WriteZstd writes content compressed with zstd to dir/rel
func WriteZstd(tst *testing.T, dir, rel, content string) string {
	var b bytes.Buffer
	w, err := zstd.NewWriter(&b)
	if err != nil {
		tst.Fatalf("zstd failed: %v\n", err)
	}
	if _, err = w.Write([]byte(content)); err != nil {
		tst.Fatalf("zstd failed: %v\n", err)
	}
	if err = w.Close(); err != nil {
		tst.Fatalf("zstd failed: %v\n", err)
	}
	return WriteFile(tst, dir, rel, b.String())
}
