// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// default values
const (
	DefaultDir       = "postProcessing/qIn_BroodHole"
	DefaultStepBase  = 0.1
	DefaultTol       = 5e-3
	DefaultBeesPower = 4.8
	DefaultNpts      = 300
)

// Input holds the parameters of all commands. Values can be given in a JSON file; command
// line flags take precedence
type Input struct {
	Backend   string  `json:"backend"`   // renderer: "chart", "gonum" or "mpl"
	Log       string  `json:"log"`       // solver log with Courant numbers
	Dir       string  `json:"dir"`       // postProcessing directory with time subdirectories
	File      string  `json:"file"`      // explicit surfaceFieldValue file; overrides Dir
	Out       string  `json:"out"`       // output figure
	Out1      string  `json:"out1"`      // first output figure of 'bees'
	Out2      string  `json:"out2"`      // second output figure of 'bees'
	StepBase  float64 `json:"stepbase"`  // interval of full time steps; ≤ 0 keeps all samples
	Tol       float64 `json:"tol"`       // tolerance to match full time steps
	BeesPower float64 `json:"beespower"` // heat generated by the bees [W]
	Npts      int     `json:"npts"`      // number of points of resampled curves
	Dpi       int     `json:"dpi"`       // resolution; 0 means the default of each command
}

// NewInput returns an input with default values
func NewInput() *Input {
	return &Input{
		Backend:   "chart",
		Dir:       DefaultDir,
		StepBase:  DefaultStepBase,
		Tol:       DefaultTol,
		BeesPower: DefaultBeesPower,
		Npts:      DefaultNpts,
	}
}

// ReadInput reads a JSON file on top of the default values
func ReadInput(fn string) (o *Input, err error) {
	o = NewInput()
	b, err := readFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read input file %q:\n%v", fn, err)
	}
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse input file %q:\n%v", fn, err)
	}
	o.PostProcess()
	return
}

// readFile reads fn and turns the panic of io.ReadFile into an error
func readFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%v", r)
		}
	}()
	b = io.ReadFile(fn)
	return
}

// PostProcess fixes values that cannot be used
func (o *Input) PostProcess() {
	if o.Backend == "" {
		o.Backend = "chart"
	}
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	if o.Tol < 0 {
		o.Tol = DefaultTol
	}
	if o.Npts < 2 {
		o.Npts = DefaultNpts
	}
	if o.Dpi < 0 {
		o.Dpi = 0
	}
}

func (o Input) String() (l string) {
	l = io.ArgsTable("INPUT ARGUMENTS",
		"renderer", "backend", o.Backend,
		"solver log", "log", o.Log,
		"postProcessing directory", "dir", o.Dir,
		"surfaceFieldValue file", "file", o.File,
		"output figure", "out", o.Out,
		"first output figure", "out1", o.Out1,
		"second output figure", "out2", o.Out2,
		"interval of full time steps", "stepBase", o.StepBase,
		"tolerance for full time steps", "tol", o.Tol,
		"heat generated by the bees [W]", "beesPower", o.BeesPower,
		"number of resampled points", "npts", o.Npts,
		"resolution (0=default)", "dpi", o.Dpi,
	)
	return
}
