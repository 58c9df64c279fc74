// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/mauriziocere/HiveCHT/ana"
	"github.com/mauriziocere/HiveCHT/inp"
	"github.com/mauriziocere/HiveCHT/out"
	"github.com/mauriziocere/HiveCHT/post"
	"github.com/spf13/cobra"
)

// command line state
var (
	opt     = inp.NewInput() // values given by flags
	inputFn string           // JSON file with input values
	quiet   bool             // do not print messages
)

var rootCmd = &cobra.Command{
	Use:   "hivecht",
	Short: "Post-processing of conjugate heat transfer runs of a beehive",
	Long: `Extracts time series from solver logs and surfaceFieldValue files,
filters full time steps, integrates heat rates and compares the heat lost by
the brood with the heat generated by the bees.

Values can also be given in a JSON file (--input); flags take precedence:
{
  "backend"  : "gonum",
  "dir"      : "postProcessing/qIn_BroodHole",
  "stepbase" : 0.1,
  "tol"      : 0.005,
  "beespower": 4.8
}`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		io.Verbose = !quiet
		io.PfWhite("\nHiveCHT -- beehive heat transfer post-processing\n")
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&opt.Backend, "backend", opt.Backend, io.Sf("renderer: %v", out.Backends))
	f.IntVar(&opt.Dpi, "dpi", 0, "resolution of figures; 0 uses the default of each command")
	f.StringVar(&inputFn, "input", "", "JSON file with input values")
	f.BoolVarP(&quiet, "quiet", "q", false, "do not print messages")
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			fatal(err)
			os.Exit(1)
		}
	}()

	if cmd, err := rootCmd.ExecuteC(); err != nil {
		name := ""
		if cmd != nil {
			name = cmd.Name()
		}
		fatal(describe(name, err))
		os.Exit(1)
	}
}

// fatal prints an error message even when --quiet is given
func fatal(msg interface{}) {
	io.Verbose = true
	io.PfRed("\nERROR: %v\n", msg)
}

// run returns the action of a command calling a post-processing function
func run(fcn func(*inp.Input, out.Renderer) (*post.Result, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		in, err := loadInput(cmd)
		if err != nil {
			return err
		}
		r, err := out.NewRenderer(in.Backend)
		if err != nil {
			return err
		}
		io.Pf("\n%v\n", in)
		res, err := fcn(in, r)
		if err != nil {
			return err
		}
		io.Pf("%v", res)
		for _, fn := range res.Files {
			io.Pfgreen("saved %s\n", fn)
		}
		return nil
	}
}

// loadInput returns the flag values, or the values of the JSON file overridden by the
// flags given on the command line
func loadInput(cmd *cobra.Command) (in *inp.Input, err error) {
	if inputFn == "" {
		in = opt
		in.PostProcess()
		return
	}
	in, err = inp.ReadInput(inputFn)
	if err != nil {
		return
	}
	overrides := []struct {
		flag string
		set  func()
	}{
		{"backend", func() { in.Backend = opt.Backend }},
		{"dpi", func() { in.Dpi = opt.Dpi }},
		{"log", func() { in.Log = opt.Log }},
		{"dir", func() { in.Dir = opt.Dir }},
		{"file", func() { in.File = opt.File }},
		{"out", func() { in.Out = opt.Out }},
		{"out1", func() { in.Out1 = opt.Out1 }},
		{"out2", func() { in.Out2 = opt.Out2 }},
		{"stepBase", func() { in.StepBase = opt.StepBase }},
		{"tol", func() { in.Tol = opt.Tol }},
		{"beesPower", func() { in.BeesPower = opt.BeesPower }},
		{"npts", func() { in.Npts = opt.Npts }},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			o.set()
		}
	}
	in.PostProcess()
	return
}

// describe returns the message of a fatal error of command cmd
func describe(cmd string, err error) string {
	switch {
	case cmd == "courant" && errors.Is(err, inp.ErrMissingInput):
		return io.Sf("solver log not found. Pass the log of the run with --log\n%v", err)
	case errors.Is(err, ana.ErrNoFullSteps):
		return io.Sf("no full time step found. Increase --tol or check --stepBase\n%v", err)
	case errors.Is(err, inp.ErrNoData):
		return io.Sf("no readable data in the selected file\n%v", err)
	case errors.Is(err, inp.ErrMissingInput):
		return io.Sf("input not found. Check that %s/<time>/%s exists or pass --file\n%v", inp.DefaultDir, inp.DatNames[0], err)
	}
	return err.Error()
}
