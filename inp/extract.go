// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// number matches the characters that may form a float in solver logs
const number = `([0-9eE+\-\.]+)`

// Patterns holds the regular expressions recognising time and Courant lines of a solver log
type Patterns struct {
	Time    *regexp.Regexp // sets the current time; one group
	Courant *regexp.Regexp // mean and max Courant numbers; two groups
}

// NewCourantPatterns returns the patterns for logs written by pimpleFoam-like solvers:
//
//   Time = 0.5
//   Courant Number mean: 0.01 max: 0.2
//
func NewCourantPatterns() *Patterns {
	return &Patterns{
		Time:    regexp.MustCompile(`^\s*Time\s*=\s*` + number + `\s*$`),
		Courant: regexp.MustCompile(`^\s*Courant Number mean:\s*` + number + `\s*max:\s*` + number + `\s*$`),
	}
}

// Courant holds the Courant numbers extracted from a solver log
type Courant struct {
	T    []float64 // time of each record
	Mean []float64 // mean Courant number
	Max  []float64 // max Courant number
}

// Len returns the number of records
func (o *Courant) Len() int { return len(o.T) }

// MeanSeries returns the (t, mean) series
func (o *Courant) MeanSeries() Series {
	s, _ := NewSeries(o.T, o.Mean)
	return s
}

// MaxSeries returns the (t, max) series
func (o *Courant) MaxSeries() Series {
	s, _ := NewSeries(o.T, o.Max)
	return s
}

// ReadCourant extracts Courant numbers from a solver log.
// Each "Courant Number" line is assigned to the most recent "Time =" line; records seen
// before any time line are dropped. All other lines are ignored
func ReadCourant(r io.Reader, pat *Patterns) (o *Courant, err error) {
	if pat == nil {
		pat = NewCourantPatterns()
	}
	o = new(Courant)
	var tnow float64
	var hasTime bool
	err = eachLine(r, func(line string) {
		if m := pat.Time.FindStringSubmatch(line); m != nil {
			t, e := strconv.ParseFloat(m[1], 64)
			if e != nil {
				return
			}
			tnow, hasTime = t, true
			return
		}
		m := pat.Courant.FindStringSubmatch(line)
		if m == nil || !hasTime {
			return
		}
		cmean, e1 := strconv.ParseFloat(m[1], 64)
		cmax, e2 := strconv.ParseFloat(m[2], 64)
		if e1 != nil || e2 != nil {
			return
		}
		o.T = append(o.T, tnow)
		o.Mean = append(o.Mean, cmean)
		o.Max = append(o.Max, cmax)
	})
	if err != nil {
		return nil, chk.Err("cannot read solver log:\n%v", err)
	}
	return
}

// ReadColumns reads a whitespace separated table whose first two columns are (x, y).
// Empty lines and lines starting with '#' are skipped; so are lines with less than two
// fields or whose first two fields are not numbers. Extra columns are ignored
func ReadColumns(r io.Reader) (o Series, err error) {
	err = eachLine(r, func(line string) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			return
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			return
		}
		o = append(o, Sample{x, y})
	})
	if err != nil {
		return nil, chk.Err("cannot read table:\n%v", err)
	}
	return
}

// eachLine calls fcn with every line of r, without the line break. Lines have no
// length limit; a last line without line break is also given
func eachLine(r io.Reader, fcn func(line string)) error {
	rd := bufio.NewReader(r)
	for {
		line, err := rd.ReadString('\n')
		if len(line) > 0 {
			fcn(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// ReadCourantFile reads a solver log from file. It returns ErrMissingInput if the file
// does not exist and ErrNoData if no record was found
func ReadCourantFile(fn string, pat *Patterns) (o *Courant, err error) {
	f, err := Open(fn)
	if err != nil {
		return
	}
	defer f.Close()
	o, err = ReadCourant(f, pat)
	if err != nil {
		return nil, chk.Err("%s: %v", fn, err)
	}
	if o.Len() == 0 {
		return nil, chk.Err("%w: no 'Courant Number' line after a 'Time =' line in %q", ErrNoData, fn)
	}
	return
}

// ReadColumnsFile reads a surfaceFieldValue-like table from file. It returns
// ErrMissingInput if the file does not exist and ErrNoData if no row could be parsed
func ReadColumnsFile(fn string) (o Series, err error) {
	f, err := Open(fn)
	if err != nil {
		return
	}
	defer f.Close()
	o, err = ReadColumns(f)
	if err != nil {
		return nil, chk.Err("%s: %v", fn, err)
	}
	if len(o) == 0 {
		return nil, chk.Err("%w: no numeric rows in %q", ErrNoData, fn)
	}
	return
}
