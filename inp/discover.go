// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cpmech/gosl/chk"
)

// DatNames are the file names written by the surfaceFieldValue function object; the
// second one is produced by older versions
var DatNames = []string{"surfaceFieldValue.dat", "surfaceFieldsValue.dat"}

// TimeDir holds a time directory of a postProcessing folder
type TimeDir struct {
	Time float64 // time parsed from the directory name
	Path string  // full path
}

// TimeDirs returns the subdirectories of dir whose names are numbers. Other entries are
// skipped. The result is not sorted
func TimeDirs(dir string) (res []TimeDir, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, chk.Err("%w: directory %q does not exist", ErrMissingInput, dir)
		}
		return nil, chk.Err("cannot read directory %q:\n%v", dir, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		t, e2 := strconv.ParseFloat(e.Name(), 64)
		if e2 != nil || math.IsNaN(t) {
			continue
		}
		res = append(res, TimeDir{t, filepath.Join(dir, e.Name())})
	}
	return
}

// FindLatestDat returns the surfaceFieldValue file inside the latest time directory of
// baseDir; e.g. postProcessing/qIn_BroodHole/12.5/surfaceFieldValue.dat
func FindLatestDat(baseDir string) (fn string, err error) {
	dirs, err := TimeDirs(baseDir)
	if err != nil {
		return
	}
	if len(dirs) == 0 {
		return "", chk.Err("%w: there is no time directory in %q", ErrMissingInput, baseDir)
	}
	latest := dirs[0]
	for _, d := range dirs[1:] {
		if d.Time > latest.Time {
			latest = d
		}
	}
	for _, name := range DatNames {
		fn = filepath.Join(latest.Path, name)
		if info, e := os.Stat(fn); e == nil && !info.IsDir() {
			return fn, nil
		}
	}
	return "", chk.Err("%w: neither %s nor %s found in %q", ErrMissingInput, DatNames[0], DatNames[1], latest.Path)
}

// ResolveDat selects the input table. An explicit file takes precedence over the
// discovery in dir
func ResolveDat(file, dir string) (fn string, err error) {
	if file == "" {
		return FindLatestDat(dir)
	}
	info, err := os.Stat(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", chk.Err("%w: file %q does not exist", ErrMissingInput, file)
		}
		return "", chk.Err("cannot stat %q:\n%v", file, err)
	}
	if info.IsDir() {
		return "", chk.Err("%w: %q is a directory", ErrMissingInput, file)
	}
	return file, nil
}
