// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Renderer saves figures to files
type Renderer interface {
	Render(fig *Figure, fn string) error
}

// Backends lists the names accepted by NewRenderer
var Backends = []string{"chart", "gonum", "mpl", "none"}

// NewRenderer returns a renderer by name:
//   chart -- PNG with go-chart
//   gonum -- PNG, JPEG, SVG or PDF with gonum/plot
//   mpl   -- PNG or EPS with matplotlib; requires python3
//   none  -- keeps figures in memory and writes nothing
func NewRenderer(name string) (Renderer, error) {
	switch strings.ToLower(name) {
	case "chart", "":
		return new(ChartRenderer), nil
	case "gonum":
		return new(GonumRenderer), nil
	case "mpl":
		return new(MplRenderer), nil
	case "none":
		return new(Memory), nil
	}
	return nil, chk.Err("renderer %q is not available. options: %v", name, Backends)
}

// Memory keeps the rendered figures; it is used for dry runs and tests
type Memory struct {
	Figures []*Figure // rendered figures
	Files   []string  // file names given to Render
}

// Render checks and stores the figure
func (o *Memory) Render(fig *Figure, fn string) error {
	if err := fig.Check(); err != nil {
		return err
	}
	o.Figures = append(o.Figures, fig)
	o.Files = append(o.Files, fn)
	return nil
}

// RenderAll saves figs[i] to files[i]. Every figure is first saved to a temporary file
// next to its target; the targets are replaced only after all figures were saved, so a
// failure leaves no new file behind
func RenderAll(r Renderer, figs []*Figure, files []string) (err error) {
	if len(figs) != len(files) {
		return chk.Err("number of figures and files must be equal. %d != %d", len(figs), len(files))
	}
	for _, fig := range figs {
		if err = fig.Check(); err != nil {
			return
		}
	}
	if mem, ok := r.(*Memory); ok {
		for i, fig := range figs {
			mem.Render(fig, files[i])
		}
		return nil
	}
	var tmps []string
	defer func() {
		if err != nil {
			for _, tmp := range tmps {
				os.Remove(tmp)
			}
		}
	}()
	for i, fig := range figs {
		var tmp string
		if tmp, err = tempName(files[i]); err != nil {
			return
		}
		tmps = append(tmps, tmp)
		if err = r.Render(fig, tmp); err != nil {
			return chk.Err("cannot save %q:\n%v", files[i], err)
		}
		if err = os.Chmod(tmp, 0644); err != nil {
			return chk.Err("cannot set permissions of %q:\n%v", tmp, err)
		}
	}
	for i, tmp := range tmps {
		if err = os.Rename(tmp, files[i]); err != nil {
			return chk.Err("cannot rename %q:\n%v", tmp, err)
		}
	}
	return nil
}

// tempName creates an empty temporary file in the directory of fn, with the extension
// of fn, and returns its name
func tempName(fn string) (string, error) {
	dir := filepath.Dir(fn)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", chk.Err("cannot create directory %q:\n%v", dir, err)
	}
	e := filepath.Ext(fn)
	f, err := os.CreateTemp(dir, "."+strings.TrimSuffix(filepath.Base(fn), e)+".*"+e)
	if err != nil {
		return "", chk.Err("cannot create temporary file in %q:\n%v", dir, err)
	}
	f.Close()
	return f.Name(), nil
}

// saveAtomic writes a file through a temporary file in the same directory, so that an
// incomplete image never replaces fn
func saveAtomic(fn string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(fn)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return chk.Err("cannot create directory %q:\n%v", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fn)+".*")
	if err != nil {
		return chk.Err("cannot create temporary file in %q:\n%v", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err = write(tmp); err != nil {
		return chk.Err("cannot write %q:\n%v", fn, err)
	}
	if err = tmp.Close(); err != nil {
		return chk.Err("cannot close %q:\n%v", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return chk.Err("cannot set permissions of %q:\n%v", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), fn); err != nil {
		return chk.Err("cannot rename %q:\n%v", tmp.Name(), err)
	}
	return nil
}

// ext returns the lower case extension of fn
func ext(fn string) string {
	return strings.ToLower(filepath.Ext(fn))
}
