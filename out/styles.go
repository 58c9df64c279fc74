// Copyright 2026 The HiveCHT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

// GetTexLabel returns the TeX label of a quantity followed by its unit; e.g.
// GetTexLabel("qdot", "[W]") returns "$\dot{Q}\;[W]$"
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "time":
		l += "t"
	case "co":
		l += "\\mathrm{Co}"
	case "qdot":
		l += "\\dot{Q}"
	case "Q":
		l += "Q"
	case "E":
		l += "E"
	case "Qbrood":
		l += "Q_\\mathrm{Brood}"
	case "Qbees":
		l += "Q_\\mathrm{bees}"
	case "qdotbees":
		l += "\\dot{Q}_\\mathrm{bees}"
	case "invsqrt":
		l += "1/\\sqrt{t}"
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}

// untex converts the few TeX commands used in labels to plain text
var untex = strings.NewReplacer(
	"\\dot{Q}", "dQ/dt",
	"\\sqrt", "√",
	"\\mathrm", "",
	"\\cdot", "·",
	"\\;", " ",
	"\\,", " ",
	"\\", "",
	"$", "",
	"{", "",
	"}", "",
)

// Untex returns a label without TeX markup for renderers without TeX support
func Untex(label string) string {
	return untex.Replace(label)
}

// named colours accepted by ParseColor (matplotlib names)
var colors = map[string]color.RGBA{
	"k": {0, 0, 0, 255}, "black": {0, 0, 0, 255},
	"r": {255, 0, 0, 255}, "red": {255, 0, 0, 255},
	"g": {0, 128, 0, 255}, "green": {0, 128, 0, 255},
	"b": {0, 0, 255, 255}, "blue": {0, 0, 255, 255},
	"c": {0, 191, 191, 255}, "cyan": {0, 191, 191, 255},
	"m": {191, 0, 191, 255}, "magenta": {191, 0, 191, 255},
	"y": {191, 191, 0, 255}, "yellow": {191, 191, 0, 255},
	"w": {255, 255, 255, 255}, "white": {255, 255, 255, 255},
	"grey": {128, 128, 128, 255}, "gray": {128, 128, 128, 255},
	"skyblue": {135, 206, 235, 255},
	"orange":  {255, 165, 0, 255},
}

// ParseColor converts a matplotlib colour, e.g. "k", "red" or "#7f7f7f". An empty string
// gives black
func ParseColor(c string) (color.RGBA, error) {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return colors["k"], nil
	}
	if rgba, ok := colors[c]; ok {
		return rgba, nil
	}
	if strings.HasPrefix(c, "#") && len(c) == 7 {
		v, err := strconv.ParseUint(c[1:], 16, 32)
		if err == nil {
			return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
		}
	}
	return color.RGBA{}, chk.Err("cannot parse colour %q", c)
}

// Dashes returns the on-off pattern of a matplotlib line style, in points. A solid line
// has no pattern
func Dashes(ls string) []float64 {
	switch ls {
	case "--":
		return []float64{6, 3}
	case ":":
		return []float64{1, 2}
	case "-.":
		return []float64{6, 2, 1, 2}
	}
	return nil
}

// HasLine tells whether the style draws a line. A marker without line style draws only
// markers, as in matplotlib's plot(x, y, 'o')
func HasLine(a *plt.A) bool {
	if a.Ls == "none" || a.Ls == " " {
		return false
	}
	return a.Ls != "" || a.M == ""
}

// LineWidth returns the line width in points
func LineWidth(a *plt.A) float64 {
	if a.Lw > 0 {
		return float64(a.Lw)
	}
	return 1.5
}

// MarkerSize returns the marker size in points
func MarkerSize(a *plt.A) float64 {
	if a.Ms > 0 {
		return float64(a.Ms)
	}
	return 4
}
