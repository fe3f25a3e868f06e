// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"slices"
)

// equalFloat returns true if a and b are equal, or both NaN.
func equalFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// Equal returns true if vs and o have the same values, NaN being
// equal to NaN. Nil and empty are equal.
func (vs Values) Equal(o Values) bool {
	return slices.EqualFunc(vs, o, equalFloat)
}

// Equal returns true if the axes are the same.
func (ax *Axis) Equal(o *Axis) bool {
	return equalFloat(ax.Min, o.Min) && equalFloat(ax.Max, o.Max) &&
		ax.NBins == o.NBins && ax.TimeDisplay == o.TimeDisplay &&
		ax.TimeFormat == o.TimeFormat && ax.Title == o.Title &&
		slices.Equal(ax.Labels, o.Labels)
}

// Equal returns true if the frames are the same.
func (fr *Frame) Equal(o *Frame) bool {
	if fr == nil || o == nil {
		return fr == o
	}
	return fr.Kind == o.Kind && fr.Title == o.Title &&
		equalFloat(fr.Minimum, o.Minimum) && equalFloat(fr.Maximum, o.Maximum) &&
		fr.X.Equal(&o.X) && fr.Y.Equal(&o.Y) && fr.Z.Equal(&o.Z)
}

// Equal returns true if the graphs have the same points, titles,
// style and frame.
func (gr *Graph) Equal(o *Graph) bool {
	if gr == nil || o == nil {
		return gr == o
	}
	return gr.Name == o.Name && gr.Title == o.Title && gr.Style == o.Style &&
		gr.X.Equal(o.X) && gr.Y.Equal(o.Y) && gr.Frame.Equal(o.Frame)
}

// Equal returns true if the functions are the same.
func (fn *Func) Equal(o *Func) bool {
	if fn == nil || o == nil {
		return fn == o
	}
	return fn.Name == o.Name && fn.Title == o.Title && fn.Expr == o.Expr &&
		equalFloat(fn.Xmin, o.Xmin) && equalFloat(fn.Xmax, o.Xmax) &&
		slices.EqualFunc(fn.Params, o.Params, equalFloat) && fn.Style == o.Style
}
