// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32/minmax"
)

// rangeAcc accumulates the range of graph points during one scan.
type rangeAcc struct {
	X, Y minmax.F64

	// first is true until the first sample has been seen.
	first bool

	logX, logY bool

	timeDisplay bool
	timeFormat  string
}

// fit extends the range with all points of the graph.
func (ra *rangeAcc) fit(gr *Graph) {
	n := gr.NPoints()
	for i := 0; i < n; i++ {
		x, y := gr.X[i], gr.Y[i]
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		if ra.first {
			ra.X.Set(x, x)
			ra.Y.Set(y, y)
			ra.first = false
		}
		ra.X.FitValInRange(x)
		ra.Y.FitValInRange(y)
	}
}

// ScanRange computes the frame needed to show all the graphs of mg.
// If frame is non-nil it is updated in place and returned; in [Mode3D]
// a frame with category labels is discarded and a new one made, as the
// labels are rebuilt from the graphs on each scan. If view is non-nil,
// its log flags apply and its current bounds are included in the range.
// The explicit mg.Minimum and mg.Maximum bounds set the frame zoom
// bounds, but never shrink the value axis below the range of the data.
func ScanRange(mg *MultiGraph, frame *Frame, view *View, mode Mode) *Frame {
	ra := rangeAcc{first: true}
	if view != nil {
		ra.logX, ra.logY = view.LogX, view.LogY
		ra.X.Set(view.UxMin, view.UxMax)
		ra.Y.Set(view.UyMin, view.UyMax)
		ra.first = false
	}

	if mode == Mode3D && frame != nil && frame.X.HasLabels() {
		frame = nil
	}

	if frame == nil && len(mg.Graphs) > 0 {
		if gf := mg.Graphs[0].Frame; gf != nil && gf.X.TimeDisplay {
			ra.timeDisplay = true
			ra.timeFormat = gf.X.TimeFormat
		}
	}

	for _, gr := range mg.Graphs {
		if gr == nil || gr.NPoints() == 0 {
			continue
		}
		ra.fit(gr)
	}

	if ra.X.Min == ra.X.Max {
		ra.X.Max += 1
	}
	if ra.Y.Min == ra.Y.Max {
		ra.Y.Max += 1
	}
	dx := 0.05 * ra.X.Range()
	dy := 0.05 * ra.Y.Range()
	uxmin := ra.X.Min - dx
	uxmax := ra.X.Max + dx

	var minimum, maximum float64
	if ra.logY {
		if ra.Y.Min <= 0 {
			ra.Y.Min = 0.001 * ra.Y.Max
		}
		decades := math.Log10(ra.Y.Max / ra.Y.Min)
		minimum = ra.Y.Min / (1 + 0.5*decades)
		maximum = ra.Y.Max * (1 + 0.2*decades)
	} else {
		minimum = ra.Y.Min - dy
		maximum = ra.Y.Max + dy
	}
	if minimum < 0 && ra.Y.Min >= 0 {
		minimum = 0
	}
	if maximum > 0 && ra.Y.Max <= 0 {
		maximum = 0
	}

	globMinimum, globMaximum := minimum, maximum

	if uxmin < 0 && ra.X.Min >= 0 {
		uxmin = 0
		if ra.logX {
			uxmin = 0.9 * ra.X.Min
		}
	}
	if uxmax > 0 && ra.X.Max <= 0 {
		uxmax = 0
		if ra.logX {
			uxmax = 1.1 * ra.X.Max
		}
	}

	if IsZoom(mg.Minimum) {
		minimum = mg.Minimum
		ra.Y.Min = minimum
	}
	if IsZoom(mg.Maximum) {
		maximum = mg.Maximum
		ra.Y.Max = maximum
	}

	if ra.logY {
		if minimum < 0 && ra.Y.Min >= 0 {
			minimum = 0.9 * ra.Y.Min
		}
		if maximum > 0 && ra.Y.Max <= 0 {
			maximum = 1.1 * ra.Y.Max
		}
		if minimum <= 0 {
			minimum = 0.001 * maximum
		}
	} else if minimum > 0 && minimum < 0.05*maximum {
		minimum = 0
	}
	if uxmin <= 0 && ra.logX {
		if uxmax > 1000 {
			uxmin = 1
		} else {
			uxmin = 0.001 * uxmax
		}
	}

	if frame == nil {
		frame = newScanFrame(mg, mode)
		ax := frame.PointAxis()
		ax.Min, ax.Max = uxmin, uxmax
		ax.TimeDisplay = ra.timeDisplay
		if ra.timeDisplay {
			ax.TimeFormat = ra.timeFormat
		}
	}

	vax := frame.ValueAxis()
	if mode == Mode3D {
		vax = &frame.Z
	}
	vax.Min = math.Min(minimum, globMinimum)
	vax.Max = math.Max(maximum, globMaximum)
	frame.Minimum = minimum
	frame.Maximum = maximum
	return frame
}

// newScanFrame returns a new frame for the graphs of mg, with the
// category labels of the graphs in [Mode3D].
func newScanFrame(mg *MultiGraph, mode Mode) *Frame {
	if mode != Mode3D {
		fr := NewFrame(Frame1D)
		fr.SetTitles(mg.Title)
		return fr
	}
	fr := NewFrame(Frame2D)
	n := len(mg.Graphs)
	fr.X.Min = 0
	fr.X.Max = float64(n)
	fr.X.NBins = n
	fr.X.Labels = make([]Label, n)
	for i, gr := range mg.Graphs {
		lb := &fr.X.Labels[i]
		if gr != nil {
			lb.Text = gr.Title
		}
		if lb.Text == "" {
			lb.Text = fmt.Sprintf("gr%d", i)
		}
		// graphs are drawn in reverse order
		lb.UniqueID = n - i
	}
	fr.SetTitles(mg.Title)
	return fr
}
