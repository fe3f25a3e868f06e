// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"strconv"
	"strings"
)

// FrameKind is the kind of coordinate frame.
type FrameKind int32

const (
	// Frame1D has numeric x and y axes, y being the value axis.
	Frame1D FrameKind = iota

	// Frame2D has a category x axis, the graph x values along y,
	// and z as the value axis.
	Frame2D
)

func (fk FrameKind) String() string {
	if fk == Frame2D {
		return "Frame2D"
	}
	return "Frame1D"
}

// Mode selects how a multigraph is laid out in its frame.
type Mode int32

const (
	// Mode2D overlays all graphs in one x, y frame.
	Mode2D Mode = iota

	// Mode3D stacks the graphs along a category axis,
	// one category per graph.
	Mode3D
)

// Label is a category label of an [Axis].
type Label struct {
	Text string

	// UniqueID identifies the label among the labels of the axis.
	UniqueID int
}

// Axis describes one axis of a [Frame].
type Axis struct {
	Min, Max float64

	// NBins is the number of bins, which for a category axis
	// is the number of labels.
	NBins int

	// TimeDisplay shows the axis values as times using TimeFormat.
	TimeDisplay bool

	TimeFormat string

	// Labels are the category labels, only used in [Frame2D] frames.
	Labels []Label

	Title string
}

// HasLabels returns true if the axis is a category axis.
func (ax *Axis) HasLabels() bool {
	return len(ax.Labels) > 0
}

// Tick is a tick mark on an axis.
type Tick struct {
	Value float64

	// Label is the text of the tick; minor ticks have no label.
	Label string
}

// IsMinor returns true if this is a minor tick mark.
func (tk Tick) IsMinor() bool {
	return tk.Label == ""
}

// Ticks returns about n ticks for the axis range. Category axes
// get one tick per label at the bin centers, log axes get one
// tick per decade, and linear axes get "nice" ticks.
func (ax *Axis) Ticks(n int, log bool) []Tick {
	switch {
	case !finite(ax.Min) || !finite(ax.Max):
		return nil
	case ax.HasLabels():
		return ax.labelTicks()
	case log && ax.Min > 0 && ax.Max > ax.Min:
		return logTicks(ax.Min, ax.Max)
	case ax.Max > ax.Min:
		return linearTicks(ax.Min, ax.Max, n)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (ax *Axis) labelTicks() []Tick {
	nb := ax.NBins
	if nb <= 0 {
		nb = len(ax.Labels)
	}
	w := (ax.Max - ax.Min) / float64(nb)
	ts := make([]Tick, 0, len(ax.Labels))
	for i, lb := range ax.Labels {
		ts = append(ts, Tick{Value: ax.Min + (float64(i)+0.5)*w, Label: lb.Text})
	}
	return ts
}

func linearTicks(mn, mx float64, n int) []Tick {
	if n < 2 {
		n = 2
	}
	sp := niceTicks(mn, mx, n)
	vals, delta, q, mag := sp.values(), sp.delta, sp.q, sp.mag
	fc := byte('f')
	off := 0
	if mag < -1 || 6 < mag {
		off = 1
		fc = 'g'
	}
	if math.Trunc(q) != q {
		off += 2
	}
	prec := min(6, max(off, -mag))
	ts := make([]Tick, 0, 2*len(vals))
	for i, v := range vals {
		ts = append(ts, Tick{Value: v, Label: strconv.FormatFloat(v, fc, prec, 64)})
		if i < len(vals)-1 {
			ts = append(ts, Tick{Value: v + 0.5*delta})
		}
	}
	return ts
}

func logTicks(mn, mx float64) []Tick {
	var ts []Tick
	for e := math.Floor(math.Log10(mn)); e <= math.Ceil(math.Log10(mx)); e++ {
		v := math.Pow10(int(e))
		if v >= mn && v <= mx {
			ts = append(ts, Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
		}
		for k := 2.0; k < 10; k++ {
			m := k * v
			if m >= mn && m <= mx {
				ts = append(ts, Tick{Value: m})
			}
		}
	}
	return ts
}

// Frame is the coordinate frame of a plot: the axes and their
// ranges, without any data.
type Frame struct {
	Kind FrameKind

	Title string

	X, Y, Z Axis

	// Minimum and Maximum are the bounds of the value axis
	// requested for display.
	Minimum, Maximum float64
}

// NewFrame returns a new frame of given kind with no zoom bounds.
func NewFrame(kind FrameKind) *Frame {
	return &Frame{Kind: kind, Minimum: NoZoom, Maximum: NoZoom}
}

func (fr *Frame) TypeName() string   { return FrameType }
func (fr *Frame) ObjectName() string { return "" }

// ValueAxis returns the axis showing the graph y values:
// Y for [Frame1D] and Z for [Frame2D].
func (fr *Frame) ValueAxis() *Axis {
	if fr.Kind == Frame2D {
		return &fr.Z
	}
	return &fr.Y
}

// PointAxis returns the axis showing the graph x values:
// X for [Frame1D] and Y for [Frame2D].
func (fr *Frame) PointAxis() *Axis {
	if fr.Kind == Frame2D {
		return &fr.Y
	}
	return &fr.X
}

// SetTitles sets the frame title from given title, which can also
// carry the titles of the point and value axes as "main;x;y".
func (fr *Frame) SetTitles(title string) {
	fr.Title = title
	if !strings.Contains(title, ";") {
		return
	}
	t := strings.Split(title, ";")
	fr.Title = t[0]
	if t[1] != "" {
		fr.PointAxis().Title = t[1]
	}
	if len(t) > 2 && t[2] != "" {
		fr.ValueAxis().Title = t[2]
	}
}

// View is the state of the view of a pad that affects ranges:
// the log scale flags and the current user coordinate bounds.
type View struct {
	LogX, LogY bool

	UxMin, UxMax float64
	UyMin, UyMax float64
}
