// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strings"
)

// ColorIndex is an index into the color table of a pad.
// Indexes below [NumBaseColors] are the fixed base colors.
type ColorIndex int

const (
	White ColorIndex = iota
	Black
	Red
	Green
	Blue
	Yellow
	Magenta
	Cyan
	DarkGreen
	Purple

	// NumBaseColors is the number of fixed base colors.
	NumBaseColors
)

// Style contains the per-element styling of a graph or function.
type Style struct {

	// FillColor is the color used to fill the area of the element.
	FillColor ColorIndex `json:"fill_color" toml:"fill_color" yaml:"fill_color"`

	// LineColor is the color of lines connecting the points.
	LineColor ColorIndex `json:"line_color" toml:"line_color" yaml:"line_color"`

	// MarkerColor is the color of the point markers.
	MarkerColor ColorIndex `json:"marker_color" toml:"marker_color" yaml:"marker_color"`
}

// NewStyle returns a new Style with defaults applied.
func NewStyle() Style {
	st := Style{}
	st.Defaults()
	return st
}

func (st *Style) Defaults() {
	st.FillColor = White
	st.LineColor = Black
	st.MarkerColor = Black
}

// AutoColor specifies which style fields are assigned
// automatically from the auto-color sequence of a pad.
type AutoColor struct {
	Fill   bool
	Line   bool
	Marker bool
}

// Any returns true if any of the fields is auto-colored.
func (ac AutoColor) Any() bool {
	return ac.Fill || ac.Line || ac.Marker
}

// Apply assigns color c to the flagged fields of st, returning the
// equivalent command string, which can be replayed on the
// element later, for example when saving the drawing.
func (ac AutoColor) Apply(st *Style, c ColorIndex) string {
	var b strings.Builder
	if ac.Fill {
		st.FillColor = c
		fmt.Fprintf(&b, "SetFillColor(%d);;", c)
	}
	if ac.Line {
		st.LineColor = c
		fmt.Fprintf(&b, "SetLineColor(%d);;", c)
	}
	if ac.Marker {
		st.MarkerColor = c
		fmt.Fprintf(&b, "SetMarkerColor(%d);;", c)
	}
	return b.String()
}
