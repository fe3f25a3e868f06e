// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotio

import (
	"fmt"

	"cogentcore.org/mgraph/plot"
)

// Document is the file representation of a [plot.MultiGraph].
type Document struct {
	Name string `json:"name" toml:"name" yaml:"name"`

	// Title can include the axis titles as "main;x;y".
	Title string `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`

	// Option is the draw option of the multigraph.
	Option string `json:"option,omitempty" toml:"option,omitempty" yaml:"option,omitempty"`

	// Minimum and Maximum are the optional value axis bounds.
	Minimum *float64 `json:"minimum,omitempty" toml:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty" toml:"maximum,omitempty" yaml:"maximum,omitempty"`

	// Frame is an optional user-supplied frame.
	Frame *Frame `json:"frame,omitempty" toml:"frame,omitempty" yaml:"frame,omitempty"`

	Graphs    []Graph `json:"graphs" toml:"graphs" yaml:"graphs"`
	Functions []Func  `json:"functions,omitempty" toml:"functions,omitempty" yaml:"functions,omitempty"`
}

// Frame is the file representation of a [plot.Frame].
type Frame struct {
	Title  string  `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	XMin   float64 `json:"x_min" toml:"x_min" yaml:"x_min"`
	XMax   float64 `json:"x_max" toml:"x_max" yaml:"x_max"`
	YMin   float64 `json:"y_min" toml:"y_min" yaml:"y_min"`
	YMax   float64 `json:"y_max" toml:"y_max" yaml:"y_max"`
	XTitle string  `json:"x_title,omitempty" toml:"x_title,omitempty" yaml:"x_title,omitempty"`
	YTitle string  `json:"y_title,omitempty" toml:"y_title,omitempty" yaml:"y_title,omitempty"`
}

// Graph is the file representation of a [plot.Graph].
type Graph struct {
	Name  string `json:"name" toml:"name" yaml:"name"`
	Title string `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`

	// Option is the draw option of this graph within the multigraph.
	Option string `json:"option,omitempty" toml:"option,omitempty" yaml:"option,omitempty"`

	X []float64 `json:"x" toml:"x" yaml:"x,flow"`
	Y []float64 `json:"y" toml:"y" yaml:"y,flow"`

	// Style is the style, defaults if not set.
	Style *plot.Style `json:"style,omitempty" toml:"style,omitempty" yaml:"style,omitempty"`
}

// Func is the file representation of a [plot.Func].
type Func struct {
	Name   string    `json:"name" toml:"name" yaml:"name"`
	Title  string    `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Option string    `json:"option,omitempty" toml:"option,omitempty" yaml:"option,omitempty"`
	Expr   string    `json:"expr" toml:"expr" yaml:"expr"`
	Xmin   float64   `json:"x_min" toml:"x_min" yaml:"x_min"`
	Xmax   float64   `json:"x_max" toml:"x_max" yaml:"x_max"`
	Params []float64 `json:"params,omitempty" toml:"params,omitempty" yaml:"params,omitempty,flow"`
}

// MultiGraph returns the multigraph of the document.
func (doc *Document) MultiGraph() (*plot.MultiGraph, error) {
	mg := plot.NewMultiGraph(doc.Name, doc.Title)
	if doc.Minimum != nil {
		mg.Minimum = *doc.Minimum
	}
	if doc.Maximum != nil {
		mg.Maximum = *doc.Maximum
	}
	if fd := doc.Frame; fd != nil {
		fr := plot.NewFrame(plot.Frame1D)
		fr.Title = fd.Title
		fr.X.Min, fr.X.Max, fr.X.Title = fd.XMin, fd.XMax, fd.XTitle
		fr.Y.Min, fr.Y.Max, fr.Y.Title = fd.YMin, fd.YMax, fd.YTitle
		mg.Frame = fr
	}
	for i, gd := range doc.Graphs {
		if len(gd.X) != len(gd.Y) {
			return nil, fmt.Errorf("plotio: graph %d %q has %d x values and %d y values", i, gd.Name, len(gd.X), len(gd.Y))
		}
		gr := plot.NewGraph(gd.Name, gd.X, gd.Y)
		gr.Title = gd.Title
		if gd.Style != nil {
			gr.Style = *gd.Style
		}
		mg.Add(gr, gd.Option)
	}
	for _, fd := range doc.Functions {
		fn := &plot.Func{Name: fd.Name, Title: fd.Title, Expr: fd.Expr, Xmin: fd.Xmin, Xmax: fd.Xmax, Params: fd.Params, Style: plot.NewStyle()}
		mg.AddFunction(fn, fd.Option)
	}
	return mg, nil
}

// NewDocument returns the document for multigraph mg,
// with given draw option.
func NewDocument(mg *plot.MultiGraph, opt string) *Document {
	doc := &Document{Name: mg.Name, Title: mg.Title, Option: opt}
	if plot.IsZoom(mg.Minimum) {
		v := mg.Minimum
		doc.Minimum = &v
	}
	if plot.IsZoom(mg.Maximum) {
		v := mg.Maximum
		doc.Maximum = &v
	}
	if fr := mg.Frame; fr != nil {
		doc.Frame = &Frame{Title: fr.Title, XMin: fr.X.Min, XMax: fr.X.Max, YMin: fr.Y.Min, YMax: fr.Y.Max, XTitle: fr.X.Title, YTitle: fr.Y.Title}
	}
	for i, gr := range mg.Graphs {
		if gr == nil {
			continue
		}
		st := gr.Style
		doc.Graphs = append(doc.Graphs, Graph{Name: gr.Name, Title: gr.Title, Option: mg.GraphOption(i),
			X: gr.X, Y: gr.Y, Style: &st})
	}
	for j, obj := range mg.Functions {
		fn, ok := obj.(*plot.Func)
		if !ok {
			continue
		}
		doc.Functions = append(doc.Functions, Func{Name: fn.Name, Title: fn.Title, Option: mg.FunctionOption(j),
			Expr: fn.Expr, Xmin: fn.Xmin, Xmax: fn.Xmax, Params: fn.Params})
	}
	return doc
}
