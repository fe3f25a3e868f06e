// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// Type names of the objects in this package, used to
// register and look up drawers.
const (
	GraphType      = "Graph"
	MultiGraphType = "MultiGraph"
	FuncType       = "Func"
	FrameType      = "Frame"
)

// Graph is a set of x, y points drawn as one element of a plot.
type Graph struct {

	// Name of the graph, used to find its painter.
	Name string

	// Title of the graph, which is also the category label
	// of the graph when drawn in a 3D multigraph.
	Title string

	// X values of the points.
	X Values

	// Y values of the points.
	Y Values

	// Style of the graph, which can be set by auto-coloring.
	Style Style

	// Frame is an optional frame carrying the axis metadata
	// of the graph, such as the time display of the x axis.
	Frame *Frame
}

// NewGraph returns a new Graph with a copy of the given points
// and default style. The point count is the shorter of x, y.
func NewGraph(name string, x, y []float64) *Graph {
	n := min(len(x), len(y))
	gr := &Graph{Name: name, X: make(Values, n), Y: make(Values, n)}
	copy(gr.X, x[:n])
	copy(gr.Y, y[:n])
	gr.Style.Defaults()
	return gr
}

func (gr *Graph) TypeName() string   { return GraphType }
func (gr *Graph) ObjectName() string { return gr.Name }

// NPoints returns the number of points in the graph.
func (gr *Graph) NPoints() int {
	return min(len(gr.X), len(gr.Y))
}

// Func is an annotation function attached to a [MultiGraph],
// for example a fit result.
type Func struct {
	Name  string
	Title string

	// Expr is the formula of the function.
	Expr string

	// Xmin and Xmax are the range over which the function is defined.
	Xmin, Xmax float64

	// Params are the parameter values of the formula.
	Params []float64

	Style Style
}

func (fn *Func) TypeName() string   { return FuncType }
func (fn *Func) ObjectName() string { return fn.Name }

// MultiGraph is a collection of graphs drawn in one shared frame.
type MultiGraph struct {
	Name string

	// Title of the multigraph. A title of the form "main;xtitle;ytitle"
	// also sets the titles of the axes of a synthesized frame.
	Title string

	// Graphs are the child graphs, drawn in order.
	Graphs []*Graph

	// Options are the per-graph draw options, parallel to Graphs.
	// Missing or empty entries use the default draw option.
	Options []string

	// Frame is an optional precomputed frame used for the axes.
	Frame *Frame

	// Functions are the attached annotation functions,
	// drawn after all graphs.
	Functions []Object

	// FunctionOptions are the draw options, parallel to Functions.
	FunctionOptions []string

	// Minimum and Maximum are explicit bounds of the value axis,
	// [NoZoom] if not set.
	Minimum, Maximum float64
}

// NewMultiGraph returns a new empty MultiGraph with no zoom bounds.
func NewMultiGraph(name, title string) *MultiGraph {
	return &MultiGraph{Name: name, Title: title, Minimum: NoZoom, Maximum: NoZoom}
}

func (mg *MultiGraph) TypeName() string   { return MultiGraphType }
func (mg *MultiGraph) ObjectName() string { return mg.Name }

// Add adds the graph with given draw option.
func (mg *MultiGraph) Add(gr *Graph, opt string) {
	mg.Graphs = append(mg.Graphs, gr)
	for len(mg.Options) < len(mg.Graphs)-1 {
		mg.Options = append(mg.Options, "")
	}
	mg.Options = append(mg.Options, opt)
}

// AddFunction attaches the function with given draw option.
func (mg *MultiGraph) AddFunction(fn Object, opt string) {
	mg.Functions = append(mg.Functions, fn)
	for len(mg.FunctionOptions) < len(mg.Functions)-1 {
		mg.FunctionOptions = append(mg.FunctionOptions, "")
	}
	mg.FunctionOptions = append(mg.FunctionOptions, opt)
}

// GraphOption returns the draw option of graph i, or "" if none.
func (mg *MultiGraph) GraphOption(i int) string {
	if i < len(mg.Options) {
		return mg.Options[i]
	}
	return ""
}

// FunctionOption returns the draw option of function j, or "" if none.
func (mg *MultiGraph) FunctionOption(j int) string {
	if j < len(mg.FunctionOptions) {
		return mg.FunctionOptions[j]
	}
	return ""
}
