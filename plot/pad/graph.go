// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pad

import (
	"context"
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/mgraph/plot"
	"cogentcore.org/mgraph/plot/painter"
	"github.com/jinzhu/copier"
)

func init() {
	painter.Register(plot.GraphType, func(ctx context.Context, pd painter.Pad, obj plot.Object, opt string) (painter.Painter, error) {
		gr, ok := obj.(*plot.Graph)
		if !ok {
			return nil, fmt.Errorf("pad: cannot draw %T as graph", obj)
		}
		return DrawGraph(ctx, pd, gr, opt, 0)
	})
	painter.RegisterGraph(plot.GraphType, DrawGraph)
	painter.Register(plot.FuncType, DrawFunc)
}

// GraphPainter draws a [plot.Graph].
type GraphPainter struct {
	painter.Base

	// Depth is the stacking depth of the graph in 3D drawing.
	Depth int

	graph *plot.Graph

	// drawn is a copy of the graph as last drawn.
	drawn plot.Graph
}

// DrawGraph draws graph gr on pad pd. It has the signature of
// [painter.GraphDrawFunc].
func DrawGraph(ctx context.Context, pd painter.Pad, gr *plot.Graph, opt string, depth int) (painter.Painter, error) {
	if err := plot.CheckFloats(gr.X...); errors.Is(err, plot.ErrInfinity) {
		return nil, fmt.Errorf("pad: graph %q x values: %w", gr.Name, err)
	}
	if err := plot.CheckFloats(gr.Y...); errors.Is(err, plot.ErrInfinity) {
		return nil, fmt.Errorf("pad: graph %q y values: %w", gr.Name, err)
	}
	gp := &GraphPainter{Base: painter.NewBase(opt), Depth: depth, graph: gr}
	if err := gp.snapshot(); err != nil {
		return nil, err
	}
	pd.AddPrimitive(gp)
	return gp, nil
}

func (gp *GraphPainter) Object() plot.Object { return gp.graph }

// Graph returns the graph drawn by the painter.
func (gp *GraphPainter) Graph() *plot.Graph { return gp.graph }

func (gp *GraphPainter) snapshot() error {
	gp.drawn = plot.Graph{}
	if err := copier.CopyWithOption(&gp.drawn, gp.graph, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("pad: copying graph: %w", err)
	}
	return nil
}

// Update re-binds the painter to graph obj, returning true if it differs
// from the drawn one. A graph drawn with auto-colors keeps them: they are
// applied to obj first.
func (gp *GraphPainter) Update(obj plot.Object) bool {
	gr, ok := obj.(*plot.Graph)
	if !ok {
		return false
	}
	if gp.AutoExec != "" {
		gr.Style = gp.drawn.Style
	}
	changed := !gr.Equal(&gp.drawn)
	gp.graph = gr
	if changed {
		errors.Log(gp.snapshot())
	}
	return changed
}

func (gp *GraphPainter) Cleanup() {
	gp.graph = nil
}
