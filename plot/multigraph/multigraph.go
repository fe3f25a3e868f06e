// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package multigraph provides the painter of a [plot.MultiGraph]: it
// computes the shared frame of the graphs, draws it, and then draws
// each graph and each attached function in turn, assigning automatic
// colors on request.
//
// Draw options of the multigraph itself:
//
//	A     draw the axis frame, even when the pad already has one
//	3D    stack the graphs along a category axis, one per graph
//	PFC   automatic fill color for each graph
//	PLC   automatic line color for each graph
//	PMC   automatic marker color for each graph
//
// plus the frame options in [drawopt.PadOptions]. Anything else is the
// default draw option of graphs without an option of their own.
package multigraph

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/mgraph/plot"
	"cogentcore.org/mgraph/plot/drawopt"
	"cogentcore.org/mgraph/plot/painter"
)

func init() {
	painter.Register(plot.MultiGraphType, func(ctx context.Context, pd painter.Pad, obj plot.Object, opt string) (painter.Painter, error) {
		mg, ok := obj.(*plot.MultiGraph)
		if !ok {
			return nil, fmt.Errorf("multigraph: cannot draw %T", obj)
		}
		p, err := Draw(ctx, pd, mg, opt)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}

// Painter paints a [plot.MultiGraph].
type Painter struct {
	painter.Base

	// Pad is the pad the multigraph is drawn on.
	Pad painter.Pad

	// DrawFrame draws the axis frame.
	// Defaults to the drawer registered for [plot.FrameType].
	DrawFrame painter.DrawFunc

	// DrawGraph draws each graph.
	// Defaults to the drawer registered for [plot.GraphType].
	DrawGraph painter.GraphDrawFunc

	// Mode is the layout mode, [plot.Mode3D] with the 3D option.
	Mode plot.Mode

	// AutoColor are the auto-coloring flags from the draw option.
	AutoColor plot.AutoColor

	mg *plot.MultiGraph

	// frame is the painter of the axis frame, if drawn by us.
	frame painter.Painter

	// autoRange is set when the frame was computed from the graphs.
	autoRange bool

	// painters are the painters of the graphs, in graph order.
	painters []painter.Painter
}

// NewPainter returns a new Painter for mg on pad pd.
func NewPainter(pd painter.Pad, mg *plot.MultiGraph) *Painter {
	return &Painter{Base: painter.NewBase(""), Pad: pd, mg: mg}
}

// Draw draws mg on pad pd with given draw option,
// returning its painter.
func Draw(ctx context.Context, pd painter.Pad, mg *plot.MultiGraph, opt string) (*Painter, error) {
	p := NewPainter(pd, mg)
	if err := p.Draw(ctx, opt); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Painter) Object() plot.Object { return p.mg }

// MultiGraph returns the multigraph drawn by the painter.
func (p *Painter) MultiGraph() *plot.MultiGraph { return p.mg }

// FramePainter returns the painter of the axis frame,
// or nil if the frame was not drawn by this painter.
func (p *Painter) FramePainter() painter.Painter { return p.frame }

// Painters returns the painters of the graphs, in graph order.
func (p *Painter) Painters() []painter.Painter { return p.painters }

// Draw draws the multigraph: first the frame if needed, then each
// graph, then each function. Each step completes before the next
// one starts, as auto-colors are assigned in graph order.
func (p *Painter) Draw(ctx context.Context, opt string) error {
	p.Option = opt
	d := drawopt.New(opt)
	if d.Check("3D") {
		p.Mode = plot.Mode3D
	}
	p.AutoColor.Fill = d.Check("PFC")
	p.AutoColor.Line = d.Check("PLC")
	p.AutoColor.Marker = d.Check("PMC")
	fopt := d.PadOptions()

	if d.Check("A") || p.Pad.MainPainter() == nil {
		if err := p.drawFrame(ctx, fopt); err != nil {
			return err
		}
	}

	p.Pad.AddPrimitive(p)

	dopt := d.Remain()
	for i := range p.mg.Graphs {
		if err := p.drawGraph(ctx, i, dopt); err != nil {
			return err
		}
	}

	p.AutoColor = plot.AutoColor{}
	for j := range p.mg.Functions {
		if err := p.drawFunction(ctx, j); err != nil {
			return err
		}
	}
	return nil
}

// ScanRange returns the frame for the graphs of mg, starting from
// frame when non-nil, in the layout mode of the painter.
func (p *Painter) ScanRange(mg *plot.MultiGraph, frame *plot.Frame, view *plot.View) *plot.Frame {
	if frame == nil || (p.Mode == plot.Mode3D && frame.X.HasLabels()) {
		p.autoRange = true
	}
	return plot.ScanRange(mg, frame, view, p.Mode)
}

// drawFrame draws the axis frame, with frame draw options fopt.
func (p *Painter) drawFrame(ctx context.Context, fopt string) error {
	fr := p.ScanRange(p.mg, p.mg.Frame, p.Pad.RootView(true))
	draw := p.DrawFrame
	if draw == nil {
		var err error
		draw, err = painter.DrawerFor(plot.FrameType)
		if err != nil {
			return err
		}
	}
	fp, err := draw(ctx, p.Pad, fr, "AXIS"+fopt)
	if err != nil {
		return fmt.Errorf("multigraph %q: drawing frame: %w", p.mg.Name, err)
	}
	if fp == nil {
		return nil
	}
	p.frame = fp
	fp.AsBase().SetSecondary("frame")
	if p.mg.Frame != nil {
		p.Role = painter.Primary
	}
	return nil
}

// drawGraph draws graph i, using dopt if it has no option of its own.
func (p *Painter) drawGraph(ctx context.Context, i int, dopt string) error {
	gr := p.mg.Graphs[i]
	if gr == nil {
		return fmt.Errorf("multigraph %q: graph %d is nil", p.mg.Name, i)
	}
	n := len(p.mg.Graphs)
	opt := p.mg.GraphOption(i)
	if opt == "" {
		opt = dopt
	}

	exec := ""
	if p.AutoColor.Any() {
		if ac, ok := p.Pad.MainPainter().(painter.AutoColorer); ok {
			exec = p.AutoColor.Apply(&gr.Style, ac.AutoColor(n))
		} else {
			slog.Debug("multigraph: no auto-color support in main painter", "multigraph", p.mg.Name)
		}
	}

	draw := p.DrawGraph
	if draw == nil {
		draw = drawRegisteredGraph
	}
	gp, err := draw(ctx, p.Pad, gr, opt, n-i)
	if err != nil {
		return fmt.Errorf("multigraph %q: drawing graph %d: %w", p.mg.Name, i, err)
	}
	if gp != nil {
		gp.AsBase().AutoExec = exec
		p.painters = append(p.painters, gp)
	}
	return nil
}

// drawRegisteredGraph draws the graph with the graph drawer registered
// for [plot.GraphType], passing on depth.
func drawRegisteredGraph(ctx context.Context, pd painter.Pad, gr *plot.Graph, opt string, depth int) (painter.Painter, error) {
	fn, err := painter.GraphDrawerFor(gr.TypeName())
	if err != nil {
		return nil, err
	}
	return fn(ctx, pd, gr, opt, depth)
}

// drawFunction draws function j with the generic drawer of the pad.
func (p *Painter) drawFunction(ctx context.Context, j int) error {
	fn := p.mg.Functions[j]
	if fn == nil {
		return nil
	}
	if _, err := p.Pad.DrawObject(ctx, fn, p.mg.FunctionOption(j)); err != nil {
		return fmt.Errorf("multigraph %q: drawing function %d: %w", p.mg.Name, j, err)
	}
	return nil
}

// Update re-binds the painter and the painters of the frame, graphs and
// functions to the new multigraph obj, returning true if anything changed.
// Graphs are matched by index; graphs beyond the number of painters
// of the original drawing are not drawn.
func (p *Painter) Update(obj plot.Object) bool {
	mg, ok := obj.(*plot.MultiGraph)
	if !ok {
		return false
	}
	p.mg.Title = mg.Title

	changed := false
	if p.frame != nil {
		fr := mg.Frame
		if p.autoRange && fr == nil {
			scan := *p.mg
			scan.Graphs = mg.Graphs
			fr = p.ScanRange(&scan, nil, nil)
		}
		if fr != nil && p.frame.Update(fr) {
			changed = true
		}
	}

	for i, gr := range mg.Graphs {
		if i < len(p.painters) && p.painters[i].Update(gr) {
			changed = true
		}
	}

	for _, fn := range mg.Functions {
		if fn == nil || fn.TypeName() == "" || fn.ObjectName() == "" {
			continue
		}
		if fp := p.Pad.FindPainterFor(nil, fn.ObjectName(), fn.TypeName()); fp != nil && fp.Update(fn) {
			changed = true
		}
	}
	return changed
}

// Cleanup releases the painters of the graphs and the frame,
// which are owned by the pad primitives. The multigraph is unchanged.
func (p *Painter) Cleanup() {
	p.painters = nil
	p.frame = nil
}
