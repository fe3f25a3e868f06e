// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package multigraph

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cogentcore.org/mgraph/plot"
	"cogentcore.org/mgraph/plot/painter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recPainter is a painter that records updates.
type recPainter struct {
	painter.Base
	obj plot.Object

	// changed is returned by Update.
	changed bool
	updates []plot.Object
}

func (rp *recPainter) Object() plot.Object { return rp.obj }

func (rp *recPainter) Update(obj plot.Object) bool {
	rp.updates = append(rp.updates, obj)
	return rp.changed
}

func (rp *recPainter) Cleanup() {}

// colorPainter is a main painter with auto-colors.
type colorPainter struct {
	recPainter
	calls []int
}

func (cp *colorPainter) AutoColor(n int) plot.ColorIndex {
	cp.calls = append(cp.calls, n)
	return plot.ColorIndex(10 + len(cp.calls))
}

// recPad is a pad that records all calls.
type recPad struct {
	main   painter.Painter
	view   *plot.View
	events []string
	prims  []painter.Painter
}

func (rp *recPad) MainPainter() painter.Painter { return rp.main }

func (rp *recPad) RootView(live bool) *plot.View { return rp.view }

func (rp *recPad) AddPrimitive(p painter.Painter) {
	rp.events = append(rp.events, "add:"+p.Object().TypeName())
	rp.prims = append(rp.prims, p)
}

func (rp *recPad) FindPainterFor(obj plot.Object, name, typeName string) painter.Painter {
	for _, p := range rp.prims {
		if p.Object().ObjectName() == name && p.Object().TypeName() == typeName {
			return p
		}
	}
	return nil
}

func (rp *recPad) DrawObject(ctx context.Context, obj plot.Object, opt string) (painter.Painter, error) {
	rp.events = append(rp.events, "object:"+obj.ObjectName()+":"+opt)
	p := &recPainter{Base: painter.NewBase(opt), obj: obj}
	rp.prims = append(rp.prims, p)
	return p, nil
}

// testDrawers records the frames drawn by the test drawers,
// and makes graph failGraph fail with graphErr.
type testDrawers struct {
	frames    []*plot.Frame
	graphErr  error
	failGraph int
}

func newTestPainter(pd *recPad, mg *plot.MultiGraph, td *testDrawers) *Painter {
	p := NewPainter(pd, mg)
	p.DrawFrame = func(ctx context.Context, _ painter.Pad, obj plot.Object, opt string) (painter.Painter, error) {
		pd.events = append(pd.events, "frame:"+opt)
		td.frames = append(td.frames, obj.(*plot.Frame))
		return &recPainter{Base: painter.NewBase(opt), obj: obj}, nil
	}
	p.DrawGraph = func(ctx context.Context, _ painter.Pad, gr *plot.Graph, opt string, depth int) (painter.Painter, error) {
		pd.events = append(pd.events, fmt.Sprintf("graph:%s:%s:%d", gr.Name, opt, depth))
		if td.graphErr != nil && gr.Name == fmt.Sprintf("g%d", td.failGraph) {
			return nil, td.graphErr
		}
		return &recPainter{Base: painter.NewBase(opt), obj: gr}, nil
	}
	return p
}

func testMultiGraph(n int) *plot.MultiGraph {
	mg := plot.NewMultiGraph("mg", "test")
	for i := range n {
		x := float64(i)
		mg.Add(plot.NewGraph(fmt.Sprintf("g%d", i), []float64{0, x + 1}, []float64{x, 2 * x}), "")
	}
	return mg
}

func TestDrawOrder(t *testing.T) {
	pd := &recPad{}
	mg := testMultiGraph(2)
	mg.AddFunction(&plot.Func{Name: "fit", Xmax: 1}, "same")
	td := &testDrawers{}
	p := newTestPainter(pd, mg, td)
	require.NoError(t, p.Draw(context.Background(), ""))

	assert.Equal(t, []string{
		"frame:AXIS",
		"add:MultiGraph",
		"graph:g0::2",
		"graph:g1::1",
		"object:fit:same",
	}, pd.events)
	require.NotNil(t, p.FramePainter())
	assert.Equal(t, painter.Secondary, p.FramePainter().AsBase().Role)
	assert.Equal(t, "frame", p.FramePainter().AsBase().SecondaryOf)
	assert.Equal(t, painter.Normal, p.Role)
	assert.Len(t, p.Painters(), 2)
	assert.Equal(t, mg.Graphs[1], p.Painters()[1].Object())
}

func TestDrawPrimary(t *testing.T) {
	pd := &recPad{}
	mg := testMultiGraph(1)
	mg.Frame = plot.NewFrame(plot.Frame1D)
	td := &testDrawers{}
	p := newTestPainter(pd, mg, td)
	require.NoError(t, p.Draw(context.Background(), ""))
	assert.Equal(t, painter.Primary, p.Role)
	require.Len(t, td.frames, 1)
	assert.Same(t, mg.Frame, td.frames[0])
}

func TestDrawExistingMain(t *testing.T) {
	pd := &recPad{main: &recPainter{obj: plot.NewFrame(plot.Frame1D)}}
	td := &testDrawers{}
	p := newTestPainter(pd, testMultiGraph(2), td)
	require.NoError(t, p.Draw(context.Background(), "L"))
	assert.Equal(t, []string{"add:MultiGraph", "graph:g0:L:2", "graph:g1:L:1"}, pd.events)
	assert.Nil(t, p.FramePainter())

	// A forces the frame
	pd.events = nil
	p = newTestPainter(pd, testMultiGraph(1), td)
	require.NoError(t, p.Draw(context.Background(), "AL"))
	assert.Equal(t, []string{"frame:AXIS", "add:MultiGraph", "graph:g0:L:1"}, pd.events)
}

func TestDrawOptions(t *testing.T) {
	pd := &recPad{}
	mg := testMultiGraph(2)
	mg.Options[0] = "P"
	td := &testDrawers{}
	p := newTestPainter(pd, mg, td)
	require.NoError(t, p.Draw(context.Background(), "ALOGYGRIDXC"))
	assert.Equal(t, []string{
		"frame:AXIS;LOGY;GRIDX",
		"add:MultiGraph",
		"graph:g0:P:2",
		"graph:g1:C:1",
	}, pd.events)
}

func TestDrawView(t *testing.T) {
	pd := &recPad{view: &plot.View{LogY: true, UxMin: 0, UxMax: 1, UyMin: 1, UyMax: 100}}
	mg := plot.NewMultiGraph("mg", "")
	mg.Add(plot.NewGraph("g0", []float64{0, 1}, []float64{1, 100}), "")
	td := &testDrawers{}
	p := newTestPainter(pd, mg, td)
	require.NoError(t, p.Draw(context.Background(), ""))
	require.Len(t, td.frames, 1)
	assert.InDelta(t, 140, td.frames[0].Y.Max, 1e-9)
}

func TestDraw3D(t *testing.T) {
	pd := &recPad{}
	mg := testMultiGraph(3)
	for i, tl := range []string{"a", "b", "c"} {
		mg.Graphs[i].Title = tl
	}
	td := &testDrawers{}
	p := newTestPainter(pd, mg, td)
	require.NoError(t, p.Draw(context.Background(), "3D"))
	assert.Equal(t, plot.Mode3D, p.Mode)
	require.Len(t, td.frames, 1)
	fr := td.frames[0]
	assert.Equal(t, plot.Frame2D, fr.Kind)
	assert.Equal(t, []plot.Label{{Text: "a", UniqueID: 3}, {Text: "b", UniqueID: 2}, {Text: "c", UniqueID: 1}}, fr.X.Labels)
	assert.Contains(t, pd.events, "graph:g0::3")
	assert.Contains(t, pd.events, "graph:g2::1")
}

func TestDrawAutoColor(t *testing.T) {
	main := &colorPainter{}
	main.obj = plot.NewFrame(plot.Frame1D)
	pd := &recPad{main: main}
	mg := testMultiGraph(3)
	mg.AddFunction(&plot.Func{Name: "fit", Style: plot.NewStyle()}, "")
	td := &testDrawers{}
	p := newTestPainter(pd, mg, td)
	require.NoError(t, p.Draw(context.Background(), "PFCPLC"))

	assert.Equal(t, []int{3, 3, 3}, main.calls)
	for i, gr := range mg.Graphs {
		c := plot.ColorIndex(11 + i)
		assert.Equal(t, c, gr.Style.FillColor)
		assert.Equal(t, c, gr.Style.LineColor)
		assert.Equal(t, plot.Black, gr.Style.MarkerColor)
		assert.Equal(t, fmt.Sprintf("SetFillColor(%d);;SetLineColor(%d);;", c, c), p.Painters()[i].AsBase().AutoExec)
	}
	assert.False(t, p.AutoColor.Any())
	assert.Equal(t, plot.White, mg.Functions[0].(*plot.Func).Style.FillColor)
	assert.Equal(t, []string{"add:MultiGraph", "graph:g0::3", "graph:g1::2", "graph:g2::1", "object:fit:"}, pd.events)
}

func TestDrawAutoColorUnsupported(t *testing.T) {
	pd := &recPad{main: &recPainter{obj: plot.NewFrame(plot.Frame1D)}}
	mg := testMultiGraph(2)
	td := &testDrawers{}
	p := newTestPainter(pd, mg, td)
	require.NoError(t, p.Draw(context.Background(), "PMC"))
	for i, gr := range mg.Graphs {
		assert.Equal(t, plot.NewStyle(), gr.Style)
		assert.Empty(t, p.Painters()[i].AsBase().AutoExec)
	}
}

func TestDrawError(t *testing.T) {
	pd := &recPad{}
	mg := testMultiGraph(3)
	mg.AddFunction(&plot.Func{Name: "fit"}, "")
	errBad := errors.New("bad graph")
	td := &testDrawers{graphErr: errBad, failGraph: 1}
	p := newTestPainter(pd, mg, td)
	err := p.Draw(context.Background(), "")
	assert.ErrorIs(t, err, errBad)
	assert.Equal(t, []string{"frame:AXIS", "add:MultiGraph", "graph:g0::3", "graph:g1::2"}, pd.events)
	assert.Len(t, p.Painters(), 1)
}

func TestUpdate(t *testing.T) {
	pd := &recPad{}
	mg := testMultiGraph(1)
	mg.AddFunction(&plot.Func{Name: "fit"}, "")
	td := &testDrawers{}
	p := newTestPainter(pd, mg, td)
	require.NoError(t, p.Draw(context.Background(), ""))

	assert.False(t, p.Update(plot.NewGraph("g", nil, nil)))

	mg2 := testMultiGraph(2)
	mg2.Title = "new"
	mg2.AddFunction(&plot.Func{Name: "fit"}, "")
	mg2.AddFunction(&plot.Func{Name: "other"}, "")
	assert.False(t, p.Update(mg2))
	assert.Equal(t, "new", mg.Title)

	// the frame is rescanned with the new graphs
	fp := p.FramePainter().(*recPainter)
	require.Len(t, fp.updates, 1)
	fr := fp.updates[0].(*plot.Frame)
	assert.Equal(t, "new", fr.Title)
	assert.InDelta(t, 2.1, fr.X.Max, 1e-9)

	// only the existing graph painter is updated
	gp := p.Painters()[0].(*recPainter)
	require.Len(t, gp.updates, 1)
	assert.Same(t, mg2.Graphs[0], gp.updates[0])

	fnp := pd.FindPainterFor(nil, "fit", plot.FuncType).(*recPainter)
	assert.Len(t, fnp.updates, 1)

	gp.changed = true
	assert.True(t, p.Update(mg2))
}

func TestUpdateSuppliedFrame(t *testing.T) {
	pd := &recPad{}
	mg := testMultiGraph(1)
	mg.Frame = plot.NewFrame(plot.Frame1D)
	td := &testDrawers{}
	p := newTestPainter(pd, mg, td)
	require.NoError(t, p.Draw(context.Background(), ""))

	// no auto-range and no new frame: the frame painter is not updated
	mg2 := testMultiGraph(1)
	p.Update(mg2)
	fp := p.FramePainter().(*recPainter)
	assert.Empty(t, fp.updates)

	mg2.Frame = plot.NewFrame(plot.Frame1D)
	fp.changed = true
	assert.True(t, p.Update(mg2))
	assert.Same(t, mg2.Frame, fp.updates[0])
}

func TestCleanup(t *testing.T) {
	pd := &recPad{}
	mg := testMultiGraph(2)
	p := newTestPainter(pd, mg, &testDrawers{})
	require.NoError(t, p.Draw(context.Background(), ""))
	p.Cleanup()
	assert.Nil(t, p.Painters())
	assert.Nil(t, p.FramePainter())
	assert.Len(t, mg.Graphs, 2)
	assert.Same(t, mg, p.Object())
}
