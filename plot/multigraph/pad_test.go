// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package multigraph_test

import (
	"context"
	"math"
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/mgraph/plot"
	"cogentcore.org/mgraph/plot/multigraph"
	"cogentcore.org/mgraph/plot/pad"
	"cogentcore.org/mgraph/plot/painter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeGraphs() *plot.MultiGraph {
	mg := plot.NewMultiGraph("mg", "counts;time;n")
	mg.Add(plot.NewGraph("a", []float64{0, 1, 2}, []float64{1, 4, 9}), "")
	mg.Add(plot.NewGraph("b", []float64{0, 1, 2}, []float64{2, 3, 4}), "P")
	mg.Add(plot.NewGraph("c", []float64{-1, 3}, []float64{0, 5}), "")
	mg.AddFunction(&plot.Func{Name: "fit", Expr: "[0]+[1]*x", Xmin: 0, Xmax: 2, Params: []float64{1, 1}}, "")
	return mg
}

func TestPadDraw(t *testing.T) {
	pd := pad.New("c1")
	mg := threeGraphs()
	p, err := multigraph.Draw(context.Background(), pd, mg, "L")
	require.NoError(t, err)

	prims := pd.Primitives()
	types := make([]string, len(prims))
	for i, pp := range prims {
		types[i] = pp.Object().TypeName()
	}
	assert.Equal(t, []string{plot.FrameType, plot.MultiGraphType, plot.GraphType, plot.GraphType, plot.GraphType, plot.FuncType}, types)
	assert.Same(t, prims[1], painter.Painter(p))
	assert.Same(t, pd.MainPainter(), p.FramePainter())

	fp := p.FramePainter().(*pad.FramePainter)
	assert.True(t, fp.Options.Axis)
	assert.Equal(t, "counts", fp.Frame().Title)
	assert.Equal(t, "time", fp.Frame().X.Title)
	assert.NotEmpty(t, fp.Ticks[0])

	gp := p.Painters()[1].(*pad.GraphPainter)
	assert.Equal(t, "P", gp.Option)
	assert.Equal(t, 2, gp.Depth)
	assert.Equal(t, "L", p.Painters()[0].AsBase().Option)

	// drawn by name through the pad
	assert.NotNil(t, pd.FindPainterFor(nil, "fit", plot.FuncType))
	assert.Same(t, prims[2], pd.FindPainterFor(mg.Graphs[0], "", ""))
}

func TestPadUpdate(t *testing.T) {
	pd := pad.New("c1")
	mg := threeGraphs()
	p, err := multigraph.Draw(context.Background(), pd, mg, "")
	require.NoError(t, err)

	assert.False(t, p.Update(mg))

	mg.Title = "other"
	assert.True(t, p.Update(mg))
	assert.False(t, p.Update(mg))

	mg.Graphs[2].Y[1] = 50
	assert.True(t, p.Update(mg))
	fp := p.FramePainter().(*pad.FramePainter)
	assert.Greater(t, fp.Frame().Y.Max, 50.0)

	fn := *mg.Functions[0].(*plot.Func)
	fn.Params = []float64{2, 1}
	mg.Functions[0] = &fn
	assert.True(t, p.Update(mg))
}

func TestPadAutoColor(t *testing.T) {
	pd := pad.New("c1")
	mg := threeGraphs()
	p, err := multigraph.Draw(context.Background(), pd, mg, "PLCPMC")
	require.NoError(t, err)

	seen := map[plot.ColorIndex]bool{}
	for i, gr := range mg.Graphs {
		ci := gr.Style.LineColor
		assert.Equal(t, ci, gr.Style.MarkerColor)
		assert.Equal(t, plot.White, gr.Style.FillColor)
		assert.False(t, seen[ci], "duplicate auto-color %d", ci)
		seen[ci] = true
		assert.NotEmpty(t, p.Painters()[i].AsBase().AutoExec)
	}

	c, ok := pd.Color(mg.Graphs[0].Style.LineColor)
	require.True(t, ok)
	assert.Equal(t, colors.Spaced(0), c)
	c, ok = pd.Color(mg.Graphs[2].Style.LineColor)
	require.True(t, ok)
	assert.Equal(t, colors.Spaced(pad.PaletteSize-3), c)

	// auto-colors stay as drawn
	assert.False(t, p.Update(mg))
	assert.Equal(t, seen, map[plot.ColorIndex]bool{
		mg.Graphs[0].Style.LineColor: true,
		mg.Graphs[1].Style.LineColor: true,
		mg.Graphs[2].Style.LineColor: true,
	})
}

func TestPadAutoColorTwice(t *testing.T) {
	pd := pad.New("c1")
	ctx := context.Background()
	first, second := threeGraphs(), threeGraphs()
	_, err := multigraph.Draw(ctx, pd, first, "PFC")
	require.NoError(t, err)
	_, err = multigraph.Draw(ctx, pd, second, "PFC")
	require.NoError(t, err)

	for _, mg := range []*plot.MultiGraph{first, second} {
		seen := map[plot.ColorIndex]bool{}
		for _, gr := range mg.Graphs {
			ci := gr.Style.FillColor
			assert.False(t, seen[ci], "duplicate auto-color %d in %s", ci, mg.Name)
			seen[ci] = true
		}
	}
	// both sequences spread over the same palette colors
	for i := range first.Graphs {
		assert.Equal(t, first.Graphs[i].Style.FillColor, second.Graphs[i].Style.FillColor)
	}
}

func TestPadDrawObjectDepth(t *testing.T) {
	pd := pad.New("c1")
	p, err := pd.DrawObject(context.Background(), threeGraphs(), "")
	require.NoError(t, err)
	mp := p.(*multigraph.Painter)
	var depths []int
	for _, gp := range mp.Painters() {
		depths = append(depths, gp.(*pad.GraphPainter).Depth)
	}
	assert.Equal(t, []int{3, 2, 1}, depths)
}

func TestPadSecondMultiGraph(t *testing.T) {
	pd := pad.New("c1")
	ctx := context.Background()
	_, err := multigraph.Draw(ctx, pd, threeGraphs(), "")
	require.NoError(t, err)

	// a second multigraph is drawn in the existing frame
	p2, err := multigraph.Draw(ctx, pd, threeGraphs(), "")
	require.NoError(t, err)
	assert.Nil(t, p2.FramePainter())
	assert.Len(t, pd.Primitives(), 11)

	p3, err := multigraph.Draw(ctx, pd, threeGraphs(), "A")
	require.NoError(t, err)
	assert.NotNil(t, p3.FramePainter())
	assert.NotSame(t, pd.MainPainter(), p3.FramePainter())
}

func TestPadDrawObject(t *testing.T) {
	pd := pad.New("c1")
	p, err := pd.DrawObject(context.Background(), threeGraphs(), "3D")
	require.NoError(t, err)
	mp := p.(*multigraph.Painter)
	assert.Equal(t, plot.Mode3D, mp.Mode)
	fp := mp.FramePainter().(*pad.FramePainter)
	assert.Equal(t, plot.Frame2D, fp.Frame().Kind)
	assert.Len(t, fp.Ticks[0], 3)
	assert.NotEmpty(t, fp.Ticks[2])

	mg := threeGraphs()
	mg.Graphs[1] = plot.NewGraph("inf", []float64{0, 1}, []float64{0, 1})
	mg.Graphs[1].Y[1] = math.Inf(1)
	_, err = pd.DrawObject(context.Background(), mg, "")
	assert.ErrorIs(t, err, plot.ErrInfinity)
}
