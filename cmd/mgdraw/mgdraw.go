// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mgdraw draws a multigraph document on an in-memory pad and
// prints the resulting frame, primitives and automatic colors.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/mgraph/plot"
	"cogentcore.org/mgraph/plot/multigraph"
	"cogentcore.org/mgraph/plot/pad"
	"cogentcore.org/mgraph/plot/plotio"
	"github.com/muesli/termenv"
)

// Config is the configuration information for the mgdraw cli.
type Config struct {

	// Input is the multigraph document, in TOML, YAML or JSON format.
	Input string `posarg:"0"`

	// Option is the draw option, which replaces the option
	// of the document if set.
	Option string `flag:"o,option"`

	// LogX draws the x axis in log scale.
	LogX bool

	// LogY draws the y axis in log scale.
	LogY bool

	// Palette is the number of colors in the auto-color palette;
	// 0 cycles through the base colors.
	Palette int `default:"50"`

	// Save writes the document as drawn, including any automatic
	// colors, to the given TOML, YAML or JSON file.
	Save string `flag:"s,save"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("mgdraw", "Draws multigraph documents and prints the result.")
	cli.Run(opts, &Config{}, Draw)
}

// Draw draws the input document and prints the result.
func Draw(c *Config) error { //cli:cmd -root
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logx.UserLevel})))

	doc, err := plotio.Open(c.Input)
	if err != nil {
		return err
	}
	mg, err := doc.MultiGraph()
	if err != nil {
		return err
	}
	opt := doc.Option
	if c.Option != "" {
		opt = c.Option
	}

	pd := pad.New(filepath.Base(c.Input))
	pd.Palette = pd.Palette[:max(0, min(c.Palette, len(pd.Palette)))]
	if c.LogX || c.LogY {
		pd.View = logView(mg, c.LogX, c.LogY)
		if c.LogX {
			opt += "LOGX"
		}
		if c.LogY {
			opt += "LOGY"
		}
	}
	slog.Debug("drawing", "multigraph", mg.Name, "graphs", len(mg.Graphs), "option", opt)

	p, err := multigraph.Draw(context.Background(), pd, mg, opt)
	if err != nil {
		return err
	}
	Print(termenv.NewOutput(os.Stdout), pd, p)

	if c.Save != "" {
		if err := plotio.Save(plotio.NewDocument(mg, opt), c.Save); err != nil {
			return err
		}
		slog.Info("saved", "file", c.Save)
	}
	return nil
}

// logView returns the view of a pad showing the data range of mg
// with given log scales. The frame padding is added when drawing.
func logView(mg *plot.MultiGraph, logX, logY bool) *plot.View {
	var x, y minmax.F64
	x.SetInfinity()
	y.SetInfinity()
	for _, gr := range mg.Graphs {
		if gr != nil {
			gr.X.Range(&x)
			gr.Y.Range(&y)
		}
	}
	if !x.IsValid() || !y.IsValid() {
		x.Set(0, 0)
		y.Set(0, 0)
	}
	return &plot.View{LogX: logX, LogY: logY, UxMin: x.Min, UxMax: x.Max, UyMin: y.Min, UyMax: y.Max}
}

// Print prints the frame and the primitives of the pad to out,
// with a color swatch for each automatic color.
func Print(out *termenv.Output, pd *pad.Pad, p *multigraph.Painter) {
	if fp, ok := p.FramePainter().(*pad.FramePainter); ok {
		printFrame(out, fp, p.MultiGraph())
	}
	fmt.Fprintln(out, "primitives:")
	for i, pp := range pd.Primitives() {
		b := pp.AsBase()
		obj := pp.Object()
		fmt.Fprintf(out, "%3d %-10s %-12q role=%v opt=%q", i, obj.TypeName(), obj.ObjectName(), b.Role, b.Option)
		if gp, ok := pp.(*pad.GraphPainter); ok {
			fmt.Fprintf(out, " depth=%d", gp.Depth)
			if b.AutoExec != "" {
				st := gp.Graph().Style
				fmt.Fprintf(out, " %s", swatch(out, pd, st.LineColor))
				fmt.Fprintf(out, " %s", swatch(out, pd, st.FillColor))
			}
		}
		fmt.Fprintln(out)
	}
}

// printFrame prints the frame axes with their major tick labels,
// and the zoom bounds if mg sets any.
func printFrame(out io.Writer, fp *pad.FramePainter, mg *plot.MultiGraph) {
	fr := fp.Frame()
	fmt.Fprintf(out, "frame %v %q\n", fr.Kind, fr.Title)
	axes := []*plot.Axis{&fr.X, &fr.Y, &fr.Z}
	for i, name := range []string{"x", "y", "z"} {
		ax := axes[i]
		if i == 2 && fr.Kind != plot.Frame2D {
			break
		}
		fmt.Fprintf(out, "  %s [%g, %g] %q:", name, ax.Min, ax.Max, ax.Title)
		for _, tk := range fp.Ticks[i] {
			if !tk.IsMinor() {
				fmt.Fprintf(out, " %s", tk.Label)
			}
		}
		fmt.Fprintln(out)
	}
	if plot.IsZoom(mg.Minimum) || plot.IsZoom(mg.Maximum) {
		fmt.Fprintf(out, "  zoom [%g, %g]\n", fr.Minimum, fr.Maximum)
	}
}

// swatch returns a colored block for color index ci of the pad,
// followed by the hex color.
func swatch(out *termenv.Output, pd *pad.Pad, ci plot.ColorIndex) string {
	c, ok := pd.Color(ci)
	if !ok {
		return fmt.Sprintf("color(%d)", ci)
	}
	hex := colors.AsHex(c)
	return out.String("  ").Background(out.Color(hex)).String() + " " + hex
}
