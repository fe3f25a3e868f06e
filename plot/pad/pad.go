// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pad provides [Pad], an in-memory display surface that keeps
// the painters drawn on it as an ordered list of primitives, together
// with the painters of frames, graphs and functions. The first frame
// drawn on an empty pad becomes its main painter, which provides the
// automatic colors of the elements drawn in the frame.
package pad

import (
	"context"
	"image/color"
	"log/slog"
	"slices"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/mgraph/plot"
	"cogentcore.org/mgraph/plot/painter"
)

// PaletteSize is the number of colors in the default auto-color palette.
var PaletteSize = 50

// Pad is a display surface holding the painters drawn on it.
// Its methods are safe for concurrent use; the exported fields other
// than Zoomed must be set before drawing. Zoomed is changed with
// [Pad.SetZoomed] once drawing has started.
type Pad struct {
	// Name of the pad.
	Name string

	// View is the stored view state of the pad, nil if not set.
	View *plot.View

	// Zoomed is the current view state when it differs from View,
	// for example after interactive zooming.
	Zoomed *plot.View

	// Palette is the color palette that auto-colors are taken from.
	// If empty, auto-colors cycle through the base colors.
	Palette []color.RGBA

	mu sync.Mutex

	// colors is the color table indexed by [plot.ColorIndex].
	colors []color.RGBA

	// primitives are the painters of the pad, in drawing order.
	primitives []painter.Painter

	main painter.Painter
}

// New returns a new empty Pad with the default palette.
func New(name string) *Pad {
	pd := &Pad{Name: name}
	pd.colors = []color.RGBA{
		colors.White, colors.Black, colors.Red, colors.Green, colors.Blue,
		colors.Yellow, colors.Magenta, colors.Cyan, colors.Darkgreen, colors.Purple,
	}
	pd.Palette = make([]color.RGBA, PaletteSize)
	for i := range pd.Palette {
		pd.Palette[i] = colors.Spaced(i)
	}
	return pd
}

// MainPainter returns the main painter, nil if none.
func (pd *Pad) MainPainter() painter.Painter {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return pd.main
}

// SetMainPainter sets the main painter if there is none yet,
// returning true if it was set.
func (pd *Pad) SetMainPainter(p painter.Painter) bool {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	if pd.main != nil {
		return false
	}
	pd.main = p
	return true
}

// RootView returns the current view if live, else the stored view.
func (pd *Pad) RootView(live bool) *plot.View {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	if live && pd.Zoomed != nil {
		return pd.Zoomed
	}
	return pd.View
}

// SetZoomed sets the current view, nil to return to the stored view.
func (pd *Pad) SetZoomed(v *plot.View) {
	pd.mu.Lock()
	pd.Zoomed = v
	pd.mu.Unlock()
}

// AddPrimitive appends the painter to the primitives,
// unless it is already there.
func (pd *Pad) AddPrimitive(p painter.Painter) {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	if slices.Contains(pd.primitives, p) {
		return
	}
	pd.primitives = append(pd.primitives, p)
}

// Primitives returns a copy of the list of primitives.
func (pd *Pad) Primitives() []painter.Painter {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	return slices.Clone(pd.primitives)
}

// FindPainterFor returns the first primitive drawing obj, or if obj is
// nil, the first one whose object has given name and type name,
// where empty strings match anything.
func (pd *Pad) FindPainterFor(obj plot.Object, name, typeName string) painter.Painter {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	for _, p := range pd.primitives {
		po := p.Object()
		if po == nil {
			continue
		}
		if obj != nil {
			if po == obj {
				return p
			}
			continue
		}
		if (name == "" || po.ObjectName() == name) && (typeName == "" || po.TypeName() == typeName) {
			return p
		}
	}
	return nil
}

// DrawObject draws obj with the drawer registered for its type.
// Objects of types without a drawer are skipped.
func (pd *Pad) DrawObject(ctx context.Context, obj plot.Object, opt string) (painter.Painter, error) {
	p, err := painter.Draw(ctx, pd, obj, opt)
	if errors.Is(err, painter.ErrNoDrawer) {
		slog.Warn("pad: object not drawn", "pad", pd.Name, "type", obj.TypeName(), "name", obj.ObjectName())
		return nil, nil
	}
	return p, err
}

// AddColor returns the index of color c in the color table,
// adding it if not present.
func (pd *Pad) AddColor(c color.RGBA) plot.ColorIndex {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	if i := slices.Index(pd.colors, c); i >= 0 {
		return plot.ColorIndex(i)
	}
	pd.colors = append(pd.colors, c)
	return plot.ColorIndex(len(pd.colors) - 1)
}

// Color returns the color at given index of the color table,
// and false if the index is out of range.
func (pd *Pad) Color(ci plot.ColorIndex) (color.RGBA, bool) {
	pd.mu.Lock()
	defer pd.mu.Unlock()
	if ci < 0 || int(ci) >= len(pd.colors) {
		return color.RGBA{}, false
	}
	return pd.colors[ci], true
}

// Clear cleans up all the primitives and removes them,
// including the main painter.
func (pd *Pad) Clear() {
	pd.mu.Lock()
	prims := pd.primitives
	pd.primitives = nil
	pd.main = nil
	pd.mu.Unlock()
	for _, p := range prims {
		p.Cleanup()
	}
}
