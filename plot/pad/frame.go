// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pad

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/mgraph/plot"
	"cogentcore.org/mgraph/plot/painter"
	"github.com/jinzhu/copier"
)

func init() {
	painter.Register(plot.FrameType, DrawFrame)
}

// NTicks is the suggested number of major ticks on linear axes.
var NTicks = 5

// FrameOptions are the frame draw options of a [FramePainter].
type FrameOptions struct {
	// Axis is set when only the axes are drawn, not the frame contents.
	Axis bool

	LogX, LogY, LogZ    bool
	GridX, GridY        bool
	TickX, TickY, TickZ bool
}

// ParseFrameOptions parses the ';' separated frame draw options,
// such as "AXIS;LOGY;GRIDX".
func ParseFrameOptions(opt string) FrameOptions {
	var fo FrameOptions
	for _, tok := range strings.Split(opt, ";") {
		switch strings.TrimSpace(tok) {
		case "AXIS":
			fo.Axis = true
		case "LOG":
			fo.LogX, fo.LogY = true, true
		case "LOGXY":
			fo.LogX, fo.LogY = true, true
		case "LOGX":
			fo.LogX = true
		case "LOGY":
			fo.LogY = true
		case "LOGZ", "LOGV":
			fo.LogZ = true
		case "GRIDXY":
			fo.GridX, fo.GridY = true, true
		case "GRIDX":
			fo.GridX = true
		case "GRIDY":
			fo.GridY = true
		case "TICKXY":
			fo.TickX, fo.TickY = true, true
		case "TICKX":
			fo.TickX = true
		case "TICKY":
			fo.TickY = true
		case "TICKZ":
			fo.TickZ = true
		}
	}
	return fo
}

// FramePainter draws the axes of a [plot.Frame].
// As the main painter of a pad it assigns the auto-colors.
type FramePainter struct {
	painter.Base

	Options FrameOptions

	// Ticks are the ticks of the X, Y, Z axes as last drawn.
	Ticks [3][]plot.Tick

	pad   *Pad
	frame *plot.Frame

	// drawn is a copy of the frame as last drawn.
	drawn plot.Frame

	colorMu sync.Mutex

	// autoColor is the index of the next auto-color.
	autoColor int
}

var _ painter.AutoColorer = (*FramePainter)(nil)

// DrawFrame draws the frame obj on pad pd, making it the
// main painter of the pad if there is none yet.
func DrawFrame(ctx context.Context, pd painter.Pad, obj plot.Object, opt string) (painter.Painter, error) {
	fr, ok := obj.(*plot.Frame)
	if !ok {
		return nil, fmt.Errorf("pad: cannot draw %T as frame", obj)
	}
	fp := &FramePainter{Base: painter.NewBase(opt), frame: fr}
	fp.Options = ParseFrameOptions(opt)
	p, isPad := pd.(*Pad)
	if isPad {
		fp.pad = p
	}
	if err := fp.draw(); err != nil {
		return nil, err
	}
	if isPad {
		p.SetMainPainter(fp)
	}
	pd.AddPrimitive(fp)
	return fp, nil
}

func (fp *FramePainter) Object() plot.Object { return fp.frame }

// Frame returns the frame drawn by the painter.
func (fp *FramePainter) Frame() *plot.Frame { return fp.frame }

// draw takes a snapshot of the frame and computes its ticks.
func (fp *FramePainter) draw() error {
	fp.drawn = plot.Frame{}
	if err := copier.CopyWithOption(&fp.drawn, fp.frame, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("pad: copying frame: %w", err)
	}
	fr := fp.frame
	fp.Ticks[0] = fr.X.Ticks(NTicks, fp.Options.LogX)
	fp.Ticks[1] = fr.Y.Ticks(NTicks, fp.Options.LogY)
	fp.Ticks[2] = nil
	if fr.Kind == plot.Frame2D {
		fp.Ticks[2] = fr.Z.Ticks(NTicks, fp.Options.LogZ)
	}
	return nil
}

// Update re-binds the painter to frame obj,
// returning true if it differs from the drawn one.
func (fp *FramePainter) Update(obj plot.Object) bool {
	fr, ok := obj.(*plot.Frame)
	if !ok {
		return false
	}
	changed := !fr.Equal(&fp.drawn)
	fp.frame = fr
	if changed {
		errors.Log(fp.draw())
	}
	return changed
}

func (fp *FramePainter) Cleanup() {
	fp.frame = nil
	fp.pad = nil
	fp.Ticks = [3][]plot.Tick{}
}

// AutoColor returns the next auto-color for a sequence of n elements.
// With a palette the colors are spread over the palette; otherwise
// they cycle through the base colors starting at [plot.Red].
func (fp *FramePainter) AutoColor(n int) plot.ColorIndex {
	fp.colorMu.Lock()
	defer fp.colorMu.Unlock()
	if n < 2 {
		n = 2
	}
	indx := fp.autoColor
	fp.autoColor = (indx + 1) % n
	if indx >= n {
		indx = n - 1
	}
	if fp.pad != nil && len(fp.pad.Palette) > 3 {
		pi := int(math.Round(float64(indx*(len(fp.pad.Palette)-3)) / float64(n-1)))
		return fp.pad.AddColor(fp.pad.Palette[pi])
	}
	fp.autoColor %= 8
	return plot.ColorIndex(indx%8 + 2)
}
