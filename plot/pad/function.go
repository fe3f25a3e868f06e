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

// FuncPainter draws a [plot.Func].
type FuncPainter struct {
	painter.Base

	fn    *plot.Func
	drawn plot.Func
}

// DrawFunc draws the function obj on pad pd.
func DrawFunc(ctx context.Context, pd painter.Pad, obj plot.Object, opt string) (painter.Painter, error) {
	fn, ok := obj.(*plot.Func)
	if !ok {
		return nil, fmt.Errorf("pad: cannot draw %T as function", obj)
	}
	if fn.Xmax < fn.Xmin {
		return nil, fmt.Errorf("pad: function %q has invalid range [%g, %g]", fn.Name, fn.Xmin, fn.Xmax)
	}
	fp := &FuncPainter{Base: painter.NewBase(opt), fn: fn}
	if err := fp.snapshot(); err != nil {
		return nil, err
	}
	pd.AddPrimitive(fp)
	return fp, nil
}

func (fp *FuncPainter) Object() plot.Object { return fp.fn }

func (fp *FuncPainter) snapshot() error {
	fp.drawn = plot.Func{}
	if err := copier.CopyWithOption(&fp.drawn, fp.fn, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("pad: copying function: %w", err)
	}
	return nil
}

// Update re-binds the painter to function obj,
// returning true if it differs from the drawn one.
func (fp *FuncPainter) Update(obj plot.Object) bool {
	fn, ok := obj.(*plot.Func)
	if !ok {
		return false
	}
	changed := !fn.Equal(&fp.drawn)
	fp.fn = fn
	if changed {
		errors.Log(fp.snapshot())
	}
	return changed
}

func (fp *FuncPainter) Cleanup() {
	fp.fn = nil
}
