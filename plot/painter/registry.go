// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package painter

import (
	"context"
	"fmt"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/mgraph/plot"
)

// ErrNoDrawer is returned when no drawer is registered for a type.
var ErrNoDrawer = errors.New("painter: no drawer registered for type")

// DrawFunc draws obj on pad pd with given draw option,
// returning its painter. A nil painter without error means
// that nothing was drawn.
type DrawFunc func(ctx context.Context, pd Pad, obj plot.Object, opt string) (Painter, error)

// GraphDrawFunc draws a single graph. depth is a stacking hint
// for 3D drawing: graphs with lower depth are nearer to the viewer.
type GraphDrawFunc func(ctx context.Context, pd Pad, gr *plot.Graph, opt string, depth int) (Painter, error)

var (
	drawersMu    sync.RWMutex
	drawers      = map[string]DrawFunc{}
	graphDrawers = map[string]GraphDrawFunc{}
)

// Register registers the drawer for objects with given type name,
// replacing any existing one.
func Register(typeName string, fn DrawFunc) {
	drawersMu.Lock()
	drawers[typeName] = fn
	drawersMu.Unlock()
}

// DrawerFor returns the drawer registered for given type name.
func DrawerFor(typeName string) (DrawFunc, error) {
	drawersMu.RLock()
	fn, ok := drawers[typeName]
	drawersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoDrawer, typeName)
	}
	return fn, nil
}

// RegisterGraph registers the depth-aware drawer for graphs with
// given type name, replacing any existing one.
func RegisterGraph(typeName string, fn GraphDrawFunc) {
	drawersMu.Lock()
	graphDrawers[typeName] = fn
	drawersMu.Unlock()
}

// GraphDrawerFor returns the graph drawer registered for given type name.
func GraphDrawerFor(typeName string) (GraphDrawFunc, error) {
	drawersMu.RLock()
	fn, ok := graphDrawers[typeName]
	drawersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrNoDrawer, typeName)
	}
	return fn, nil
}

// Draw draws obj on pd using the drawer registered for its type.
func Draw(ctx context.Context, pd Pad, obj plot.Object, opt string) (Painter, error) {
	fn, err := DrawerFor(obj.TypeName())
	if err != nil {
		return nil, err
	}
	return fn(ctx, pd, obj, opt)
}
