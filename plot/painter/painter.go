// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package painter defines the contracts between the painters of
// plot objects and the pads they are drawn on.
//
// A painter draws one [plot.Object] on a [Pad] and keeps a handle to it,
// so that later versions of the object can be re-bound with
// [Painter.Update] without creating a new painter. Painters for the
// different object types are registered by type name with [Register],
// and [Pad.DrawObject] dispatches through that registry.
package painter

import (
	"context"

	"cogentcore.org/mgraph/plot"
	"github.com/google/uuid"
)

// Role is the role of a painter among the primitives of its pad.
type Role int32

const (
	// Normal painters just draw their object.
	Normal Role = iota

	// Primary painters own the frame of the pad, even when
	// the frame is drawn by another, secondary, painter.
	Primary

	// Secondary painters draw on behalf of a primary painter,
	// for example the axis frame of a multigraph.
	Secondary
)

func (r Role) String() string {
	switch r {
	case Primary:
		return "Primary"
	case Secondary:
		return "Secondary"
	}
	return "Normal"
}

// Painter is the handle of a drawn object.
type Painter interface {
	// AsBase returns the [Base] state of the painter.
	AsBase() *Base

	// Object returns the object drawn by the painter.
	Object() plot.Object

	// Update re-binds the painter to a new version of its object,
	// returning true if anything visible changed. It returns false
	// if the object is not of the type handled by the painter.
	Update(obj plot.Object) bool

	// Cleanup releases the painter, without modifying its object.
	Cleanup()
}

// Base is the state shared by all painters, to be embedded in them.
type Base struct {
	// ID uniquely identifies the painter.
	ID string

	// Role of the painter among the primitives of its pad.
	Role Role

	// SecondaryOf names the kind of element a [Secondary]
	// painter draws for its primary, such as "frame".
	SecondaryOf string

	// Option is the draw option the painter was drawn with.
	Option string

	// AutoExec are the commands that were applied to the object
	// by auto-coloring before it was drawn, such as "SetFillColor(2);;".
	// Replaying them on the object reproduces the drawing.
	AutoExec string
}

// NewBase returns a new Base with a unique ID and given option.
func NewBase(opt string) Base {
	return Base{ID: uuid.NewString(), Option: opt}
}

func (b *Base) AsBase() *Base { return b }

// SetSecondary marks the painter as drawing the given kind
// of element for a primary painter.
func (b *Base) SetSecondary(of string) {
	b.Role = Secondary
	b.SecondaryOf = of
}

// Pad is the display surface that painters draw on.
type Pad interface {
	// MainPainter returns the main painter of the pad,
	// which owns the frame, or nil if there is none yet.
	MainPainter() Painter

	// RootView returns the view state of the root pad, or nil if
	// not available. If live is true the current, possibly zoomed,
	// state is returned rather than the stored one.
	RootView(live bool) *plot.View

	// AddPrimitive registers the painter as a primitive of the pad.
	// Adding a painter that is already registered does nothing.
	AddPrimitive(p Painter)

	// FindPainterFor returns the painter of given object, or if obj
	// is nil, of the first object with given name and type name.
	// Empty name or typeName match anything. Returns nil if none.
	FindPainterFor(obj plot.Object, name, typeName string) Painter

	// DrawObject draws the object with the drawer registered
	// for its type name, returning its painter.
	DrawObject(ctx context.Context, obj plot.Object, opt string) (Painter, error)
}

// AutoColorer is implemented by main painters that provide
// automatic colors for the elements drawn in their frame.
type AutoColorer interface {
	// AutoColor returns the next color from the auto-color sequence,
	// for a sequence of n elements in total.
	AutoColor(n int) plot.ColorIndex
}
