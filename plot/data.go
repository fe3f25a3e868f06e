// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32/minmax"
)

var (
	ErrInfinity = errors.New("plot: infinite data point")
	ErrNoData   = errors.New("plot: no data points")
)

// NoZoom is the sentinel value for [MultiGraph.Minimum] and
// [MultiGraph.Maximum] meaning that no explicit bound is set.
const NoZoom = -1111.0

// Object is any drawable data object. Painters and pads
// identify objects by their type name and object name.
type Object interface {
	// TypeName returns the name of the type of object,
	// used to select a drawer for it.
	TypeName() string

	// ObjectName returns the name of this object instance (may be empty).
	ObjectName() string
}

// Values provides a minimal data representation as a slice of float64.
type Values []float64

func (vs Values) Len() int {
	return len(vs)
}

func (vs Values) Float1D(i int) float64 {
	return vs[i]
}

func (vs Values) String1D(i int) string {
	return strconv.FormatFloat(vs[i], 'g', -1, 64)
}

// Range updates given Range with the non-NaN values.
func (vs Values) Range(rng *minmax.F64) {
	for _, v := range vs {
		if math.IsNaN(v) {
			continue
		}
		rng.FitValInRange(v)
	}
}

// CheckFloats returns an error if any of the arguments are Infinity,
// or if there are no non-NaN data points available for plotting.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// CopyValues returns a copy of the given values, or an error if there
// are no values, or if one of them is Infinity.
// NaN values are kept, as they mark gaps in a graph.
func CopyValues(vs []float64) (Values, error) {
	if len(vs) == 0 {
		return nil, ErrNoData
	}
	if err := CheckFloats(vs...); err != nil {
		return nil, err
	}
	cpy := make(Values, len(vs))
	copy(cpy, vs)
	return cpy, nil
}

// IsZoom returns true if v is an explicit zoom bound, i.e., not [NoZoom].
func IsZoom(v float64) bool {
	return v != NoZoom
}
