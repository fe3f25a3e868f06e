// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from gonum/plot:
// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Tick placement follows the Talbot, Lin and Hanrahan algorithm
// described in doi:10.1109/TVCG.2010.130.

package plot

import "math"

// tickEps is the tolerance for comparing tick values.
const tickEps = 100 * 2.0 / (1 << 53)

// niceNumbers are the preferred tick steps, most preferred first.
var niceNumbers = []float64{1, 5, 2, 2.5, 4, 3}

// tickSpacing is a set of evenly spaced ticks.
type tickSpacing struct {
	n     int
	first float64

	// delta is the distance between ticks.
	delta float64

	// q is the nice number of the step, or 0 if the ticks
	// are evenly spread over the range.
	q float64

	// mag is the decimal magnitude of the step.
	mag int

	score float64
}

func (sp tickSpacing) values() []float64 {
	vs := make([]float64, sp.n)
	for i := range vs {
		vs[i] = sp.first + float64(i)*sp.delta
	}
	return vs
}

// niceTicks returns about want ticks that all lie within [lo, hi],
// chosen for simple steps, good coverage of the range and a density
// close to want.
func niceTicks(lo, hi float64, want int) tickSpacing {
	if hi-lo < tickEps {
		return evenTicks(lo, hi, want)
	}
	best := tickSpacing{score: -2}
	for skip := 1; ; skip++ {
		for qi := range niceNumbers {
			sm := simplicityBound(qi, skip)
			if tickScore(sm, 1, 1) < best.score {
				if best.n == 0 {
					return evenTicks(lo, hi, want)
				}
				return best
			}
			best = scanSteps(lo, hi, want, qi, skip, best)
		}
	}
}

// scanSteps scores the tick counts and magnitudes for nice number qi
// with given skip, returning the best of them and best.
func scanSteps(lo, hi float64, want, qi, skip int, best tickSpacing) tickSpacing {
	q := niceNumbers[qi]
	sm := simplicityBound(qi, skip)
	for have := 2; ; have++ {
		dm := densityBound(have, want)
		if tickScore(sm, 1, dm) < best.score {
			return best
		}
		delta := (hi - lo) / float64(have+1) / float64(skip) / q
		for mag := int(math.Ceil(math.Log10(delta))); mag < 309; mag++ {
			step := float64(skip) * q * math.Pow10(mag)
			span := step * float64(have-1)
			if tickScore(sm, coverageBound(lo, hi, span), dm) < best.score {
				break
			}
			minStart := (math.Floor(hi/step) - float64(have-1)) * float64(skip)
			maxStart := math.Ceil(hi/step) * float64(skip)
			for start := minStart; start <= maxStart && start != start-1; start++ {
				first := start * step / float64(skip)
				last := first + span
				if first < lo || hi < last {
					continue
				}
				score := tickScore(simplicity(qi, skip, first, last, step),
					coverage(lo, hi, first, last), density(have, want, lo, hi, first, last))
				if score > best.score {
					best = tickSpacing{n: have, first: first, delta: step, q: q, mag: mag, score: score}
				}
			}
		}
	}
}

// evenTicks spreads want ticks evenly from lo to hi.
func evenTicks(lo, hi float64, want int) tickSpacing {
	sp := tickSpacing{n: want, first: lo, delta: (hi - lo) / float64(want-1)}
	mag := math.Inf(1)
	for _, v := range []float64{lo, hi} {
		if v != 0 {
			mag = math.Min(mag, math.Floor(math.Log10(math.Abs(v))))
		}
	}
	if !math.IsInf(mag, 1) {
		sp.mag = int(mag)
	}
	return sp
}

// tickScore weighs simplicity s, coverage c and density d.
// Legibility is not measured and always scores 1.
func tickScore(s, c, d float64) float64 {
	return 0.25*s + 0.2*c + 0.5*d + 0.05
}

func simplicity(qi, skip int, first, last, step float64) float64 {
	zero := 0.0
	m := math.Mod(first, step)
	if (m < tickEps || step-m < tickEps) && first <= 0 && 0 <= last {
		zero = 1
	}
	return 1 - float64(qi)/float64(len(niceNumbers)-1) - float64(skip) + zero
}

func simplicityBound(qi, skip int) float64 {
	return 2 - float64(qi)/float64(len(niceNumbers)-1) - float64(skip)
}

// coverage is 1 less the mean squared distance between the extreme
// ticks and the ends of the range, relative to a tenth of the range.
func coverage(lo, hi, first, last float64) float64 {
	r := 0.1 * (hi - lo)
	dl, dh := lo-first, hi-last
	return 1 - 0.5*(dl*dl+dh*dh)/(r*r)
}

func coverageBound(lo, hi, span float64) float64 {
	r := hi - lo
	if span <= r {
		return 1
	}
	h := 0.5 * (span - r)
	r *= 0.1
	return 1 - (h*h)/(r*r)
}

// density compares the number of ticks per unit with that of want ticks.
func density(have, want int, lo, hi, first, last float64) float64 {
	rho := float64(have-1) / (last - first)
	target := float64(want-1) / (math.Max(last, hi) - math.Min(lo, first))
	if d := rho / target; d >= 1 {
		return 2 - d
	}
	return 2 - target/rho
}

func densityBound(have, want int) float64 {
	if have < want {
		return 1
	}
	return 2 - float64(have-1)/float64(want-1)
}
