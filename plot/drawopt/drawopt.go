// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drawopt parses draw option strings, such as "A3DPFC;LOGY".
// Options are case-sensitive tokens that can appear in any order;
// each checked token is consumed, and whatever remains can be passed
// on to the painters of sub-elements.
package drawopt

import "strings"

// PadOptions are the draw options that configure the frame of a pad,
// in the order in which they are checked. Longer tokens come before
// their prefixes, so that LOGXY is not consumed as LOGX.
var PadOptions = []string{
	"USE_PAD_TITLE",
	"LOGXY", "LOGX", "LOGY", "LOGZ", "LOGV", "LOG",
	"GRIDXY", "GRIDX", "GRIDY",
	"TICKXY", "TICKX", "TICKY", "TICKZ",
	"FB", "GRAYSCALE",
}

// Options is a draw option string being parsed.
type Options struct {
	opt string
}

// New returns the Options for given option string.
func New(opt string) *Options {
	return &Options{opt: strings.TrimSpace(opt)}
}

// Check returns true if the option string contains name,
// removing its first occurrence.
func (o *Options) Check(name string) bool {
	i := strings.Index(o.opt, name)
	if i < 0 {
		return false
	}
	o.opt = o.opt[:i] + o.opt[i+len(name):]
	return true
}

// PadOptions checks all the [PadOptions], returning those present,
// each prefixed by a ';' separator.
func (o *Options) PadOptions() string {
	var b strings.Builder
	for _, name := range PadOptions {
		if o.Check(name) {
			b.WriteString(";" + name)
		}
	}
	return b.String()
}

// Remain returns the remaining, not yet consumed, options.
func (o *Options) Remain() string {
	return strings.TrimSpace(o.opt)
}

// Empty returns true if no options remain.
func (o *Options) Empty() bool {
	return o.Remain() == ""
}

// Has reports whether the option string s contains all of the tokens,
// without consuming anything.
func Has(s string, tokens ...string) bool {
	for _, t := range tokens {
		if !strings.Contains(s, t) {
			return false
		}
	}
	return true
}
