// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package comb

import "github.com/wiltonlazary/hardcaml/pkg/gates"

// Mux selects among xs by sel: xs must all share a width, and len(xs)
// must fit within 2^width(sel); the last element repeats for any
// selector value beyond len(xs)-1.
func (c Comb[T]) Mux(sel T, xs []T) T { return c.P.Mux(sel, xs) }

// Mux2 is a 2-way mux: c ? t : f, implemented as Mux(c, [f, t]).
func (c Comb[T]) Mux2(cond, t, f T) T { return c.Mux(cond, []T{f, t}) }

// MuxInit builds n cases from f(0)..f(n-1) and muxes on sel.
func (c Comb[T]) MuxInit(sel T, n uint, f func(i uint) T) T {
	xs := make([]T, n)
	for i := uint(0); i < n; i++ {
		xs[i] = f(i)
	}

	return c.Mux(sel, xs)
}

// Case is a single (key, value) entry for Cases/Matches.
type Case[T any] struct {
	Key   string
	Value T
}

// Cases compares sel against each literal key in order; the first match
// wins, otherwise def is returned. All keys must parse to sel's width.
func (c Comb[T]) Cases(sel T, def T, cases []Case[T]) T {
	acc := def

	for i := len(cases) - 1; i >= 0; i-- {
		key := c.Const(cases[i].Key)
		hit := c.Eq(sel, key)
		acc = c.Mux2(hit, cases[i].Value, acc)
	}

	return acc
}

// Matches is Cases but values may differ in width; resize widens each
// value (and def, if provided) to the common output width first.
func (c Comb[T]) Matches(resize func(x T, w uint) T, sel T, def *T, cases []Case[T]) T {
	w := uint(0)

	for _, cs := range cases {
		if cw := c.Width(cs.Value); cw > w {
			w = cw
		}
	}

	if def != nil {
		if dw := c.Width(*def); dw > w {
			w = dw
		}
	}

	var defResized T
	if def != nil {
		defResized = resize(*def, w)
	} else {
		defResized = c.Zero(w)
	}

	resizedCases := make([]Case[T], len(cases))
	for i, cs := range cases {
		resizedCases[i] = Case[T]{Key: cs.Key, Value: resize(cs.Value, w)}
	}

	return c.Cases(sel, defResized, resizedCases)
}

// PmuxCase pairs a 1-bit condition with a data value for Pmux/Pmuxl/Pmux1h.
type PmuxCase[T any] struct {
	Cond T
	Data T
}

// Pmux returns the data of the first case whose condition is high,
// scanning in list order; def if none match.
func (c Comb[T]) Pmux(cases []PmuxCase[T], def T) T {
	acc := def

	for i := len(cases) - 1; i >= 0; i-- {
		acc = c.Mux2(cases[i].Cond, cases[i].Data, acc)
	}

	return acc
}

// Pmuxl is Pmux with no default; the caller guarantees at most one
// condition is ever high (priority among a one-hot-at-most-one input).
func (c Comb[T]) Pmuxl(cases []PmuxCase[T]) T {
	if len(cases) == 0 {
		gates.Fail("pmuxl: empty case list")
	}

	w := c.Width(cases[0].Data)

	return c.Pmux(cases, c.Zero(w))
}

// Pmux1h combines cases by bitwise OR of (cond-replicated AND data): a
// genuine onehot select, 0 when no case is valid, unspecified when more
// than one is.
func (c Comb[T]) Pmux1h(cases []PmuxCase[T]) T {
	if len(cases) == 0 {
		gates.Fail("pmux1h: empty case list")
	}

	w := c.Width(cases[0].Data)
	acc := c.Zero(w)

	for _, cs := range cases {
		mask := c.replicate(cs.Cond, w)
		acc = c.Or(acc, c.And(mask, cs.Data))
	}

	return acc
}
