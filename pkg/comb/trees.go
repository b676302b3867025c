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

// Log-depth structural generators, all expressed in terms of the single
// Tree combinator: implement tree reduction once, derive popcount,
// priority/onehot select, leading/trailing bit counts and floor/ceil
// log2 from it.
package comb

import (
	"github.com/wiltonlazary/hardcaml/pkg/gates"
	"github.com/wiltonlazary/hardcaml/pkg/util/math"
)

// DefaultBranchingFactor is used by every tree-shaped operator below when
// the caller does not supply one explicitly.
const DefaultBranchingFactor = 2

// Tree partitions inputs into chunks of size arity, applies f to each
// chunk, and repeats on the resulting (shorter) list until one element
// remains. Depth = ceil(log_arity(len(inputs))). Panics on an empty
// input list.
func Tree[E any](arity uint, f func(chunk []E) E, inputs []E) E {
	if len(inputs) == 0 {
		gates.Fail("tree: empty input list")
	}

	if arity < 2 {
		arity = 2
	}

	level := inputs

	for len(level) > 1 {
		var next []E

		for i := 0; i < len(level); i += int(arity) {
			end := i + int(arity)
			if end > len(level) {
				end = len(level)
			}

			next = append(next, f(level[i:end]))
		}

		level = next
	}

	return level[0]
}

// Reduce left-folds f over xs; panics on an empty list.
func Reduce[E any](f func(a, b E) E, xs []E) E {
	if len(xs) == 0 {
		gates.Fail("reduce: empty input list")
	}

	acc := xs[0]
	for _, x := range xs[1:] {
		acc = f(acc, x)
	}

	return acc
}

// PrioritySelect returns the (valid, data) of the first case whose valid
// is 1, scanning cases in list order, built as a tree of branching
// factor branchingFactor combining children "pick-left-if-valid-else-
// right-with-combined-valid".
func (c Comb[T]) PrioritySelect(branchingFactor uint, cases []Valid[T]) Valid[T] {
	combine := func(chunk []Valid[T]) Valid[T] {
		return Reduce(func(a, b Valid[T]) Valid[T] {
			return Valid[T]{
				IsValid: c.Or(a.IsValid, b.IsValid),
				Data:    c.Mux2(a.IsValid, a.Data, b.Data),
			}
		}, chunk)
	}

	return Tree(branchingFactor, combine, cases)
}

// PrioritySelectWithDefault is PrioritySelect but returns the chosen data
// directly, substituting def when no case is valid.
func (c Comb[T]) PrioritySelectWithDefault(branchingFactor uint, def T, cases []Valid[T]) T {
	r := c.PrioritySelect(branchingFactor, cases)

	return c.Mux2(r.IsValid, r.Data, def)
}

// OnehotSelect combines cases by mask-and-merge (OR-of-AND): 0 when no
// case is valid. Callers are expected to hold exactly one condition high
// at a time; if more than one is high the result is their bitwise OR,
// not an arbitrary pick.
func (c Comb[T]) OnehotSelect(branchingFactor uint, cases []PmuxCase[T]) T {
	w := c.Width(cases[0].Data)

	combine := func(chunk []PmuxCase[T]) PmuxCase[T] {
		return Reduce(func(a, b PmuxCase[T]) PmuxCase[T] {
			maskA := c.replicate(a.Cond, w)
			maskB := c.replicate(b.Cond, w)
			data := c.Or(c.And(maskA, a.Data), c.And(maskB, b.Data))

			return PmuxCase[T]{Cond: c.Or(a.Cond, b.Cond), Data: data}
		}, chunk)
	}

	result := Tree(branchingFactor, combine, cases)

	// A lone case reaches the root without passing through combine, so
	// mask once more by the combined condition.
	return c.And(c.replicate(result.Cond, w), result.Data)
}

// Popcount tree-sums the individual bits of x; result width =
// ceil(log2(w+1)).
func (c Comb[T]) Popcount(branchingFactor uint, x T) T {
	w := c.Width(x)
	if w == 0 {
		gates.Fail("popcount: empty signal not permitted")
	}

	outW := math.Width(w + 1)

	bits := make([]T, w)
	for i := uint(0); i < w; i++ {
		bits[i] = c.UResize(c.Bit(x, i), outW)
	}

	return Tree(branchingFactor, func(chunk []T) T {
		return Reduce(func(a, b T) T { return c.Add(a, b) }, chunk)
	}, bits)
}

// IsPow2 is popcount(x) == 1, a 1-bit result.
func (c Comb[T]) IsPow2(branchingFactor uint, x T) T {
	p := c.Popcount(branchingFactor, x)

	return c.EqInt(p, 1)
}

// countRun counts a run of matching bits from one end, used by the four
// leading/trailing operators below. scanMSBFirst selects which end to
// scan from; want selects which bit value counts as "in the run".
func (c Comb[T]) countRun(branchingFactor uint, x T, scanMSBFirst bool, want bool) T {
	w := c.Width(x)
	outW := math.Width(w + 1)

	// valid[i] = true while every bit scanned so far equals `want`;
	// combine left-to-right in scan order, accumulating both the running
	// "still matching" flag and the running count.
	type acc struct {
		stillRunning T // 1 bit
		count        T // outW bits
	}

	items := make([]acc, w)

	for idx := uint(0); idx < w; idx++ {
		var bitIdx uint
		if scanMSBFirst {
			bitIdx = w - 1 - idx
		} else {
			bitIdx = idx
		}

		bit := c.Bit(x, bitIdx)

		var matches T
		if want {
			matches = bit
		} else {
			matches = c.Not(bit)
		}

		items[idx] = acc{stillRunning: matches, count: c.UResize(matches, outW)}
	}

	combined := Tree(branchingFactor, func(chunk []acc) acc {
		return Reduce(func(a, b acc) acc {
			// b only contributes once a's run is unbroken through to b.
			bCount := c.Mux2(a.stillRunning, b.count, c.Zero(outW))
			bRun := c.And(a.stillRunning, b.stillRunning)

			return acc{stillRunning: bRun, count: c.Add(a.count, bCount)}
		}, chunk)
	}, items)

	return combined.count
}

// LeadingZeros counts the run of 0 bits from the MSB; result width =
// ceil(log2(w+1)).
func (c Comb[T]) LeadingZeros(branchingFactor uint, x T) T {
	return c.countRun(branchingFactor, x, true, false)
}

// LeadingOnes counts the run of 1 bits from the MSB.
func (c Comb[T]) LeadingOnes(branchingFactor uint, x T) T {
	return c.countRun(branchingFactor, x, true, true)
}

// TrailingZeros counts the run of 0 bits from the LSB.
func (c Comb[T]) TrailingZeros(branchingFactor uint, x T) T {
	return c.countRun(branchingFactor, x, false, false)
}

// TrailingOnes counts the run of 1 bits from the LSB.
func (c Comb[T]) TrailingOnes(branchingFactor uint, x T) T {
	return c.countRun(branchingFactor, x, false, true)
}

// ceilLog2Width returns ceil(log2(w)), the number of bits needed to
// index w distinct positions. math.Width computes the same value for
// w>=2 but floors at 1 for its own "count of items" use case (see
// pkg/util/math.Width's doc comment); a 1-bit domain has only one
// position and needs 0 selector bits, not 1, so that floor is undone
// here.
func ceilLog2Width(w uint) uint {
	if w <= 1 {
		return 0
	}

	return math.Width(w)
}

// FloorLog2 returns the index of the highest set bit, invalid when x=0;
// result width = ceil(log2(w)).
func (c Comb[T]) FloorLog2(branchingFactor uint, x T) Valid[T] {
	w := c.Width(x)
	outW := ceilLog2Width(w)

	lz := c.LeadingZeros(branchingFactor, x)
	// index of msb = w - 1 - leading_zeros
	idx := c.Sub(c.UResize(c.intConst(int64(w-1), c.Width(lz)), c.Width(lz)), lz)
	valid := c.Not(c.EqInt(x, 0))

	return Valid[T]{IsValid: valid, Data: c.UResize(idx, outW)}
}

// CeilLog2 is floor_log2(x-1)+1, or 0 when x=1; invalid when x=0.
// Result width = ceil(log2(w))+1, so that the largest result (w, for
// x > 2^(w-1)) fits; 0 for a 1-bit input.
func (c Comb[T]) CeilLog2(branchingFactor uint, x T) Valid[T] {
	w := c.Width(x)
	outW := ceilLog2Width(w)

	isOne := c.EqInt(x, 1)
	isZero := c.EqInt(x, 0)

	// A 1-bit domain only ever needs 0 selector bits, so the "+1" below
	// would otherwise have to add at width 0, which no backend's Add is
	// required to support.
	if outW == 0 {
		return Valid[T]{IsValid: c.Not(isZero), Data: c.Empty()}
	}

	xm1 := c.Sub(x, c.One(w))
	fl := c.FloorLog2(branchingFactor, xm1)

	plusOne := c.AddInt(c.Ue(fl.Data), 1)
	data := c.Mux2(isOne, c.Zero(outW+1), plusOne)

	return Valid[T]{IsValid: c.Not(isZero), Data: data}
}
