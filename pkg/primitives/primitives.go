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

// Package primitives synthesizes the mid-level arithmetic/comparison
// layer from a Gates implementation alone: MakePrimitives is the
// slow-but-correct reference construction. A backend may instead build a
// Primitives value with some or all fields hand-written (see pkg/bits
// for a native override) and feed that to comb.MakeComb.
package primitives

import "github.com/wiltonlazary/hardcaml/pkg/gates"

// Primitives bundles the Gates layer together with the seven synthesized
// (or natively overridden) arithmetic and comparison operators.
type Primitives[T any] struct {
	Gates gates.Gates[T]
	// Mux requires len(xs) in [2, 2^width(sel)], all xs equal width; when
	// len(xs) < 2^width(sel) the last element stands in for the missing
	// indices.
	Mux func(sel T, xs []T) T
	// Add, Sub are equal-width, width-preserving, modular (no overflow
	// extension).
	Add func(a, b T) T
	Sub func(a, b T) T
	// UMul, SMul: output width = width(a) + width(b).
	UMul func(a, b T) T
	SMul func(a, b T) T
	// Eq: equal-width inputs, 1-bit output.
	Eq func(a, b T) T
	// ULt: equal-width inputs, 1-bit output, unsigned comparison.
	ULt func(a, b T) T
}

// MakePrimitives synthesizes Mux/Add/Sub/UMul/SMul/Eq/ULt from g alone:
// an address-decoded AND-OR mux tree, a ripple-carry adder, subtract as
// a + ~b + 1, shift-add multiply, and subtract-and-inspect-borrow
// compare.
func MakePrimitives[T any](g gates.Gates[T]) Primitives[T] {
	p := Primitives[T]{Gates: g}

	p.Mux = func(sel T, xs []T) T { return mux(g, sel, xs) }
	p.Add = func(a, b T) T { return rippleAdd(g, a, b, false) }
	p.Sub = func(a, b T) T { return sub(g, a, b) }
	p.UMul = func(a, b T) T { return umul(g, a, b) }
	p.SMul = func(a, b T) T { return smul(g, a, b) }
	p.Eq = func(a, b T) T { return eq(g, a, b) }
	p.ULt = func(a, b T) T { return ult(g, a, b) }

	return p
}

func one[T any](g gates.Gates[T]) T { return g.Const("1") }

// mux implements address-decoded selection: for each candidate index i,
// AND its data with the equality-of-sel-to-i decode line, then OR all
// the masked candidates together.
func mux[T any](g gates.Gates[T], sel T, xs []T) T {
	n := len(xs)
	if n < 2 {
		gates.Fail("mux: requires at least 2 inputs, got %d", n)
	}

	w := g.Width(sel)
	maxN := uint64(1) << w

	if uint64(n) > maxN {
		gates.Fail("mux: %d inputs exceeds 2^%d addressable by selector", n, w)
	}

	dataWidth := g.Width(xs[0])
	for _, x := range xs[1:] {
		if g.Width(x) != dataWidth {
			gates.Fail("mux: all inputs must share width, got %d and %d", dataWidth, g.Width(x))
		}
	}

	last := xs[n-1]

	var acc T

	for i := uint64(0); i < maxN; i++ {
		var data T
		if i < uint64(n) {
			data = xs[i]
		} else {
			data = last
		}

		decode := decodeEquals(g, sel, i, w)
		mask := replicate(g, decode, dataWidth)
		masked := g.And(mask, data)

		if i == 0 {
			acc = masked
		} else {
			acc = g.Or(acc, masked)
		}
	}

	return acc
}

// decodeEquals builds a single-bit signal high iff sel == literal value i.
func decodeEquals[T any](g gates.Gates[T], sel T, i uint64, w uint) T {
	lit := constOfUint(g, i, w)
	return eq(g, sel, lit)
}

// replicate stretches a 1-bit signal to w bits, all equal to the bit.
func replicate[T any](g gates.Gates[T], bit T, w uint) T {
	xs := make([]T, w)
	for i := range xs {
		xs[i] = bit
	}

	return g.Concat(xs)
}

// constOfUint builds a w-bit unsigned constant from a uint64 value.
func constOfUint[T any](g gates.Gates[T], v uint64, w uint) T {
	bitsMSB := make([]bool, w)

	for i := uint(0); i < w; i++ {
		bitsMSB[w-1-i] = (v>>i)&1 == 1
	}

	return g.ConstOfBits(bitsMSB)
}

// fullAdder returns (sum, carryOut) for single-bit inputs a, b, cin.
func fullAdder[T any](g gates.Gates[T], a, b, cin T) (T, T) {
	axb := g.Xor(a, b)
	sum := g.Xor(axb, cin)
	carry := g.Or(g.And(axb, cin), g.And(a, b))

	return sum, carry
}

// rippleAdd implements a ripple-carry adder/subtractor over equal-width
// operands. When invert is true, b is complemented and the carry-in
// seeded with 1, i.e. a + ~b + 1 = a - b.
func rippleAdd[T any](g gates.Gates[T], a, b T, invert bool) T {
	w := g.Width(a)
	if w != g.Width(b) {
		gates.Fail("add/sub: width mismatch: %d vs %d", w, g.Width(b))
	}

	if invert {
		b = g.Not(b)
	}

	carry := boolConst(g, invert)
	sums := make([]T, w)

	for i := uint(0); i < w; i++ {
		ai := g.Select(a, i, i)
		bi := g.Select(b, i, i)

		var s T
		s, carry = fullAdder(g, ai, bi, carry)
		sums[w-1-i] = s
	}

	return g.Concat(sums)
}

func boolConst[T any](g gates.Gates[T], v bool) T {
	if v {
		return g.Const("1")
	}

	return g.Const("0")
}

func sub[T any](g gates.Gates[T], a, b T) T {
	return rippleAdd(g, a, b, true)
}

// umul implements unsigned shift-add multiplication: output width =
// width(a) + width(b).
func umul[T any](g gates.Gates[T], a, b T) T {
	wa := g.Width(a)
	wb := g.Width(b)
	total := wa + wb

	zeroA := zeroOfWidth(g, total)
	acc := zeroA

	aExt := uresizeUnsigned(g, a, total)

	for i := uint(0); i < wb; i++ {
		bi := g.Select(b, i, i)
		mask := replicate(g, bi, total)
		shifted := shiftLeftConst(g, aExt, i, total)
		term := g.And(mask, shifted)
		acc = rippleAdd(g, acc, term, false)
	}

	return acc
}

// smul implements signed (two's complement) multiply by shift-add: a is
// sign-extended to the output width, each partial product a<<i selected
// by bit i of b is added, except the one selected by b's MSB, which is
// subtracted because that bit carries weight -2^(wb-1) in two's
// complement. All arithmetic is modulo 2^(wa+wb).
func smul[T any](g gates.Gates[T], a, b T) T {
	wa := g.Width(a)
	wb := g.Width(b)
	total := wa + wb

	aExt := sresizeSigned(g, a, total)
	acc := zeroOfWidth(g, total)

	for i := uint(0); i < wb; i++ {
		bi := g.Select(b, i, i)
		mask := replicate(g, bi, total)

		if i == wb-1 {
			// MSB of a two's-complement multiplicand contributes
			// negatively: subtract instead of add.
			shifted := shiftLeftConst(g, aExt, i, total)
			masked := g.And(mask, shifted)
			acc = rippleAdd(g, acc, masked, true)
		} else {
			shifted := shiftLeftConst(g, aExt, i, total)
			masked := g.And(mask, shifted)
			acc = rippleAdd(g, acc, masked, false)
		}
	}

	return acc
}

func zeroOfWidth[T any](g gates.Gates[T], w uint) T {
	return constOfUint(g, 0, w)
}

// uresizeUnsigned zero-extends/truncates x to width w (local helper to
// avoid importing comb, which depends on this package).
func uresizeUnsigned[T any](g gates.Gates[T], x T, w uint) T {
	cur := g.Width(x)

	switch {
	case w == cur:
		return x
	case w < cur:
		return g.Select(x, w-1, 0)
	default:
		pad := zeroOfWidth(g, w-cur)
		return g.Concat([]T{pad, x})
	}
}

func sresizeSigned[T any](g gates.Gates[T], x T, w uint) T {
	cur := g.Width(x)

	switch {
	case w == cur:
		return x
	case w < cur:
		return g.Select(x, w-1, 0)
	default:
		msb := g.Select(x, cur-1, cur-1)
		pad := replicate(g, msb, w-cur)

		return g.Concat([]T{pad, x})
	}
}

// shiftLeftConst shifts x left by n bits within a result of width w,
// zero-filling from the LSB and truncating at the MSB.
func shiftLeftConst[T any](g gates.Gates[T], x T, n uint, w uint) T {
	if n == 0 {
		return uresizeUnsigned(g, x, w)
	}

	if n >= w {
		return zeroOfWidth(g, w)
	}

	keep := uresizeUnsigned(g, x, w-n)
	low := zeroOfWidth(g, n)

	return g.Concat([]T{keep, low})
}

func eq[T any](g gates.Gates[T], a, b T) T {
	w := g.Width(a)
	if w != g.Width(b) {
		gates.Fail("eq: width mismatch: %d vs %d", w, g.Width(b))
	}

	xnor := g.Not(g.Xor(a, b))
	// AND-reduce xnor across all bits.
	acc := g.Select(xnor, 0, 0)

	for i := uint(1); i < w; i++ {
		acc = g.And(acc, g.Select(xnor, i, i))
	}

	return acc
}

// ult implements unsigned less-than via subtract-and-inspect-borrow: a <
// b iff a - b borrows, which (for a ripple subtractor implemented as a +
// ~b + 1) is the complement of the final carry out.
func ult[T any](g gates.Gates[T], a, b T) T {
	w := g.Width(a)
	if w != g.Width(b) {
		gates.Fail("ult: width mismatch: %d vs %d", w, g.Width(b))
	}

	bNot := g.Not(b)
	carry := one(g)

	for i := uint(0); i < w; i++ {
		ai := g.Select(a, i, i)
		bi := g.Select(bNot, i, i)
		_, carry = fullAdder(g, ai, bi, carry)
	}

	return g.Not(carry)
}
