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

// Package bits implements the concrete Bits backend: a signal IS the bit
// pattern. Every operator is total and every conversion to an integer or
// string form is defined. Storage is a little-endian []uint64 word array
// with a separate width field, rather than one bool per bit.
package bits

import (
	"fmt"

	"github.com/wiltonlazary/hardcaml/pkg/gates"
)

// Value is a concrete fixed-width bit vector. Bit 0 is the LSB. Words are
// little-endian: words[0] holds bits [0:64), words[1] bits [64:128), etc.
// Any bits beyond width within the final word are always zero.
type Value struct {
	words []uint64
	width uint
}

// Width returns the bit count of v.
func (v Value) Width() uint { return v.width }

// IsEmpty reports whether v has zero width.
func (v Value) IsEmpty() bool { return v.width == 0 }

// Bit returns the value of bit i (0 = LSB).
func (v Value) Bit(i uint) bool {
	if i >= v.width {
		gates.Fail("bit index %d out of range for width %d", i, v.width)
	}

	return v.words[i/64]&(uint64(1)<<(i%64)) != 0
}

func wordCount(w uint) uint {
	if w == 0 {
		return 0
	}

	return (w-1)/64 + 1
}

// fromWords returns a Value of the given width built from words, with
// any bits beyond width masked off.
func fromWords(words []uint64, width uint) Value {
	v := Value{words: words, width: width}
	v.trim()

	return v
}

// trim clears any bits beyond width in the final word.
func (v *Value) trim() {
	n := wordCount(v.width)

	for uint(len(v.words)) < n {
		v.words = append(v.words, 0)
	}

	v.words = v.words[:n]

	if v.width == 0 {
		return
	}

	rem := v.width % 64
	if rem != 0 {
		v.words[n-1] &= (uint64(1) << rem) - 1
	}
}

// Zero returns the all-zero signal of the given width.
func Zero(w uint) Value {
	return fromWords(make([]uint64, wordCount(w)), w)
}

// FromBits constructs a constant from an MSB-first bit slice.
func FromBits(msbFirst []bool) Value {
	w := uint(len(msbFirst))
	v := Zero(w)

	for i, b := range msbFirst {
		if b {
			idx := w - 1 - uint(i)
			v.words[idx/64] |= uint64(1) << (idx % 64)
		}
	}

	return v
}

// ToBitsMSB returns the MSB-first bool slice for v.
func (v Value) ToBitsMSB() []bool {
	out := make([]bool, v.width)

	for i := uint(0); i < v.width; i++ {
		out[v.width-1-i] = v.Bit(i)
	}

	return out
}

// Gates is the gates.Gates[Value] implementation for the Bits backend.
type Gates struct{}

var _ gates.Gates[Value] = Gates{}

// Empty returns the width-0 signal.
func (Gates) Empty() Value { return Zero(0) }

// Const parses a literal per gates.ParseConst.
func (Gates) Const(literal string) Value { return FromBits(gates.ParseConst(literal)) }

// ConstOfBits builds a constant from an MSB-first bit slice.
func (Gates) ConstOfBits(msbFirst []bool) Value { return FromBits(msbFirst) }

// Width returns the width of x.
func (Gates) Width(x Value) uint { return x.width }

// IsEmpty reports whether x has width 0.
func (Gates) IsEmpty(x Value) bool { return x.IsEmpty() }

// Concat joins non-empty signals MSB-first.
func (g Gates) Concat(xs []Value) Value {
	if len(xs) == 0 {
		gates.Fail("concat: empty input list")
	}

	for _, x := range xs {
		if x.IsEmpty() {
			gates.Fail("concat: empty signal not permitted (use ConcatE)")
		}
	}

	total := uint(0)
	for _, x := range xs {
		total += x.width
	}

	out := Zero(total)
	pos := uint(0)
	// xs[0] is MSBs, so lay down from the end backwards.
	for i := len(xs) - 1; i >= 0; i-- {
		x := xs[i]
		for b := uint(0); b < x.width; b++ {
			if x.Bit(b) {
				idx := pos + b
				out.words[idx/64] |= uint64(1) << (idx % 64)
			}
		}

		pos += x.width
	}

	return out
}

// ConcatE filters empty signals before concatenating.
func (g Gates) ConcatE(xs []Value) Value {
	filtered := make([]Value, 0, len(xs))

	for _, x := range xs {
		if !x.IsEmpty() {
			filtered = append(filtered, x)
		}
	}

	if len(filtered) == 0 {
		return g.Empty()
	}

	return g.Concat(filtered)
}

// Select returns bits [hi:lo].
func (Gates) Select(x Value, hi, lo uint) Value {
	if x.IsEmpty() {
		gates.Fail("select: empty signal not permitted (use SelectE)")
	}

	if lo > hi || hi >= x.width {
		gates.Fail("select: range [%d:%d] out of bounds for width %d", hi, lo, x.width)
	}

	w := hi - lo + 1
	out := Zero(w)

	for i := uint(0); i < w; i++ {
		if x.Bit(lo + i) {
			out.words[i/64] |= uint64(1) << (i % 64)
		}
	}

	return out
}

// SelectE returns Empty() when the range is out of bounds.
func (g Gates) SelectE(x Value, hi, lo uint) Value {
	if x.IsEmpty() || lo > hi || hi >= x.width {
		return g.Empty()
	}

	return g.Select(x, hi, lo)
}

// Name is a no-op on concrete bits: naming carries no runtime weight.
func (Gates) Name(x Value, _ string) Value { return x }

func binop(a, b Value, f func(x, y uint64) uint64) Value {
	if a.width != b.width {
		gates.Fail("width mismatch: %d vs %d", a.width, b.width)
	}

	out := Zero(a.width)
	for i := range out.words {
		out.words[i] = f(a.words[i], b.words[i])
	}

	out.trim()

	return out
}

// And is bitwise AND.
func (Gates) And(a, b Value) Value { return binop(a, b, func(x, y uint64) uint64 { return x & y }) }

// Or is bitwise OR.
func (Gates) Or(a, b Value) Value { return binop(a, b, func(x, y uint64) uint64 { return x | y }) }

// Xor is bitwise XOR.
func (Gates) Xor(a, b Value) Value { return binop(a, b, func(x, y uint64) uint64 { return x ^ y }) }

// Not is bitwise complement.
func (Gates) Not(x Value) Value {
	out := Zero(x.width)
	for i := range out.words {
		out.words[i] = ^x.words[i]
	}

	out.trim()

	return out
}

// Equal is bit-for-bit, width-for-width equality.
func (Gates) Equal(a, b Value) bool {
	if a.width != b.width {
		return false
	}

	for i := range a.words {
		if a.words[i] != b.words[i] {
			return false
		}
	}

	return true
}

// ToInt returns the unsigned value of x; always ok=true on this backend.
func (Gates) ToInt(x Value) (uint64, bool) {
	if x.width > 64 {
		// truncates to the low 64 bits; use ToBstr for the full value.
		return x.words[0], true
	}

	if len(x.words) == 0 {
		return 0, true
	}

	return x.words[0], true
}

// ToSInt returns the signed value of x, sign-extended or truncated to 64
// bits; always ok=true on this backend.
func (Gates) ToSInt(x Value) (int64, bool) {
	return gates.BitsToInt64Signed(x.ToBitsMSB()), true
}

// ToInt32 returns the low 32 bits of the unsigned value of x.
func (Gates) ToInt32(x Value) (uint32, bool) {
	return gates.BitsToUint32(x.ToBitsMSB()), true
}

// ToInt64 returns the unsigned value of x, truncated to 64 bits.
func (g Gates) ToInt64(x Value) (uint64, bool) {
	return g.ToInt(x)
}

// ToSInt32 returns the signed value of x, sign-extended or truncated to
// 32 bits.
func (Gates) ToSInt32(x Value) (int32, bool) {
	return gates.BitsToInt32Signed(x.ToBitsMSB()), true
}

// ToSInt64 returns the signed value of x, sign-extended or truncated to
// 64 bits (same as ToSInt).
func (g Gates) ToSInt64(x Value) (int64, bool) {
	return g.ToSInt(x)
}

// ToBstr renders x as an MSB-first binary string.
func (Gates) ToBstr(x Value) (string, bool) {
	return bitsToBstr(x), true
}

func bitsToBstr(x Value) string {
	b := make([]byte, x.width)

	for i := uint(0); i < x.width; i++ {
		if x.Bit(x.width - 1 - i) {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}

	return string(b)
}

// String implements fmt.Stringer for debugging/display.
func (v Value) String() string {
	return fmt.Sprintf("%d'b%s", v.width, bitsToBstr(v))
}
