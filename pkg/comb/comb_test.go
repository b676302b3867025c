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

import (
	"testing"

	"github.com/wiltonlazary/hardcaml/pkg/bits"
	"github.com/wiltonlazary/hardcaml/pkg/util"
	"github.com/wiltonlazary/hardcaml/pkg/util/assert"
)

func newComb() Comb[bits.Value] {
	return MakeComb(bits.NativePrimitives())
}

func bstr(c Comb[bits.Value], x bits.Value) string {
	s, _ := c.P.Gates.ToBstr(x)
	return s
}

// S1: adder wraps modularly at the source width, but not once widened.
func Test_S1_AdderModularWrap(t *testing.T) {
	c := newComb()

	a := c.Const("1101")
	b := c.Const("0011")
	assert.Equal(t, "0000", bstr(c, c.Add(a, b)))

	a5 := c.UResize(a, 5)
	b5 := c.UResize(b, 5)
	assert.Equal(t, "10000", bstr(c, c.Add(a5, b5)))
}

// S2: mux selects by index, and the final element repeats past the
// explicit list when the selector addresses more than len(xs).
func Test_S2_MuxRepetition(t *testing.T) {
	c := newComb()

	sel := c.Const("2'b10")
	xs := []bits.Value{c.Const("2'b00"), c.Const("2'b01"), c.Const("2'b10"), c.Const("2'b11")}
	assert.Equal(t, "10", bstr(c, c.Mux(sel, xs)))

	xs3 := []bits.Value{c.Const("2'b00"), c.Const("2'b01"), c.Const("2'b10")}
	assert.Equal(t, "10", bstr(c, c.Mux(c.Const("2'b11"), xs3)))
}

// S3: popcount of 10110100 is 4; an 8-bit input needs a 4-bit result to
// hold the all-ones case (popcount = 8).
func Test_S3_Popcount(t *testing.T) {
	c := newComb()

	x := c.Const("10110100")
	p := c.Popcount(2, x)
	assert.Equal(t, uint(4), c.Width(p))
	assert.Equal(t, "0100", bstr(c, p))
}

// S4: gray round-trip on a concrete example.
func Test_S4_BinaryGray(t *testing.T) {
	c := newComb()

	x := c.Const("1011")
	g := c.BinaryToGray(x)
	assert.Equal(t, "1110", bstr(c, g))
	assert.Equal(t, "1011", bstr(c, c.GrayToBinary(g)))
}

// S5: priority_select picks the first valid case in list order.
func Test_S5_PrioritySelect(t *testing.T) {
	c := newComb()

	gnd := c.Const("0")
	vdd := c.Const("1")

	cases := []Valid[bits.Value]{
		{IsValid: gnd, Data: c.Const("8'd7")},
		{IsValid: vdd, Data: c.Const("8'd3")},
		{IsValid: vdd, Data: c.Const("8'd9")},
	}

	r := c.PrioritySelect(2, cases)
	v, _ := c.P.Gates.ToInt(r.IsValid)
	d, _ := c.P.Gates.ToInt(r.Data)
	assert.Equal(t, uint64(1), v)
	assert.Equal(t, uint64(3), d)
}

// S6: floor_log2 of 00101100 is 5 (msb set at index 5), and is invalid
// on an all-zero input.
func Test_S6_FloorLog2(t *testing.T) {
	c := newComb()

	x := c.Const("00101100")
	r := c.FloorLog2(2, x)
	valid, _ := c.P.Gates.ToInt(r.IsValid)
	data, _ := c.P.Gates.ToInt(r.Data)
	assert.Equal(t, uint64(1), valid)
	assert.Equal(t, uint64(5), data)

	zero := c.Const("0")
	rz := c.FloorLog2(2, zero)
	validZ, _ := c.P.Gates.ToInt(rz.IsValid)
	assert.Equal(t, uint64(0), validZ)
}

// A 1-bit domain has only one representable index, so floor_log2/
// ceil_log2 need 0 selector bits, not the 1 bit math.Width would give a
// "count of 1 item" query.
func Test_FloorLog2CeilLog2_OneBitInputNeedsZeroWidthResult(t *testing.T) {
	c := newComb()

	one := c.Const("1")

	fl := c.FloorLog2(2, one)
	assert.Equal(t, uint(0), c.Width(fl.Data))

	validFl, _ := c.P.Gates.ToInt(fl.IsValid)
	assert.Equal(t, uint64(1), validFl)

	cl := c.CeilLog2(2, one)
	assert.Equal(t, uint(0), c.Width(cl.Data))

	validCl, _ := c.P.Gates.ToInt(cl.IsValid)
	assert.Equal(t, uint64(1), validCl)
}

// Popcount and BinaryToOnehot fail on an empty signal instead of
// returning a result.
func Test_Popcount_And_BinaryToOnehot_FailOnEmpty(t *testing.T) {
	c := newComb()

	mustPanic := func(name string, f func()) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("%s: expected panic on empty input", name)
			}
		}()

		f()
	}

	mustPanic("Popcount", func() { c.Popcount(2, c.Empty()) })
	mustPanic("BinaryToOnehot", func() { c.BinaryToOnehot(c.Empty()) })
}

// Property: the output width of a sample of operators matches their
// documented width rule.
func Test_Property_WidthLaw(t *testing.T) {
	c := newComb()

	a := c.Const("4'd5")
	b := c.Const("3'd2")

	assert.Equal(t, uint(7), c.Width(c.UMul(a, b)))
	assert.Equal(t, uint(1), c.Width(c.Eq(a, c.Const("4'd5"))))
	assert.Equal(t, uint(4), c.Width(c.Add(a, c.Const("4'd1"))))
}

// Property: double-resize collapses to a single resize to the final
// width when shrinking monotonically.
func Test_Property_DoubleResize(t *testing.T) {
	c := newComb()

	x := c.Const("8'd200")
	a := c.UResize(c.UResize(x, 6), 4)
	b := c.UResize(x, 4)
	assert.Equal(t, bstr(c, a), bstr(c, b))
}

// Property: concat associativity, bit for bit.
func Test_Property_ConcatAssociative(t *testing.T) {
	c := newComb()

	a, b, d := c.Const("1"), c.Const("01"), c.Const("110")
	left := c.Concat(a, c.Concat(b, d))
	right := c.Concat(a, b, d)
	assert.Equal(t, bstr(c, left), bstr(c, right))
}

// Property: onehot round-trip for a spread of random small-width values.
func Test_Property_OnehotRoundTrip(t *testing.T) {
	c := newComb()

	for _, w := range []uint{1, 2, 3, 4, 5} {
		for _, v := range util.GenerateRandomUints(5, uint(1)<<w) {
			x := c.Const(bitsLit(w, v))
			oh := c.BinaryToOnehot(x)
			back := c.OnehotToBinary(oh)
			assert.Equal(t, bstr(c, x), bstr(c, back), "width %d value %d", w, v)
		}
	}
}

// Property: pmux1h specializes to pmuxl when exactly one condition is 1.
func Test_Property_Pmux1hSpecialization(t *testing.T) {
	c := newComb()

	gnd, vdd := c.Const("0"), c.Const("1")
	cases := []PmuxCase[bits.Value]{
		{Cond: gnd, Data: c.Const("4'd1")},
		{Cond: vdd, Data: c.Const("4'd2")},
		{Cond: gnd, Data: c.Const("4'd3")},
	}

	onehot := c.Pmux1h(cases)
	priority := c.Pmuxl(cases)
	assert.Equal(t, bstr(c, onehot), bstr(c, priority))
}

// Property: sign-extension idempotence.
func Test_Property_SignExtendIdempotent(t *testing.T) {
	c := newComb()

	x := c.Const("4'd5")
	once := c.SResize(x, 8)
	twice := c.SResize(once, 8)
	assert.Equal(t, bstr(c, once), bstr(c, twice))
}

// Property: shift identities (sll by 0, srl by width, sra fill).
func Test_Property_ShiftIdentities(t *testing.T) {
	c := newComb()

	x := c.Const("4'b1010")
	assert.Equal(t, bstr(c, x), bstr(c, c.Sll(x, 0)))
	assert.Equal(t, "0000", bstr(c, c.Srl(x, 4)))
	assert.Equal(t, "1111", bstr(c, c.Sra(x, 3)))
}

// Property: signed compare matches the flip-sign-bit-then-unsigned-
// compare identity directly (rather than re-deriving it).
func Test_Property_SignedCompareViaUnsigned(t *testing.T) {
	c := newComb()

	a := c.Const("4'b1110") // -2
	b := c.Const("4'b0001") // 1

	want := c.ULt(c.flipMSB(a), c.flipMSB(b))
	got := c.SLt(a, b)
	assert.Equal(t, bstr(c, want), bstr(c, got))

	v, _ := c.P.Gates.ToInt(got)
	assert.Equal(t, uint64(1), v) // -2 < 1
}

func bitsLit(w, v uint) string {
	out := make([]byte, w)
	for i := uint(0); i < w; i++ {
		if (v>>(w-1-i))&1 == 1 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}

	return string(out)
}
