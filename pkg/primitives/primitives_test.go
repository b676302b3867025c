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
package primitives_test

import (
	"testing"

	"github.com/wiltonlazary/hardcaml/pkg/bits"
	. "github.com/wiltonlazary/hardcaml/pkg/primitives"
	"github.com/wiltonlazary/hardcaml/pkg/util"
	"github.com/wiltonlazary/hardcaml/pkg/util/assert"
)

func Test_MakePrimitives_Add_ModularWrap(t *testing.T) {
	g := bits.Gates{}
	p := MakePrimitives[bits.Value](g)

	a := g.Const("1101")
	b := g.Const("0011")
	sum := p.Add(a, b)
	s, _ := g.ToBstr(sum)
	assert.Equal(t, "0000", s)
}

func Test_MakePrimitives_Mux_LastRepeats(t *testing.T) {
	g := bits.Gates{}
	p := MakePrimitives[bits.Value](g)

	sel := g.Const("2'd3")
	xs := []bits.Value{g.Const("2'b00"), g.Const("2'b01"), g.Const("2'b10")}
	r := p.Mux(sel, xs)
	s, _ := g.ToBstr(r)
	assert.Equal(t, "10", s)
}

func Test_MakePrimitives_ULt(t *testing.T) {
	g := bits.Gates{}
	p := MakePrimitives[bits.Value](g)

	a := g.Const("4'd3")
	b := g.Const("4'd5")

	lt, _ := g.ToInt(p.ULt(a, b))
	gt, _ := g.ToInt(p.ULt(b, a))

	assert.Equal(t, uint64(1), lt)
	assert.Equal(t, uint64(0), gt)
}

func Test_MakePrimitives_Eq(t *testing.T) {
	g := bits.Gates{}
	p := MakePrimitives[bits.Value](g)

	a := g.Const("4'd9")
	b := g.Const("4'd9")
	c := g.Const("4'd8")

	eqVal, _ := g.ToInt(p.Eq(a, b))
	neqVal, _ := g.ToInt(p.Eq(a, c))

	assert.Equal(t, uint64(1), eqVal)
	assert.Equal(t, uint64(0), neqVal)
}

func Test_MakePrimitives_UMul_Width(t *testing.T) {
	g := bits.Gates{}
	p := MakePrimitives[bits.Value](g)

	a := g.Const("4'd3")
	b := g.Const("3'd5")
	r := p.UMul(a, b)

	assert.Equal(t, uint(7), g.Width(r))

	v, _ := g.ToInt(r)
	assert.Equal(t, uint64(15), v)
}

func Test_MakePrimitives_SMul_NegativeTimesPositive(t *testing.T) {
	g := bits.Gates{}
	p := MakePrimitives[bits.Value](g)

	// -1 in 4 bits is 1111; 3 in 4 bits is 0011. Product should be -3,
	// represented in 8 bits as two's complement: 11111101.
	a := g.Const("4'b1111")
	b := g.Const("4'b0011")
	r := p.SMul(a, b)
	s, _ := g.ToBstr(r)
	assert.Equal(t, "11111101", s)
}

// Test_ReferenceMatchesNative checks that the slow-but-correct synthesis
// agrees with the Bits backend's native override across a spread of
// random inputs -- both must be semantically identical.
func Test_ReferenceMatchesNative(t *testing.T) {
	g := bits.Gates{}
	ref := MakePrimitives[bits.Value](g)
	native := bits.NativePrimitives()

	widths := util.GenerateRandomUints(20, 8)

	for _, w := range widths {
		if w == 0 {
			w = 1
		}

		va := util.GenerateRandomUints(1, uint(1)<<w)[0]
		vb := util.GenerateRandomUints(1, uint(1)<<w)[0]

		a := g.Const(bitsLit(w, va))
		b := g.Const(bitsLit(w, vb))

		refSum, _ := g.ToBstr(ref.Add(a, b))
		nativeSum, _ := g.ToBstr(native.Add(a, b))
		assert.Equal(t, refSum, nativeSum)

		refLt, _ := g.ToBstr(ref.ULt(a, b))
		nativeLt, _ := g.ToBstr(native.ULt(a, b))
		assert.Equal(t, refLt, nativeLt)
	}
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
