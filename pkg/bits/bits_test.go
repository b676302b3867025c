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
package bits

import (
	"testing"

	"github.com/wiltonlazary/hardcaml/pkg/util/assert"
)

func Test_Const_Width(t *testing.T) {
	g := Gates{}
	x := g.Const("1101")
	assert.Equal(t, uint(4), g.Width(x))
}

func Test_Concat_MSBFirst(t *testing.T) {
	g := Gates{}
	a := g.Const("11")
	b := g.Const("00")
	x := g.Concat([]Value{a, b})
	s, _ := g.ToBstr(x)
	assert.Equal(t, "1100", s)
}

func Test_Concat_Associative(t *testing.T) {
	g := Gates{}
	a, b, c := g.Const("1"), g.Const("01"), g.Const("110")

	left := g.Concat([]Value{a, g.Concat([]Value{b, c})})
	right := g.Concat([]Value{a, b, c})

	if !g.Equal(left, right) {
		t.Errorf("concat associativity failed: %v != %v", left, right)
	}
}

func Test_Select_SubRangeOfConcat(t *testing.T) {
	g := Gates{}
	x := g.Concat([]Value{g.Const("1010"), g.Const("0101")})
	// full value is "10100101"; bits [3:1] (0-indexed from lsb) = "010"
	sel := g.Select(x, 3, 1)
	s, _ := g.ToBstr(sel)
	assert.Equal(t, "010", s)
}

func Test_SelectE_OutOfRange(t *testing.T) {
	g := Gates{}
	x := g.Const("1010")
	y := g.SelectE(x, 10, 8)
	assert.True(t, g.IsEmpty(y))
}

func Test_ConcatE_DropsEmpty(t *testing.T) {
	g := Gates{}
	x := g.ConcatE([]Value{g.Empty(), g.Const("1"), g.Empty(), g.Const("0")})
	s, _ := g.ToBstr(x)
	assert.Equal(t, "10", s)
}

func Test_WidthMismatch_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on width mismatch")
		}
	}()

	g := Gates{}
	g.And(g.Const("1"), g.Const("11"))
}

func Test_ToInt_TotalOnBits(t *testing.T) {
	g := Gates{}
	x := g.Const("8'd42")
	v, ok := g.ToInt(x)
	assert.True(t, ok)
	assert.Equal(t, uint64(42), v)
}

func Test_ToSInt_SignExtends(t *testing.T) {
	g := Gates{}
	x := g.Const("4'b1110")

	v, ok := g.ToSInt(x)
	assert.True(t, ok)
	assert.Equal(t, int64(-2), v)
}

func Test_ToInt32AndToInt64_MatchToInt(t *testing.T) {
	g := Gates{}
	x := g.Const("8'd200")

	v32, ok := g.ToInt32(x)
	assert.True(t, ok)
	assert.Equal(t, uint32(200), v32)

	v64, ok := g.ToInt64(x)
	assert.True(t, ok)
	assert.Equal(t, uint64(200), v64)
}

func Test_ToSInt32AndToSInt64_SignExtend(t *testing.T) {
	g := Gates{}
	x := g.Const("4'b1110")

	v32, ok := g.ToSInt32(x)
	assert.True(t, ok)
	assert.Equal(t, int32(-2), v32)

	v64, ok := g.ToSInt64(x)
	assert.True(t, ok)
	assert.Equal(t, int64(-2), v64)
}
