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
	"math/big"

	"github.com/wiltonlazary/hardcaml/pkg/gates"
	"github.com/wiltonlazary/hardcaml/pkg/primitives"
)

// NativePrimitives overrides every synthesized operator with direct
// arbitrary-precision integer arithmetic, rather than the bit-by-bit
// reference gate trees MakePrimitives would build. Semantics match
// MakePrimitives exactly; only performance differs.
func NativePrimitives() primitives.Primitives[Value] {
	g := Gates{}

	return primitives.Primitives[Value]{
		Gates: g,
		Mux:   nativeMux,
		Add:   nativeAdd,
		Sub:   nativeSub,
		UMul:  nativeUMul,
		SMul:  nativeSMul,
		Eq:    nativeEq,
		ULt:   nativeULt,
	}
}

func (v Value) toBig() *big.Int {
	x := new(big.Int)

	for i := len(v.words) - 1; i >= 0; i-- {
		x.Lsh(x, 64)
		x.Or(x, new(big.Int).SetUint64(v.words[i]))
	}

	return x
}

func fromBig(x *big.Int, w uint) Value {
	out := Zero(w)

	for i := range out.words {
		word := new(big.Int).Rsh(x, uint(i)*64)
		word.And(word, new(big.Int).SetUint64(^uint64(0)))
		out.words[i] = word.Uint64()
	}

	out.trim()

	return out
}

// toSignedBig interprets v as a two's-complement signed integer.
func (v Value) toSignedBig() *big.Int {
	u := v.toBig()

	if v.width > 0 && v.Bit(v.width-1) {
		u.Sub(u, new(big.Int).Lsh(big.NewInt(1), v.width))
	}

	return u
}

func nativeMux(sel Value, xs []Value) Value {
	n := len(xs)
	if n < 2 {
		gates.Fail("mux: requires at least 2 inputs, got %d", n)
	}

	maxN := uint64(1) << sel.width
	if uint64(n) > maxN {
		gates.Fail("mux: %d inputs exceeds 2^%d addressable by selector", n, sel.width)
	}

	idx, _ := (Gates{}).ToInt(sel)
	if idx >= uint64(n) {
		idx = uint64(n) - 1
	}

	return xs[idx]
}

func nativeAdd(a, b Value) Value {
	if a.width != b.width {
		gates.Fail("add: width mismatch: %d vs %d", a.width, b.width)
	}

	sum := new(big.Int).Add(a.toBig(), b.toBig())

	return fromBig(sum, a.width)
}

func nativeSub(a, b Value) Value {
	if a.width != b.width {
		gates.Fail("sub: width mismatch: %d vs %d", a.width, b.width)
	}

	mod := new(big.Int).Lsh(big.NewInt(1), a.width)
	diff := new(big.Int).Sub(a.toBig(), b.toBig())
	diff.Mod(diff, mod)

	return fromBig(diff, a.width)
}

func nativeUMul(a, b Value) Value {
	prod := new(big.Int).Mul(a.toBig(), b.toBig())

	return fromBig(prod, a.width+b.width)
}

func nativeSMul(a, b Value) Value {
	prod := new(big.Int).Mul(a.toSignedBig(), b.toSignedBig())
	w := a.width + b.width
	mod := new(big.Int).Lsh(big.NewInt(1), w)
	prod.Mod(prod, mod)

	return fromBig(prod, w)
}

func nativeEq(a, b Value) Value {
	if a.width != b.width {
		gates.Fail("eq: width mismatch: %d vs %d", a.width, b.width)
	}

	if (Gates{}).Equal(a, b) {
		return FromBits([]bool{true})
	}

	return FromBits([]bool{false})
}

func nativeULt(a, b Value) Value {
	if a.width != b.width {
		gates.Fail("ult: width mismatch: %d vs %d", a.width, b.width)
	}

	if a.toBig().Cmp(b.toBig()) < 0 {
		return FromBits([]bool{true})
	}

	return FromBits([]bool{false})
}
