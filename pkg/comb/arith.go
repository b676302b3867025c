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

// Arithmetic, relational and logical-reduce operators. Every binary
// operator here has a companion `*Int` method that promotes an integer
// right-hand side to a constant of the left operand's width, since Go
// has no operator overloading to lean on for mixed signal/literal
// expressions.
package comb

// Add is the equal-width, modular adder.
func (c Comb[T]) Add(a, b T) T { return c.P.Add(a, b) }

// Sub is the equal-width, modular subtractor.
func (c Comb[T]) Sub(a, b T) T { return c.P.Sub(a, b) }

// UMul is unsigned multiply; output width = width(a) + width(b).
func (c Comb[T]) UMul(a, b T) T { return c.P.UMul(a, b) }

// SMul is signed (two's complement) multiply; output width = width(a) +
// width(b).
func (c Comb[T]) SMul(a, b T) T { return c.P.SMul(a, b) }

// Eq is equal-width compare to a single bit.
func (c Comb[T]) Eq(a, b T) T { return c.P.Eq(a, b) }

// Neq is the complement of Eq.
func (c Comb[T]) Neq(a, b T) T { return c.Not(c.Eq(a, b)) }

// ULt is unsigned less-than.
func (c Comb[T]) ULt(a, b T) T { return c.P.ULt(a, b) }

// UGt is unsigned greater-than: b < a.
func (c Comb[T]) UGt(a, b T) T { return c.ULt(b, a) }

// ULe is unsigned less-or-equal: not (b < a).
func (c Comb[T]) ULe(a, b T) T { return c.Not(c.ULt(b, a)) }

// UGe is unsigned greater-or-equal: not (a < b).
func (c Comb[T]) UGe(a, b T) T { return c.Not(c.ULt(a, b)) }

// flipMSB XORs the sign bit of x, used to derive signed compares from
// the unsigned primitive: flipping the sign bit maps two's complement
// ordering onto unsigned ordering.
func (c Comb[T]) flipMSB(x T) T {
	w := c.Width(x)
	mask := c.ConcatE(c.One(1), c.Zero(w-1))

	return c.Xor(x, mask)
}

// SLt is signed less-than, via unsigned compare with both operands'
// sign bits flipped.
func (c Comb[T]) SLt(a, b T) T { return c.ULt(c.flipMSB(a), c.flipMSB(b)) }

// SGt is signed greater-than.
func (c Comb[T]) SGt(a, b T) T { return c.UGt(c.flipMSB(a), c.flipMSB(b)) }

// SLe is signed less-or-equal.
func (c Comb[T]) SLe(a, b T) T { return c.ULe(c.flipMSB(a), c.flipMSB(b)) }

// SGe is signed greater-or-equal.
func (c Comb[T]) SGe(a, b T) T { return c.UGe(c.flipMSB(a), c.flipMSB(b)) }

// reduceToBit reduces x to a single bit: 1 iff x != 0.
func (c Comb[T]) reduceToBit(x T) T {
	w := c.Width(x)

	return c.Neq(x, c.Zero(w))
}

// AndL is `&&:`: reduce each side to a single bit, then AND.
func (c Comb[T]) AndL(a, b T) T { return c.And(c.reduceToBit(a), c.reduceToBit(b)) }

// OrL is `||:`: reduce each side to a single bit, then OR.
func (c Comb[T]) OrL(a, b T) T { return c.Or(c.reduceToBit(a), c.reduceToBit(b)) }

func (c Comb[T]) intConst(v int64, w uint) T {
	bitsMSB := make([]bool, w)

	uv := uint64(v)
	for i := uint(0); i < w; i++ {
		bitsMSB[w-1-i] = (uv>>i)&1 == 1
	}

	return c.P.Gates.ConstOfBits(bitsMSB)
}

// AddInt, SubInt, ... promote an int right-hand side to a constant of
// a's width before applying the corresponding symbolic operator.
func (c Comb[T]) AddInt(a T, v int64) T { return c.Add(a, c.intConst(v, c.Width(a))) }
func (c Comb[T]) SubInt(a T, v int64) T { return c.Sub(a, c.intConst(v, c.Width(a))) }
func (c Comb[T]) EqInt(a T, v int64) T  { return c.Eq(a, c.intConst(v, c.Width(a))) }
func (c Comb[T]) NeqInt(a T, v int64) T { return c.Neq(a, c.intConst(v, c.Width(a))) }
func (c Comb[T]) ULtInt(a T, v int64) T { return c.ULt(a, c.intConst(v, c.Width(a))) }
func (c Comb[T]) UGtInt(a T, v int64) T { return c.UGt(a, c.intConst(v, c.Width(a))) }
func (c Comb[T]) ULeInt(a T, v int64) T { return c.ULe(a, c.intConst(v, c.Width(a))) }
func (c Comb[T]) UGeInt(a T, v int64) T { return c.UGe(a, c.intConst(v, c.Width(a))) }
func (c Comb[T]) SLtInt(a T, v int64) T { return c.SLt(a, c.intConst(v, c.Width(a))) }
func (c Comb[T]) SGtInt(a T, v int64) T { return c.SGt(a, c.intConst(v, c.Width(a))) }
func (c Comb[T]) SLeInt(a T, v int64) T { return c.SLe(a, c.intConst(v, c.Width(a))) }
func (c Comb[T]) SGeInt(a T, v int64) T { return c.SGe(a, c.intConst(v, c.Width(a))) }
func (c Comb[T]) AndInt(a T, v int64) T { return c.And(a, c.intConst(v, c.Width(a))) }
func (c Comb[T]) OrInt(a T, v int64) T  { return c.Or(a, c.intConst(v, c.Width(a))) }
func (c Comb[T]) XorInt(a T, v int64) T { return c.Xor(a, c.intConst(v, c.Width(a))) }

// Negate returns 0 - x, same width as x.
func (c Comb[T]) Negate(x T) T { return c.Sub(c.Zero(c.Width(x)), x) }

// ModCounter implements a wrap-on-max counter: when max+1 is a power of
// 2 this is simply x+1 (natural modular wrap); otherwise it's an
// explicit wrap at max.
func (c Comb[T]) ModCounter(max uint64, x T) T {
	w := c.Width(x)

	if (max+1)&max == 0 {
		return c.AddInt(x, 1)
	}

	atMax := c.EqInt(x, int64(max))

	return c.Mux2(atMax, c.Zero(w), c.AddInt(x, 1))
}
