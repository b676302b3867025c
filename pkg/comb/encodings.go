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

// BinaryToOnehot produces a width-2^width(x) signal which is a shift of 1
// by x.
func (c Comb[T]) BinaryToOnehot(x T) T {
	w := c.Width(x)
	if w == 0 {
		gates.Fail("binary_to_onehot: empty signal not permitted")
	}

	outW := uint(1) << w
	one := c.One(outW)

	return c.LogShift(c.Sll, one, x)
}

// OnehotToBinary is the inverse of BinaryToOnehot: for each output bit i,
// OR together the onehot bits whose index has bit i set.
func (c Comb[T]) OnehotToBinary(x T) T {
	w := c.Width(x)
	if w == 0 {
		gates.Fail("onehot_to_binary: empty signal not permitted")
	}

	outW := uint(0)

	for n := w; n > 1; n >>= 1 {
		outW++
	}

	if w <= 1 {
		return c.Zero(outW)
	}

	bits := make([]T, outW)

	for i := uint(0); i < outW; i++ {
		var selected []T

		for idx := uint(0); idx < w; idx++ {
			if (idx>>i)&1 == 1 {
				selected = append(selected, c.Bit(x, idx))
			}
		}

		if len(selected) == 0 {
			bits[outW-1-i] = c.Const("0")
		} else {
			bits[outW-1-i] = Reduce(func(a, b T) T { return c.Or(a, b) }, selected)
		}
	}

	return c.Concat(bits...)
}

// BinaryToGray converts a binary value to its reflected Gray code: x XOR
// (x >> 1).
func (c Comb[T]) BinaryToGray(x T) T {
	return c.Xor(x, c.Srl(x, 1))
}

// GrayToBinary inverts BinaryToGray via a cumulative XOR from the MSB
// down: b[w-1] = g[w-1], b[i] = b[i+1] XOR g[i].
func (c Comb[T]) GrayToBinary(g T) T {
	w := c.Width(g)
	if w == 0 {
		gates.Fail("gray_to_binary: empty signal not permitted")
	}

	bits := make([]T, w) // bits[0] = MSB

	bits[0] = c.Bit(g, w-1)

	for i := uint(1); i < w; i++ {
		gi := c.Bit(g, w-1-i)
		bits[i] = c.Xor(bits[i-1], gi)
	}

	return c.Concat(bits...)
}
