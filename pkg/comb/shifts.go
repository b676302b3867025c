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

// Sll shifts x left by a constant distance n, zero-filling the LSBs.
// Shift-by-0 is identity; shift-by->=w yields all-zero.
func (c Comb[T]) Sll(x T, n uint) T {
	w := c.Width(x)

	if n == 0 {
		return x
	}

	if n >= w {
		return c.Zero(w)
	}

	return c.Concat(c.Select(x, w-n-1, 0), c.Zero(n))
}

// Srl shifts x right by a constant distance n, zero-filling the MSBs.
func (c Comb[T]) Srl(x T, n uint) T {
	w := c.Width(x)

	if n == 0 {
		return x
	}

	if n >= w {
		return c.Zero(w)
	}

	return c.Concat(c.Zero(n), c.Select(x, w-1, n))
}

// Sra shifts x right by a constant distance n, sign-filling the MSBs.
func (c Comb[T]) Sra(x T, n uint) T {
	w := c.Width(x)

	if n == 0 {
		return x
	}

	if n >= w {
		return c.replicate(c.Msb(x), w)
	}

	return c.Concat(c.replicate(c.Msb(x), n), c.Select(x, w-1, n))
}

// LogShift implements recursive halving shift-by-signal: for each bit
// distance[i] from the LSB up, conditionally applies baseOp(x, 2^i) via
// a 2-way mux. Depth equals width(distance).
func (c Comb[T]) LogShift(baseOp func(x T, amount uint) T, x, distance T) T {
	w := c.Width(distance)
	acc := x

	for i := uint(0); i < w; i++ {
		shifted := baseOp(acc, uint(1)<<i)
		sel := c.Bit(distance, i)
		acc = c.Mux2(sel, shifted, acc)
	}

	return acc
}
