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

// UResize resizes x to w' bits: zero-extends when growing, keeps the low
// w' bits when shrinking, identity when equal.
func (c Comb[T]) UResize(x T, w uint) T {
	cur := c.Width(x)

	switch {
	case w == cur:
		return x
	case w == 0:
		return c.Empty()
	case w < cur:
		return c.Select(x, w-1, 0)
	default:
		return c.Concat(c.Zero(w-cur), x)
	}
}

// SResize resizes x to w' bits: sign-extends (MSB replication) when
// growing, keeps the low w' bits when shrinking.
func (c Comb[T]) SResize(x T, w uint) T {
	cur := c.Width(x)

	switch {
	case w == cur:
		return x
	case w == 0:
		return c.Empty()
	case w < cur:
		return c.Select(x, w-1, 0)
	default:
		return c.Concat(c.replicate(c.Msb(x), w-cur), x)
	}
}

// Ue grows x by one bit, unsigned (zero-extend).
func (c Comb[T]) Ue(x T) T { return c.UResize(x, c.Width(x)+1) }

// Se grows x by one bit, signed (sign-extend).
func (c Comb[T]) Se(x T) T { return c.SResize(x, c.Width(x)+1) }
