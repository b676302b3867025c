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

// Bit returns the single bit at index i.
func (c Comb[T]) Bit(x T, i uint) T { return c.Select(x, i, i) }

// Msb returns the most-significant bit.
func (c Comb[T]) Msb(x T) T {
	w := c.Width(x)
	if w == 0 {
		gates.Fail("msb: empty signal")
	}

	return c.Bit(x, w-1)
}

// Lsb returns the least-significant bit.
func (c Comb[T]) Lsb(x T) T {
	if c.Width(x) == 0 {
		gates.Fail("lsb: empty signal")
	}

	return c.Bit(x, 0)
}

// Msbs drops the lsb, returning the remaining w-1 top bits.
func (c Comb[T]) Msbs(x T) T {
	w := c.Width(x)
	if w < 1 {
		gates.Fail("msbs: empty signal")
	}

	return c.Select(x, w-1, 1)
}

// Lsbs drops the msb, returning the remaining w-1 bottom bits.
func (c Comb[T]) Lsbs(x T) T {
	w := c.Width(x)
	if w < 1 {
		gates.Fail("lsbs: empty signal")
	}

	return c.Select(x, w-2, 0)
}

// DropBottom drops the bottom n bits, 0 <= n <= w.
func (c Comb[T]) DropBottom(x T, n uint) T {
	w := c.Width(x)
	if n > w {
		gates.Fail("drop_bottom: n=%d exceeds width %d", n, w)
	}

	if n == w {
		return c.Empty()
	}

	return c.Select(x, w-1, n)
}

// DropTop drops the top n bits, 0 <= n <= w.
func (c Comb[T]) DropTop(x T, n uint) T {
	w := c.Width(x)
	if n > w {
		gates.Fail("drop_top: n=%d exceeds width %d", n, w)
	}

	if n == w {
		return c.Empty()
	}

	return c.Select(x, w-n-1, 0)
}

// SelBottom keeps the bottom n bits, 0 <= n <= w.
func (c Comb[T]) SelBottom(x T, n uint) T {
	w := c.Width(x)
	if n > w {
		gates.Fail("sel_bottom: n=%d exceeds width %d", n, w)
	}

	if n == 0 {
		return c.Empty()
	}

	return c.Select(x, n-1, 0)
}

// SelTop keeps the top n bits, 0 <= n <= w.
func (c Comb[T]) SelTop(x T, n uint) T {
	w := c.Width(x)
	if n > w {
		gates.Fail("sel_top: n=%d exceeds width %d", n, w)
	}

	if n == 0 {
		return c.Empty()
	}

	return c.Select(x, w-1, w-n)
}

// Insert replaces bits [n+width(f)-1 : n] of t with f.
func (c Comb[T]) Insert(t, f T, n uint) T {
	wt := c.Width(t)
	wf := c.Width(f)

	if n+wf > wt {
		gates.Fail("insert: n=%d + width(f)=%d exceeds width(t)=%d", n, wf, wt)
	}

	parts := make([]T, 0, 3)

	if n+wf < wt {
		parts = append(parts, c.Select(t, wt-1, n+wf))
	}

	parts = append(parts, f)

	if n > 0 {
		parts = append(parts, c.Select(t, n-1, 0))
	}

	return c.Concat(parts...)
}

// Reverse reverses the bit order of x.
func (c Comb[T]) Reverse(x T) T {
	w := c.Width(x)
	bits := make([]T, w)

	for i := uint(0); i < w; i++ {
		bits[i] = c.Bit(x, i)
	}

	return c.Concat(bits...)
}

// Repeat concatenates n copies of x, n >= 1.
func (c Comb[T]) Repeat(x T, n uint) T {
	if n < 1 {
		gates.Fail("repeat: n=%d must be >= 1", n)
	}

	xs := make([]T, n)
	for i := range xs {
		xs[i] = x
	}

	return c.Concat(xs...)
}

// SplitInHalf splits x into two equal halves (hi, lo); width(x) must be
// even.
func (c Comb[T]) SplitInHalf(x T) (hi, lo T) {
	w := c.Width(x)
	if w%2 != 0 {
		gates.Fail("split_in_half: width %d is not even", w)
	}

	half := w / 2

	return c.Select(x, w-1, half), c.Select(x, half-1, 0)
}

// Split partitions x into fragments of partWidth bits each, LSB-first.
// When exact is false the final (most-significant) fragment may be
// narrower than partWidth; when exact is true, width(x) must be an exact
// multiple of partWidth.
func (c Comb[T]) Split(x T, partWidth uint, exact bool) []T {
	w := c.Width(x)
	if partWidth == 0 {
		gates.Fail("split: part_width must be > 0")
	}

	if exact && w%partWidth != 0 {
		gates.Fail("split: width %d is not an exact multiple of %d", w, partWidth)
	}

	var parts []T

	pos := uint(0)

	for pos < w {
		hi := pos + partWidth - 1
		if hi >= w {
			hi = w - 1
		}

		parts = append(parts, c.Select(x, hi, pos))
		pos += partWidth
	}

	return parts
}
