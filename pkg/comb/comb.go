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

// Package comb synthesizes the full combinational signal algebra from a
// Primitives implementation: MakeComb is the derivation step. Every
// operator here is defined purely in terms of the Gates/Primitives
// surface, so it has identical semantics on every backend.
package comb

import "github.com/wiltonlazary/hardcaml/pkg/primitives"

// Comb bundles a Primitives implementation together with the full set of
// derived operators. Construct with MakeComb; T is the backend's opaque
// signal type.
type Comb[T any] struct {
	P primitives.Primitives[T]
}

// MakeComb derives the full API surface from a Primitives implementation.
func MakeComb[T any](p primitives.Primitives[T]) Comb[T] {
	return Comb[T]{P: p}
}

// Valid is the valid-tagged pair used by priority_select, floor_log2 and
// ceil_log2: a 1-bit "valid" signal alongside the data it qualifies. The
// valid flag is itself a signal (not a host bool), since its value may
// depend on symbolic inputs.
type Valid[T any] struct {
	IsValid T
	Data    T
}

// Width returns the width of a signal.
func (c Comb[T]) Width(x T) uint { return c.P.Gates.Width(x) }

// IsEmpty reports whether x is the width-0 signal.
func (c Comb[T]) IsEmpty(x T) bool { return c.P.Gates.IsEmpty(x) }

// Empty returns the width-0 signal.
func (c Comb[T]) Empty() T { return c.P.Gates.Empty() }

// Const parses a literal (binary or Verilog-style sized literal).
func (c Comb[T]) Const(literal string) T { return c.P.Gates.Const(literal) }

// Name attaches a display name to x.
func (c Comb[T]) Name(x T, name string) T { return c.P.Gates.Name(x, name) }

// Concat joins non-empty signals MSB-first.
func (c Comb[T]) Concat(xs ...T) T { return c.P.Gates.Concat(xs) }

// ConcatE filters empty signals then concatenates.
func (c Comb[T]) ConcatE(xs ...T) T { return c.P.Gates.ConcatE(xs) }

// Select returns bits [hi:lo].
func (c Comb[T]) Select(x T, hi, lo uint) T { return c.P.Gates.Select(x, hi, lo) }

// SelectE returns Empty() when the range is out of bounds.
func (c Comb[T]) SelectE(x T, hi, lo uint) T { return c.P.Gates.SelectE(x, hi, lo) }

// And, Or, Xor, Not are the bitwise Gates passed through unchanged.
func (c Comb[T]) And(a, b T) T { return c.P.Gates.And(a, b) }
func (c Comb[T]) Or(a, b T) T  { return c.P.Gates.Or(a, b) }
func (c Comb[T]) Xor(a, b T) T { return c.P.Gates.Xor(a, b) }
func (c Comb[T]) Not(x T) T    { return c.P.Gates.Not(x) }

// Zero returns the w-bit all-zero constant.
func (c Comb[T]) Zero(w uint) T { return c.constOfUint(0, w) }

// Ones returns the w-bit all-one constant.
func (c Comb[T]) Ones(w uint) T {
	bitsMSB := make([]bool, w)
	for i := range bitsMSB {
		bitsMSB[i] = true
	}

	return c.P.Gates.ConstOfBits(bitsMSB)
}

// One returns the w-bit constant with value 1.
func (c Comb[T]) One(w uint) T { return c.constOfUint(1, w) }

func (c Comb[T]) constOfUint(v uint64, w uint) T {
	bitsMSB := make([]bool, w)
	for i := uint(0); i < w; i++ {
		bitsMSB[w-1-i] = (v>>i)&1 == 1
	}

	return c.P.Gates.ConstOfBits(bitsMSB)
}

// replicate stretches a 1-bit signal to w bits, all equal to the bit.
func (c Comb[T]) replicate(bit T, w uint) T {
	xs := make([]T, w)
	for i := range xs {
		xs[i] = bit
	}

	return c.P.Gates.Concat(xs)
}

// ToList returns the MSB-first list of individual bits.
func (c Comb[T]) ToList(x T) []T {
	w := c.Width(x)
	out := make([]T, w)

	for i := uint(0); i < w; i++ {
		out[i] = c.Select(x, w-1-i, w-1-i)
	}

	return out
}

// FromList concatenates an MSB-first list of single-bit signals back into
// one signal.
func (c Comb[T]) FromList(bits []T) T { return c.Concat(bits...) }

// ToArray returns the LSB-at-index-0 array of individual bits.
func (c Comb[T]) ToArray(x T) []T {
	w := c.Width(x)
	out := make([]T, w)

	for i := uint(0); i < w; i++ {
		out[i] = c.Select(x, i, i)
	}

	return out
}

// FromArray concatenates an LSB-at-index-0 array of single-bit signals
// back into one signal.
func (c Comb[T]) FromArray(bits []T) T {
	xs := make([]T, len(bits))
	for i, b := range bits {
		xs[len(bits)-1-i] = b
	}

	return c.Concat(xs...)
}
