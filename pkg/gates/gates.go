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

// Package gates defines the minimal bit-vector substrate (the "Gates"
// layer) that every backend of the combinational signal algebra must
// provide. Primitives and the full Comb API are synthesized on top of
// this interface alone; a backend need only implement Gates to gain the
// entire surface.
package gates

import "fmt"

// Gates is the abstract operator set a backend must supply. T is the
// backend's opaque signal representation (concrete bits, or a symbolic
// DAG node).
type Gates[T any] interface {
	// Empty returns the sole width-0 signal.
	Empty() T
	// Const parses a literal (binary or Verilog-style, see ParseConst)
	// and returns the corresponding constant signal.
	Const(literal string) T
	// ConstOfBits builds a constant directly from an MSB-first bit list.
	ConstOfBits(bits []bool) T
	// Width returns the bit count of x.
	Width(x T) uint
	// IsEmpty reports whether x is the width-0 signal.
	IsEmpty(x T) bool
	// Concat concatenates non-empty signals MSB-first; panics on an
	// empty list or an empty element.
	Concat(xs []T) T
	// ConcatE is Concat but silently drops empty elements first.
	ConcatE(xs []T) T
	// Select returns bits [hi:lo] of x, inclusive, 0-indexed from the
	// LSB. Panics if the range is out of bounds.
	Select(x T, hi, lo uint) T
	// SelectE is Select but returns Empty() instead of panicking when
	// the range is out of bounds.
	SelectE(x T, hi, lo uint) T
	// Name attaches a display name to x, returning a signal equal in
	// value and width.
	Name(x T, name string) T
	// And, Or, Xor are bitwise; operands must have equal width.
	And(a, b T) T
	Or(a, b T) T
	Xor(a, b T) T
	// Not is bitwise complement.
	Not(x T) T
	// Equal is value/structural equality on T (not a signal-valued
	// comparison -- see comb.Comb.Eq for that).
	Equal(a, b T) bool
	// ToInt returns the unsigned value of a constant x, or ok=false if
	// x is not a compile-time constant on this backend.
	ToInt(x T) (val uint64, ok bool)
	// ToSInt returns the signed value of a constant x, sign-extended or
	// truncated to 64 bits, or ok=false if x is not a compile-time
	// constant on this backend.
	ToSInt(x T) (val int64, ok bool)
	// ToInt32 and ToInt64 are ToInt narrowed or widened to a 32- and
	// 64-bit unsigned native domain, respectively.
	ToInt32(x T) (val uint32, ok bool)
	ToInt64(x T) (val uint64, ok bool)
	// ToSInt32 and ToSInt64 are ToSInt narrowed or widened to a 32- and
	// 64-bit signed native domain, respectively.
	ToSInt32(x T) (val int32, ok bool)
	ToSInt64(x T) (val int64, ok bool)
	// ToBstr returns the MSB-first binary string of a constant x, or
	// ok=false if x is not a compile-time constant on this backend.
	ToBstr(x T) (s string, ok bool)
}

// Fail aborts evaluation with a descriptive, non-recoverable error. Every
// precondition violation in this library (width mismatch, out-of-range
// index, empty input, bad constant, mux arity) goes through this single
// chokepoint so messages stay consistent. Converting a non-constant
// signal does not call Fail: the To* methods report it with ok=false.
func Fail(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}
