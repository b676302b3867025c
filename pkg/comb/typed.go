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

// Typed arithmetic views: Unsigned/Signed auto-resize both operands
// before applying the underlying primitive, so callers don't have to
// reason about overflow widths by hand. UOp/SOp are the same logic with
// a raw-T result instead of a tagged view wrapper.
package comb

// Unsigned is an identity-with-view-tag wrapper: arithmetic through this
// type auto-resizes both operands, unsigned, before computing.
type Unsigned[T any] struct {
	c Comb[T]
	x T
}

// Unsigned is `of_signal` for the unsigned view: it constructs the
// typed wrapper around x.
func (c Comb[T]) Unsigned(x T) Unsigned[T] { return Unsigned[T]{c: c, x: x} }

// ToSignal is `to_signal`: it returns the underlying raw signal.
func (u Unsigned[T]) ToSignal() T { return u.x }

func (c Comb[T]) resizeUnsignedPair(a, b T, extra uint) (T, T, uint) {
	wa := c.Width(a)
	wb := c.Width(b)

	w := wa
	if wb > w {
		w = wb
	}

	w += extra

	return c.UResize(a, w), c.UResize(b, w), w
}

// Add auto-resizes both operands to max(wa,wb)+1 before adding; result
// retains the extended width.
func (u Unsigned[T]) Add(other Unsigned[T]) Unsigned[T] {
	a, b, _ := u.c.resizeUnsignedPair(u.x, other.x, 1)
	return Unsigned[T]{c: u.c, x: u.c.Add(a, b)}
}

// Sub auto-resizes both operands to max(wa,wb)+1 before subtracting.
func (u Unsigned[T]) Sub(other Unsigned[T]) Unsigned[T] {
	a, b, _ := u.c.resizeUnsignedPair(u.x, other.x, 1)
	return Unsigned[T]{c: u.c, x: u.c.Sub(a, b)}
}

// Mul multiplies without pre-resizing; result width = wa + wb.
func (u Unsigned[T]) Mul(other Unsigned[T]) Unsigned[T] {
	return Unsigned[T]{c: u.c, x: u.c.UMul(u.x, other.x)}
}

// Lt compares both operands at max(wa,wb), no extra extension bit.
func (u Unsigned[T]) Lt(other Unsigned[T]) T {
	a, b, _ := u.c.resizeUnsignedPair(u.x, other.x, 0)
	return u.c.ULt(a, b)
}

// Gt compares both operands at max(wa,wb).
func (u Unsigned[T]) Gt(other Unsigned[T]) T {
	a, b, _ := u.c.resizeUnsignedPair(u.x, other.x, 0)
	return u.c.UGt(a, b)
}

// UOp is the raw-T-returning twin of Unsigned: same auto-resize rules,
// but every method returns a bare T instead of a tagged view.
type UOp[T any] struct{ c Comb[T] }

// Uop constructs the raw unsigned-arithmetic helper.
func (c Comb[T]) Uop() UOp[T] { return UOp[T]{c: c} }

// Add auto-resizes to max(wa,wb)+1 and adds, returning a raw T.
func (o UOp[T]) Add(a, b T) T {
	ra, rb, _ := o.c.resizeUnsignedPair(a, b, 1)
	return o.c.Add(ra, rb)
}

// Sub auto-resizes to max(wa,wb)+1 and subtracts, returning a raw T.
func (o UOp[T]) Sub(a, b T) T {
	ra, rb, _ := o.c.resizeUnsignedPair(a, b, 1)
	return o.c.Sub(ra, rb)
}

// Mul multiplies without pre-resizing; result width = wa + wb.
func (o UOp[T]) Mul(a, b T) T { return o.c.UMul(a, b) }

// Signed is the signed counterpart of Unsigned: auto-resize via
// sign-extension instead of zero-extension.
type Signed[T any] struct {
	c Comb[T]
	x T
}

// Signed constructs the signed typed view of x.
func (c Comb[T]) Signed(x T) Signed[T] { return Signed[T]{c: c, x: x} }

// ToSignal returns the underlying raw signal.
func (s Signed[T]) ToSignal() T { return s.x }

func (c Comb[T]) resizeSignedPair(a, b T, extra uint) (T, T, uint) {
	wa := c.Width(a)
	wb := c.Width(b)

	w := wa
	if wb > w {
		w = wb
	}

	w += extra

	return c.SResize(a, w), c.SResize(b, w), w
}

// Add auto-resizes both operands to max(wa,wb)+1, signed, before adding.
func (s Signed[T]) Add(other Signed[T]) Signed[T] {
	a, b, _ := s.c.resizeSignedPair(s.x, other.x, 1)
	return Signed[T]{c: s.c, x: s.c.Add(a, b)}
}

// Sub auto-resizes both operands to max(wa,wb)+1, signed, before
// subtracting.
func (s Signed[T]) Sub(other Signed[T]) Signed[T] {
	a, b, _ := s.c.resizeSignedPair(s.x, other.x, 1)
	return Signed[T]{c: s.c, x: s.c.Sub(a, b)}
}

// Mul multiplies without pre-resizing; result width = wa + wb.
func (s Signed[T]) Mul(other Signed[T]) Signed[T] {
	return Signed[T]{c: s.c, x: s.c.SMul(s.x, other.x)}
}

// Lt compares both operands at max(wa,wb), signed.
func (s Signed[T]) Lt(other Signed[T]) T {
	a, b, _ := s.c.resizeSignedPair(s.x, other.x, 0)
	return s.c.SLt(a, b)
}

// Gt compares both operands at max(wa,wb), signed.
func (s Signed[T]) Gt(other Signed[T]) T {
	a, b, _ := s.c.resizeSignedPair(s.x, other.x, 0)
	return s.c.SGt(a, b)
}

// SOp is the raw-T-returning twin of Signed.
type SOp[T any] struct{ c Comb[T] }

// Sop constructs the raw signed-arithmetic helper.
func (c Comb[T]) Sop() SOp[T] { return SOp[T]{c: c} }

// Add auto-resizes to max(wa,wb)+1, signed, and adds.
func (o SOp[T]) Add(a, b T) T {
	ra, rb, _ := o.c.resizeSignedPair(a, b, 1)
	return o.c.Add(ra, rb)
}

// Sub auto-resizes to max(wa,wb)+1, signed, and subtracts.
func (o SOp[T]) Sub(a, b T) T {
	ra, rb, _ := o.c.resizeSignedPair(a, b, 1)
	return o.c.Sub(ra, rb)
}

// Mul multiplies without pre-resizing; result width = wa + wb.
func (o SOp[T]) Mul(a, b T) T { return o.c.SMul(a, b) }
