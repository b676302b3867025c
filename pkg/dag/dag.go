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

// Package dag implements the symbolic Signal backend: a signal is a node
// in a structural circuit graph rather than a concrete bit pattern.
// ToInt/ToBstr are only defined on constant nodes; every other node
// fails those conversions. Node identifiers are allocated from a
// process-local monotonic counter (go.uber.org/atomic), so graphs built
// concurrently on multiple goroutines never collide on an ID without any
// locking.
package dag

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/wiltonlazary/hardcaml/pkg/gates"
)

// Op tags the kind of a Node.
type Op uint8

// The node kinds a Signal DAG can contain. Primitives.MakePrimitives
// builds Mux/Add/etc. as compositions of And/Or/Xor/Not/Select/Concat
// nodes; the DAG backend never introduces an arithmetic-primitive node
// kind of its own.
const (
	OpEmpty Op = iota
	OpConst
	OpConcat
	OpSelect
	OpAnd
	OpOr
	OpXor
	OpNot
)

var nodeCounter atomic.Uint64

// Node is a symbolic signal: an operator tag, its operands, declared
// width, any names attached, and (for OpConst) the literal bit pattern.
type Node struct {
	ID       uint64
	Op       Op
	Operands []*Node
	width    uint
	bitsMSB  []bool // populated only for OpConst
	hi, lo   uint   // populated only for OpSelect
	Names    []string
}

func nextID() uint64 {
	id := nodeCounter.Add(1)
	log.Debugf("dag: allocated node %d", id)

	return id
}

// Gates is the gates.Gates[*Node] implementation for the symbolic
// backend.
type Gates struct{}

var _ gates.Gates[*Node] = Gates{}

// Empty returns the sole width-0 node.
func (Gates) Empty() *Node {
	return &Node{ID: nextID(), Op: OpEmpty, width: 0}
}

// Const parses literal and returns a constant node.
func (g Gates) Const(literal string) *Node {
	return g.ConstOfBits(gates.ParseConst(literal))
}

// ConstOfBits builds a constant node from an MSB-first bit slice.
func (Gates) ConstOfBits(bitsMSB []bool) *Node {
	cp := make([]bool, len(bitsMSB))
	copy(cp, bitsMSB)

	return &Node{ID: nextID(), Op: OpConst, width: uint(len(cp)), bitsMSB: cp}
}

// Width returns the declared width of x.
func (Gates) Width(x *Node) uint { return x.width }

// IsEmpty reports whether x has width 0.
func (Gates) IsEmpty(x *Node) bool { return x.width == 0 }

// Concat builds an OpConcat node over non-empty operands, MSB-first.
func (g Gates) Concat(xs []*Node) *Node {
	if len(xs) == 0 {
		gates.Fail("concat: empty input list")
	}

	total := uint(0)

	for _, x := range xs {
		if g.IsEmpty(x) {
			gates.Fail("concat: empty signal not permitted (use ConcatE)")
		}

		total += x.width
	}

	ops := make([]*Node, len(xs))
	copy(ops, xs)

	return &Node{ID: nextID(), Op: OpConcat, Operands: ops, width: total}
}

// ConcatE filters empty operands before building the concat node.
func (g Gates) ConcatE(xs []*Node) *Node {
	filtered := make([]*Node, 0, len(xs))

	for _, x := range xs {
		if !g.IsEmpty(x) {
			filtered = append(filtered, x)
		}
	}

	if len(filtered) == 0 {
		return g.Empty()
	}

	return g.Concat(filtered)
}

// Select builds an OpSelect node over bits [hi:lo] of x.
func (g Gates) Select(x *Node, hi, lo uint) *Node {
	if g.IsEmpty(x) {
		gates.Fail("select: empty signal not permitted (use SelectE)")
	}

	if lo > hi || hi >= x.width {
		gates.Fail("select: range [%d:%d] out of bounds for width %d", hi, lo, x.width)
	}

	return &Node{ID: nextID(), Op: OpSelect, Operands: []*Node{x}, width: hi - lo + 1, hi: hi, lo: lo}
}

// SelectE returns Empty() when the range is out of bounds.
func (g Gates) SelectE(x *Node, hi, lo uint) *Node {
	if g.IsEmpty(x) || lo > hi || hi >= x.width {
		return g.Empty()
	}

	return g.Select(x, hi, lo)
}

// Name returns a node equal in value and width to x, carrying an
// additional display name. The DAG backend represents this by appending
// to the Names slice of a thin alias node rather than mutating x, since
// signals are immutable after creation.
func (Gates) Name(x *Node, name string) *Node {
	alias := *x
	alias.ID = nextID()
	alias.Names = append(append([]string{}, x.Names...), name)

	return &alias
}

func (g Gates) binop(op Op, a, b *Node) *Node {
	if a.width != b.width {
		gates.Fail("width mismatch: %d vs %d", a.width, b.width)
	}

	return &Node{ID: nextID(), Op: op, Operands: []*Node{a, b}, width: a.width}
}

// And builds an OpAnd node.
func (g Gates) And(a, b *Node) *Node { return g.binop(OpAnd, a, b) }

// Or builds an OpOr node.
func (g Gates) Or(a, b *Node) *Node { return g.binop(OpOr, a, b) }

// Xor builds an OpXor node.
func (g Gates) Xor(a, b *Node) *Node { return g.binop(OpXor, a, b) }

// Not builds an OpNot node.
func (Gates) Not(x *Node) *Node {
	return &Node{ID: nextID(), Op: OpNot, Operands: []*Node{x}, width: x.width}
}

// Equal is structural equality by node identity: two nodes are equal iff
// they are the same allocation. The DAG backend does not perform
// subexpression interning/hash-consing, so value-equal-but-distinct
// nodes compare unequal here; comb.Comb.Eq (built from Primitives) is
// the value-level equality operator symbolic circuits should use.
func (Gates) Equal(a, b *Node) bool { return a == b }

// ToInt returns the unsigned value of x if and only if x is a constant
// node; otherwise ok=false.
func (Gates) ToInt(x *Node) (uint64, bool) {
	if x.Op != OpConst {
		return 0, false
	}

	return gates.BitsToUint64(x.bitsMSB), true
}

// ToSInt returns the signed value of x if and only if x is a constant
// node; otherwise ok=false.
func (Gates) ToSInt(x *Node) (int64, bool) {
	if x.Op != OpConst {
		return 0, false
	}

	return gates.BitsToInt64Signed(x.bitsMSB), true
}

// ToInt32 returns the low 32 bits of the unsigned value of x if and only
// if x is a constant node; otherwise ok=false.
func (Gates) ToInt32(x *Node) (uint32, bool) {
	if x.Op != OpConst {
		return 0, false
	}

	return gates.BitsToUint32(x.bitsMSB), true
}

// ToInt64 is ToInt, explicitly at a 64-bit native width; only defined on
// constant nodes.
func (g Gates) ToInt64(x *Node) (uint64, bool) {
	return g.ToInt(x)
}

// ToSInt32 returns the signed 32-bit value of x if and only if x is a
// constant node; otherwise ok=false.
func (Gates) ToSInt32(x *Node) (int32, bool) {
	if x.Op != OpConst {
		return 0, false
	}

	return gates.BitsToInt32Signed(x.bitsMSB), true
}

// ToSInt64 is ToSInt, explicitly at a 64-bit native width; only defined
// on constant nodes.
func (g Gates) ToSInt64(x *Node) (int64, bool) {
	return g.ToSInt(x)
}

// ToBstr returns the binary string of x if and only if x is a constant
// node; otherwise ok=false.
func (Gates) ToBstr(x *Node) (string, bool) {
	if x.Op != OpConst {
		return "", false
	}

	return gates.BitsToBstr(x.bitsMSB), true
}

// String renders a shallow, single-line description of the node for
// debugging (not the full subgraph).
func (n *Node) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "n%d:%s[%d]", n.ID, opName(n.Op), n.width)

	if len(n.Names) > 0 {
		fmt.Fprintf(&b, "(%s)", strings.Join(n.Names, ","))
	}

	return b.String()
}

func opName(op Op) string {
	switch op {
	case OpEmpty:
		return "empty"
	case OpConst:
		return "const"
	case OpConcat:
		return "concat"
	case OpSelect:
		return "select"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	case OpNot:
		return "not"
	default:
		return "?"
	}
}
