// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: Node construction, read accessors and the per-node local gradient rule.
// Concurrency:
//   - None. A graph belongs to one goroutine at a time; callers serialize.
//   - Only the identity counter is atomic, so graphs built concurrently
//     never share a diagnostic ID.

package core

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
)

// nextNodeID is the process-wide identity counter behind Node.ID.
var nextNodeID uint64

// newNode allocates a node with a fresh identity and zero gradient.
func newNode(data float64, op Op, children ...*Node) *Node {
	return &Node{
		data:     data,
		children: children,
		op:       op,
		id:       atomic.AddUint64(&nextNodeID, 1),
	}
}

// NewValue builds a leaf node holding data with a zero gradient.
//
// Example:
//
//	a := core.NewValue(2.0, core.WithLabel("a"))
func NewValue(data float64, opts ...ValueOption) *Node {
	n := newNode(data, Op{Kind: OpLeaf})
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Data returns the forward value. It never changes after construction.
func (n *Node) Data() float64 { return n.data }

// Grad returns the accumulated gradient.
func (n *Node) Grad() float64 { return n.grad }

// Label returns the diagnostic label, possibly empty.
func (n *Node) Label() string { return n.label }

// SetLabel replaces the diagnostic label.
func (n *Node) SetLabel(label string) { n.label = label }

// Named sets the label and returns n, for use inside expressions:
//
//	e := core.Mul(a, b).Named("e")
func (n *Node) Named(label string) *Node {
	n.label = label
	return n
}

// Op returns the operation that produced n.
func (n *Node) Op() Op { return n.op }

// IsLeaf reports whether n was built from a constant.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Children returns a copy of the operand list, in operand order.
// The same node appears twice for expressions such as Add(a, a).
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)

	return out
}

// NumChildren returns the number of operands without copying them.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the i-th operand. It panics when i is out of range.
func (n *Node) Child(i int) *Node { return n.children[i] }

// ID returns the process-unique identity of n, e.g. "n17".
// Two nodes with equal data always have distinct IDs.
func (n *Node) ID() string { return "n" + strconv.FormatUint(n.id, 10) }

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("Value(data=%v, grad=%v)", n.data, n.grad)
}

// Seed sets the gradient to 1, the derivative of a node with respect to
// itself. The backward pass calls it on the root only.
func (n *Node) Seed() { n.grad = 1.0 }

// ZeroGrad resets this node's gradient to 0. It does not touch operands.
func (n *Node) ZeroGrad() { n.grad = 0 }

// AddGrad adds v to the gradient.
func (n *Node) AddGrad(v float64) { n.grad += v }

// PropagateGrad applies the local derivative rule of n's operation,
// adding n.Grad() scaled by each partial derivative into the operands'
// gradients. Contributions are always added, never assigned, so a node
// reached along several paths sums every path.
//
// PropagateGrad is the step the backward pass replays in reverse
// topological order; calling it out of order yields wrong gradients.
// Non-finite values are propagated as-is.
func (n *Node) PropagateGrad() {
	g := n.grad
	switch n.op.Kind {
	case OpAdd:
		n.children[0].grad += g
		n.children[1].grad += g
	case OpMul:
		a, b := n.children[0], n.children[1]
		a.grad += b.data * g
		b.grad += a.data * g
	case OpPow:
		a, k := n.children[0], n.op.Exponent
		a.grad += k * math.Pow(a.data, k-1) * g
	case OpTanh:
		t := n.data
		n.children[0].grad += (1 - t*t) * g
	}
}
