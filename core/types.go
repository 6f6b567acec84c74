// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Op tagged variant, construction options and sentinel errors.
// Policy:
//   - A Node's data, op and children are fixed at construction.
//   - grad is the only field the backward pass writes.

package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for node construction.
var (
	// ErrInvalidExponent indicates PowOf received an exponent that is not a
	// plain numeric constant (for example another *Node).
	ErrInvalidExponent = errors.New("core: exponent must be a numeric constant")

	// ErrNilNode indicates a nil *Node was passed where an operand is required.
	ErrNilNode = errors.New("core: node is nil")
)

// OpKind tags the operation that produced a Node.
type OpKind uint8

const (
	// OpLeaf marks a node built directly from a numeric constant.
	OpLeaf OpKind = iota
	// OpAdd marks a node produced by Add.
	OpAdd
	// OpMul marks a node produced by Mul.
	OpMul
	// OpPow marks a node produced by Pow/PowOf; Op.Exponent holds the constant.
	OpPow
	// OpTanh marks a node produced by Tanh.
	OpTanh
)

// String returns the short symbol used in traces.
func (k OpKind) String() string {
	switch k {
	case OpLeaf:
		return "leaf"
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "**"
	case OpTanh:
		return "tanh"
	default:
		return "op(" + strconv.Itoa(int(k)) + ")"
	}
}

// Op is the provenance of a Node: the operation kind plus the constant
// exponent for OpPow. The backward pass dispatches on Kind to select the
// local derivative rule.
type Op struct {
	Kind     OpKind
	Exponent float64 // meaningful only when Kind == OpPow
}

// String renders the op for diagnostics, e.g. "+", "tanh", "**2".
func (o Op) String() string {
	if o.Kind == OpPow {
		return "**" + strconv.FormatFloat(o.Exponent, 'g', -1, 64)
	}

	return o.Kind.String()
}

// Node is a scalar value in a computation graph.
//
// data is the forward value, grad accumulates d(root)/d(node) during the
// backward pass. children are the operands the node was built from; they
// are never modified after construction, so every graph is a DAG.
// A Node may be shared by any number of consumers (fan-in).
type Node struct {
	data     float64
	grad     float64
	children []*Node
	op       Op
	label    string
	id       uint64
}

// ValueOption configures a leaf built by NewValue.
type ValueOption func(*Node)

// WithLabel attaches a diagnostic label to the node.
// The label has no effect on computation.
func WithLabel(label string) ValueOption {
	return func(n *Node) { n.label = label }
}
