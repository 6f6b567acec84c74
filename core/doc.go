// Package core defines the scalar Node of a reverse-mode automatic
// differentiation graph and the operation builders that compose nodes.
//
// A graph is built on forward evaluation: every builder computes its value
// immediately and records which operands produced it. Builders only ever
// reference nodes that already exist, so the result is always a directed
// acyclic graph; there is no API to change a node's operands afterwards.
//
// Builders:
//
//	NewValue(x, WithLabel("a"))  leaf holding x, grad 0
//	Add(a, b)                    a + b          a.grad += g; b.grad += g
//	Mul(a, b)                    a * b          a.grad += b·g; b.grad += a·g
//	Pow(a, k)                    a**k           a.grad += k·a**(k-1)·g
//	Tanh(a)                      tanh(a)        a.grad += (1-t²)·g
//	Neg, Sub, Div, Sum           composed from the four primitives above
//
// Operands may be *Node or bare numbers (float64, float32, int, int64) in
// either position; numbers become fresh leaves.
//
// The exponent of Pow is a constant and never part of the graph. PowOf
// accepts a dynamically typed exponent and returns ErrInvalidExponent for
// anything that is not a Go number, including a *Node.
//
// Gradients are written by the backward pass (package grad), which seeds
// the root with Seed and replays PropagateGrad in reverse topological order
// (package dfs). PropagateGrad always adds into operand gradients, so shared
// subexpressions accumulate one contribution per path.
//
// Numeric domain errors are not reported: they appear as NaN or ±Inf data
// and flow through the backward pass unchanged.
//
// Errors:
//
//	ErrInvalidExponent  exponent is not a numeric constant.
//	ErrNilNode          nil *Node passed to PowOf.
package core
