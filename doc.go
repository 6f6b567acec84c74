// Package lvgrad is a small reverse-mode automatic differentiation engine
// for scalar values.
//
// Expressions are built eagerly: every operation computes its value and
// remembers its operands, so the expression itself becomes a directed
// acyclic computation graph. One backward pass from the output then
// fills in the derivative of that output with respect to every node.
//
//	a := core.NewValue(2, core.WithLabel("a"))
//	b := core.NewValue(-3, core.WithLabel("b"))
//	L := core.Tanh(core.Add(core.Mul(a, b), 10))
//	grad.Backward(L)
//	a.Grad() // ≈ -0.0040229
//
// Subpackages:
//
//	core/    Node, Op and the builders Add, Mul, Pow, Tanh (+ Neg, Sub, Div, Sum)
//	dfs/     depth-first topological sort of the graph below a root
//	grad/    Backward, ZeroGrad, Gradients, finite-difference Check
//	export/  Trace table and conversion to a github.com/goombaio/dag DAG
//	fit/     gradient-descent line fitting driven by the engine
//
// Command cmd/lvgrad exposes the demo, the gradient checks and the line
// fit on the command line.
package lvgrad
