// Package grad runs the backward pass of reverse-mode automatic
// differentiation over graphs built with package core.
//
// Backward seeds the root gradient with 1 (the derivative of the output
// with respect to itself), orders the reachable graph once with
// dfs.TopologicalSort and replays every node's local rule in reverse, so a
// node's rule only runs after all of its consumers have added their
// contributions to it.
//
// Gradients accumulate. Running Backward twice over the same graph doubles
// every gradient below the root; call ZeroGrad, or build a fresh graph, to
// start over.
//
// Check and Numerical compare analytic gradients with a central finite
// difference (gonum.org/v1/gonum/diff/fd).
package grad
