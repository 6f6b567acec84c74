// Package dfs implements the depth-first topological sort used by the
// backward pass.
//
// What:
//
//   - TopologicalSort: lists every node reachable from a root exactly once,
//     each strictly after all of its operands (post-order, root last).
//     Reversing the result gives consumers-before-operands, the order in
//     which local gradient rules must run.
//
// Key points:
//
//   - Visited set keyed by node identity, so diamonds are visited once.
//   - Nodes are marked before their operands are explored.
//   - Acyclicity is guaranteed by construction and not re-checked.
//   - WithOnExit installs a post-order hook (diagnostics, counting).
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrNilRoot       root pointer is nil
//   - hook errors      propagated from OnExit, wrapped with the node ID
//
// Functions:
//
//   - TopologicalSort(root *core.Node, opts ...TopoOption) ([]*core.Node, error)
//   - WithOnExit(fn func(*core.Node) error) TopoOption
//   - IndexOf, Reverse
package dfs
