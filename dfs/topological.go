// Package dfs orders a computation graph so that every node follows all of
// its operands.
//
// TopologicalSort walks the graph depth-first from the root and records
// each node in post-order: a node is appended only after every operand has
// been appended. Nodes are tracked by pointer identity, so a subexpression
// shared by several consumers (a diamond) is emitted once, and two distinct
// nodes holding the same value are never merged.
//
// The graph is acyclic by construction (package core offers no way to add
// an operand after the fact), so no cycle check is made.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and operand edge visited once)
//   - Memory: O(V)     (recursion stack and visited set)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvgrad/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	opts    topoOptions         // traversal options (hooks)
	visited map[*core.Node]bool // keyed by identity, never by data
	order   []*core.Node        // recorded post-order sequence
}

// TopologicalSort returns every node reachable from root exactly once,
// each placed after all of its operands; root is always last.
// If root is nil, returns ErrNilRoot.
// If an OnExit hook fails, returns a nil order and the wrapped hook error.
func TopologicalSort(root *core.Node, options ...TopoOption) ([]*core.Node, error) {
	// 1. Validate root pointer
	if root == nil {
		return nil, ErrNilRoot
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	sorter := &topoSorter{
		opts:    opts,
		visited: make(map[*core.Node]bool),
		order:   make([]*core.Node, 0, 8),
	}
	// 4. Single DFS from the root; post-order is already a valid order
	if err := sorter.visit(root); err != nil {
		return nil, err
	}

	return sorter.order, nil
}

// visit marks n, finishes every operand, then records n.
func (t *topoSorter) visit(n *core.Node) error {
	// 1. Reached before via another path? then skip
	if t.visited[n] {
		return nil
	}
	// 2. Mark before recursing so fan-in never reprocesses n
	t.visited[n] = true

	// 3. Finish each operand in operand order
	for i := 0; i < n.NumChildren(); i++ {
		if err := t.visit(n.Child(i)); err != nil {
			return err
		}
	}

	// 4. Post-order hook
	if t.opts.onExit != nil {
		if err := t.opts.onExit(n); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %s: %w", n.ID(), err)
		}
	}
	// 5. Record in post-order list
	t.order = append(t.order, n)

	return nil
}
