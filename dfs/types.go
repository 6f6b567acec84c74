// Package dfs defines options and sentinel errors for ordering the
// computation graph reachable from a root node.
package dfs

import (
	"errors"

	"github.com/katalvlaran/lvgrad/core"
)

var (
	// ErrNilRoot is returned when TopologicalSort is given a nil root.
	ErrNilRoot = errors.New("dfs: root node is nil")
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort.
type topoOptions struct {
	// onExit, if non-nil, runs after a node's operands are finished and
	// before the node is appended to the order (post-order).
	onExit func(n *core.Node) error
}

// defaultTopoOptions returns the default options (no hooks).
func defaultTopoOptions() topoOptions {
	return topoOptions{}
}

// WithOnExit returns a TopoOption that installs fn as a post-order hook.
// Returning an error aborts the sort; TopologicalSort then returns a nil
// order and the wrapped error.
func WithOnExit(fn func(n *core.Node) error) TopoOption {
	return func(o *topoOptions) {
		o.onExit = fn
	}
}
