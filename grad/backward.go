package grad

import (
	"github.com/katalvlaran/lvgrad/core"
	"github.com/katalvlaran/lvgrad/dfs"
)

// Backward computes d(root)/d(n) for every node n reachable from root and
// adds it into n's gradient. The root gradient is set (not added) to 1.
//
// Each pass derives its gradients from zero and only then adds what the
// nodes held before, so a node's rule never re-propagates a previous
// pass's gradient: two passes over the same graph give exactly twice the
// gradient of one, and passes over overlapping graphs sum their
// derivatives. Node data is never written. A nil root is a no-op.
//
// Complexity: O(V + E) time, O(V) memory.
func Backward(root *core.Node) {
	if root == nil {
		return
	}
	order, err := dfs.TopologicalSort(root)
	if err != nil {
		return // unreachable: root is non-nil and no hooks are installed
	}

	// 1. Set aside gradients from earlier passes
	prior := make([]float64, len(order))
	for i, n := range order {
		prior[i] = n.Grad()
		n.ZeroGrad()
	}
	// 2. Seed the root and replay local rules, consumers first
	root.Seed()
	for i := len(order) - 1; i >= 0; i-- {
		order[i].PropagateGrad()
	}
	// 3. Accumulate onto the earlier gradients; the root is last and stays 1
	for i, n := range order[:len(order)-1] {
		n.AddGrad(prior[i])
	}
}

// ZeroGrad resets the gradient of every node reachable from root to 0.
func ZeroGrad(root *core.Node) {
	if root == nil {
		return
	}
	order, _ := dfs.TopologicalSort(root)
	for _, n := range order {
		n.ZeroGrad()
	}
}

// Gradients returns a snapshot of the gradient of every node reachable
// from root, keyed by node identity.
func Gradients(root *core.Node) map[*core.Node]float64 {
	if root == nil {
		return nil
	}
	order, _ := dfs.TopologicalSort(root)
	out := make(map[*core.Node]float64, len(order))
	for _, n := range order {
		out[n] = n.Grad()
	}

	return out
}
