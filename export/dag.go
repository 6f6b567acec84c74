package export

import (
	"fmt"

	"github.com/goombaio/dag"

	"github.com/katalvlaran/lvgrad/core"
	"github.com/katalvlaran/lvgrad/dfs"
)

// ToDAG converts the graph reachable from root into a goombaio DAG.
// Edges point from operand to consumer, so leaves are the source vertices
// and root is the only sink. An operand used twice by the same consumer,
// as in Add(a, a), yields a single edge.
// Returns dfs.ErrNilRoot (wrapped) when root is nil.
func ToDAG(root *core.Node) (*dag.DAG, error) {
	order, err := dfs.TopologicalSort(root)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	d := dag.NewDAG()
	vertices := make(map[*core.Node]*dag.Vertex, len(order))
	for _, n := range order {
		v := dag.NewVertex(n.ID(), n)
		if err = d.AddVertex(v); err != nil {
			return nil, fmt.Errorf("export: vertex %s: %w", n.ID(), err)
		}
		vertices[n] = v

		// operands precede n in order, so their vertices already exist
		linked := make(map[*core.Node]bool, n.NumChildren())
		for i := 0; i < n.NumChildren(); i++ {
			c := n.Child(i)
			if linked[c] {
				continue
			}
			linked[c] = true
			if err = d.AddEdge(vertices[c], v); err != nil {
				return nil, fmt.Errorf("export: edge %s->%s: %w", c.ID(), n.ID(), err)
			}
		}
	}

	return d, nil
}

// NodeOf returns the node stored in a vertex produced by ToDAG.
func NodeOf(v *dag.Vertex) (*core.Node, bool) {
	if v == nil {
		return nil, false
	}
	n, ok := v.Value.(*core.Node)

	return n, ok
}
