// Package export renders computation graphs for inspection.
//
//   - Trace writes one aligned row per node in topological order:
//     id, label, op, data, grad and operand ids.
//   - ToDAG copies the graph into a github.com/goombaio/dag DAG, one vertex
//     per node (ID = Node.ID(), Value = *core.Node) and one edge per
//     distinct operand→consumer pair, so generic DAG queries (sources,
//     sinks, predecessors) can be run against it.
//
// Neither function touches data or grad.
package export
