package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lvgrad/core"
	"github.com/katalvlaran/lvgrad/dfs"
)

// Trace writes the graph reachable from root to w, operands first, root
// last. Values are printed with %.6g.
//
//	ID  LABEL  OP    DATA  GRAD      CHILDREN
//	n1  a      leaf  2     -0.00402
//	...
func Trace(w io.Writer, root *core.Node) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABEL\tOP\tDATA\tGRAD\tCHILDREN")

	_, err := dfs.TopologicalSort(root, dfs.WithOnExit(func(n *core.Node) error {
		ids := make([]string, n.NumChildren())
		for i := range ids {
			ids[i] = n.Child(i).ID()
		}
		_, werr := fmt.Fprintf(tw, "%s\t%s\t%s\t%.6g\t%.6g\t%s\n",
			n.ID(), n.Label(), n.Op(), n.Data(), n.Grad(), strings.Join(ids, ","))

		return werr
	}))
	if err != nil {
		return fmt.Errorf("export: trace: %w", err)
	}

	return tw.Flush()
}
