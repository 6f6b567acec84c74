package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgrad/core"
	"github.com/katalvlaran/lvgrad/export"
	"github.com/katalvlaran/lvgrad/grad"
)

func newDemoCommand(a *app) *cobra.Command {
	var av, bv, cv float64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Differentiate L = tanh(a*b + c) and print every gradient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			x := core.NewValue(av, core.WithLabel("a"))
			y := core.NewValue(bv, core.WithLabel("b"))
			z := core.NewValue(cv, core.WithLabel("c"))
			e := core.Mul(x, y).Named("e")
			d := core.Add(e, z).Named("d")
			L := core.Tanh(d).Named("L")

			grad.Backward(L)
			a.logger.Debug("demo: backward done", "root", L.ID(), "L", L.Data())

			fmt.Fprintf(out, "inputs: a=%g b=%g c=%g\n", x.Data(), y.Data(), z.Data())
			fmt.Fprintf(out, "e = a*b = %g\n", e.Data())
			fmt.Fprintf(out, "d = e+c = %g\n", d.Data())
			fmt.Fprintf(out, "L = tanh(d) = %.10f\n\n", L.Data())

			return export.Trace(out, L)
		},
	}
	cmd.Flags().Float64Var(&av, "a", 2.0, "value of a")
	cmd.Flags().Float64Var(&bv, "b", -3.0, "value of b")
	cmd.Flags().Float64Var(&cv, "c", 10.0, "value of c")

	return cmd
}
