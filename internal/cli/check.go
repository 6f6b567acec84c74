package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgrad/core"
	"github.com/katalvlaran/lvgrad/grad"
)

// gradCase is one scalar function checked at several points.
type gradCase struct {
	name  string
	build func(x *core.Node) *core.Node
}

var gradCases = []gradCase{
	{"tanh(x)", func(x *core.Node) *core.Node { return core.Tanh(x) }},
	{"x**3", func(x *core.Node) *core.Node { return core.Pow(x, 3) }},
	{"x*x+x", func(x *core.Node) *core.Node { return core.Add(core.Mul(x, x), x) }},
	{"tanh(2x-1)**2", func(x *core.Node) *core.Node {
		return core.Pow(core.Tanh(core.Sub(core.Mul(x, 2), 1)), 2)
	}},
	{"x/(1+x*x)", func(x *core.Node) *core.Node {
		return core.Div(x, core.Add(1, core.Mul(x, x)))
	}},
}

var checkPoints = []float64{-2, -0.5, 0.25, 1, 3}

func newCheckCommand(a *app) *cobra.Command {
	var tol float64

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare analytic gradients against central finite differences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FUNCTION\tX\tANALYTIC\tNUMERIC\tABSERR\tOK")

			failed := 0
			for _, c := range gradCases {
				for _, x := range checkPoints {
					r, err := grad.Check(c.build, x, tol)
					ok := err == nil
					if err != nil && !errors.Is(err, grad.ErrGradientMismatch) {
						return err
					}
					if !ok {
						failed++
						a.logger.Warn("check: mismatch", "function", c.name, "x", x, "err", err)
					}
					fmt.Fprintf(tw, "%s\t%g\t%.8g\t%.8g\t%.2e\t%t\n", c.name, x, r.Analytic, r.Numeric, r.AbsErr, ok)
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("cli: %d gradient checks failed", failed)
			}
			a.logger.Info("check: all gradients match", "cases", len(gradCases)*len(checkPoints), "tol", tol)

			return nil
		},
	}
	cmd.Flags().Float64Var(&tol, "tol", 1e-4, "absolute tolerance")

	return cmd
}
