package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgrad/fit"
)

func newFitCommand(a *app) *cobra.Command {
	var (
		n            int
		w, b, noise  float64
		seed         int64
		lr           float64
		iters, every int
	)

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit y = w*x + b to synthetic samples by gradient descent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if n <= 0 || lr <= 0 || iters <= 0 || every <= 0 {
				return errors.New("cli: --n, --lr, --iters and --log-every must be positive")
			}
			xs, ys := fit.Synthetic(n, w, b, noise, seed)
			a.logger.Info("fit: samples", "n", n, "w", w, "b", b, "noise", noise, "seed", seed)

			res, err := fit.Line(xs, ys,
				fit.WithLearningRate(lr),
				fit.WithIterations(iters),
				fit.WithLogger(a.logger),
				fit.WithLogEvery(every),
			)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "w = %.4f, b = %.4f\n", res.W, res.B)
			fmt.Fprintf(out, "mse = %.4f\n", res.FinalLoss())

			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&n, "n", 100, "number of samples")
	f.Float64Var(&w, "w", 3, "true slope")
	f.Float64Var(&b, "b", 10, "true intercept")
	f.Float64Var(&noise, "noise", 1, "standard deviation of Gaussian noise")
	f.Int64Var(&seed, "seed", 42, "random seed")
	f.Float64Var(&lr, "lr", fit.DefaultLearningRate, "learning rate")
	f.IntVar(&iters, "iters", fit.DefaultIterations, "iterations")
	f.IntVar(&every, "log-every", fit.DefaultLogEvery, "debug log interval")

	return cmd
}
