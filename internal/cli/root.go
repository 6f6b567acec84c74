// Package cli wires the lvgrad command tree: a worked backward-pass demo,
// finite-difference gradient checks and a gradient-descent line fit.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// app carries state shared by subcommands.
type app struct {
	logLevel string
	logger   *slog.Logger
}

// NewRootCommand builds the command tree. Logs go to stderr through a
// tint handler; results go to the command's stdout.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "lvgrad",
		Short:         "Scalar reverse-mode automatic differentiation playground",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("cli: --log-level %q: %w", a.logLevel, err)
			}
			a.logger = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
				Level:      level,
				TimeFormat: "15:04:05",
				NoColor:    true,
			}))
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(
		newDemoCommand(a),
		newCheckCommand(a),
		newFitCommand(a),
	)

	return root
}
