// Command lvgrad runs the autodiff demo, gradient checks and a line fit.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/lvgrad/internal/cli"
)

func main() {
	root := cli.NewRootCommand(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "lvgrad:", err)
		os.Exit(1)
	}
}
