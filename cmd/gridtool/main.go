// Command gridtool inspects and renders grid-shaped puzzle inputs.
package main

import (
	"context"
	"os"

	"github.com/katalvlaran/gridkit/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
