// Command eliminator reports which competitors can no longer finish first.
package main

import (
	"os"

	"github.com/katalvlaran/eliminator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
