// Command termdeck presents a directory of markdown slides in the terminal.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// Version information (set at build time)
var version = "dev"

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
	); err != nil {
		os.Exit(1)
	}
}
