package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/circuitbench/partkit/cmd"
)

const version = "0.1.0"

func main() {
	// fang wraps the command tree with completions, manpages, --version,
	// and an interrupt-aware context for graceful shutdown.
	err := fang.Execute(
		context.Background(),
		cmd.NewRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	)
	if err != nil {
		os.Exit(1)
	}
}
