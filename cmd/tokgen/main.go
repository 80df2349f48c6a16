// Package main provides the entry point for tokgen.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yndnr/tokgen-go/internal/cli/command"
	"github.com/yndnr/tokgen-go/internal/infra/shutdown"
)

func main() {
	ctx, stop := shutdown.WithSignals(context.Background())
	defer stop()

	app := command.App()
	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", command.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}
