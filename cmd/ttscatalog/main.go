// Package main provides the entry point for the ttscatalog CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/ttscatalog/cmd/ttscatalog/app"
)

// Version information set at build time with -ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		cancel()
		app.ExitOnError(err)
	}
}
