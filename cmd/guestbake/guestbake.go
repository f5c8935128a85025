package main

import (
	"log/slog"
	"os"

	"github.com/zkforge/guestbake/internal"
	"github.com/zkforge/guestbake/internal/cli"
)

// The entry point for the guestbake tool.
//
// Initializes logging and executes the root command. If any error occurs
// during execution, it exits with a non-zero code.
func main() {
	slog.SetDefault(slog.New(cli.Handler().WithGroup(internal.Name)))

	slog.Debug("build", "version", internal.VersionString())

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
