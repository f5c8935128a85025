package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/zkforge/guestbake/internal"
)

// Represents the root command for the guestbake tool.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Bake    BakeCmd    `cmd:"" help:"Build guest packages and publish their binaries and image IDs."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Log level shared between the pre-parse handler and flag configuration.
var logLevel = new(slog.LevelVar)

// Returns the handler the process logger is built from.
//
// The handler is created before argument parsing; the level variable is
// adjusted afterwards by [Execute] so flags take effect without
// rebuilding the logger.
func Handler() slog.Handler {
	return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Builds guest packages into RISC-V binaries and publishes them with content-addressed image IDs."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Adjusts the global log level based on CLI flags.
func configureLogger() {
	switch {
	case RootCmd.Debug:
		logLevel.Set(slog.LevelDebug)
	case RootCmd.Quiet:
		logLevel.Set(slog.LevelWarn)
	default:
		logLevel.Set(slog.LevelInfo)
	}
}
