package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/claraboia/jcreader/internal/app"
	"github.com/claraboia/jcreader/internal/domain"
	"github.com/claraboia/jcreader/internal/transport/cli"
)

var (
	version = "dev"
	commit  = "none"
)

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	logLevel := slog.LevelWarn
	if logLevelStr := app.GetEnvAsString("LOG_LEVEL", ""); logLevelStr != "" {
		if err := logLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
			panic(fmt.Sprintf("unable to setup logger, LOG_LEVEL not recognised [%s]", logLevelStr))
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	cli.SetVersionInfo(version, commit)
	if err := cli.New(app.Setup, os.Stdin, os.Stdout, os.Stderr).Execute(ctx, os.Args[1:]); err != nil {
		logger.DebugContext(ctx, "command failed", "error", err)
		stop()
		os.Exit(1)
	}
}
