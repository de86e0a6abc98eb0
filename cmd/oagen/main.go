package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gobd/formvalidation/codegen"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := codegen.ExecGenerator{Stdout: os.Stdout, Stderr: os.Stderr}
	if err := codegen.NewCommand(gen, logger, level).Run(ctx, os.Args); err != nil {
		logger.Error("oagen failed", "error", err)
		stop()
		os.Exit(1)
	}
}
