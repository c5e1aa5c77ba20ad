package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"outlay/internal/cli"
	"outlay/internal/log"
	"outlay/internal/ui"
)

func main() {
	cli.LoadEnvFile()

	cfg := cli.LoadAndValidateConfig(cli.SetupLogger("info"))
	logger := cli.SetupLogger(cfg.LogLevel)

	state := cli.InitStateStore(logger, cfg)
	defer state.Close()

	cats := cli.LoadCategories(logger, cfg.DataDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := cli.InitLedger(ctx, logger, state, cats)
	app := ui.New(store, ui.NewTerminal(os.Stdin, os.Stdout), ui.DiskSaver{Dir: "."}, os.Stdout, logger)

	logger.Info("Starting outlay",
		log.FieldOperation, log.OpStartup,
		log.FieldBackend, cfg.DataBackend,
		log.FieldCount, store.Len())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		return app.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		return gctx.Err()
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Session ended with error", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Session ended", log.FieldOperation, log.OpShutdown)
}
