package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"todonotes/config"
	"todonotes/di"
	"todonotes/shared/failure"
	"todonotes/shared/logger"
	"todonotes/shared/timezone"
	"todonotes/transport/cli"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger.InitLogger()

	if err := config.Init(); err != nil {
		log.Error().Err(err).Msg("Failed to initialize configuration")

		return failure.GetCode(err)
	}

	cfg := config.Get()

	logger.SetLogLevel(cfg)
	timezone.Init(cfg)
	logger.WithRunID()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.New(cfg, di.InitializeNoteHandler)

	return app.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, colorable.NewColorableStderr())
}
