package main

import (
	"context"
	"github.com/blinky-z/postboard/logger"
	"github.com/blinky-z/postboard/server"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	config := server.LoadConfig()

	log := logger.New(config.LogLevel)
	defer func() {
		_ = log.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := server.RunServer(ctx, config, log); err != nil {
		log.Errorw("Server stopped with error", "err", err)
		_ = log.Sync()
		os.Exit(1)
	}
}
