// Command storeapi runs the sandbox catalog API the store client talks to.
//
// @title                       My Store sandbox API
// @version                     1.0
// @description                 Local catalog backend for the store client.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mystore/store-client/internal/app"
	"github.com/mystore/store-client/internal/infrastructure/config"
	"github.com/mystore/store-client/pkg/logger"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(sigCtx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Component: "storeapi"})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:     cfg.LogLevel,
		Pretty:    cfg.IsDevelopment(),
		Component: "storeapi",
	})

	server, err := app.NewServer(sigCtx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start sandbox api")
	}

	go server.Run(stop)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	server.Close(ctx)
}
