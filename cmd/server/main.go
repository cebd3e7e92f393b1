package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/config"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/infra"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/router"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	api := upstream.NewClient(
		cfg.UpstreamURL,
		cfg.RequestTimeout(),
		upstream.RetryPolicy{Attempts: cfg.RetryAttempts, Delay: cfg.RetryDelay()},
		upstream.RetryPolicy{Attempts: cfg.RetryAttempts, Delay: cfg.StrictRetryDelay()},
	)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	dispatcher := worker.NewDispatcher(rdb)
	handlers := &worker.WorkerHandlers{
		Print: worker.NewPrintWorker(cfg.CafeName, cfg.ReceiptStoragePath, dispatcher),
		Email: worker.NewEmailWorker(infra.NewMailer(cfg)),
	}
	worker.StartWorkerPool(workerCtx, rdb, handlers, cfg.WorkerPoolSize)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router.New(cfg, rdb, api, dispatcher),
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
