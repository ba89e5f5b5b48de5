package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fady121/alfady/internal/config"
	"github.com/fady121/alfady/internal/infra"
	"github.com/fady121/alfady/internal/repository"
	"github.com/fady121/alfady/internal/router"
	"github.com/fady121/alfady/internal/service"
	"github.com/fady121/alfady/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Insights are optional; the shop runs fine without an API key.
	var generator service.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := infra.NewGemini(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init gemini client")
		}
		defer gemini.Close()
		generator = gemini
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, insights disabled")
	}

	// Background workers are wired here (composition root) so the pool has
	// full access to all infrastructure dependencies.
	invoiceRepo := repository.NewInvoiceRepository(db)
	traderRepo := repository.NewTraderRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	backupSvc := service.NewBackupService(invoiceRepo, traderRepo, txRepo, cfg.BackupStoragePath)
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)

	workerHandlers := &worker.WorkerHandlers{
		Backup: worker.NewBackupWorker(backupSvc, mailer, cfg.BackupEmail),
	}
	worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)
	worker.StartBackupCron(ctx, worker.BackupCronConfig{RDB: rdb, Dispatcher: dispatcher})

	r := router.New(cfg, db, rdb, generator)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("alfady backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
