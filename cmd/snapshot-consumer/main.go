package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Shuang777/lending-club/internal/alert"
	"github.com/Shuang777/lending-club/internal/consumer"
	orderRepo "github.com/Shuang777/lending-club/internal/infrastructure/postgresql/order"
	orderUsecase "github.com/Shuang777/lending-club/internal/usecase/order"
	"github.com/Shuang777/lending-club/pkg/config"
	"github.com/Shuang777/lending-club/pkg/logger"
	"github.com/Shuang777/lending-club/pkg/postgresql"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger()
	if err != nil {
		slog.Error("Failed to create logger", "error", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		slog.Error("Failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	mailer := alert.NewMailer(cfg.Alert, log)
	repo := orderRepo.NewRepository(db, log)
	usecase := orderUsecase.NewUsecase(repo, mailer, cfg.Batch, log)

	snapshotConsumer := consumer.NewSnapshotConsumer(cfg.SnapshotKafka, log, usecase)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		snapshotConsumer.Start(ctx)
	}()

	go func() {
		defer wg.Done()
		snapshotConsumer.Subscribe(ctx)
	}()

	<-quit

	slog.Info("Shutting down snapshot consumer...")
	cancel()
	snapshotConsumer.Stop()

	slog.Info("Snapshot consumer stopped")
}
