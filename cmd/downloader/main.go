package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Shuang777/lending-club/internal/alert"
	loanRepo "github.com/Shuang777/lending-club/internal/infrastructure/postgresql/loan"
	orderRepo "github.com/Shuang777/lending-club/internal/infrastructure/postgresql/order"
	"github.com/Shuang777/lending-club/internal/scraper"
	loanUsecase "github.com/Shuang777/lending-club/internal/usecase/loan"
	orderUsecase "github.com/Shuang777/lending-club/internal/usecase/order"
	"github.com/Shuang777/lending-club/pkg/config"
	"github.com/Shuang777/lending-club/pkg/logger"
	"github.com/Shuang777/lending-club/pkg/postgresql"
)

func main() {
	action := flag.String("action", "update-orders", "update-orders, update-loans, purge-orders or show-volumes")
	volumeStart := flag.Float64("start", 0, "volume window start as epoch seconds, 0 means now minus the window")
	volumeInterval := flag.Float64("interval", 3600, "volume bucket width in seconds")
	volumeBuckets := flag.Int("buckets", 24, "number of volume buckets")
	flag.Parse()

	ctx := logger.WithBatchID(context.Background(), logger.NewBatchID())

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

	client := scraper.NewClient(cfg.Scraper, log)

	switch *action {
	case "update-orders":
		mailer := alert.NewMailer(cfg.Alert, log)
		uc := orderUsecase.NewUsecase(orderRepo.NewRepository(db, log), mailer, cfg.Batch, log)

		snapshots, err := client.FetchAllNotes(ctx)
		if err != nil {
			log.ErrorContext(ctx, err)
			os.Exit(1)
		}

		result, err := uc.UpdateOrders(ctx, snapshots, float64(time.Now().Unix()))
		if err != nil {
			log.ErrorContext(ctx, err)
			os.Exit(1)
		}

		fmt.Printf("updated %d orders, %d errors, %d skipped\n",
			result.Updated, result.Errors, result.Skipped)

	case "update-loans":
		uc := loanUsecase.NewUsecase(loanRepo.NewRepository(db, log), log)

		stats, err := client.DownloadLoanStats(ctx)
		if err != nil {
			log.ErrorContext(ctx, err)
			os.Exit(1)
		}
		defer stats.Close()

		count, err := uc.ReplaceLoans(ctx, stats)
		if err != nil {
			log.ErrorContext(ctx, err)
			os.Exit(1)
		}

		fmt.Printf("stored %d historical loans\n", count)

	case "purge-orders":
		mailer := alert.NewMailer(cfg.Alert, log)
		uc := orderUsecase.NewUsecase(orderRepo.NewRepository(db, log), mailer, cfg.Batch, log)

		if err := uc.PurgeOrders(ctx); err != nil {
			log.ErrorContext(ctx, err)
			os.Exit(1)
		}

		fmt.Println("purged all order records")

	case "show-volumes":
		mailer := alert.NewMailer(cfg.Alert, log)
		uc := orderUsecase.NewUsecase(orderRepo.NewRepository(db, log), mailer, cfg.Batch, log)

		start := *volumeStart
		if start == 0 {
			start = float64(time.Now().Unix()) - float64(*volumeBuckets)*(*volumeInterval)
		}

		volumes, err := uc.GetMarketVolumes(ctx, start, *volumeInterval, *volumeBuckets)
		if err != nil {
			log.ErrorContext(ctx, err)
			os.Exit(1)
		}

		for _, bucket := range volumes {
			fmt.Printf("[%s] +%d / -%d\n",
				time.Unix(int64(bucket.Start), 0).UTC().Format(time.RFC3339),
				bucket.Appeared, bucket.Departed)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown action %q\n", *action)
		os.Exit(2)
	}
}
