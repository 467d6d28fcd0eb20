package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	v1 "github.com/Shuang777/lending-club/internal/domain/dataset/v1"
	orderRepo "github.com/Shuang777/lending-club/internal/infrastructure/postgresql/order"
	datasetUsecase "github.com/Shuang777/lending-club/internal/usecase/dataset"
	"github.com/Shuang777/lending-club/pkg/config"
	"github.com/Shuang777/lending-club/pkg/logger"
	"github.com/Shuang777/lending-club/pkg/postgresql"
)

func main() {
	out := flag.String("out", "dataset.json", "output file path")
	formatName := flag.String("format", "json", "json, csv, arff or xlsx")
	includeNBY := flag.Bool("include-nby", false, "include rows for notes still on the market")
	flag.Parse()

	format, err := v1.ParseFormat(*formatName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx := context.Background()

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

	uc := datasetUsecase.NewUsecase(orderRepo.NewRepository(db, log), log)

	f, err := os.Create(*out)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	defer f.Close()

	if err := uc.Export(ctx, f, format, *includeNBY); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s dataset to %s\n", format, *out)
}
