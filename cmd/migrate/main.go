package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/Shuang777/lending-club/pkg/config"
	"github.com/Shuang777/lending-club/pkg/logger"
	"github.com/Shuang777/lending-club/pkg/postgresql"
)

func main() {
	dir := flag.String("dir", "internal/infrastructure/postgresql/migrations", "migrations directory")
	flag.Parse()

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

	files, err := filepath.Glob(filepath.Join(*dir, "*.sql"))
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	sort.Strings(files)

	for _, file := range files {
		sql, err := os.ReadFile(file)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}

		if _, err := db.Exec(ctx, string(sql)); err != nil {
			log.Error(err, logger.Field{
				Key:   "file",
				Value: file,
			})
			os.Exit(1)
		}

		log.Info("Applied migration", logger.Field{
			Key:   "file",
			Value: filepath.Base(file),
		})
	}

	fmt.Printf("applied %d migrations\n", len(files))
}
