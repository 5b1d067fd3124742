package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"archive-bot/internal/app"
	"archive-bot/internal/config"
	"archive-bot/pkg/logger"

	"go.uber.org/zap"
)

// Prints the latest questions from the configured store.
func main() {
	limit := flag.Int("n", 20, "number of questions to print")
	timeout := flag.Duration("timeout", 30*time.Second, "overall timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	store, closeStore, err := app.OpenStore(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to open question store", zap.Error(err))
	}
	defer closeStore()

	if store == nil {
		zapLogger.Fatal("QUESTION_STORE is none, nothing to read")
	}

	questions, err := store.RecentQuestions(ctx, *limit)
	if err != nil {
		zapLogger.Fatal("Failed to read questions", zap.Error(err))
	}

	for _, q := range questions {
		fmt.Printf("%s\t%d\t%s\t%s\n",
			q.CreatedAt.Format(time.RFC3339), q.UserID, q.Username, q.Text)
	}
}
