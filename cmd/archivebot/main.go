package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"archive-bot/internal/app"
	"archive-bot/internal/bot"
	"archive-bot/internal/config"
	"archive-bot/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// ENTRY POINT

func main() {
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

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	// Хранилище вопросов
	store, closeStore, err := app.OpenStore(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to open question store", zap.Error(err))
	}
	defer closeStore()

	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		zapLogger.Fatal("Failed to create bot API", zap.Error(err))
	}
	botAPI.Debug = cfg.Debug

	zapLogger.Info("Bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("id", botAPI.Self.ID))

	menu, err := bot.DefaultMenu(botAPI.Self.UserName)
	if err != nil {
		zapLogger.Fatal("Failed to build menu", zap.Error(err))
	}

	sessions := bot.NewSessionStore()
	router := bot.NewRouter(menu, sessions, bot.DefaultFallbacks())

	tgBot := bot.New(botAPI, router, store, zapLogger, bot.Options{
		PollTimeout:         cfg.PollTimeout,
		Workers:             cfg.Workers,
		SendRetryMaxElapsed: cfg.SendRetryMaxElapsed,
		AdminChatID:         cfg.AdminChatID,
	})

	if err := tgBot.Start(ctx); err != nil {
		zapLogger.Error("Bot stopped with error", zap.Error(err))
	}

	zapLogger.Info("Bot shutdown gracefully",
		zap.Int("pending_questions_dropped", sessions.Len()))
	sessions.Reset()
}
