package app

import (
	"context"
	"fmt"
	"time"

	"archive-bot/internal/config"
	"archive-bot/internal/storage"
	redisstorage "archive-bot/internal/storage/redis"
	rediscli "archive-bot/pkg/redis"

	"go.uber.org/zap"
)

// Store is a question store that can also list what it holds.
type Store interface {
	SaveQuestion(ctx context.Context, q *storage.Question) error
	RecentQuestions(ctx context.Context, limit int) ([]storage.Question, error)
}

// OpenStore builds the store selected by QUESTION_STORE. It returns a nil
// store for "none". The returned close func is never nil.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Store, func(), error) {
	switch cfg.QuestionStore {
	case config.StorePostgres:
		pg, err := storage.NewPostgresStorage(ctx, cfg.Database, logger)
		if err != nil {
			return nil, func() {}, err
		}
		if err := storage.RunMigrations(ctx, pg.DB(), logger); err != nil {
			_ = pg.Close()
			return nil, func() {}, err
		}
		return pg, func() { _ = pg.Close() }, nil

	case config.StoreRedis:
		client := rediscli.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := client.Ping(ctx, time.Minute); err != nil {
			client.Close()
			return nil, func() {}, err
		}
		logger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		return redisstorage.New(client, cfg.Redis.QuestionsKey, cfg.Redis.QuestionsMax), client.Close, nil

	case config.StoreNone:
		return nil, func() {}, nil

	default:
		return nil, func() {}, fmt.Errorf("unknown question store %q", cfg.QuestionStore)
	}
}
