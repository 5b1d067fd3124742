package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"archive-bot/internal/config"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type PostgresStorage struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPostgresStorage(ctx context.Context, cfg config.Database, logger *zap.Logger) (*PostgresStorage, error) {
	const operation = "storage.NewPostgresStorage"

	var db *sqlx.DB

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to PostgreSQL...")

	err := backoff.RetryNotify(
		func() error {
			conn, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			db = conn
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			logger.Warn("PostgreSQL connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	logger.Info("Successfully connected to PostgreSQL")
	return NewPostgresStorageFromDB(db, logger), nil
}

func NewPostgresStorageFromDB(db *sqlx.DB, logger *zap.Logger) *PostgresStorage {
	return &PostgresStorage{db: db, logger: logger}
}

// DB exposes the underlying handle for migrations.
func (s *PostgresStorage) DB() *sql.DB {
	return s.db.DB
}

func (s *PostgresStorage) SaveQuestion(ctx context.Context, q *Question) error {
	const query = `
        INSERT INTO questions (user_id, chat_id, username, text, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}

	if err := s.db.QueryRowxContext(ctx, query,
		q.UserID, q.ChatID, q.Username, q.Text, q.CreatedAt,
	).Scan(&q.ID); err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

// RecentQuestions returns up to limit questions, newest first.
func (s *PostgresStorage) RecentQuestions(ctx context.Context, limit int) ([]Question, error) {
	const query = `
        SELECT id, user_id, chat_id, username, text, created_at
        FROM questions
        ORDER BY created_at DESC
        LIMIT $1`

	var questions []Question
	if err := s.db.SelectContext(ctx, &questions, query, limit); err != nil {
		return nil, fmt.Errorf("select questions: %w", err)
	}
	return questions, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
