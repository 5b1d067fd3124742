package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"archive-bot/internal/storage"
	rediscli "archive-bot/pkg/redis"
)

// Storage queues questions in a capped Redis list for operators to pick up.
type Storage struct {
	client *rediscli.Client
	key    string
	maxLen int64
}

func New(client *rediscli.Client, key string, maxLen int64) *Storage {
	return &Storage{client: client, key: key, maxLen: maxLen}
}

func (s *Storage) SaveQuestion(ctx context.Context, q *storage.Question) error {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("marshal question: %w", err)
	}

	if err := s.client.PushCapped(ctx, s.key, data, s.maxLen); err != nil {
		return fmt.Errorf("push question: %w", err)
	}
	return nil
}

// RecentQuestions returns up to limit questions, newest first.
func (s *Storage) RecentQuestions(ctx context.Context, limit int) ([]storage.Question, error) {
	items, err := s.client.Tail(ctx, s.key, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	questions := make([]storage.Question, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		var q storage.Question
		if err := json.Unmarshal([]byte(items[i]), &q); err != nil {
			return nil, fmt.Errorf("unmarshal question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}
