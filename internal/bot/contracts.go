package bot

import (
	"context"

	"archive-bot/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the outbound half of the Telegram API.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// API is the subset of *tgbotapi.BotAPI the bot needs.
type API interface {
	Sender
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// QuestionStore keeps questions users sent in "ask a question" mode.
type QuestionStore interface {
	SaveQuestion(ctx context.Context, q *storage.Question) error
}

var _ API = (*tgbotapi.BotAPI)(nil)
