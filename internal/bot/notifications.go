package bot

import (
	"context"
	"fmt"
	"html"

	"archive-bot/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// recordQuestion logs the question and hands it to the admin chat and the
// configured store. Failures are logged only.
func (b *Bot) recordQuestion(ctx context.Context, q *storage.Question) {
	b.logger.Info("Question received",
		zap.Int64("user_id", q.UserID),
		zap.String("username", q.Username),
		zap.String("text", q.Text))

	b.notifyAdmin(ctx, q)

	if b.store == nil {
		return
	}
	if err := b.store.SaveQuestion(ctx, q); err != nil {
		b.logger.Error("Failed to save question",
			zap.Int64("user_id", q.UserID),
			zap.Error(err))
	}
}

func (b *Bot) notifyAdmin(ctx context.Context, q *storage.Question) {
	if b.opts.AdminChatID == 0 {
		return
	}

	who := q.Username
	if who == "" {
		who = "пользователя"
	}
	msg := tgbotapi.NewMessage(b.opts.AdminChatID, fmt.Sprintf(
		adminQuestionText,
		html.EscapeString(who),
		q.UserID,
		html.EscapeString(q.Text),
	))
	msg.ParseMode = parseModeHTML

	if err := b.sendMessage(ctx, msg); err != nil {
		b.logger.Error("Failed to forward question to admin chat",
			zap.Int64("admin_chat_id", b.opts.AdminChatID),
			zap.Error(err))
	}
}
