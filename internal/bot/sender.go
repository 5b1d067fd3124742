package bot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// sendMessage delivers msg, retrying transient failures. Client errors other
// than 429 are not retried.
func (b *Bot) sendMessage(ctx context.Context, msg tgbotapi.MessageConfig) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxElapsedTime = b.opts.SendRetryMaxElapsed

	operation := func() error {
		_, err := b.api.Send(msg)
		if err == nil {
			return nil
		}
		var apiErr *tgbotapi.Error
		if errors.As(err, &apiErr) && apiErr.Code >= 400 && apiErr.Code < 500 &&
			apiErr.Code != http.StatusTooManyRequests {
			return backoff.Permanent(err)
		}
		return err
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			b.logger.Warn("Send failed, retrying",
				zap.Int64("chat_id", msg.ChatID),
				zap.Duration("next_attempt_in", next),
				zap.Error(err))
		},
	)
	if err != nil {
		return fmt.Errorf("send to %d: %w", msg.ChatID, err)
	}
	return nil
}
