package bot

import (
	"context"
	"time"

	"archive-bot/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Options struct {
	PollTimeout         int
	Workers             int
	SendRetryMaxElapsed time.Duration
	AdminChatID         int64
}

type Bot struct {
	api        API
	router     *Router
	store      QuestionStore
	logger     *zap.Logger
	opts       Options
	dispatcher *dispatcher
}

// New wires the router to the Telegram API. store may be nil.
func New(
	api API,
	router *Router,
	store QuestionStore,
	logger *zap.Logger,
	opts Options,
) *Bot {
	return &Bot{
		api:        api,
		router:     router,
		store:      store,
		logger:     logger,
		opts:       opts,
		dispatcher: newDispatcher(opts.Workers),
	}
}

// Start polls for updates until ctx is done, then waits for in-flight
// messages to be answered.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot",
		zap.Int("workers", b.opts.Workers),
		zap.Int("poll_timeout", b.opts.PollTimeout))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.opts.PollTimeout
	updates := b.api.GetUpdatesChan(u)

	defer b.dispatcher.Stop()

	// Accepted messages still get their reply after shutdown starts.
	taskCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Shutting down bot")
			b.api.StopReceivingUpdates()
			return nil

		case update, ok := <-updates:
			if !ok {
				return nil
			}
			msg := update.Message
			if msg == nil || msg.From == nil {
				continue
			}
			b.dispatcher.Submit(msg.From.ID, func() {
				b.HandleMessage(taskCtx, msg)
			})
		}
	}
}

// HandleMessage routes one Telegram message and sends the reply.
func (b *Bot) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return
	}

	in := Message{SenderID: msg.From.ID}
	// Telegram leaves Text empty for non-text messages.
	if msg.Text != "" {
		text := msg.Text
		in.Text = &text
	}

	decision, ok := b.router.Route(in)
	if !ok {
		b.logger.Debug("Dropping non-text message",
			zap.Int64("user_id", in.SenderID))
		return
	}

	b.logger.Debug("Routed message",
		zap.Int64("user_id", in.SenderID),
		zap.String("outcome", string(decision.Outcome)),
		zap.String("label", decision.Label))

	if err := b.sendMessage(ctx, buildMessage(msg.Chat.ID, decision.Reply)); err != nil {
		b.logger.Error("Failed to send reply",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.String("outcome", string(decision.Outcome)),
			zap.Error(err))
	}

	if decision.Outcome == OutcomeAnswer {
		b.recordQuestion(ctx, &storage.Question{
			UserID:    msg.From.ID,
			ChatID:    msg.Chat.ID,
			Username:  displayName(msg.From),
			Text:      decision.Question,
			CreatedAt: msg.Time(),
		})
	}
}

// PendingSessions reports how many users still owe an answer.
func (b *Bot) PendingSessions() int {
	return b.router.Sessions().Len()
}

func displayName(u *tgbotapi.User) string {
	if u.UserName != "" {
		return "@" + u.UserName
	}
	return u.FirstName
}
