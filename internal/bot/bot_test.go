package bot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"archive-bot/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAPI struct {
	mu       sync.Mutex
	sent     []tgbotapi.MessageConfig
	failures []error
	updates  chan tgbotapi.Update
	stopped  bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{updates: make(chan tgbotapi.Update, 16)}
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.failures) > 0 {
		err := f.failures[0]
		f.failures = f.failures[1:]
		return tgbotapi.Message{}, err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func (f *fakeAPI) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return f.updates
}

func (f *fakeAPI) StopReceivingUpdates() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeAPI) Sent() []tgbotapi.MessageConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]tgbotapi.MessageConfig(nil), f.sent...)
}

type fakeStore struct {
	mu        sync.Mutex
	questions []storage.Question
	err       error
}

func (s *fakeStore) SaveQuestion(_ context.Context, q *storage.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.questions = append(s.questions, *q)
	return nil
}

func newTestBot(t *testing.T, api API, store QuestionStore, adminChatID int64) *Bot {
	t.Helper()
	return New(api, newTestRouter(t), store, zap.NewNop(), Options{
		PollTimeout:         1,
		Workers:             4,
		SendRetryMaxElapsed: 5 * time.Second,
		AdminChatID:         adminChatID,
	})
}

func tgMessage(userID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID, UserName: "user"},
		Chat: &tgbotapi.Chat{ID: userID},
		Date: 1700000000,
		Text: text,
	}
}

func TestHandleMessage_StartSendsKeyboard(t *testing.T) {
	api := newFakeAPI()
	b := newTestBot(t, api, nil, 0)

	b.HandleMessage(context.Background(), tgMessage(1, "/start"))

	sent := api.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, int64(1), sent[0].ChatID)
	assert.Equal(t, welcomeText, sent[0].Text)
	assert.Equal(t, "HTML", sent[0].ParseMode)

	kb, ok := sent[0].ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
	require.True(t, ok)
	assert.True(t, kb.ResizeKeyboard)
	require.Len(t, kb.Keyboard, 3)
	assert.Equal(t, LabelSchedule, kb.Keyboard[0][0].Text)
	assert.Equal(t, LabelAsk, kb.Keyboard[2][1].Text)
}

func TestHandleMessage_NonTextIsIgnored(t *testing.T) {
	api := newFakeAPI()
	b := newTestBot(t, api, nil, 0)

	msg := tgMessage(1, "")
	msg.Photo = []tgbotapi.PhotoSize{{FileID: "f"}}
	b.HandleMessage(context.Background(), msg)

	assert.Empty(t, api.Sent())
}

func TestHandleMessage_QuestionIsStoredAndForwarded(t *testing.T) {
	api := newFakeAPI()
	store := &fakeStore{}
	b := newTestBot(t, api, store, -100)

	b.HandleMessage(context.Background(), tgMessage(5, LabelAsk))
	assert.Equal(t, 1, b.PendingSessions())

	b.HandleMessage(context.Background(), tgMessage(5, "Где <найти> метрику?"))
	assert.Equal(t, 0, b.PendingSessions())

	sent := api.Sent()
	require.Len(t, sent, 3)
	assert.Equal(t, askPromptText, sent[0].Text)
	assert.Equal(t, answerAckText, sent[1].Text)
	assert.Equal(t, int64(-100), sent[2].ChatID)
	assert.Contains(t, sent[2].Text, "@user")
	assert.Contains(t, sent[2].Text, "Где &lt;найти&gt; метрику?")

	require.Len(t, store.questions, 1)
	q := store.questions[0]
	assert.Equal(t, int64(5), q.UserID)
	assert.Equal(t, int64(5), q.ChatID)
	assert.Equal(t, "@user", q.Username)
	assert.Equal(t, "Где <найти> метрику?", q.Text)
	assert.Equal(t, time.Unix(1700000000, 0), q.CreatedAt)
}

func TestHandleMessage_StoreFailureKeepsReply(t *testing.T) {
	api := newFakeAPI()
	store := &fakeStore{err: errors.New("db down")}
	b := newTestBot(t, api, store, 0)

	b.HandleMessage(context.Background(), tgMessage(5, LabelAsk))
	b.HandleMessage(context.Background(), tgMessage(5, "question"))

	sent := api.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, answerAckText, sent[1].Text)
	assert.Equal(t, 0, b.PendingSessions())
}

func TestSendMessage_RetriesTransientErrors(t *testing.T) {
	api := newFakeAPI()
	api.failures = []error{errors.New("connection reset")}
	b := newTestBot(t, api, nil, 0)

	b.HandleMessage(context.Background(), tgMessage(1, "hello"))

	sent := api.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, useMenuText, sent[0].Text)
}

func TestSendMessage_ClientErrorIsPermanent(t *testing.T) {
	api := newFakeAPI()
	api.failures = []error{&tgbotapi.Error{Code: 403, Message: "Forbidden: bot was blocked by the user"}}
	b := newTestBot(t, api, nil, 0)

	err := b.sendMessage(context.Background(), tgbotapi.NewMessage(1, "x"))
	require.Error(t, err)
	assert.Empty(t, api.Sent())
}

func TestStart_DispatchesUntilCancelled(t *testing.T) {
	api := newFakeAPI()
	b := newTestBot(t, api, nil, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Start(ctx) }()

	api.updates <- tgbotapi.Update{Message: tgMessage(1, LabelAsk)}
	api.updates <- tgbotapi.Update{Message: tgMessage(1, "question")}
	api.updates <- tgbotapi.Update{Message: tgMessage(2, "/unknown")}
	api.updates <- tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{ID: "cb"}}

	require.Eventually(t, func() bool { return len(api.Sent()) == 3 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}

	api.mu.Lock()
	assert.True(t, api.stopped)
	api.mu.Unlock()

	byChat := map[int64][]string{}
	for _, m := range api.Sent() {
		byChat[m.ChatID] = append(byChat[m.ChatID], m.Text)
	}
	assert.Equal(t, []string{askPromptText, answerAckText}, byChat[1])
	assert.Equal(t, []string{unknownCommandText}, byChat[2])
}

func TestDispatcher_PreservesPerUserOrder(t *testing.T) {
	d := newDispatcher(3)

	var mu sync.Mutex
	got := map[int64][]int{}
	for i := 0; i < 100; i++ {
		for _, user := range []int64{1, 2, 3, 4} {
			i, user := i, user
			d.Submit(user, func() {
				mu.Lock()
				got[user] = append(got[user], i)
				mu.Unlock()
			})
		}
	}
	d.Stop()

	for user, seq := range got {
		require.Len(t, seq, 100, "user %d", user)
		for i, v := range seq {
			assert.Equal(t, i, v, "user %d", user)
		}
	}
}
