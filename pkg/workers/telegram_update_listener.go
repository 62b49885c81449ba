package workers

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/logger"
)

type Handler interface {
	HandleUpdate(ctx context.Context, update *tgbotapi.Update)
}

type TelegramClient interface {
	GetUpdates() tgbotapi.UpdatesChannel
	AcknowledgeCallback(ctx context.Context, msg domain.CallbackMessage)
	SendTyping(ctx context.Context, chatID int64)
}

// telegramUpdateListener drains the update channel and hands each
// update to the handler registry in its own goroutine. Events are
// independent: ordering across them is not preserved, and a failure in
// one never reaches another.
type telegramUpdateListener struct {
	client  TelegramClient
	handler Handler
	wg      sync.WaitGroup
}

func NewTelegramUpdateListener(client TelegramClient, handler Handler) (*telegramUpdateListener, error) {
	return &telegramUpdateListener{
		client:  client,
		handler: handler,
	}, nil
}

func (t *telegramUpdateListener) Name() string { return "telegram_update_listener" }

func (t *telegramUpdateListener) Start(ctx context.Context) error {
	slog.Info("starting worker", "name", t.Name())
	defer slog.Info("worker stopped", "name", t.Name())

	updates := t.client.GetUpdates()

	for {
		select {
		case <-ctx.Done():
			t.wg.Wait()
			return nil
		case update := <-updates:
			t.wg.Add(1)
			go func(update tgbotapi.Update) {
				defer t.wg.Done()
				t.processUpdate(ctx, &update)
			}(update)
		}
	}
}

func (t *telegramUpdateListener) processUpdate(ctx context.Context, update *tgbotapi.Update) {
	ctx = logger.ContextWithRequestID(ctx, int64(update.UpdateID))

	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "recovered from panic in update handler", "panic", r)
		}
	}()

	var chatID, userID int64
	switch {
	case update.Message != nil:
		// Channel posts carry no sender.
		if update.Message.From == nil {
			slog.WarnContext(ctx, "skipping message without sender", "chatID", update.Message.Chat.ID)
			return
		}
		chatID, userID = update.Message.Chat.ID, update.Message.From.ID
	case update.CallbackQuery != nil:
		// The button must never be left spinning, whatever the action
		// ends up doing.
		defer t.client.AcknowledgeCallback(ctx, domain.CallbackMessage{CallbackQueryID: update.CallbackQuery.ID})
		// Telegram drops the source message from callbacks older than
		// 48 hours.
		if update.CallbackQuery.Message == nil {
			slog.WarnContext(ctx, "skipping callback without source message", "callbackQueryID", update.CallbackQuery.ID)
			return
		}
		chatID, userID = update.CallbackQuery.Message.Chat.ID, update.CallbackQuery.From.ID
	default:
		slog.WarnContext(ctx, "received unknown update type")
		return
	}

	slog.InfoContext(ctx, "processing update", "chatID", chatID, "userID", userID)

	t.client.SendTyping(ctx, chatID)

	t.handler.HandleUpdate(ctx, update)
}
