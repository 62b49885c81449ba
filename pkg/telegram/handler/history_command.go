package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/logger"
)

type HistoryService interface {
	Export(ctx context.Context, userID int64) (*domain.DocumentMessage, error)
}

// historyCommand sends the user their full query history as a text
// document.
type historyCommand struct {
	history HistoryService
	client  TelegramClient
}

func NewHistoryCommand(history HistoryService, client TelegramClient) *historyCommand {
	return &historyCommand{history: history, client: client}
}

func (*historyCommand) CanHandle(u *tgbotapi.Update) bool {
	return u.Message != nil && strings.HasPrefix(strings.TrimSpace(u.Message.Text), "/history")
}

func (h *historyCommand) Handle(ctx context.Context, u *tgbotapi.Update) {
	chatID := u.Message.Chat.ID

	doc, err := h.history.Export(ctx, u.Message.From.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.sendPlain(ctx, chatID, "История запросов пуста.")
			return
		}
		slog.ErrorContext(ctx, "exporting history", logger.Err(err))
		h.sendPlain(ctx, chatID, "Не смог получить историю запросов.")
		return
	}

	doc.ChatID = chatID
	if err := h.client.SendDocumentMessage(ctx, *doc); err != nil {
		slog.ErrorContext(ctx, "delivering history document", logger.Err(err))
		h.sendPlain(ctx, chatID, "Не удалось отправить файл с историей.")
	}
}

func (h *historyCommand) sendPlain(ctx context.Context, chatID int64, text string) {
	if err := h.client.SendTextMessage(ctx, domain.TextMessage{
		ChatID: chatID,
		Text:   text,
	}); err != nil {
		slog.ErrorContext(ctx, "delivering history notice", logger.Err(err))
	}
}
