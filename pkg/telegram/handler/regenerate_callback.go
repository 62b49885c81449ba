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

const queryNotFoundText = "Не нашёл исходный запрос. Задай вопрос заново."

// regenerateCallback re-runs the stored query behind an answer and
// replaces that answer in place.
type regenerateCallback struct {
	answers   AnswerService
	formatter FormatterService
	storage   QueryStorage
	client    TelegramClient
}

func NewRegenerateCallback(
	answers AnswerService,
	formatter FormatterService,
	storage QueryStorage,
	client TelegramClient,
) *regenerateCallback {
	return &regenerateCallback{
		answers:   answers,
		formatter: formatter,
		storage:   storage,
		client:    client,
	}
}

func (*regenerateCallback) CanHandle(u *tgbotapi.Update) bool {
	return u.CallbackQuery != nil && strings.HasPrefix(u.CallbackQuery.Data, domain.RegenerateCallbackPrefix)
}

func (h *regenerateCallback) Handle(ctx context.Context, u *tgbotapi.Update) {
	chatID := u.CallbackQuery.Message.Chat.ID
	answerMessageID := u.CallbackQuery.Message.MessageID

	queryMessageID, err := domain.ParseCallbackMessageID(u.CallbackQuery.Data, domain.RegenerateCallbackPrefix)
	if err != nil {
		slog.ErrorContext(ctx, "parsing callback data", logger.Err(err))
		h.sendPlain(ctx, chatID, queryNotFoundText)
		return
	}

	query, err := h.storage.GetQuery(ctx, queryMessageID, chatID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.ErrorContext(ctx, "fetching query record", logger.Err(err))
		}
		h.sendPlain(ctx, chatID, queryNotFoundText)
		return
	}

	answer, fail := h.answers.Answer(ctx, query)
	if fail != nil {
		h.sendPlain(ctx, chatID, fail.Message)
		return
	}

	text, html := formatForDelivery(ctx, h.formatter, answer)

	editErr := h.client.EditTextMessage(ctx, domain.EditMessage{
		ChatID:    chatID,
		MessageID: answerMessageID,
		Text:      text,
		HTML:      html,
		Keyboard: &domain.Keyboard{
			Buttons: []domain.KeyboardButton{
				{Label: "Повторить 🔄", Data: domain.RegenerateCallbackData(queryMessageID)},
				{Label: "Объяснить 📖", Data: domain.ExplainCallbackData(queryMessageID)},
			},
		},
	})
	if editErr != nil {
		slog.WarnContext(ctx, "editing answer failed, sending new message", logger.Err(editErr))
		h.sendPlain(ctx, chatID, answer)
	}
}

func (h *regenerateCallback) sendPlain(ctx context.Context, chatID int64, text string) {
	if err := h.client.SendTextMessage(ctx, domain.TextMessage{
		ChatID: chatID,
		Text:   text,
	}); err != nil {
		slog.ErrorContext(ctx, "delivering regenerate result", logger.Err(err))
	}
}
