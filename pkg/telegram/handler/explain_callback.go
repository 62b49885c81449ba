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

const explainPrefix = "Объясни подробно: "

// explainCallback re-runs the stored query with an explanation
// directive and delivers the result as a new message, leaving the
// original answer untouched.
type explainCallback struct {
	answers   AnswerService
	formatter FormatterService
	storage   QueryStorage
	client    TelegramClient
}

func NewExplainCallback(
	answers AnswerService,
	formatter FormatterService,
	storage QueryStorage,
	client TelegramClient,
) *explainCallback {
	return &explainCallback{
		answers:   answers,
		formatter: formatter,
		storage:   storage,
		client:    client,
	}
}

func (*explainCallback) CanHandle(u *tgbotapi.Update) bool {
	return u.CallbackQuery != nil && strings.HasPrefix(u.CallbackQuery.Data, domain.ExplainCallbackPrefix)
}

func (h *explainCallback) Handle(ctx context.Context, u *tgbotapi.Update) {
	chatID := u.CallbackQuery.Message.Chat.ID

	queryMessageID, err := domain.ParseCallbackMessageID(u.CallbackQuery.Data, domain.ExplainCallbackPrefix)
	if err != nil {
		slog.ErrorContext(ctx, "parsing callback data", logger.Err(err))
		h.send(ctx, chatID, queryNotFoundText, false)
		return
	}

	query, err := h.storage.GetQuery(ctx, queryMessageID, chatID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.ErrorContext(ctx, "fetching query record", logger.Err(err))
		}
		h.send(ctx, chatID, queryNotFoundText, false)
		return
	}

	answer, fail := h.answers.Answer(ctx, explainPrefix+query)
	if fail != nil {
		h.send(ctx, chatID, fail.Message, false)
		return
	}

	text, html := formatForDelivery(ctx, h.formatter, answer)
	h.send(ctx, chatID, text, html)
}

func (h *explainCallback) send(ctx context.Context, chatID int64, text string, html bool) {
	if err := h.client.SendTextMessage(ctx, domain.TextMessage{
		ChatID: chatID,
		Text:   text,
		HTML:   html,
	}); err != nil {
		slog.ErrorContext(ctx, "delivering explanation", logger.Err(err))
	}
}
