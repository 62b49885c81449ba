package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/logger"
)

type startCommand struct {
	client TelegramClient
}

func NewStartCommand(client TelegramClient) *startCommand {
	return &startCommand{client: client}
}

func (*startCommand) CanHandle(u *tgbotapi.Update) bool {
	return u.Message != nil && strings.HasPrefix(strings.TrimSpace(u.Message.Text), "/start")
}

func (h *startCommand) Handle(ctx context.Context, u *tgbotapi.Update) {
	name := u.Message.From.FirstName
	text := fmt.Sprintf("Привет, %s! Я отвечаю на вопросы, рисую картинки и описываю присланные фото. Напиши /help для списка команд.", name)

	if err := h.client.SendTextMessage(ctx, domain.TextMessage{
		ChatID: u.Message.Chat.ID,
		Text:   text,
	}); err != nil {
		slog.ErrorContext(ctx, "delivering greeting", logger.Err(err))
	}
}
