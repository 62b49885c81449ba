package handler

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/logger"
)

const helpText = `Просто напиши сообщение, я сам пойму, что ты хочешь:
• вопрос — отвечу текстом
• «нарисуй ...» — сгенерирую картинку
• пришли фото — опишу, что на нём

Команды:
/history — выслать файл со всеми твоими запросами`

type helpCommand struct {
	client TelegramClient
}

func NewHelpCommand(client TelegramClient) *helpCommand {
	return &helpCommand{client: client}
}

func (*helpCommand) CanHandle(u *tgbotapi.Update) bool {
	return u.Message != nil && strings.HasPrefix(strings.TrimSpace(u.Message.Text), "/help")
}

func (h *helpCommand) Handle(ctx context.Context, u *tgbotapi.Update) {
	if err := h.client.SendTextMessage(ctx, domain.TextMessage{
		ChatID: u.Message.Chat.ID,
		Text:   helpText,
	}); err != nil {
		slog.ErrorContext(ctx, "delivering help", logger.Err(err))
	}
}
