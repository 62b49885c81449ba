package handler

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/logger"
)

// describeImageMessage handles an inbound photo: download, describe,
// deliver. Nothing is persisted on this path.
type describeImageMessage struct {
	vision    VisionService
	formatter FormatterService
	client    TelegramClient
}

func NewDescribeImageMessage(vision VisionService, formatter FormatterService, client TelegramClient) *describeImageMessage {
	return &describeImageMessage{
		vision:    vision,
		formatter: formatter,
		client:    client,
	}
}

func (*describeImageMessage) CanHandle(u *tgbotapi.Update) bool {
	return u.Message != nil && len(u.Message.Photo) > 0
}

func (h *describeImageMessage) Handle(ctx context.Context, u *tgbotapi.Update) {
	chatID := u.Message.Chat.ID

	// Telegram orders photo sizes ascending; take the largest.
	fileID := u.Message.Photo[len(u.Message.Photo)-1].FileID

	image, err := h.client.DownloadFile(ctx, fileID)
	if err != nil {
		slog.ErrorContext(ctx, "downloading photo", logger.Err(err))
		h.send(ctx, chatID, u.Message.MessageID, "Не получилось скачать картинку.", false)
		return
	}

	description, fail := h.vision.Describe(ctx, image)
	if fail != nil {
		h.send(ctx, chatID, u.Message.MessageID, fail.Message, false)
		return
	}

	text, html := formatForDelivery(ctx, h.formatter, description)
	h.send(ctx, chatID, u.Message.MessageID, text, html)
}

func (h *describeImageMessage) send(ctx context.Context, chatID int64, replyTo int, text string, html bool) {
	if err := h.client.SendTextMessage(ctx, domain.TextMessage{
		ChatID:           chatID,
		ReplyToMessageID: replyTo,
		Text:             text,
		HTML:             html,
	}); err != nil {
		slog.ErrorContext(ctx, "delivering description", logger.Err(err))
	}
}
