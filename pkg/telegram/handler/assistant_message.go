package handler

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
	"github.com/yalygin/ai-assistant-telegram-bot/pkg/logger"
)

const askForImageText = "Пришли картинку, и я расскажу, что на ней."

// assistantMessage is the dispatch pipeline for free-form text:
// classify the intent, route to exactly one capability, format on
// success, deliver, and persist the query for replay.
type assistantMessage struct {
	classifier IntentClassifier
	answers    AnswerService
	images     ImageService
	formatter  FormatterService
	storage    QueryStorage
	client     TelegramClient
}

func NewAssistantMessage(
	classifier IntentClassifier,
	answers AnswerService,
	images ImageService,
	formatter FormatterService,
	storage QueryStorage,
	client TelegramClient,
) *assistantMessage {
	return &assistantMessage{
		classifier: classifier,
		answers:    answers,
		images:     images,
		formatter:  formatter,
		storage:    storage,
		client:     client,
	}
}

func (*assistantMessage) CanHandle(u *tgbotapi.Update) bool {
	return u.Message != nil &&
		u.Message.Text != "" &&
		!strings.HasPrefix(strings.TrimSpace(u.Message.Text), "/")
}

func (h *assistantMessage) Handle(ctx context.Context, u *tgbotapi.Update) {
	chatID := u.Message.Chat.ID
	query := u.Message.Text

	intent, fail := h.classifier.Classify(ctx, query)
	if fail != nil {
		// Classification failure is terminal: no routing happens.
		h.sendPlain(ctx, chatID, u.Message.MessageID, fail.Message)
		return
	}

	slog.InfoContext(ctx, "intent classified", "intent", intent)

	switch intent {
	case domain.IntentQuestion:
		h.handleQuestion(ctx, u, query)
	case domain.IntentImage:
		h.handleImage(ctx, u, query)
	case domain.IntentImageDescription:
		h.handleImageDescription(ctx, u)
	}
}

func (h *assistantMessage) handleQuestion(ctx context.Context, u *tgbotapi.Update, query string) {
	chatID := u.Message.Chat.ID
	messageID := u.Message.MessageID

	answer, fail := h.answers.Answer(ctx, query)
	if fail != nil {
		// Failure payloads go out unformatted to avoid running raw
		// error strings through the formatter.
		h.sendPlain(ctx, chatID, messageID, fail.Message)
		return
	}

	text, html := formatForDelivery(ctx, h.formatter, answer)

	err := h.client.SendTextMessage(ctx, domain.TextMessage{
		ChatID:           chatID,
		ReplyToMessageID: messageID,
		Text:             text,
		HTML:             html,
		Keyboard: &domain.Keyboard{
			Buttons: []domain.KeyboardButton{
				{Label: "Повторить 🔄", Data: domain.RegenerateCallbackData(messageID)},
				{Label: "Объяснить 📖", Data: domain.ExplainCallbackData(messageID)},
			},
		},
	})
	if err != nil {
		// Delivery failed even after the plain retry; nothing reached
		// the user, so there is nothing to replay later.
		slog.ErrorContext(ctx, "delivering answer", logger.Err(err))
		return
	}

	rec := domain.QueryRecord{
		UserID:    u.Message.From.ID,
		ChatID:    chatID,
		MessageID: messageID,
		Text:      query,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.storage.Save(ctx, &rec); err != nil {
		slog.ErrorContext(ctx, "saving query record", logger.Err(err))
		h.sendPlain(ctx, chatID, 0, "Не смог сохранить запрос, кнопки под ответом работать не будут.")
	}
}

func (h *assistantMessage) handleImage(ctx context.Context, u *tgbotapi.Update, prompt string) {
	chatID := u.Message.Chat.ID

	image, fail := h.images.Generate(ctx, prompt)
	if fail != nil {
		h.sendPlain(ctx, chatID, u.Message.MessageID, fail.Message)
		return
	}

	err := h.client.SendImageMessage(ctx, domain.ImageMessage{
		ChatID:           chatID,
		ReplyToMessageID: u.Message.MessageID,
		Caption:          prompt,
		Bytes:            image,
	})
	if err != nil {
		slog.ErrorContext(ctx, "delivering image", logger.Err(err))
		h.sendPlain(ctx, chatID, u.Message.MessageID, "Не удалось отправить картинку.")
	}
}

func (h *assistantMessage) handleImageDescription(ctx context.Context, u *tgbotapi.Update) {
	// The intent only signals that the user wants to send an image
	// next; no image analysis happens here.
	text, html := formatForDelivery(ctx, h.formatter, askForImageText)

	if err := h.client.SendTextMessage(ctx, domain.TextMessage{
		ChatID:           u.Message.Chat.ID,
		ReplyToMessageID: u.Message.MessageID,
		Text:             text,
		HTML:             html,
	}); err != nil {
		slog.ErrorContext(ctx, "delivering image prompt", logger.Err(err))
	}
}

func (h *assistantMessage) sendPlain(ctx context.Context, chatID int64, replyTo int, text string) {
	if err := h.client.SendTextMessage(ctx, domain.TextMessage{
		ChatID:           chatID,
		ReplyToMessageID: replyTo,
		Text:             text,
	}); err != nil {
		slog.ErrorContext(ctx, "delivering failure message", logger.Err(err))
	}
}
