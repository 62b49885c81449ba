package handler

import (
	"context"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
)

type TelegramClient interface {
	SendTextMessage(ctx context.Context, message domain.TextMessage) error
	SendImageMessage(ctx context.Context, message domain.ImageMessage) error
	SendDocumentMessage(ctx context.Context, message domain.DocumentMessage) error
	EditTextMessage(ctx context.Context, message domain.EditMessage) error
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}

type IntentClassifier interface {
	Classify(ctx context.Context, query string) (domain.Intent, *domain.Failure)
}

type AnswerService interface {
	Answer(ctx context.Context, query string) (string, *domain.Failure)
}

type ImageService interface {
	Generate(ctx context.Context, prompt string) ([]byte, *domain.Failure)
}

type VisionService interface {
	Describe(ctx context.Context, image []byte) (string, *domain.Failure)
}

type FormatterService interface {
	Format(ctx context.Context, text string) (string, *domain.Failure)
}

type QueryStorage interface {
	Save(ctx context.Context, rec *domain.QueryRecord) error
	GetQuery(ctx context.Context, messageID int, chatID int64) (string, error)
}
