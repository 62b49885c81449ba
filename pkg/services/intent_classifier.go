package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
)

type ClassifierCompleter interface {
	CreateCompletion(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error)
}

const classifyInstruction = `Посмотри на запрос и реши, что хочет пользователь.
Верни только одно слово из списка: question, image, image_description.
question - задаёт вопрос
image - хочет сгенерировать картинку
image_description - хочет прислать картинку, чтобы узнать, что на ней`

type intentClassifier struct {
	completer ClassifierCompleter
}

func NewIntentClassifier(completer ClassifierCompleter) *intentClassifier {
	return &intentClassifier{completer: completer}
}

// Classify maps free-form query text to one of the closed intents with
// a single backend call. Never retries; every backend problem comes
// back as a tagged failure, not an error.
func (c *intentClassifier) Classify(ctx context.Context, query string) (domain.Intent, *domain.Failure) {
	if strings.TrimSpace(query) == "" {
		return "", domain.ValidationFailure("Напиши запрос, пожалуйста.")
	}

	raw, err := c.completer.CreateCompletion(ctx, classifyInstruction, query, 0, 20)
	if err != nil {
		slog.ErrorContext(ctx, "classifying query", "err", err)
		return "", domain.BackendFailure("Ошибка при обработке запроса.", err)
	}

	intent, ok := domain.ParseIntent(raw)
	if !ok {
		slog.WarnContext(ctx, "classifier reply outside label set", "reply", raw)
		return "", domain.MismatchFailure("Не понял, что ты хочешь. Попробуй переформулировать.")
	}

	return intent, nil
}
