package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
)

type FormatterCompleter interface {
	CreateCompletion(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error)
}

const (
	formatInstruction = `Ты спец по форматированию. Переведи текст в HTML для Telegram.
- Если видишь код, оберни его в <pre><code>.
- Экранируй символы: '<' в '&lt;', '>' в '&gt;', '&' в '&amp;'.
- Для обычного текста используй <b> и <i>, где это уместно.
- Верни только готовый HTML, без пояснений.`

	formatTemperature = 0.2
	formatMaxTokens   = 10000
)

type formatterService struct {
	completer FormatterCompleter
}

func NewFormatterService(completer FormatterCompleter) *formatterService {
	return &formatterService{completer: completer}
}

// Format converts raw model text into Telegram HTML with one backend
// call. The output is not validated; callers must be ready to fall
// back to unformatted delivery when this fails.
func (s *formatterService) Format(ctx context.Context, text string) (string, *domain.Failure) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ValidationFailure("Пустой текст, нечего форматировать.")
	}

	formatted, err := s.completer.CreateCompletion(ctx, formatInstruction, text, formatTemperature, formatMaxTokens)
	if err != nil {
		slog.ErrorContext(ctx, "formatting response", "err", err)
		return "", domain.BackendFailure("Ошибка при форматировании.", err)
	}

	formatted = strings.TrimSpace(formatted)
	if formatted == "" {
		return "", domain.NoContentFailure("Пустой результат форматирования.")
	}

	return formatted, nil
}
