package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
)

type PromptTranslator interface {
	CreateCompletion(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error)
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (data []byte, format string, err error)
}

const translateInstruction = `Переведи этот текст на английский.
Верни только перевод, без лишних слов.`

type imageService struct {
	translator PromptTranslator
	generator  ImageGenerator
}

func NewImageService(translator PromptTranslator, generator ImageGenerator) *imageService {
	return &imageService{
		translator: translator,
		generator:  generator,
	}
}

// Generate translates the prompt to English and synthesizes one image.
// The translation step is best-effort: any problem there falls back to
// the original prompt and never blocks generation.
func (s *imageService) Generate(ctx context.Context, prompt string) ([]byte, *domain.Failure) {
	if strings.TrimSpace(prompt) == "" {
		return nil, domain.ValidationFailure("Напиши, какую картинку хочешь сгенерить.")
	}

	translated := s.translatePrompt(ctx, prompt)

	slog.InfoContext(ctx, "generating image", "prompt", translated)

	data, format, err := s.generator.GenerateImage(ctx, translated)
	if err != nil {
		slog.ErrorContext(ctx, "generating image", "err", err)
		return nil, domain.BackendFailure("Ошибка при генерации картинки.", err)
	}
	if len(data) == 0 {
		return nil, domain.NoContentFailure("Не получилось сгенерить картинку.")
	}

	slog.InfoContext(ctx, "image generated", "sizeBytes", len(data), "format", format)

	return data, nil
}

func (s *imageService) translatePrompt(ctx context.Context, prompt string) string {
	translated, err := s.translator.CreateCompletion(ctx, translateInstruction, prompt, 0, 1000)
	if err != nil {
		slog.WarnContext(ctx, "translating prompt, using original", "err", err)
		return prompt
	}

	translated = strings.TrimSpace(translated)
	if translated == "" {
		return prompt
	}

	slog.InfoContext(ctx, "prompt translated", "from", prompt, "to", translated)

	return translated
}
