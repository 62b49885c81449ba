package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
)

type AnswerCompleter interface {
	CreateCompletion(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error)
}

const (
	answerInstruction = `Ты умный помощник. Отвечай кратко и по делу.
Не добавляй HTML, только чистый текст или Markdown.`

	answerTemperature = 0.4
	answerMaxTokens   = 10000
)

type answerService struct {
	completer AnswerCompleter
}

func NewAnswerService(completer AnswerCompleter) *answerService {
	return &answerService{completer: completer}
}

// Answer runs one completion with the fixed concise-assistant
// instruction. Persistence belongs to the caller, not here.
func (s *answerService) Answer(ctx context.Context, query string) (string, *domain.Failure) {
	if strings.TrimSpace(query) == "" {
		return "", domain.ValidationFailure("Напиши вопрос, пожалуйста.")
	}

	answer, err := s.completer.CreateCompletion(ctx, answerInstruction, query, answerTemperature, answerMaxTokens)
	if err != nil {
		slog.ErrorContext(ctx, "generating answer", "err", err)
		return "", domain.BackendFailure("Что-то пошло не так с вопросом.", err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", domain.NoContentFailure("Не получил ответа. Попробуй спросить иначе.")
	}

	return answer, nil
}
