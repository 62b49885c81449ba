package services

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
)

type VisionCompleter interface {
	DescribeImage(ctx context.Context, instruction, imageDataURL string, maxTokens int) (string, error)
}

const (
	describeInstruction = "Опиши подробно, что на этой картинке."
	describeMaxTokens   = 10000
)

type visionService struct {
	completer VisionCompleter
}

func NewVisionService(completer VisionCompleter) *visionService {
	return &visionService{completer: completer}
}

// Describe sends the image inline as a base64 data URL and returns the
// model's description. An empty description on an otherwise successful
// call is a failure of its own kind.
func (s *visionService) Describe(ctx context.Context, image []byte) (string, *domain.Failure) {
	if len(image) == 0 {
		return "", domain.ValidationFailure("Картинку не прислали.")
	}

	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)

	description, err := s.completer.DescribeImage(ctx, describeInstruction, dataURL, describeMaxTokens)
	if err != nil {
		slog.ErrorContext(ctx, "describing image", "err", err)
		return "", domain.BackendFailure("Не получилось обработать картинку.", err)
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return "", domain.NoContentFailure("Не смог разобрать, что на картинке.")
	}

	return description, nil
}
