package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
)

type HistoryRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.QueryRecord, error)
}

type historyService struct {
	repo HistoryRepository
}

func NewHistoryService(repo HistoryRepository) *historyService {
	return &historyService{repo: repo}
}

// Export renders all past queries of a user as a plain-text document,
// one line per query, oldest first. Returns domain.ErrNotFound when
// the user has no history.
func (s *historyService) Export(ctx context.Context, userID int64) (*domain.DocumentMessage, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing queries: %w", err)
	}

	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}

	var b strings.Builder
	for _, rec := range records {
		fmt.Fprintf(&b, "[%s] %s\n", rec.Timestamp, rec.Text)
	}

	return &domain.DocumentMessage{
		Name:  fmt.Sprintf("queries-%s.txt", uuid.NewString()),
		Bytes: []byte(b.String()),
	}, nil
}
