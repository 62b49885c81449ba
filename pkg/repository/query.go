package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yalygin/ai-assistant-telegram-bot/pkg/domain"
)

type queryRepository struct {
	db *sql.DB
}

func NewQueryRepository(db *sql.DB) *queryRepository {
	return &queryRepository{db: db}
}

// Save appends one query record. There is no update path: re-sending
// under the same (chat, message) pair inserts again and the newest row
// wins on lookup.
func (r *queryRepository) Save(ctx context.Context, rec *domain.QueryRecord) error {
	const query = `
		INSERT INTO user_queries (user_id, chat_id, message_id, query, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query, rec.UserID, rec.ChatID, rec.MessageID, rec.Text, rec.Timestamp); err != nil {
		return fmt.Errorf("saving query: %w", err)
	}

	return nil
}

// GetQuery resolves the original query text by (message id, chat id).
// Returns domain.ErrNotFound when nothing was stored under that pair.
func (r *queryRepository) GetQuery(ctx context.Context, messageID int, chatID int64) (string, error) {
	const query = `
		SELECT query
		FROM user_queries
		WHERE message_id = ? AND chat_id = ?
		ORDER BY id DESC
		LIMIT 1
	`

	var text string
	err := r.db.QueryRowContext(ctx, query, messageID, chatID).Scan(&text)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("fetching query by message and chat: %w", err)
	}

	return text, nil
}

// ListByUser returns all queries of a user, oldest first.
func (r *queryRepository) ListByUser(ctx context.Context, userID int64) ([]domain.QueryRecord, error) {
	const query = `
		SELECT user_id, chat_id, message_id, query, timestamp
		FROM user_queries
		WHERE user_id = ?
		ORDER BY timestamp ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching queries by user: %w", err)
	}
	defer rows.Close()

	var records []domain.QueryRecord
	for rows.Next() {
		var rec domain.QueryRecord
		if err := rows.Scan(&rec.UserID, &rec.ChatID, &rec.MessageID, &rec.Text, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning query row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating query rows: %w", err)
	}

	return records, nil
}
