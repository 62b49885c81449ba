package domain

// QueryRecord is one persisted text question. (ChatID, MessageID)
// addresses at most one live record; records are inserted once and
// never updated or deleted.
type QueryRecord struct {
	UserID    int64
	ChatID    int64
	MessageID int
	Text      string
	Timestamp string // UTC, RFC 3339
}
