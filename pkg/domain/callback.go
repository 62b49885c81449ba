package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	RegenerateCallbackPrefix = "regenerate:"
	ExplainCallbackPrefix    = "explain:"
)

// RegenerateCallbackData builds the callback payload carried by the
// "regenerate" button. The embedded id is the message id of the
// original question, the key the query store is addressed by.
func RegenerateCallbackData(messageID int) string {
	return fmt.Sprintf("%s%d", RegenerateCallbackPrefix, messageID)
}

func ExplainCallbackData(messageID int) string {
	return fmt.Sprintf("%s%d", ExplainCallbackPrefix, messageID)
}

// ParseCallbackMessageID extracts the embedded message id from callback
// data of the form "<prefix><id>".
func ParseCallbackMessageID(data, prefix string) (int, error) {
	idStr := strings.TrimPrefix(data, prefix)
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, fmt.Errorf("invalid callback data %q: %w", data, err)
	}
	return id, nil
}
