package domain

import "strings"

// Intent is the closed set of things a user may want from a text message.
// Anything a classifier returns outside this set is a classification
// failure, not a fourth intent.
type Intent string

const (
	IntentQuestion         Intent = "question"
	IntentImage            Intent = "image"
	IntentImageDescription Intent = "image_description"
)

// ParseIntent matches a raw classifier reply against the closed set.
// The reply is trimmed and stripped of optional brackets, then matched
// verbatim; everything else, case variants included, is rejected.
func ParseIntent(raw string) (Intent, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	switch Intent(s) {
	case IntentQuestion, IntentImage, IntentImageDescription:
		return Intent(s), true
	}
	return "", false
}
