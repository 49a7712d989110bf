package domain

import (
	"strings"
	"time"
)

// DefaultFeedbackName is stored when a guestbook entry carries no name.
const DefaultFeedbackName = "Anonymous"

// Feedback is an append-only guestbook entry. There is no edit or
// delete path for feedback.
type Feedback struct {
	// ID is the opaque generated identifier for this entry.
	ID string

	// Name is who left the entry. Never empty once normalized.
	Name string

	// Message is the entry text. Required; a blank message is rejected.
	Message string

	CreatedAt time.Time
}

// NormalizeName trims the given name and substitutes the default
// when nothing remains.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultFeedbackName
	}

	return name
}
