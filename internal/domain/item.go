// Package domain contains core business entities and rules.
package domain

import (
	"strings"
	"time"
)

// DefaultItemTitle is stored when an item is submitted with a blank title.
const DefaultItemTitle = "Untitled"

// Item is a user-created note with a title and free-text content.
type Item struct {
	// ID is the opaque generated identifier for this item.
	ID string

	// Title is the display title. Never empty once normalized.
	Title string

	// Content is the free-text body. May be empty.
	Content string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeTitle trims the given title and substitutes the default
// when nothing remains.
func NormalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return DefaultItemTitle
	}

	return title
}
