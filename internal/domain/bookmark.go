package domain

import "time"

type Bookmark struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Tags      []string  `json:"tags"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}

// BookmarkFilter narrows a bookmark listing. Tag matches set membership,
// Query matches title or URL case-insensitively. Empty fields match everything.
type BookmarkFilter struct {
	Tag   string
	Query string
}
