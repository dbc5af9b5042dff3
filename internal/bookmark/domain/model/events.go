package model

import "time"

// Bookmark event types published on the event bus after each mutation.
const (
	EventBookmarkCreated = "bookmark.created"
	EventBookmarkUpdated = "bookmark.updated"
	EventBookmarkDeleted = "bookmark.deleted"
)

// BookmarkEvent is the payload attached to bookmark mutation events.
type BookmarkEvent struct {
	BookmarkID int64     `json:"bookmarkId"`
	OwnerID    int64     `json:"ownerId"`
	Title      string    `json:"title,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
