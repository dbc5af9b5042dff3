package model

import (
	"time"
)

// Bookmark represents a user-owned bookmark. Every bookmark has exactly one
// owner; it is visible and mutable only through requests authenticated as
// that owner.
type Bookmark struct {
	ID          int64     `json:"id" bson:"id"`
	OwnerID     int64     `json:"ownerId" bson:"owner_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Link        string    `json:"link" bson:"link"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// BookmarkPatch carries the fields of a partial update. Nil means the field
// is left unchanged.
type BookmarkPatch struct {
	Title       *string
	Description *string
	Link        *string
}
