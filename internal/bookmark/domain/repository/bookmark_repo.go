package repository

import (
	"context"

	"bookmarks-api/internal/bookmark/domain/model"
)

// BookmarkRepository defines the interface for bookmark data operations.
//
// Every read and mutation takes the owner id and applies it inside the store
// filter, so a row owned by someone else is indistinguishable from a row that
// does not exist.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *model.Bookmark) error
	GetByID(ctx context.Context, ownerID, id int64) (*model.Bookmark, error)
	// ListByOwner returns the owner's bookmarks in insertion order. An empty
	// list is a valid result, not an error.
	ListByOwner(ctx context.Context, ownerID int64) ([]*model.Bookmark, error)
	// Update applies a partial update atomically filtered by {id, ownerID}
	// and returns the updated row, or ErrBookmarkNotFound when the filter
	// matched nothing.
	Update(ctx context.Context, ownerID, id int64, patch model.BookmarkPatch) (*model.Bookmark, error)
	// Delete removes the row matching {id, ownerID}, or returns
	// ErrBookmarkNotFound when the filter matched nothing.
	Delete(ctx context.Context, ownerID, id int64) error
}
