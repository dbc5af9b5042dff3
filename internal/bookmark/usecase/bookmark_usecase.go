package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookmarks-api/internal/bookmark/domain/model"
	"bookmarks-api/internal/bookmark/domain/repository"
	apperrors "bookmarks-api/internal/shared/errors"
	"bookmarks-api/internal/shared/eventbus"
)

var ErrBookmarkNotFound = apperrors.ErrBookmarkNotFound

// BookmarkUsecaseInterface defines the contract for bookmark use cases.
// The ownerID argument is always the authenticated identity's id; the
// repository applies it inside every store filter.
type BookmarkUsecaseInterface interface {
	Create(ctx context.Context, ownerID int64, req CreateBookmarkRequest) (*model.Bookmark, error)
	GetByID(ctx context.Context, ownerID, id int64) (*model.Bookmark, error)
	List(ctx context.Context, ownerID int64) ([]*model.Bookmark, error)
	Edit(ctx context.Context, ownerID, id int64, req EditBookmarkRequest) (*model.Bookmark, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

// CreateBookmarkRequest represents the create request. Any client-supplied
// owner field is ignored; the owner is always the authenticated identity.
type CreateBookmarkRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link" validate:"required,url"`
}

// EditBookmarkRequest carries a partial update. Absent fields stay untouched.
type EditBookmarkRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty" validate:"omitempty,url"`
}

// BookmarkUsecase implements the ownership-filtered bookmark logic.
type BookmarkUsecase struct {
	repo repository.BookmarkRepository
	bus  eventbus.EventBusInterface
}

// NewBookmarkUsecase creates a new instance of BookmarkUsecase.
func NewBookmarkUsecase(repo repository.BookmarkRepository, bus eventbus.EventBusInterface) *BookmarkUsecase {
	return &BookmarkUsecase{
		repo: repo,
		bus:  bus,
	}
}

// Create stores a new bookmark stamped with the authenticated owner's id.
func (uc *BookmarkUsecase) Create(ctx context.Context, ownerID int64, req CreateBookmarkRequest) (*model.Bookmark, error) {
	now := time.Now()
	bookmark := &model.Bookmark{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.repo.Create(ctx, bookmark); err != nil {
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}

	uc.publishEvent(ctx, model.EventBookmarkCreated, bookmark)
	return bookmark, nil
}

// GetByID fetches one of the owner's bookmarks. Absent and not-owned rows
// are both reported as ErrBookmarkNotFound.
func (uc *BookmarkUsecase) GetByID(ctx context.Context, ownerID, id int64) (*model.Bookmark, error) {
	bookmark, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrBookmarkNotFound) {
			return nil, ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return bookmark, nil
}

// List returns all of the owner's bookmarks in insertion order.
func (uc *BookmarkUsecase) List(ctx context.Context, ownerID int64) ([]*model.Bookmark, error) {
	bookmarks, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// Edit applies a partial update to one of the owner's bookmarks. The store
// filter {id, ownerID} is atomic, so an unauthorized attempt never mutates
// the row and returns the same not-found signal as a missing one.
func (uc *BookmarkUsecase) Edit(ctx context.Context, ownerID, id int64, req EditBookmarkRequest) (*model.Bookmark, error) {
	patch := model.BookmarkPatch{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	}

	bookmark, err := uc.repo.Update(ctx, ownerID, id, patch)
	if err != nil {
		if errors.Is(err, ErrBookmarkNotFound) {
			return nil, ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("failed to update bookmark: %w", err)
	}

	uc.publishEvent(ctx, model.EventBookmarkUpdated, bookmark)
	return bookmark, nil
}

// Delete removes one of the owner's bookmarks. A repeated delete follows the
// standard not-found path.
func (uc *BookmarkUsecase) Delete(ctx context.Context, ownerID, id int64) error {
	if err := uc.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, ErrBookmarkNotFound) {
			return ErrBookmarkNotFound
		}
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	uc.publishEvent(ctx, model.EventBookmarkDeleted, &model.Bookmark{ID: id, OwnerID: ownerID})
	return nil
}

// publishEvent emits a mutation event without tying the request outcome to
// delivery.
func (uc *BookmarkUsecase) publishEvent(ctx context.Context, eventType string, bookmark *model.Bookmark) {
	if uc.bus == nil {
		return
	}
	payload := model.BookmarkEvent{
		BookmarkID: bookmark.ID,
		OwnerID:    bookmark.OwnerID,
		Title:      bookmark.Title,
		OccurredAt: time.Now().UTC(),
	}
	uc.bus.PublishAndForget(context.WithoutCancel(ctx), eventbus.NewBasicEvent(eventType, payload))
}

// Ensure BookmarkUsecase implements BookmarkUsecaseInterface
var _ BookmarkUsecaseInterface = (*BookmarkUsecase)(nil)
