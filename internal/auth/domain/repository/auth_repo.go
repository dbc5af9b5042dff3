package repository

import (
	"context"

	"bookmarks-api/internal/auth/domain/model"
)

// UserPatch carries the profile fields of a partial update. Nil means the
// field is left unchanged.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// AuthRepository defines the interface for identity data operations
type AuthRepository interface {
	// CreateUser inserts a new identity. A uniqueness violation on the email
	// field surfaces as errors.ErrEmailTaken.
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	// UpdateUser applies a partial update and returns the updated identity.
	UpdateUser(ctx context.Context, id int64, patch UserPatch) (*model.User, error)
}
