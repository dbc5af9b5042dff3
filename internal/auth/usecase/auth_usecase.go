package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookmarks-api/internal/auth/domain/model"
	"bookmarks-api/internal/auth/domain/repository"
	apperrors "bookmarks-api/internal/shared/errors"
)

var (
	ErrEmailTaken         = apperrors.ErrEmailTaken
	ErrUserNotFound       = apperrors.ErrUserNotFound
	ErrInvalidCredentials = apperrors.ErrInvalidCredentials
	ErrTokenInvalid       = apperrors.ErrInvalidToken
)

// AuthUsecaseInterface defines the contract for authentication use cases.
type AuthUsecaseInterface interface {
	Signup(ctx context.Context, req SignupRequest) (*model.User, string, error)
	Signin(ctx context.Context, req SigninRequest) (*model.User, string, error)
	ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error)
	GetUserByID(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*model.User, error)
}

// SignupRequest represents the registration request
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SigninRequest represents the login request
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest carries a partial profile update. Absent fields stay
// untouched.
type UpdateProfileRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// AuthUsecase implements the authentication logic.
type AuthUsecase struct {
	repo     repository.AuthRepository
	hasher   repository.PasswordHasher
	tokenSvc repository.TokenService
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(
	repo repository.AuthRepository,
	hasher repository.PasswordHasher,
	tokenSvc repository.TokenService,
) *AuthUsecase {
	return &AuthUsecase{
		repo:     repo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
	}
}

// Signup registers a new identity and immediately logs it in.
//
// The insert itself is the uniqueness check: the store's unique index on email
// reports a duplicate atomically, so a concurrent signup race cannot create
// two identities for one email.
func (uc *AuthUsecase) Signup(ctx context.Context, req SignupRequest) (*model.User, string, error) {
	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.tokenSvc.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	user.PasswordHash = ""
	return user, token, nil
}

// Signin authenticates an identity by email and password.
//
// An unknown email and a wrong password both return ErrInvalidCredentials so
// the response never reveals whether an account exists.
func (uc *AuthUsecase) Signin(ctx context.Context, req SigninRequest) (*model.User, string, error) {
	user, err := uc.repo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	ok, err := uc.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.tokenSvc.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	user.PasswordHash = ""
	return user, token, nil
}

// ValidateToken validates a JWT string
func (uc *AuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	claims, err := uc.tokenSvc.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// GetUserByID reconstitutes the current identity record for a verified token
// subject. A missing identity means the account was deleted after the token
// was minted.
func (uc *AuthUsecase) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile applies a partial profile update to the authenticated identity.
func (uc *AuthUsecase) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*model.User, error) {
	patch := repository.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.Email != nil {
		normalized := normalizeEmail(*req.Email)
		patch.Email = &normalized
	}

	user, err := uc.repo.UpdateUser(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Ensure AuthUsecase implements AuthUsecaseInterface
var _ AuthUsecaseInterface = (*AuthUsecase)(nil)
