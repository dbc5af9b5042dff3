package usecase_test

import (
	"context"
	"testing"

	"bookmarks-api/internal/auth/domain/model"
	"bookmarks-api/internal/auth/domain/repository"
	"bookmarks-api/internal/auth/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Mock repository
type mockAuthRepository struct {
	mock.Mock
}

func (m *mockAuthRepository) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockAuthRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockAuthRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockAuthRepository) UpdateUser(ctx context.Context, id int64, patch repository.UserPatch) (*model.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// Mock token service
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateToken(ctx context.Context, userID int64, email string) (string, error) {
	args := m.Called(ctx, userID, email)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Claims), args.Error(1)
}

// Mock password hasher
type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Verify(plaintext, hash string) (bool, error) {
	args := m.Called(plaintext, hash)
	return args.Bool(0), args.Error(1)
}

type AuthUsecaseTestSuite struct {
	suite.Suite
	mockRepo   *mockAuthRepository
	mockHasher *mockPasswordHasher
	mockToken  *mockTokenService
	usecase    *usecase.AuthUsecase
}

func (suite *AuthUsecaseTestSuite) SetupTest() {
	suite.mockRepo = &mockAuthRepository{}
	suite.mockHasher = &mockPasswordHasher{}
	suite.mockToken = &mockTokenService{}

	suite.usecase = usecase.NewAuthUsecase(suite.mockRepo, suite.mockHasher, suite.mockToken)
}

func (suite *AuthUsecaseTestSuite) TestSignup_Success() {
	ctx := context.Background()
	req := usecase.SignupRequest{Email: "Test@Email.com", Password: "secret"}

	suite.mockHasher.On("Hash", "secret").Return("hashed-secret", nil)
	suite.mockRepo.On("CreateUser", ctx, mock.MatchedBy(func(user *model.User) bool {
		// email is normalized and the hash is stored, never the plaintext
		return user.Email == "test@email.com" && user.PasswordHash == "hashed-secret"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = 1
	}).Return(nil)
	suite.mockToken.On("GenerateToken", ctx, int64(1), "test@email.com").Return("jwt-token", nil)

	user, token, err := suite.usecase.Signup(ctx, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "jwt-token", token)
	assert.Equal(suite.T(), int64(1), user.ID)
	assert.Empty(suite.T(), user.PasswordHash)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthUsecaseTestSuite) TestSignup_DuplicateEmail() {
	ctx := context.Background()
	req := usecase.SignupRequest{Email: "test@email.com", Password: "secret"}

	suite.mockHasher.On("Hash", "secret").Return("hashed-secret", nil)
	suite.mockRepo.On("CreateUser", ctx, mock.Anything).Return(usecase.ErrEmailTaken)

	user, token, err := suite.usecase.Signup(ctx, req)

	assert.ErrorIs(suite.T(), err, usecase.ErrEmailTaken)
	assert.Nil(suite.T(), user)
	assert.Empty(suite.T(), token)
	suite.mockToken.AssertNotCalled(suite.T(), "GenerateToken")
}

func (suite *AuthUsecaseTestSuite) TestSignin_Success() {
	ctx := context.Background()
	stored := &model.User{ID: 7, Email: "test@email.com", PasswordHash: "hashed-secret"}

	suite.mockRepo.On("GetUserByEmail", ctx, "test@email.com").Return(stored, nil)
	suite.mockHasher.On("Verify", "secret", "hashed-secret").Return(true, nil)
	suite.mockToken.On("GenerateToken", ctx, int64(7), "test@email.com").Return("jwt-token", nil)

	user, token, err := suite.usecase.Signin(ctx, usecase.SigninRequest{Email: "test@email.com", Password: "secret"})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "jwt-token", token)
	assert.Empty(suite.T(), user.PasswordHash)
}

func (suite *AuthUsecaseTestSuite) TestSignin_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("GetUserByEmail", ctx, "other@email.com").Return(nil, usecase.ErrUserNotFound)

	_, _, err := suite.usecase.Signin(ctx, usecase.SigninRequest{Email: "other@email.com", Password: "secret"})

	assert.ErrorIs(suite.T(), err, usecase.ErrInvalidCredentials)
}

func (suite *AuthUsecaseTestSuite) TestSignin_WrongPassword() {
	ctx := context.Background()
	stored := &model.User{ID: 7, Email: "test@email.com", PasswordHash: "hashed-secret"}

	suite.mockRepo.On("GetUserByEmail", ctx, "test@email.com").Return(stored, nil)
	suite.mockHasher.On("Verify", "wrong", "hashed-secret").Return(false, nil)

	_, _, err := suite.usecase.Signin(ctx, usecase.SigninRequest{Email: "test@email.com", Password: "wrong"})

	// identical failure for unknown email and wrong password
	assert.ErrorIs(suite.T(), err, usecase.ErrInvalidCredentials)
	suite.mockToken.AssertNotCalled(suite.T(), "GenerateToken")
}

func (suite *AuthUsecaseTestSuite) TestGetUserByID_DeletedIdentity() {
	ctx := context.Background()

	suite.mockRepo.On("GetUserByID", ctx, int64(42)).Return(nil, usecase.ErrUserNotFound)

	user, err := suite.usecase.GetUserByID(ctx, 42)

	assert.ErrorIs(suite.T(), err, usecase.ErrUserNotFound)
	assert.Nil(suite.T(), user)
}

func (suite *AuthUsecaseTestSuite) TestUpdateProfile_PartialPatch() {
	ctx := context.Background()
	firstName := "Jane"
	updated := &model.User{ID: 7, Email: "test@email.com", FirstName: "Jane"}

	suite.mockRepo.On("UpdateUser", ctx, int64(7), mock.MatchedBy(func(patch repository.UserPatch) bool {
		return patch.Email == nil && patch.LastName == nil && patch.FirstName != nil && *patch.FirstName == "Jane"
	})).Return(updated, nil)

	user, err := suite.usecase.UpdateProfile(ctx, 7, usecase.UpdateProfileRequest{FirstName: &firstName})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Jane", user.FirstName)
}

func (suite *AuthUsecaseTestSuite) TestUpdateProfile_EmailNormalizedAndTaken() {
	ctx := context.Background()
	email := " Other@Email.com "

	suite.mockRepo.On("UpdateUser", ctx, int64(7), mock.MatchedBy(func(patch repository.UserPatch) bool {
		return patch.Email != nil && *patch.Email == "other@email.com"
	})).Return(nil, usecase.ErrEmailTaken)

	_, err := suite.usecase.UpdateProfile(ctx, 7, usecase.UpdateProfileRequest{Email: &email})

	assert.ErrorIs(suite.T(), err, usecase.ErrEmailTaken)
}

func TestAuthUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(AuthUsecaseTestSuite))
}
