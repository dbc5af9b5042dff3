package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	authhttp "bookmarks-api/internal/auth/adapter/http"
	"bookmarks-api/internal/auth/domain/model"
	"bookmarks-api/internal/auth/domain/repository"
	"bookmarks-api/internal/auth/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Mock usecase
type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Signup(ctx context.Context, req usecase.SignupRequest) (*model.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *mockAuthUsecase) Signin(ctx context.Context, req usecase.SigninRequest) (*model.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *mockAuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Claims), args.Error(1)
}

func (m *mockAuthUsecase) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockAuthUsecase) UpdateProfile(ctx context.Context, userID int64, req usecase.UpdateProfileRequest) (*model.User, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

type AuthHTTPTestSuite struct {
	suite.Suite
	app         *fiber.App
	mockUsecase *mockAuthUsecase
}

func (suite *AuthHTTPTestSuite) SetupTest() {
	suite.mockUsecase = &mockAuthUsecase{}
	suite.app = fiber.New()

	handler := authhttp.NewAuthHTTPHandler(suite.mockUsecase)
	handler.SetupAuthRoutes(suite.app, authhttp.NewAuthMiddleware(suite.mockUsecase))
}

func (suite *AuthHTTPTestSuite) TestSignup_Success() {
	user := &model.User{ID: 1, Email: "test@email.com"}
	suite.mockUsecase.On("Signup", mock.Anything, usecase.SignupRequest{Email: "test@email.com", Password: "secret"}).
		Return(user, "jwt-token", nil)

	resp, err := suite.app.Test(jsonRequest("POST", "/auth/signup", map[string]string{
		"email":    "test@email.com",
		"password": "secret",
	}))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusCreated, resp.StatusCode)

	var response authhttp.AuthResponse
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(suite.T(), "jwt-token", response.AccessToken)
}

func (suite *AuthHTTPTestSuite) TestSignup_MissingEmail() {
	resp, err := suite.app.Test(jsonRequest("POST", "/auth/signup", map[string]string{
		"password": "secret",
	}))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
	suite.mockUsecase.AssertNotCalled(suite.T(), "Signup")
}

func (suite *AuthHTTPTestSuite) TestSignup_MissingPassword() {
	resp, err := suite.app.Test(jsonRequest("POST", "/auth/signup", map[string]string{
		"email": "test@email.com",
	}))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
}

func (suite *AuthHTTPTestSuite) TestSignup_NoBody() {
	req := httptest.NewRequest("POST", "/auth/signup", nil)
	resp, err := suite.app.Test(req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
}

func (suite *AuthHTTPTestSuite) TestSignup_DuplicateEmail() {
	suite.mockUsecase.On("Signup", mock.Anything, mock.Anything).
		Return(nil, "", usecase.ErrEmailTaken)

	resp, err := suite.app.Test(jsonRequest("POST", "/auth/signup", map[string]string{
		"email":    "test@email.com",
		"password": "secret",
	}))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusForbidden, resp.StatusCode)
}

func (suite *AuthHTTPTestSuite) TestSignin_Success() {
	user := &model.User{ID: 1, Email: "test@email.com"}
	suite.mockUsecase.On("Signin", mock.Anything, usecase.SigninRequest{Email: "test@email.com", Password: "secret"}).
		Return(user, "jwt-token", nil)

	resp, err := suite.app.Test(jsonRequest("POST", "/auth/signin", map[string]string{
		"email":    "test@email.com",
		"password": "secret",
	}))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)

	var response authhttp.AuthResponse
	require.NoError(suite.T(), json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(suite.T(), "jwt-token", response.AccessToken)
}

// Unknown email and wrong password must be indistinguishable down to the
// response bytes.
func (suite *AuthHTTPTestSuite) TestSignin_FailuresAreIdentical() {
	suite.mockUsecase.On("Signin", mock.Anything, usecase.SigninRequest{Email: "other@email.com", Password: "secret"}).
		Return(nil, "", usecase.ErrInvalidCredentials)
	suite.mockUsecase.On("Signin", mock.Anything, usecase.SigninRequest{Email: "test@email.com", Password: "wrong"}).
		Return(nil, "", usecase.ErrInvalidCredentials)

	unknownResp, err := suite.app.Test(jsonRequest("POST", "/auth/signin", map[string]string{
		"email":    "other@email.com",
		"password": "secret",
	}))
	require.NoError(suite.T(), err)

	wrongResp, err := suite.app.Test(jsonRequest("POST", "/auth/signin", map[string]string{
		"email":    "test@email.com",
		"password": "wrong",
	}))
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), http.StatusForbidden, unknownResp.StatusCode)
	assert.Equal(suite.T(), http.StatusForbidden, wrongResp.StatusCode)

	unknownBody, err := io.ReadAll(unknownResp.Body)
	require.NoError(suite.T(), err)
	wrongBody, err := io.ReadAll(wrongResp.Body)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), unknownBody, wrongBody)
}

func (suite *AuthHTTPTestSuite) TestSignin_MissingFields() {
	resp, err := suite.app.Test(jsonRequest("POST", "/auth/signin", map[string]string{
		"email": "test@email.com",
	}))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusBadRequest, resp.StatusCode)
}

func TestAuthHTTPTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHTTPTestSuite))
}
