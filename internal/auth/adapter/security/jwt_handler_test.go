package security_test

import (
	"context"
	"testing"
	"time"

	"bookmarks-api/internal/auth/adapter/security"
	"bookmarks-api/internal/auth/config"
	"bookmarks-api/internal/auth/domain/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:   "test-secret-key-for-unit-tests",
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: 15 * time.Minute,
	}
}

func TestNewJWTokenService_Validation(t *testing.T) {
	_, err := security.NewJWTokenService(&config.Config{JWTIssuer: "i", AccessTokenTTL: time.Minute})
	assert.Error(t, err)

	_, err = security.NewJWTokenService(&config.Config{JWTSecretKey: "s", AccessTokenTTL: time.Minute})
	assert.Error(t, err)

	_, err = security.NewJWTokenService(&config.Config{JWTSecretKey: "s", JWTIssuer: "i"})
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc, err := security.NewJWTokenService(newTestConfig())
	require.NoError(t, err)

	ctx := context.Background()
	token, err := svc.GenerateToken(ctx, 42, "test@email.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "test@email.com", claims.Email)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestValidateToken_Empty(t *testing.T) {
	svc, err := security.NewJWTokenService(newTestConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), "")
	assert.ErrorIs(t, err, security.ErrTokenInvalid)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := newTestConfig()
	svc, err := security.NewJWTokenService(cfg)
	require.NoError(t, err)

	now := time.Now().Add(-time.Hour)
	claims := &repository.Claims{
		UserID: 42,
		Email:  "test@email.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    cfg.JWTIssuer,
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecretKey))
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), expired)
	assert.ErrorIs(t, err, security.ErrTokenExpired)
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	svc, err := security.NewJWTokenService(newTestConfig())
	require.NoError(t, err)

	ctx := context.Background()
	token, err := svc.GenerateToken(ctx, 42, "test@email.com")
	require.NoError(t, err)

	// Flip the last byte of the signature segment.
	last := token[len(token)-1]
	replacement := byte('A')
	if last == replacement {
		replacement = 'B'
	}
	tampered := token[:len(token)-1] + string(replacement)

	_, err = svc.ValidateToken(ctx, tampered)
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc, err := security.NewJWTokenService(newTestConfig())
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.JWTSecretKey = "a-completely-different-secret"
	other, err := security.NewJWTokenService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateToken(context.Background(), 42, "test@email.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, security.ErrTokenSignatureInvalid)
}

func TestValidateToken_WrongAlgorithm(t *testing.T) {
	svc, err := security.NewJWTokenService(newTestConfig())
	require.NoError(t, err)

	// alg: none tokens must be rejected outright
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &repository.Claims{UserID: 42}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), unsigned)
	assert.Error(t, err)
}
