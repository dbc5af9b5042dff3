package http

import (
	"strings"
	"time"

	"bookmarks-api/internal/auth/usecase"
	"bookmarks-api/internal/shared/contextkeys"
	apperrors "bookmarks-api/internal/shared/errors"
	"bookmarks-api/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// AuthMiddleware provides the bearer guard and transport middleware for Fiber
type AuthMiddleware struct {
	usecase usecase.AuthUsecaseInterface
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(uc usecase.AuthUsecaseInterface) *AuthMiddleware {
	return &AuthMiddleware{
		usecase: uc,
	}
}

// CORS middleware
func (m *AuthMiddleware) CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	})
}

// RateLimiter creates rate limiting middleware for the credential endpoints
func (m *AuthMiddleware) RateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.Get("X-Forwarded-For", c.IP())
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
			})
		},
	})
}

// RequestID middleware
func (m *AuthMiddleware) RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     "X-Request-ID",
		ContextKey: string(contextkeys.RequestIDKey),
	})
}

// Protect returns middleware that requires a valid bearer token and a still
// existing identity. Every failure short-circuits with 401; the identity's
// id and email are injected into the request's user context on success.
func (m *AuthMiddleware) Protect() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := m.extractToken(c)
		if err != nil {
			return respondError(c, apperrors.NewAuthenticationError("Authentication required"))
		}

		claims, err := m.usecase.ValidateToken(c.UserContext(), token)
		if err != nil {
			return respondError(c, apperrors.NewAuthenticationError("Invalid token"))
		}

		// One store lookup per request: profile edits are reflected
		// mid-token-lifetime, a deleted identity invalidates the token.
		user, err := m.usecase.GetUserByID(c.UserContext(), claims.UserID)
		if err != nil {
			return respondError(c, apperrors.NewAuthenticationError("Invalid token"))
		}

		ctx := c.UserContext()
		if rid, ok := c.Locals(string(contextkeys.RequestIDKey)).(string); ok && rid != "" {
			ctx = utils.WithRequestID(ctx, rid)
		}
		ctx = utils.WithUserID(ctx, user.ID)
		ctx = utils.WithUserEmail(ctx, user.Email)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// extractToken extracts the bearer token from the Authorization header
func (m *AuthMiddleware) extractToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != "" {
			return token, nil
		}
	}

	return "", fiber.NewError(fiber.StatusUnauthorized, "No authentication token found")
}
