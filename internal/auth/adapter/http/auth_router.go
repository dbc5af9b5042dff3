package http

import (
	"bookmarks-api/internal/auth/usecase"
	apperrors "bookmarks-api/internal/shared/errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHTTPHandler handles HTTP requests for authentication
type AuthHTTPHandler struct {
	usecase  usecase.AuthUsecaseInterface
	validate *validator.Validate
}

// AuthResponse is the body returned by signup and signin.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
}

// NewAuthHTTPHandler creates a new authentication HTTP handler
func NewAuthHTTPHandler(uc usecase.AuthUsecaseInterface) *AuthHTTPHandler {
	return &AuthHTTPHandler{
		usecase:  uc,
		validate: validator.New(),
	}
}

// SetupAuthRoutes sets up the credential endpoints under /auth, rate limited
// to slow down credential stuffing.
func (h *AuthHTTPHandler) SetupAuthRoutes(router fiber.Router, middleware *AuthMiddleware) {
	auth := router.Group("/auth", middleware.RateLimiter())
	auth.Post("/signup", h.Signup)
	auth.Post("/signin", h.Signin)
}

// Signup handles user registration. Signup implicitly logs the new identity in.
func (h *AuthHTTPHandler) Signup(c *fiber.Ctx) error {
	var req usecase.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidationError("Invalid request body"))
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, apperrors.NewValidationError("email and password are required"))
	}

	_, token, err := h.usecase.Signup(c.Context(), req)
	if err != nil {
		// A duplicate email is reported without revealing whether it was
		// exactly this email or a concurrent registration.
		if apperrors.IsConflict(err) {
			return respondError(c, apperrors.NewConflictError("Credentials taken"))
		}
		return respondError(c, apperrors.NewInternalError("Internal Server Error"))
	}

	return c.Status(fiber.StatusCreated).JSON(AuthResponse{AccessToken: token})
}

// Signin handles user login
func (h *AuthHTTPHandler) Signin(c *fiber.Ctx) error {
	var req usecase.SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidationError("Invalid request body"))
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, apperrors.NewValidationError("email and password are required"))
	}

	_, token, err := h.usecase.Signin(c.Context(), req)
	if err != nil {
		// Unknown email and wrong password produce the identical response
		// so account existence is never revealed.
		if apperrors.IsAuthorization(err) {
			return respondError(c, apperrors.NewAuthorizationError("Credentials incorrect"))
		}
		return respondError(c, apperrors.NewInternalError("Internal Server Error"))
	}

	return c.JSON(AuthResponse{AccessToken: token})
}
