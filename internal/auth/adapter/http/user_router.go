package http

import (
	"bookmarks-api/internal/auth/usecase"
	apperrors "bookmarks-api/internal/shared/errors"
	"bookmarks-api/internal/shared/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHTTPHandler handles HTTP requests for the authenticated identity's profile
type UserHTTPHandler struct {
	usecase  usecase.AuthUsecaseInterface
	validate *validator.Validate
}

// NewUserHTTPHandler creates a new user HTTP handler
func NewUserHTTPHandler(uc usecase.AuthUsecaseInterface) *UserHTTPHandler {
	return &UserHTTPHandler{
		usecase:  uc,
		validate: validator.New(),
	}
}

// SetupUserRoutes sets up the profile endpoints under /users, all behind the
// bearer guard.
func (h *UserHTTPHandler) SetupUserRoutes(router fiber.Router, middleware *AuthMiddleware) {
	users := router.Group("/users", middleware.Protect())
	users.Get("/me", h.GetMe)
	users.Patch("/", h.EditMe)
}

// GetMe returns the current identity. The password hash is never serialized.
func (h *UserHTTPHandler) GetMe(c *fiber.Ctx) error {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return respondError(c, apperrors.NewAuthenticationError("Unauthorized"))
	}

	user, err := h.usecase.GetUserByID(c.UserContext(), userID)
	if err != nil {
		return respondError(c, apperrors.NewAuthenticationError("Unauthorized"))
	}

	return c.JSON(user)
}

// EditMe applies a partial profile update to the current identity
func (h *UserHTTPHandler) EditMe(c *fiber.Ctx) error {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return respondError(c, apperrors.NewAuthenticationError("Unauthorized"))
	}

	var req usecase.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidationError("Invalid request body"))
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, apperrors.NewValidationError("invalid profile fields"))
	}

	user, err := h.usecase.UpdateProfile(c.UserContext(), userID, req)
	if err != nil {
		if apperrors.IsConflict(err) {
			return respondError(c, apperrors.NewConflictError("Credentials taken"))
		}
		if apperrors.IsNotFound(err) {
			return respondError(c, apperrors.NewAuthenticationError("Unauthorized"))
		}
		return respondError(c, apperrors.NewInternalError("Internal Server Error"))
	}

	return c.JSON(user)
}
