package http

import (
	"strconv"

	authhttp "bookmarks-api/internal/auth/adapter/http"
	"bookmarks-api/internal/bookmark/usecase"
	apperrors "bookmarks-api/internal/shared/errors"
	"bookmarks-api/internal/shared/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BookmarkHTTPHandler handles HTTP requests for bookmarks
type BookmarkHTTPHandler struct {
	usecase  usecase.BookmarkUsecaseInterface
	validate *validator.Validate
}

// NewBookmarkHTTPHandler creates a new bookmark HTTP handler
func NewBookmarkHTTPHandler(uc usecase.BookmarkUsecaseInterface) *BookmarkHTTPHandler {
	return &BookmarkHTTPHandler{
		usecase:  uc,
		validate: validator.New(),
	}
}

// SetupBookmarkRoutes sets up the bookmark endpoints, all behind the bearer
// guard.
func (h *BookmarkHTTPHandler) SetupBookmarkRoutes(router fiber.Router, middleware *authhttp.AuthMiddleware) {
	bookmarks := router.Group("/bookmarks", middleware.Protect())
	bookmarks.Get("/", h.List)
	bookmarks.Post("/", h.Create)
	bookmarks.Get("/:id", h.GetByID)
	bookmarks.Patch("/:id", h.Edit)
	bookmarks.Delete("/:id", h.Delete)
}

// List returns all of the authenticated user's bookmarks
func (h *BookmarkHTTPHandler) List(c *fiber.Ctx) error {
	ownerID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return unauthorized(c)
	}

	bookmarks, err := h.usecase.List(c.UserContext(), ownerID)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(bookmarks)
}

// Create stores a new bookmark owned by the authenticated user
func (h *BookmarkHTTPHandler) Create(c *fiber.Ctx) error {
	ownerID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return unauthorized(c)
	}

	var req usecase.CreateBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidationError("Invalid request body"))
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, apperrors.NewValidationError("title and link are required"))
	}

	bookmark, err := h.usecase.Create(c.UserContext(), ownerID, req)
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(bookmark)
}

// GetByID returns one of the authenticated user's bookmarks or 404
func (h *BookmarkHTTPHandler) GetByID(c *fiber.Ctx) error {
	ownerID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return respondError(c, apperrors.NewValidationError("Invalid bookmark id"))
	}

	bookmark, err := h.usecase.GetByID(c.UserContext(), ownerID, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return notFound(c)
		}
		return internalError(c)
	}

	return c.JSON(bookmark)
}

// Edit applies a partial update to one of the authenticated user's bookmarks
func (h *BookmarkHTTPHandler) Edit(c *fiber.Ctx) error {
	ownerID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return respondError(c, apperrors.NewValidationError("Invalid bookmark id"))
	}

	var req usecase.EditBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidationError("Invalid request body"))
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, apperrors.NewValidationError("invalid bookmark fields"))
	}

	bookmark, err := h.usecase.Edit(c.UserContext(), ownerID, id, req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return notFound(c)
		}
		return internalError(c)
	}

	return c.JSON(bookmark)
}

// Delete removes one of the authenticated user's bookmarks
func (h *BookmarkHTTPHandler) Delete(c *fiber.Ctx) error {
	ownerID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return unauthorized(c)
	}

	id, err := parseID(c)
	if err != nil {
		return respondError(c, apperrors.NewValidationError("Invalid bookmark id"))
	}

	if err := h.usecase.Delete(c.UserContext(), ownerID, id); err != nil {
		if apperrors.IsNotFound(err) {
			return notFound(c)
		}
		return internalError(c)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func unauthorized(c *fiber.Ctx) error {
	return respondError(c, apperrors.NewAuthenticationError("Unauthorized"))
}

// notFound is the single not-found signal: an absent row and a row owned by
// someone else produce this identical response.
func notFound(c *fiber.Ctx) error {
	return respondError(c, apperrors.NewNotFoundError("Bookmark"))
}

func internalError(c *fiber.Ctx) error {
	return respondError(c, apperrors.NewInternalError("Internal Server Error"))
}

// respondError renders an AppError with its mapped status code.
func respondError(c *fiber.Ctx, appErr *apperrors.AppError) error {
	return c.Status(appErr.HTTPCode).JSON(fiber.Map{
		"error": appErr.Message,
	})
}
