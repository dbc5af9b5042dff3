package http

import (
	apperrors "bookmarks-api/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
)

// respondError renders an AppError with its mapped status code.
func respondError(c *fiber.Ctx, appErr *apperrors.AppError) error {
	return c.Status(appErr.HTTPCode).JSON(fiber.Map{
		"error": appErr.Message,
	})
}
