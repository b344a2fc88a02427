package server

import (
	"errors"
	"strconv"

	"blogsphere/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten signals that a handler already wrote an error response.
var errResponseWritten = errors.New("response written")

// parseID extracts a positive uint route parameter, writing a 400 itself when
// the value is missing or malformed.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param+" parameter"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parsePagination reads the 1-indexed page and limit query parameters.
// Out-of-range values fall back to defaults rather than erroring.
func parsePagination(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// callerID returns the authenticated user ID set by AuthRequired.
func callerID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}
