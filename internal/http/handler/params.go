package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// pathID parses the :id route parameter.
func pathID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pagination reads skip and limit with the listing defaults (0 and 100).
// It writes the 400 response itself and returns ok=false on bad input.
func pagination(c *fiber.Ctx) (limit, offset int, ok bool, err error) {
	offset, convErr := strconv.Atoi(c.Query("skip", "0"))
	if convErr != nil {
		return 0, 0, false, writeError(c, fiber.StatusBadRequest, "INVALID_SKIP", "invalid skip")
	}
	limit, convErr = strconv.Atoi(c.Query("limit", "100"))
	if convErr != nil {
		return 0, 0, false, writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
	}
	return limit, offset, true, nil
}

// optionalInt64 parses an optional numeric value; an empty string is absent.
func optionalInt64(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
