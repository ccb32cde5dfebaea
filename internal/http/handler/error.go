package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"curador/internal/http/middleware"
	"curador/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// serviceErrors maps service sentinels to responses. Their messages are safe
// to return and carry the validation detail.
var serviceErrors = []struct {
	err    error
	status int
	code   string
}{
	{service.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrValidation, fiber.StatusBadRequest, "VALIDATION_ERROR"},
	{service.ErrImageRequired, fiber.StatusBadRequest, "IMAGE_REQUIRED"},
	{service.ErrInvalidImage, fiber.StatusBadRequest, "INVALID_IMAGE"},
	{service.ErrLocationReference, fiber.StatusBadRequest, "INVALID_LOCATION"},
	{service.ErrLocationNameTaken, fiber.StatusBadRequest, "LOCATION_NAME_TAKEN"},
}

// writeServiceError translates an error returned by a service. Anything
// unknown is logged and answered with a generic 500.
func writeServiceError(c *fiber.Ctx, err error, notFoundMsg string) error {
	for _, m := range serviceErrors {
		if !errors.Is(err, m.err) {
			continue
		}
		msg := err.Error()
		if m.err == service.ErrNotFound {
			msg = notFoundMsg
		}
		return writeError(c, m.status, m.code, msg)
	}

	zap.L().Error("request_failed",
		zap.String("request_id", requestIDFromCtx(c)),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
