package handler

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"curador/internal/vision"
)

// Welcome answers the root path.
func Welcome() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Bem-vindo à API 'O Curador de Objetos'!"})
	}
}

// HealthCheck reports healthy when the database answers a ping.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// VisionStatusResponse is the body of GET /api/v1/vision/status.
type VisionStatusResponse struct {
	Status string `json:"status"`
	Model  string `json:"model,omitempty"`
	Error  string `json:"error,omitempty"`
}

// VisionStatus checks that the configured model is reachable and can generate content.
//
// @Summary Vision model status
// @Tags vision
// @Produce json
// @Success 200 {object} VisionStatusResponse
// @Failure 503 {object} VisionStatusResponse
// @Router /api/v1/vision/status [get]
func VisionStatus(cls vision.Classifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 10*time.Second)
		defer cancel()

		err := cls.Ping(ctx)
		switch {
		case errors.Is(err, vision.ErrDisabled):
			return c.JSON(VisionStatusResponse{Status: "disabled"})
		case err != nil:
			return c.Status(fiber.StatusServiceUnavailable).JSON(VisionStatusResponse{
				Status: "unavailable",
				Model:  cls.Model(),
				Error:  err.Error(),
			})
		}
		return c.JSON(VisionStatusResponse{Status: "ok", Model: cls.Model()})
	}
}
