package handler

import (
	"github.com/gofiber/fiber/v2"

	"curador/internal/model"
	"curador/internal/service"
)

const locationNotFound = "location not found"

// CreateLocation registers a new location.
//
// @Summary Create location
// @Tags locais
// @Accept json
// @Produce json
// @Param body body model.LocationCreate true "Location"
// @Success 201 {object} model.Location
// @Failure 400 {object} errorPayload
// @Router /api/v1/locais [post]
func CreateLocation(svc service.LocationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.LocationCreate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		loc, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err, locationNotFound)
		}
		return c.Status(fiber.StatusCreated).JSON(loc)
	}
}

// ListLocations returns a page of locations.
//
// @Summary List locations
// @Tags locais
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} model.Location
// @Router /api/v1/locais [get]
func ListLocations(svc service.LocationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := pagination(c)
		if !ok {
			return err
		}
		locs, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err, locationNotFound)
		}
		return c.JSON(locs)
	}
}

// GetLocation returns one location.
//
// @Summary Get location
// @Tags locais
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} model.Location
// @Failure 404 {object} errorPayload
// @Router /api/v1/locais/{id} [get]
func GetLocation(svc service.LocationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		loc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, locationNotFound)
		}
		return c.JSON(loc)
	}
}

// UpdateLocation applies a partial update.
//
// @Summary Update location
// @Tags locais
// @Accept json
// @Produce json
// @Param id path int true "Location ID"
// @Param body body model.LocationUpdate true "Fields to change"
// @Success 200 {object} model.Location
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/v1/locais/{id} [put]
func UpdateLocation(svc service.LocationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in model.LocationUpdate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		loc, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err, locationNotFound)
		}
		return c.JSON(loc)
	}
}

// DeleteLocation removes a location and returns it.
//
// @Summary Delete location
// @Tags locais
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} model.Location
// @Failure 404 {object} errorPayload
// @Router /api/v1/locais/{id} [delete]
func DeleteLocation(svc service.LocationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		loc, err := svc.Delete(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, locationNotFound)
		}
		return c.JSON(loc)
	}
}
