package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"curador/internal/service"
	"curador/internal/vision"
)

// Services bundles what the routes depend on.
type Services struct {
	DB         *sql.DB
	Locations  service.LocationService
	Objects    service.ObjectService
	Classifier vision.Classifier
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, s Services) {
	app.Get("/", Welcome())
	app.Get("/health", HealthCheck(s.DB))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api/v1")

	locais := api.Group("/locais")
	locais.Post("/", CreateLocation(s.Locations))
	locais.Get("/", ListLocations(s.Locations))
	locais.Get("/:id", GetLocation(s.Locations))
	locais.Put("/:id", UpdateLocation(s.Locations))
	locais.Delete("/:id", DeleteLocation(s.Locations))

	objetos := api.Group("/objetos")
	objetos.Post("/", CreateObject(s.Objects))
	objetos.Get("/", ListObjects(s.Objects))
	objetos.Get("/:id", GetObject(s.Objects))
	objetos.Put("/:id", UpdateObject(s.Objects))
	objetos.Delete("/:id", DeleteObject(s.Objects))
	objetos.Get("/:id/imagem", ObjectImage(s.Objects))

	if s.Classifier != nil {
		api.Get("/vision/status", VisionStatus(s.Classifier))
	}
}
