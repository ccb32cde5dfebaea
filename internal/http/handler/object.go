package handler

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"curador/internal/model"
	"curador/internal/service"
)

const objectNotFound = "object not found"

// CreateObject ingests a new object.
//
// multipart/form-data (fields nome, descricao, localizacao_id and file imagem)
// runs the image workflow and answers with the suggestions. A JSON body creates
// the record directly, without image or suggestions.
//
// @Summary Create object
// @Tags objetos
// @Accept mpfd
// @Accept json
// @Produce json
// @Param nome formData string true "Name"
// @Param descricao formData string false "Description"
// @Param localizacao_id formData int false "Location ID"
// @Param imagem formData file true "Image (png, jpg, jpeg, webp)"
// @Success 201 {object} service.IngestResult
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/v1/objetos [post]
func CreateObject(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Is("json") {
			return createObjectJSON(c, svc)
		}

		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FORM", "expected multipart/form-data")
		}

		req := service.IngestRequest{Name: formValue(form, "nome")}
		if d, ok := form.Value["descricao"]; ok && len(d) > 0 && d[0] != "" {
			req.Description = &d[0]
		}
		req.LocationID, err = optionalInt64(formValue(form, "localizacao_id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "localizacao_id must be an integer")
		}

		if files := form.File["imagem"]; len(files) > 0 {
			fh := files[0]
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			defer f.Close()

			req.Image = &service.ImageUpload{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Reader:      f,
			}
		}

		res, err := svc.Ingest(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, err, objectNotFound)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

func createObjectJSON(c *fiber.Ctx, svc service.ObjectService) error {
	var in model.ObjectCreate
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	obj, err := svc.Create(c.UserContext(), in)
	if err != nil {
		return writeServiceError(c, err, objectNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(obj)
}

func formValue(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

// ListObjects returns a filtered page of objects, newest first.
//
// @Summary List objects
// @Tags objetos
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Param nome query string false "Name contains (case-insensitive)"
// @Param categoria query string false "Category contains (case-insensitive)"
// @Param tag query string false "Tags contain (case-insensitive)"
// @Param localizacao_id query int false "Location ID"
// @Success 200 {array} model.Object
// @Router /api/v1/objetos [get]
func ListObjects(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, ok, err := pagination(c)
		if !ok {
			return err
		}
		f := model.ObjectFilter{
			Name:     c.Query("nome"),
			Category: c.Query("categoria"),
			Tag:      c.Query("tag"),
		}
		f.LocationID, err = optionalInt64(c.Query("localizacao_id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LOCATION_ID", "invalid localizacao_id")
		}

		objs, err := svc.List(c.UserContext(), f, limit, offset)
		if err != nil {
			return writeServiceError(c, err, objectNotFound)
		}
		return c.JSON(objs)
	}
}

// GetObject returns one object with its location.
//
// @Summary Get object
// @Tags objetos
// @Produce json
// @Param id path int true "Object ID"
// @Success 200 {object} model.Object
// @Failure 404 {object} errorPayload
// @Router /api/v1/objetos/{id} [get]
func GetObject(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		obj, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, objectNotFound)
		}
		return c.JSON(obj)
	}
}

// UpdateObject applies a partial update; explicit nulls clear fields.
//
// @Summary Update object
// @Tags objetos
// @Accept json
// @Produce json
// @Param id path int true "Object ID"
// @Param body body model.ObjectUpdate true "Fields to change"
// @Success 200 {object} model.Object
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/v1/objetos/{id} [put]
func UpdateObject(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in model.ObjectUpdate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		obj, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err, objectNotFound)
		}
		return c.JSON(obj)
	}
}

// DeleteObject removes an object and returns its last state.
//
// @Summary Delete object
// @Tags objetos
// @Produce json
// @Param id path int true "Object ID"
// @Success 200 {object} model.Object
// @Failure 404 {object} errorPayload
// @Router /api/v1/objetos/{id} [delete]
func DeleteObject(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		obj, err := svc.Delete(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, objectNotFound)
		}
		return c.JSON(obj)
	}
}

// ObjectImage streams the stored image of an object.
//
// @Summary Object image
// @Tags objetos
// @Produce image/png
// @Produce image/jpeg
// @Produce image/webp
// @Param id path int true "Object ID"
// @Success 200 {file} file
// @Failure 404 {object} errorPayload
// @Router /api/v1/objetos/{id}/imagem [get]
func ObjectImage(svc service.ObjectService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rc, info, err := svc.OpenImage(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "image not found")
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		size := -1
		if info.Size > 0 {
			size = int(info.Size)
		}
		// the stream is closed by fasthttp once written
		return c.SendStream(rc, size)
	}
}
