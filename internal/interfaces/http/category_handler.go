package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-service/internal/application/catalog"
	"github.com/jhoicas/catalog-service/internal/application/dto"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	svc catalog.Service
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(svc catalog.Service) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Success      204  "sin categorías"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.ListCategories(c.UserContext())
	if err != nil {
		return writeError(c, err, "no se pudieron listar las categorías")
	}
	if len(list) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(dto.NewCategoryResponses(list))
}

// GetByID godoc
// @Summary      Obtener categoría por ID (con sus artículos)
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Success      204  "no encontrada"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser numérico")
	}
	category, err := h.svc.GetCategory(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, "no se pudo obtener la categoría")
	}
	return c.JSON(dto.NewCategoryResponse(*category))
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Datos de la categoría (id se ignora)"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", validationMessage(err))
	}
	out, err := h.svc.AddCategory(c.UserContext(), in.ToEntity())
	if err != nil {
		return writeError(c, err, "no se pudo crear la categoría")
	}
	c.Location(fmt.Sprintf("/api/categories/%d", out.ID))
	return c.Status(fiber.StatusCreated).JSON(dto.NewCategoryResponse(*out))
}

// Update godoc
// @Summary      Reemplazar categoría
// @Tags         categories
// @Accept       json
// @Param        id    path  int                  true  "ID de la categoría"
// @Param        body  body  dto.CategoryRequest  true  "Categoría completa; id debe coincidir con la ruta"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse  "no encontrada (NOT_FOUND) o fallo del almacén"
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser numérico")
	}
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", validationMessage(err))
	}
	if _, err := h.svc.UpdateCategory(c.UserContext(), id, in.ToEntity()); err != nil {
		return writeMutationError(c, err, "no se pudo actualizar la categoría")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar categoría (y sus artículos)
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Success      204  "no encontrada"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser numérico")
	}
	category, err := h.svc.GetCategory(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, "no se pudo obtener la categoría")
	}
	if _, err := h.svc.DeleteCategory(c.UserContext(), id); err != nil {
		return writeError(c, err, "no se pudo eliminar la categoría")
	}
	return c.JSON(dto.NewCategoryResponse(*category))
}
