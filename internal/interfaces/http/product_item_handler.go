package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-service/internal/application/catalog"
	"github.com/jhoicas/catalog-service/internal/application/dto"
)

// ProductItemHandler maneja las peticiones HTTP para ProductItem.
type ProductItemHandler struct {
	svc catalog.Service
}

// NewProductItemHandler construye el handler.
func NewProductItemHandler(svc catalog.Service) *ProductItemHandler {
	return &ProductItemHandler{svc: svc}
}

// List godoc
// @Summary      Listar artículos (filtro por categoría y paginación)
// @Tags         productitems
// @Produce      json
// @Param        page        query  int  false  "Página (1-based)"
// @Param        page_size   query  int  false  "Tamaño de página"  default(30)
// @Param        categoryid  query  int  false  "ID de categoría"
// @Success      200  {array}   dto.ProductItemResponse
// @Success      204  "sin resultados"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productitems [get]
func (h *ProductItemHandler) List(c *fiber.Ctx) error {
	var q dto.ProductItemQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros de consulta inválidos")
	}
	if err := validate.Struct(q); err != nil {
		return badRequest(c, "VALIDATION", validationMessage(err))
	}
	list, err := h.svc.ListProductItems(c.UserContext(), q)
	if err != nil {
		return writeError(c, err, "no se pudieron listar los artículos")
	}
	if len(list) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(dto.NewProductItemResponses(list))
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         productitems
// @Produce      json
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {object}  dto.ProductItemResponse
// @Success      204  "no encontrado"
// @Router       /api/productitems/{id} [get]
func (h *ProductItemHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser numérico")
	}
	item, err := h.svc.GetProductItem(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, "no se pudo obtener el artículo")
	}
	return c.JSON(dto.NewProductItemResponse(*item))
}

// Create godoc
// @Summary      Crear artículo
// @Tags         productitems
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductItemRequest  true  "Datos del artículo (id se ignora)"
// @Success      201   {object}  dto.ProductItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/productitems [post]
func (h *ProductItemHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", validationMessage(err))
	}
	out, err := h.svc.AddProductItem(c.UserContext(), in.ToEntity())
	if err != nil {
		return writeError(c, err, "no se pudo crear el artículo")
	}
	c.Location(fmt.Sprintf("/api/productitems/%d", out.ID))
	return c.Status(fiber.StatusCreated).JSON(dto.NewProductItemResponse(*out))
}

// Update godoc
// @Summary      Reemplazar artículo
// @Tags         productitems
// @Accept       json
// @Param        id    path  int                     true  "ID del artículo"
// @Param        body  body  dto.ProductItemRequest  true  "Artículo completo; id debe coincidir con la ruta"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse  "no encontrado (NOT_FOUND) o fallo del almacén"
// @Router       /api/productitems/{id} [put]
func (h *ProductItemHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser numérico")
	}
	var in dto.ProductItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", validationMessage(err))
	}
	if _, err := h.svc.UpdateProductItem(c.UserContext(), id, in.ToEntity()); err != nil {
		return writeMutationError(c, err, "no se pudo actualizar el artículo")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar artículo
// @Tags         productitems
// @Produce      json
// @Param        id   path  int  true  "ID del artículo"
// @Success      200  {object}  dto.ProductItemResponse
// @Failure      500  {object}  dto.ErrorResponse  "no encontrado (NOT_FOUND) o fallo del almacén"
// @Router       /api/productitems/{id} [delete]
func (h *ProductItemHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser numérico")
	}
	item, err := h.svc.GetProductItem(c.UserContext(), id)
	if err != nil {
		return writeMutationError(c, err, "no se pudo obtener el artículo")
	}
	if _, err := h.svc.DeleteProductItem(c.UserContext(), id); err != nil {
		return writeMutationError(c, err, "no se pudo eliminar el artículo")
	}
	return c.JSON(dto.NewProductItemResponse(*item))
}
