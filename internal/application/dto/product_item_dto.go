package dto

import "github.com/jhoicas/catalog-service/internal/domain/entity"

// ProductItemRequest entrada para crear o reemplazar un artículo.
type ProductItemRequest struct {
	ID         int64   `json:"id"`
	Title      *string `json:"title"`
	Colour     *string `json:"colour"`
	CategoryID int64   `json:"categoryId" validate:"required,gt=0"`
}

// ToEntity convierte la petición en entidad.
func (r ProductItemRequest) ToEntity() entity.ProductItem {
	return entity.ProductItem{ID: r.ID, Title: r.Title, Colour: r.Colour, CategoryID: r.CategoryID}
}

// ProductItemQuery filtros y paginación de GET /productitems.
// Page es 1-based; PageSize nil usa el valor por defecto configurado. No hay tope superior.
type ProductItemQuery struct {
	Page       *int   `query:"page" validate:"omitempty,min=1"`
	PageSize   *int   `query:"page_size" validate:"omitempty,min=1"`
	CategoryID *int64 `query:"categoryid"`
}

// ProductItemResponse salida de un artículo.
type ProductItemResponse struct {
	ID         int64   `json:"id"`
	Title      *string `json:"title"`
	Colour     *string `json:"colour"`
	CategoryID int64   `json:"categoryId"`
}

// NewProductItemResponse mapea la entidad a su representación JSON.
func NewProductItemResponse(p entity.ProductItem) ProductItemResponse {
	return ProductItemResponse{ID: p.ID, Title: p.Title, Colour: p.Colour, CategoryID: p.CategoryID}
}

// NewProductItemResponses mapea una lista de artículos.
func NewProductItemResponses(list []entity.ProductItem) []ProductItemResponse {
	out := make([]ProductItemResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewProductItemResponse(p))
	}
	return out
}
