package dto

import "github.com/jhoicas/catalog-service/internal/domain/entity"

// CategoryRequest entrada para crear o reemplazar una categoría.
// En creación el ID se ignora; en actualización debe coincidir con el de la ruta.
type CategoryRequest struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
}

// ToEntity convierte la petición en entidad.
func (r CategoryRequest) ToEntity() entity.Category {
	return entity.Category{ID: r.ID, Name: r.Name}
}

// CategoryResponse salida de una categoría. ProductItems es null en listados y
// lista (posiblemente vacía) al obtener una categoría por ID.
type CategoryResponse struct {
	ID           int64                 `json:"id"`
	Name         *string               `json:"name"`
	ProductItems []ProductItemResponse `json:"productItems"`
}

// NewCategoryResponse mapea la entidad a su representación JSON.
func NewCategoryResponse(c entity.Category) CategoryResponse {
	out := CategoryResponse{ID: c.ID, Name: c.Name}
	if c.ProductItems != nil {
		out.ProductItems = NewProductItemResponses(c.ProductItems)
	}
	return out
}

// NewCategoryResponses mapea una lista de categorías.
func NewCategoryResponses(list []entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}
