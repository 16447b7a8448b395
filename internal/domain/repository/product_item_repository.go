package repository

import (
	"context"

	"github.com/jhoicas/catalog-service/internal/domain/entity"
)

// ProductItemFilter filtro y ventana de un listado de artículos.
// CategoryID nil significa sin restricción. El orden es siempre por ID ascendente.
type ProductItemFilter struct {
	CategoryID *int64
	Offset     int
	Limit      int
}

// ProductItemRepository define el puerto de persistencia para ProductItem (DIP).
// GetByID devuelve (nil, nil) si no existe.
// Create y Update devuelven domain.ErrReferentialViolation si CategoryID no existe.
type ProductItemRepository interface {
	List(ctx context.Context, filter ProductItemFilter) ([]entity.ProductItem, error)
	GetByID(ctx context.Context, id int64) (*entity.ProductItem, error)
	Create(ctx context.Context, item *entity.ProductItem) error
	Update(ctx context.Context, item *entity.ProductItem) error
	Delete(ctx context.Context, id int64) error
}
