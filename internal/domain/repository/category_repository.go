package repository

import (
	"context"

	"github.com/jhoicas/catalog-service/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
//
// GetByID y GetWithProductItems devuelven (nil, nil) si no existe.
// Create asigna el ID en el almacén e ignora el que traiga la entidad.
// Update reemplaza el registro completo: devuelve domain.ErrNotFound si ya no existe
// y domain.ErrConflict si la escritura no pudo aplicarse por un cambio concurrente.
// Delete elimina la categoría y, en cascada, sus artículos.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetWithProductItems(ctx context.Context, id int64) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
}
