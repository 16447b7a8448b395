// Package catalog expone la fachada del catálogo: un único contrato sobre categorías y artículos
// que oculta el almacén concreto y traduce los fallos inesperados a errores de dominio.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/catalog-service/internal/application/dto"
	"github.com/jhoicas/catalog-service/internal/application/usecase"
	"github.com/jhoicas/catalog-service/internal/domain"
	"github.com/jhoicas/catalog-service/internal/domain/entity"
	"github.com/jhoicas/catalog-service/internal/domain/repository"
	"github.com/jhoicas/catalog-service/pkg/logger"
)

// Service contrato del catálogo que consumen los adaptadores de entrada.
//
// Todas las operaciones devuelven domain.ErrNotFound para ausencias, domain.ErrInvalidInput
// para peticiones mal formadas y, para cualquier otro fallo, un error que envuelve
// domain.ErrStorage, domain.ErrConflict o domain.ErrReferentialViolation.
type Service interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	AddCategory(ctx context.Context, category entity.Category) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id int64, category entity.Category) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) (string, error)

	ListProductItems(ctx context.Context, q dto.ProductItemQuery) ([]entity.ProductItem, error)
	GetProductItem(ctx context.Context, id int64) (*entity.ProductItem, error)
	AddProductItem(ctx context.Context, item entity.ProductItem) (*entity.ProductItem, error)
	UpdateProductItem(ctx context.Context, id int64, item entity.ProductItem) (*entity.ProductItem, error)
	DeleteProductItem(ctx context.Context, id int64) (string, error)
}

// Options ajustes de la fachada.
type Options struct {
	Timeout         time.Duration // por operación; 0 = sin límite propio
	DefaultPageSize int
	PageSizeWarn    int // registra una advertencia si page_size lo supera; 0 = nunca
}

var _ Service = (*CatalogService)(nil)

// CatalogService implementación de Service sobre los casos de uso de categorías y artículos.
type CatalogService struct {
	categories *usecase.CategoryUseCase
	items      *usecase.ProductItemUseCase
	log        *logger.Logger
	opts       Options
}

// NewService compone los casos de uso sobre los repositorios inyectados.
func NewService(
	categoryRepo repository.CategoryRepository,
	itemRepo repository.ProductItemRepository,
	log *logger.Logger,
	opts Options,
) *CatalogService {
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogService{
		categories: usecase.NewCategoryUseCase(categoryRepo),
		items:      usecase.NewProductItemUseCase(itemRepo, opts.DefaultPageSize),
		log:        log.Component("catalog"),
		opts:       opts,
	}
}

// ListCategories devuelve todas las categorías.
func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return call(ctx, s, "list_categories", 0, s.categories.List)
}

// GetCategory devuelve la categoría con sus artículos.
func (s *CatalogService) GetCategory(ctx context.Context, id int64) (*entity.Category, error) {
	return call(ctx, s, "get_category", id, func(ctx context.Context) (*entity.Category, error) {
		return s.categories.GetByID(ctx, id)
	})
}

// AddCategory crea una categoría; el ID lo asigna el almacén.
func (s *CatalogService) AddCategory(ctx context.Context, category entity.Category) (*entity.Category, error) {
	return call(ctx, s, "add_category", 0, func(ctx context.Context) (*entity.Category, error) {
		return s.categories.Create(ctx, category)
	})
}

// UpdateCategory reemplaza la categoría id. Rechaza la petición sin tocar el almacén si el ID
// del cuerpo no coincide.
func (s *CatalogService) UpdateCategory(ctx context.Context, id int64, category entity.Category) (*entity.Category, error) {
	if id != category.ID {
		return nil, fmt.Errorf("%w: id de ruta %d distinto del id del cuerpo %d", domain.ErrInvalidInput, id, category.ID)
	}
	return call(ctx, s, "update_category", id, func(ctx context.Context) (*entity.Category, error) {
		return s.categories.Update(ctx, category)
	})
}

// DeleteCategory elimina la categoría y sus artículos. Devuelve el mensaje de confirmación.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) (string, error) {
	return call(ctx, s, "delete_category", id, func(ctx context.Context) (string, error) {
		return s.categories.Delete(ctx, id)
	})
}

// ListProductItems lista artículos filtrados y paginados.
func (s *CatalogService) ListProductItems(ctx context.Context, q dto.ProductItemQuery) ([]entity.ProductItem, error) {
	if q.PageSize != nil && s.opts.PageSizeWarn > 0 && *q.PageSize > s.opts.PageSizeWarn {
		s.log.Warn().Int("page_size", *q.PageSize).Int("threshold", s.opts.PageSizeWarn).Msg("page_size por encima del umbral")
	}
	return call(ctx, s, "list_product_items", 0, func(ctx context.Context) ([]entity.ProductItem, error) {
		return s.items.List(ctx, q)
	})
}

// GetProductItem devuelve un artículo.
func (s *CatalogService) GetProductItem(ctx context.Context, id int64) (*entity.ProductItem, error) {
	return call(ctx, s, "get_product_item", id, func(ctx context.Context) (*entity.ProductItem, error) {
		return s.items.GetByID(ctx, id)
	})
}

// AddProductItem crea un artículo en una categoría existente.
func (s *CatalogService) AddProductItem(ctx context.Context, item entity.ProductItem) (*entity.ProductItem, error) {
	return call(ctx, s, "add_product_item", 0, func(ctx context.Context) (*entity.ProductItem, error) {
		return s.items.Create(ctx, item)
	})
}

// UpdateProductItem reemplaza el artículo id.
func (s *CatalogService) UpdateProductItem(ctx context.Context, id int64, item entity.ProductItem) (*entity.ProductItem, error) {
	if id != item.ID {
		return nil, fmt.Errorf("%w: id de ruta %d distinto del id del cuerpo %d", domain.ErrInvalidInput, id, item.ID)
	}
	return call(ctx, s, "update_product_item", id, func(ctx context.Context) (*entity.ProductItem, error) {
		return s.items.Update(ctx, item)
	})
}

// DeleteProductItem elimina un artículo.
func (s *CatalogService) DeleteProductItem(ctx context.Context, id int64) (string, error) {
	return call(ctx, s, "delete_product_item", id, func(ctx context.Context) (string, error) {
		return s.items.Delete(ctx, id)
	})
}

// call ejecuta fn con el timeout configurado, convierte panics y errores ajenos al dominio en
// domain.ErrStorage y registra los fallos. Las ausencias y entradas inválidas pasan sin log.
func call[T any](ctx context.Context, s *CatalogService, op string, id int64, fn func(context.Context) (T, error)) (out T, err error) {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out, err = zero, fmt.Errorf("%s: %w: panic: %v", op, domain.ErrStorage, r)
		}
		if domain.IsFailure(err) {
			err = classify(op, err)
			ev := s.log.Error().Err(err).Str("op", op)
			if id != 0 {
				ev = ev.Int64("id", id)
			}
			ev.Msg("operación del catálogo fallida")
		}
	}()
	return fn(ctx)
}

// classify garantiza que todo fallo envuelva uno de los errores de dominio.
func classify(op string, err error) error {
	if errors.Is(err, domain.ErrStorage) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrReferentialViolation) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}
