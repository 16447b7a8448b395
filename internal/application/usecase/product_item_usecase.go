package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/jhoicas/catalog-service/internal/application/dto"
	"github.com/jhoicas/catalog-service/internal/domain"
	"github.com/jhoicas/catalog-service/internal/domain/entity"
	"github.com/jhoicas/catalog-service/internal/domain/repository"
)

// DefaultPageSize tamaño de página cuando ni la petición ni la configuración lo indican.
const DefaultPageSize = 30

// ProductItemUseCase casos de uso CRUD y listado paginado para artículos.
type ProductItemUseCase struct {
	repo            repository.ProductItemRepository
	defaultPageSize int
}

// NewProductItemUseCase construye el caso de uso. defaultPageSize <= 0 usa DefaultPageSize.
func NewProductItemUseCase(repo repository.ProductItemRepository, defaultPageSize int) *ProductItemUseCase {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	return &ProductItemUseCase{repo: repo, defaultPageSize: defaultPageSize}
}

// List filtra por categoría (si viene) y aplica la ventana de la página pedida.
func (uc *ProductItemUseCase) List(ctx context.Context, q dto.ProductItemQuery) ([]entity.ProductItem, error) {
	filter, err := uc.Window(q)
	if err != nil {
		return nil, err
	}
	return uc.repo.List(ctx, filter)
}

// Window traduce page/page_size a offset/limit: size = page_size ?? default,
// offset = (page-1)*size si page viene, 0 si no.
func (uc *ProductItemUseCase) Window(q dto.ProductItemQuery) (repository.ProductItemFilter, error) {
	size := uc.defaultPageSize
	if q.PageSize != nil {
		size = *q.PageSize
	}
	if size < 1 {
		return repository.ProductItemFilter{}, fmt.Errorf("%w: page_size debe ser >= 1", domain.ErrInvalidInput)
	}
	offset := 0
	if q.Page != nil {
		page := *q.Page
		if page < 1 {
			return repository.ProductItemFilter{}, fmt.Errorf("%w: page debe ser >= 1", domain.ErrInvalidInput)
		}
		if page-1 > math.MaxInt/size {
			return repository.ProductItemFilter{}, fmt.Errorf("%w: page fuera de rango", domain.ErrInvalidInput)
		}
		offset = (page - 1) * size
	}
	return repository.ProductItemFilter{CategoryID: q.CategoryID, Offset: offset, Limit: size}, nil
}

// GetByID obtiene un artículo por ID.
func (uc *ProductItemUseCase) GetByID(ctx context.Context, id int64) (*entity.ProductItem, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// Create inserta el artículo ignorando el ID recibido. Falla si la categoría no existe.
func (uc *ProductItemUseCase) Create(ctx context.Context, in entity.ProductItem) (*entity.ProductItem, error) {
	item := &entity.ProductItem{Title: in.Title, Colour: in.Colour, CategoryID: in.CategoryID}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	created, err := uc.repo.GetByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("%w: artículo %d no visible tras insertar", domain.ErrStorage, item.ID)
	}
	return created, nil
}

// Update reemplaza el registro completo.
func (uc *ProductItemUseCase) Update(ctx context.Context, in entity.ProductItem) (*entity.ProductItem, error) {
	item := in
	if err := uc.repo.Update(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete vuelve a resolver el artículo justo antes de borrarlo.
func (uc *ProductItemUseCase) Delete(ctx context.Context, id int64) (string, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "", domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	return MsgProductItemDeleted, nil
}
