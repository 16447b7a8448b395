package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalog-service/internal/domain"
	"github.com/jhoicas/catalog-service/internal/domain/entity"
	"github.com/jhoicas/catalog-service/internal/domain/repository"
)

// Mensajes de confirmación de borrado.
const (
	MsgCategoryDeleted    = "categoría eliminada"
	MsgProductItemDeleted = "artículo eliminado"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías (slice vacío si no hay ninguna).
func (uc *CategoryUseCase) List(ctx context.Context) ([]entity.Category, error) {
	return uc.repo.List(ctx)
}

// GetByID obtiene una categoría con sus artículos.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	category, err := uc.repo.GetWithProductItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

// Create inserta la categoría ignorando el ID recibido y devuelve el estado leído tras el commit.
func (uc *CategoryUseCase) Create(ctx context.Context, in entity.Category) (*entity.Category, error) {
	category := &entity.Category{Name: in.Name}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	created, err := uc.repo.GetByID(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("%w: categoría %d no visible tras insertar", domain.ErrStorage, category.ID)
	}
	return created, nil
}

// Update reemplaza el registro completo. La coincidencia de IDs la valida quien llama.
func (uc *CategoryUseCase) Update(ctx context.Context, in entity.Category) (*entity.Category, error) {
	category := &entity.Category{ID: in.ID, Name: in.Name}
	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete vuelve a resolver la categoría justo antes de borrarla. Sus artículos se eliminan en cascada.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) (string, error) {
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
	return MsgCategoryDeleted, nil
}
