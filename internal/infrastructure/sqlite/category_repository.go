package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jhoicas/catalog-service/internal/domain"
	"github.com/jhoicas/catalog-service/internal/domain/entity"
	"github.com/jhoicas/catalog-service/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre gorm/sqlite.
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// List devuelve todas las categorías ordenadas por ID, sin artículos.
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	var rows []categoryModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, translate("list categories", err)
	}
	out := make([]entity.Category, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// GetByID obtiene una categoría sin cargar sus artículos.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var m categoryModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translate("get category", err)
	}
	c := m.toEntity()
	return &c, nil
}

// GetWithProductItems obtiene una categoría con sus artículos (ordenados por ID).
func (r *CategoryRepo) GetWithProductItems(ctx context.Context, id int64) (*entity.Category, error) {
	var m categoryModel
	err := r.db.WithContext(ctx).
		Preload("ProductItems", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translate("get category with items", err)
	}
	if m.ProductItems == nil {
		m.ProductItems = []productItemModel{}
	}
	c := m.toEntity()
	return &c, nil
}

// Create inserta la categoría; el ID lo asigna sqlite (AUTOINCREMENT, nunca se reutiliza).
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	m := categoryModel{Name: category.Name}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate("insert category", err)
	}
	category.ID = m.ID
	return nil
}

// Update reemplaza el registro completo.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	res := r.db.WithContext(ctx).
		Model(&categoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{"name": category.Name})
	if res.Error != nil {
		return translate("update category", res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missingOrConflict(ctx, category.ID)
	}
	return nil
}

// Delete elimina la categoría; la FK ON DELETE CASCADE elimina sus artículos.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&categoryModel{})
	if res.Error != nil {
		return translate("delete category", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) missingOrConflict(ctx context.Context, id int64) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}
