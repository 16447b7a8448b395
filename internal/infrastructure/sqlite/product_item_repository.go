package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jhoicas/catalog-service/internal/domain"
	"github.com/jhoicas/catalog-service/internal/domain/entity"
	"github.com/jhoicas/catalog-service/internal/domain/repository"
)

var _ repository.ProductItemRepository = (*ProductItemRepo)(nil)

// ProductItemRepo implementación del puerto ProductItemRepository sobre gorm/sqlite.
type ProductItemRepo struct {
	db *gorm.DB
}

// NewProductItemRepository construye el adaptador de persistencia para artículos.
func NewProductItemRepository(db *gorm.DB) *ProductItemRepo {
	return &ProductItemRepo{db: db}
}

// List aplica el filtro opcional por categoría y la ventana offset/limit sobre el orden por ID.
func (r *ProductItemRepo) List(ctx context.Context, filter repository.ProductItemFilter) ([]entity.ProductItem, error) {
	q := r.db.WithContext(ctx).Model(&productItemModel{})
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	var rows []productItemModel
	if err := q.Order("id").Offset(filter.Offset).Limit(filter.Limit).Find(&rows).Error; err != nil {
		return nil, translate("list product items", err)
	}
	out := make([]entity.ProductItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// GetByID obtiene un artículo por ID.
func (r *ProductItemRepo) GetByID(ctx context.Context, id int64) (*entity.ProductItem, error) {
	var m productItemModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translate("get product item", err)
	}
	p := m.toEntity()
	return &p, nil
}

// Create inserta el artículo; falla con ErrReferentialViolation si la categoría no existe.
func (r *ProductItemRepo) Create(ctx context.Context, item *entity.ProductItem) error {
	m := productItemModel{Title: item.Title, Colour: item.Colour, CategoryID: item.CategoryID}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate("insert product item", err)
	}
	item.ID = m.ID
	return nil
}

// Update reemplaza el registro completo.
func (r *ProductItemRepo) Update(ctx context.Context, item *entity.ProductItem) error {
	res := r.db.WithContext(ctx).
		Model(&productItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"title":       item.Title,
			"colour":      item.Colour,
			"category_id": item.CategoryID,
		})
	if res.Error != nil {
		return translate("update product item", res.Error)
	}
	if res.RowsAffected == 0 {
		existing, err := r.GetByID(ctx, item.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *ProductItemRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&productItemModel{})
	if res.Error != nil {
		return translate("delete product item", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
