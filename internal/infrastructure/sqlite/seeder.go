package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/jhoicas/catalog-service/internal/domain/entity"
	"github.com/jhoicas/catalog-service/internal/domain/repository"
)

var _ repository.Seeder = (*Seeder)(nil)

// Seeder carga las categorías y artículos iniciales con IDs fijos.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder construye el seeder sobre la base indicada.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Seed inserta los datos iniciales en una sola transacción si no hay categorías.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&categoryModel{}).Count(&count).Error; err != nil {
		return false, translate("count categories", err)
	}
	if count > 0 {
		return false, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := entity.SeedCategories()
		rows := make([]categoryModel, 0, len(categories))
		for _, c := range categories {
			rows = append(rows, categoryModel{ID: c.ID, Name: c.Name})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		items := entity.SeedProductItems()
		itemRows := make([]productItemModel, 0, len(items))
		for _, p := range items {
			itemRows = append(itemRows, productItemModel{ID: p.ID, Title: p.Title, Colour: p.Colour, CategoryID: p.CategoryID})
		}
		return tx.Create(&itemRows).Error
	})
	if err != nil {
		return false, translate("seed catalog", err)
	}
	return true, nil
}
