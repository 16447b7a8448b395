package sqlite

import "github.com/jhoicas/catalog-service/internal/domain/entity"

// categoryModel fila de la tabla categories.
type categoryModel struct {
	ID           int64              `gorm:"primaryKey;autoIncrement"`
	Name         *string            `gorm:"column:name"`
	ProductItems []productItemModel `gorm:"foreignKey:CategoryID"`
}

func (categoryModel) TableName() string { return "categories" }

// productItemModel fila de la tabla product_items.
type productItemModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	Title      *string `gorm:"column:title"`
	Colour     *string `gorm:"column:colour"`
	CategoryID int64   `gorm:"column:category_id;not null"`
}

func (productItemModel) TableName() string { return "product_items" }

func (m categoryModel) toEntity() entity.Category {
	c := entity.Category{ID: m.ID, Name: m.Name}
	if m.ProductItems != nil {
		c.ProductItems = make([]entity.ProductItem, 0, len(m.ProductItems))
		for _, p := range m.ProductItems {
			c.ProductItems = append(c.ProductItems, p.toEntity())
		}
	}
	return c
}

func (m productItemModel) toEntity() entity.ProductItem {
	return entity.ProductItem{ID: m.ID, Title: m.Title, Colour: m.Colour, CategoryID: m.CategoryID}
}
