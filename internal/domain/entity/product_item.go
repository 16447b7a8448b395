package entity

// ProductItem representa un artículo del catálogo. Solo guarda la clave foránea a su categoría.
type ProductItem struct {
	ID         int64
	Title      *string
	Colour     *string
	CategoryID int64
}
