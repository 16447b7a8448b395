package entity

// Category representa una categoría del catálogo.
// ProductItems es la relación inversa (items cuyo CategoryID apunta a esta categoría);
// no se almacena, se calcula por consulta y solo se llena al obtener una categoría por ID.
type Category struct {
	ID           int64
	Name         *string
	ProductItems []ProductItem
}
