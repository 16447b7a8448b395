package repository

import "context"

// Seeder carga el estado inicial del catálogo si el almacén está vacío.
// Devuelve true cuando insertó los datos.
type Seeder interface {
	Seed(ctx context.Context) (bool, error)
}
