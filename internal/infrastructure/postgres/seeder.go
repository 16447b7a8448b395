package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalog-service/internal/domain/entity"
	"github.com/jhoicas/catalog-service/internal/domain/repository"
)

var _ repository.Seeder = (*Seeder)(nil)

// Seeder carga los datos iniciales del catálogo con IDs fijos.
type Seeder struct {
	runner *TxRunner
}

// NewSeeder construye el seeder.
func NewSeeder(runner *TxRunner) *Seeder {
	return &Seeder{runner: runner}
}

// Seed inserta categorías y artículos iniciales si la tabla categories está vacía y luego
// adelanta las secuencias para que los IDs generados no choquen con los fijos.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	seeded := false
	err := s.runner.Run(ctx, func(q Querier) error {
		// Bloquea la tabla para que dos instancias arrancando a la vez no siembren dos veces.
		if _, err := q.Exec(ctx, `LOCK TABLE categories IN EXCLUSIVE MODE`); err != nil {
			return err
		}
		var count int64
		if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		for _, c := range entity.SeedCategories() {
			if _, err := q.Exec(ctx, `INSERT INTO categories (id, name) VALUES ($1, $2)`, c.ID, c.Name); err != nil {
				return fmt.Errorf("insert category %d: %w", c.ID, err)
			}
		}
		for _, p := range entity.SeedProductItems() {
			if _, err := q.Exec(ctx,
				`INSERT INTO product_items (id, title, colour, category_id) VALUES ($1, $2, $3, $4)`,
				p.ID, p.Title, p.Colour, p.CategoryID,
			); err != nil {
				return fmt.Errorf("insert product item %d: %w", p.ID, err)
			}
		}
		for _, table := range []string{"categories", "product_items"} {
			if _, err := q.Exec(ctx, fmt.Sprintf(
				`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT MAX(id) FROM %[1]s))`, table,
			)); err != nil {
				return fmt.Errorf("advance sequence %s: %w", table, err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, translate("seed catalog", err)
	}
	return seeded, nil
}
