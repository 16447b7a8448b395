package postgres

import (
	"context"
	"fmt"
)

// schema DDL del catálogo. BIGSERIAL no reutiliza valores; la FK borra los artículos en cascada.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS product_items (
		id          BIGSERIAL PRIMARY KEY,
		title       TEXT,
		colour      TEXT,
		category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_product_items_category_id ON product_items(category_id)`,
}

// Migrate crea las tablas del catálogo si no existen.
func Migrate(ctx context.Context, runner *TxRunner) error {
	return runner.Run(ctx, func(q Querier) error {
		for _, stmt := range schema {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("migrar esquema: %w", err)
			}
		}
		return nil
	})
}
