package sqlite

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open abre (o crea) la base sqlite del catálogo y migra el esquema.
// Un nombre sin "file:" ni extensión .db se abre como base en memoria compartida con ese nombre:
// vive mientras el proceso tenga la conexión abierta y se pierde al terminar.
func Open(name string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn(name)), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtener sql.DB: %w", err)
	}
	// Una sola conexión: la base en memoria desaparece si se cierran todas, y sqlite serializa escrituras.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrar esquema: %w", err)
	}
	return db, nil
}

// Close libera la conexión subyacente.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dsn(name string) string {
	if strings.HasPrefix(name, "file:") || strings.HasSuffix(name, ".db") {
		sep := "?"
		if strings.Contains(name, "?") {
			sep = "&"
		}
		return name + sep + "_foreign_keys=1"
	}
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)
}

// schema DDL del catálogo. La FK con ON DELETE CASCADE hace que borrar una categoría
// elimine sus artículos en la misma sentencia; AUTOINCREMENT impide reutilizar IDs.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS product_items (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT,
		colour      TEXT,
		category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_product_items_category_id ON product_items(category_id)`,
}

func migrate(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range schema {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
