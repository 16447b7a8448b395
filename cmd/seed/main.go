// seed crea el esquema del catálogo en PostgreSQL y carga los datos iniciales
// (Adidas, Nike y Puma con sus artículos) si la tabla de categorías está vacía.
//
// Uso: go run ./cmd/seed
// Lee DATABASE_URL o DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME/DB_SSLMODE.
package main

import (
	"context"
	"time"

	"github.com/jhoicas/catalog-service/internal/infrastructure/postgres"
	"github.com/jhoicas/catalog-service/pkg/config"
	"github.com/jhoicas/catalog-service/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	runner := postgres.NewTxRunner(pool)
	if err := postgres.Migrate(ctx, runner); err != nil {
		log.Fatal().Err(err).Msg("migrar esquema")
	}
	seeded, err := postgres.NewSeeder(runner).Seed(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar datos iniciales")
	}
	if !seeded {
		log.Info().Msg("el catálogo ya tenía datos; no se insertó nada")
		return
	}
	log.Info().Msg("catálogo sembrado")
}
