package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/catalog-service/docs"
	"github.com/jhoicas/catalog-service/internal/application/catalog"
	"github.com/jhoicas/catalog-service/internal/application/dto"
	"github.com/jhoicas/catalog-service/internal/domain/repository"
	"github.com/jhoicas/catalog-service/internal/infrastructure/postgres"
	"github.com/jhoicas/catalog-service/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/catalog-service/internal/interfaces/http"
	"github.com/jhoicas/catalog-service/pkg/config"
	"github.com/jhoicas/catalog-service/pkg/logger"
)

// store agrupa los repositorios y el seeder del driver elegido.
type store struct {
	categories repository.CategoryRepository
	items      repository.ProductItemRepository
	seeder     repository.Seeder
	close      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("abrir almacén")
	}
	defer st.close()

	if cfg.Store.SeedOnStart {
		seedCtx, cancel := context.WithTimeout(ctx, cfg.Store.Timeout)
		seeded, err := st.seeder.Seed(seedCtx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("sembrar datos iniciales")
		}
		log.Info().Bool("seeded", seeded).Msg("datos iniciales verificados")
	}

	svc := catalog.NewService(st.categories, st.items, log, catalog.Options{
		Timeout:         cfg.Store.Timeout,
		DefaultPageSize: cfg.Catalog.DefaultPageSize,
		PageSizeWarn:    cfg.Catalog.PageSizeWarn,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: docs.Content(),
		Path:        "docs",
		Title:       "Catalog API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.App.Name, Store: cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{Catalog: svc})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStore abre el almacén configurado y aplica su esquema.
func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		runner := postgres.NewTxRunner(pool)
		if err := postgres.Migrate(ctx, runner); err != nil {
			pool.Close()
			return nil, err
		}
		return &store{
			categories: postgres.NewCategoryRepository(pool),
			items:      postgres.NewProductItemRepository(pool),
			seeder:     postgres.NewSeeder(runner),
			close:      pool.Close,
		}, nil
	case config.StoreMemory:
		db, err := sqlite.Open(cfg.Store.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		return &store{
			categories: sqlite.NewCategoryRepository(db),
			items:      sqlite.NewProductItemRepository(db),
			seeder:     sqlite.NewSeeder(db),
			close:      func() { _ = sqlite.Close(db) },
		}, nil
	default:
		return nil, fmt.Errorf("driver no soportado: %s", cfg.Store.Driver)
	}
}
