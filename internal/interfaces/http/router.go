package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-service/internal/application/catalog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog catalog.Service
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.Catalog)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	items := api.Group("/productitems")
	itemHandler := NewProductItemHandler(deps.Catalog)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
}
