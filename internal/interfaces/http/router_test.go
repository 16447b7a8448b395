package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-service/internal/application/catalog"
	"github.com/jhoicas/catalog-service/internal/application/dto"
	"github.com/jhoicas/catalog-service/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/catalog-service/internal/interfaces/http"
	"github.com/jhoicas/catalog-service/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la app Fiber con el router sobre una base en memoria sembrada, propia del test.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := sqlite.Open("http_" + strings.ReplaceAll(t.Name(), "/", "_"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	_, err = sqlite.NewSeeder(db).Seed(context.Background())
	require.NoError(t, err)

	svc := catalog.NewService(
		sqlite.NewCategoryRepository(db),
		sqlite.NewProductItemRepository(db),
		logger.Nop(),
		catalog.Options{Timeout: 5 * time.Second, DefaultPageSize: 30},
	)
	app := fiber.New()
	app.Use(apphttp.RequestID())
	app.Use(apphttp.AccessLog(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{Catalog: svc})
	return app
}

// do lanza la petición y devuelve la respuesta con el cuerpo leído.
func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategories_List(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := do(t, app, http.MethodGet, "/api/categories", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	list := decode[[]dto.CategoryResponse](t, raw)
	require.Len(t, list, 3)
	assert.Equal(t, "Adidas", *list[0].Name)
	assert.Nil(t, list[0].ProductItems)
}

func TestCategories_ListVaciaDevuelve204(t *testing.T) {
	app := buildTestApp(t)
	for _, id := range []string{"1", "2", "3"} {
		resp, _ := do(t, app, http.MethodDelete, "/api/categories/"+id, "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, _ := do(t, app, http.MethodGet, "/api/categories", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestCategories_GetByID(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := do(t, app, http.MethodGet, "/api/categories/2", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[dto.CategoryResponse](t, raw)
	assert.Equal(t, "Nike", *got.Name)
	require.Len(t, got.ProductItems, 2)
	assert.Equal(t, int64(2), got.ProductItems[0].CategoryID)

	resp, _ = do(t, app, http.MethodGet, "/api/categories/99", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/categories/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCategories_Create(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := do(t, app, http.MethodPost, "/api/categories", `{"id":1,"name":"Reebok"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/categories/4", resp.Header.Get(fiber.HeaderLocation))
	got := decode[dto.CategoryResponse](t, raw)
	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, "Reebok", *got.Name)

	resp, _ = do(t, app, http.MethodPost, "/api/categories", `{"name":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCategories_Update(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := do(t, app, http.MethodPut, "/api/categories/2", `{"id":3,"name":"Mismatch"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, raw).Code)

	_, raw = do(t, app, http.MethodGet, "/api/categories/3", "")
	assert.Equal(t, "Puma", *decode[dto.CategoryResponse](t, raw).Name)

	resp, _ = do(t, app, http.MethodPut, "/api/categories/2", `{"id":2,"name":"Nike Inc"}`)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	_, raw = do(t, app, http.MethodGet, "/api/categories/2", "")
	assert.Equal(t, "Nike Inc", *decode[dto.CategoryResponse](t, raw).Name)
}

func TestCategories_DeleteEnCascada(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := do(t, app, http.MethodDelete, "/api/categories/1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	deleted := decode[dto.CategoryResponse](t, raw)
	assert.Equal(t, "Adidas", *deleted.Name)
	assert.Len(t, deleted.ProductItems, 2)

	resp, _ = do(t, app, http.MethodGet, "/api/productitems?categoryid=1", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/productitems/1", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, app, http.MethodDelete, "/api/categories/1", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Artículos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductItems_ListFiltradoYPaginado(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := do(t, app, http.MethodGet, "/api/productitems?page=1&page_size=2&categoryid=1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[[]dto.ProductItemResponse](t, raw)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)

	resp, raw = do(t, app, http.MethodGet, "/api/productitems?page=2&page_size=4", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list = decode[[]dto.ProductItemResponse](t, raw)
	require.Len(t, list, 2)
	assert.Equal(t, int64(5), list[0].ID)

	resp, raw = do(t, app, http.MethodGet, "/api/productitems", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.ProductItemResponse](t, raw), 6)

	resp, _ = do(t, app, http.MethodGet, "/api/productitems?page=3&page_size=4", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestProductItems_ListConsultaInvalida(t *testing.T) {
	app := buildTestApp(t)

	for _, q := range []string{"page=0", "page_size=0", "page=abc", "categoryid=x"} {
		resp, _ := do(t, app, http.MethodGet, "/api/productitems?"+q, "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestProductItems_Create(t *testing.T) {
	app := buildTestApp(t)

	resp, raw := do(t, app, http.MethodPost, "/api/productitems", `{"id":2,"categoryId":2,"title":"new Title","colour":"Black"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/productitems/7", resp.Header.Get(fiber.HeaderLocation))
	got := decode[dto.ProductItemResponse](t, raw)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Black", *got.Colour)

	resp, raw = do(t, app, http.MethodPost, "/api/productitems", `{"categoryId":99,"title":"Ghost"}`)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "REFERENTIAL_VIOLATION", decode[dto.ErrorResponse](t, raw).Code)

	resp, _ = do(t, app, http.MethodPost, "/api/productitems", `{"title":"Sin categoría"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProductItems_UpdateYDelete(t *testing.T) {
	app := buildTestApp(t)

	resp, _ := do(t, app, http.MethodPut, "/api/productitems/4", `{"id":5,"categoryId":2}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodPut, "/api/productitems/4", `{"id":4,"categoryId":3,"title":"FootB","colour":"Red"}`)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, raw := do(t, app, http.MethodDelete, "/api/productitems/4", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	deleted := decode[dto.ProductItemResponse](t, raw)
	assert.Equal(t, "Red", *deleted.Colour)
	assert.Equal(t, int64(3), deleted.CategoryID)

	resp, raw = do(t, app, http.MethodDelete, "/api/productitems/4", "")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, raw).Code)
}

func TestUpdate_IDInexistenteDevuelve500(t *testing.T) {
	app := buildTestApp(t)

	cases := []struct {
		path string
		body string
	}{
		{"/api/categories/99", `{"id":99,"name":"Fantasma"}`},
		{"/api/productitems/99", `{"id":99,"categoryId":1,"title":"Fantasma"}`},
	}
	for _, tc := range cases {
		resp, raw := do(t, app, http.MethodPut, tc.path, tc.body)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode, tc.path)
		assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, raw).Code, tc.path)
	}

	resp, _ := do(t, app, http.MethodGet, "/api/categories/99", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
