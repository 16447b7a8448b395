package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalog-service/internal/domain"
	"github.com/jhoicas/catalog-service/internal/domain/repository"
)

func TestBuildListQuery_SinFiltro(t *testing.T) {
	query, args := buildListQuery(repository.ProductItemFilter{Offset: 4, Limit: 2})

	assert.Equal(t, "SELECT id, title, colour, category_id FROM product_items ORDER BY id LIMIT $1 OFFSET $2", query)
	assert.Equal(t, []any{2, 4}, args)
}

func TestBuildListQuery_ConCategoria(t *testing.T) {
	cat := int64(3)
	query, args := buildListQuery(repository.ProductItemFilter{CategoryID: &cat, Offset: 0, Limit: 30})

	assert.Equal(t, "SELECT id, title, colour, category_id FROM product_items WHERE category_id = $1 ORDER BY id LIMIT $2 OFFSET $3", query)
	assert.Equal(t, []any{int64(3), 30, 0}, args)
}

func TestTranslate(t *testing.T) {
	fk := fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23503", Message: "violates foreign key"})
	assert.ErrorIs(t, translate("insert product item", fk), domain.ErrReferentialViolation)

	ser := &pgconn.PgError{Code: "40001"}
	assert.ErrorIs(t, translate("update category", ser), domain.ErrConflict)

	other := translate("list categories", errors.New("conn reset"))
	assert.ErrorIs(t, other, domain.ErrStorage)
	assert.Contains(t, other.Error(), "conn reset")
}

func TestTranslate_TextoConCodigoNoEsViolacion(t *testing.T) {
	err := translate("get product item", errors.New("no rows for id 23503 after retry 40001"))

	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.NotErrorIs(t, err, domain.ErrReferentialViolation)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}
