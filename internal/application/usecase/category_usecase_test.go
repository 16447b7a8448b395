package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-service/internal/domain"
	"github.com/jhoicas/catalog-service/internal/domain/entity"
)

func str(s string) *string { return &s }

func TestCategoryUseCase_CreateIgnoraID(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.rows[1] = entity.Category{ID: 1, Name: str("Adidas")}
	repo.nextID = 2
	uc := NewCategoryUseCase(repo)

	out, err := uc.Create(context.Background(), entity.Category{ID: 1, Name: str("Reebok")})
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.ID)
	assert.Equal(t, "Reebok", *out.Name)
	assert.Equal(t, "Adidas", *repo.rows[1].Name, "la categoría existente no debe sobrescribirse")
}

func TestCategoryUseCase_CreateReleeTrasInsertar(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.hideNew = true
	uc := NewCategoryUseCase(repo)

	_, err := uc.Create(context.Background(), entity.Category{Name: str("X")})
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Equal(t, []string{"Create", "GetByID"}, repo.calls)
}

func TestCategoryUseCase_CreateFalloDeCommit(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.errs["Create"] = errors.New("disk full")
	uc := NewCategoryUseCase(repo)

	out, err := uc.Create(context.Background(), entity.Category{Name: str("X")})
	assert.Nil(t, out)
	assert.EqualError(t, err, "disk full")
	assert.Empty(t, repo.rows)
}

func TestCategoryUseCase_GetByIDNoEncontrada(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUseCase_UpdateConflicto(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.rows[1] = entity.Category{ID: 1}
	repo.errs["Update"] = domain.ErrConflict
	uc := NewCategoryUseCase(repo)

	_, err := uc.Update(context.Background(), entity.Category{ID: 1, Name: str("Y")})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCategoryUseCase_UpdateDescartaRelacion(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.rows[1] = entity.Category{ID: 1}
	uc := NewCategoryUseCase(repo)

	out, err := uc.Update(context.Background(), entity.Category{
		ID: 1, Name: str("Y"), ProductItems: []entity.ProductItem{{ID: 5}},
	})
	require.NoError(t, err)
	assert.Nil(t, out.ProductItems)
	assert.Equal(t, "Y", *repo.rows[1].Name)
}

func TestCategoryUseCase_Delete(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.rows[1] = entity.Category{ID: 1}
	uc := NewCategoryUseCase(repo)
	ctx := context.Background()

	msg, err := uc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, MsgCategoryDeleted, msg)

	_, err = uc.Delete(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUseCase_DeleteFallo(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.rows[1] = entity.Category{ID: 1}
	repo.errs["Delete"] = errors.New("locked")
	uc := NewCategoryUseCase(repo)

	msg, err := uc.Delete(context.Background(), 1)
	assert.Empty(t, msg)
	assert.EqualError(t, err, "locked")
}
