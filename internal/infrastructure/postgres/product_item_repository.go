package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalog-service/internal/domain"
	"github.com/jhoicas/catalog-service/internal/domain/entity"
	"github.com/jhoicas/catalog-service/internal/domain/repository"
)

var _ repository.ProductItemRepository = (*ProductItemRepo)(nil)

const productItemColumns = `id, title, colour, category_id`

// ProductItemRepo implementación del puerto ProductItemRepository sobre PostgreSQL.
type ProductItemRepo struct {
	q Querier
}

// NewProductItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewProductItemRepository(q Querier) *ProductItemRepo {
	return &ProductItemRepo{q: q}
}

// List aplica el filtro opcional por categoría y la ventana LIMIT/OFFSET sobre el orden por ID.
func (r *ProductItemRepo) List(ctx context.Context, filter repository.ProductItemFilter) ([]entity.ProductItem, error) {
	query, args := buildListQuery(filter)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, translate("list product items", err)
	}
	return scanProductItems(rows)
}

// buildListQuery arma el SELECT del listado con placeholders posicionales.
func buildListQuery(filter repository.ProductItemFilter) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, 3)
	sb.WriteString(`SELECT ` + productItemColumns + ` FROM product_items`)
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		fmt.Fprintf(&sb, ` WHERE category_id = $%d`, len(args))
	}
	args = append(args, filter.Limit, filter.Offset)
	fmt.Fprintf(&sb, ` ORDER BY id LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	return sb.String(), args
}

func (r *ProductItemRepo) listByCategory(ctx context.Context, categoryID int64) ([]entity.ProductItem, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+productItemColumns+` FROM product_items WHERE category_id = $1 ORDER BY id`, categoryID)
	if err != nil {
		return nil, translate("list category items", err)
	}
	return scanProductItems(rows)
}

func scanProductItems(rows pgx.Rows) ([]entity.ProductItem, error) {
	defer rows.Close()
	list := []entity.ProductItem{}
	for rows.Next() {
		var p entity.ProductItem
		if err := rows.Scan(&p.ID, &p.Title, &p.Colour, &p.CategoryID); err != nil {
			return nil, translate("scan product item", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("iterate product items", err)
	}
	return list, nil
}

// GetByID obtiene un artículo por ID.
func (r *ProductItemRepo) GetByID(ctx context.Context, id int64) (*entity.ProductItem, error) {
	var p entity.ProductItem
	err := r.q.QueryRow(ctx, `SELECT `+productItemColumns+` FROM product_items WHERE id = $1`, id).
		Scan(&p.ID, &p.Title, &p.Colour, &p.CategoryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate("get product item", err)
	}
	return &p, nil
}

// Create inserta el artículo; la FK rechaza categorías inexistentes.
func (r *ProductItemRepo) Create(ctx context.Context, item *entity.ProductItem) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO product_items (title, colour, category_id) VALUES ($1, $2, $3) RETURNING id`,
		item.Title, item.Colour, item.CategoryID,
	).Scan(&item.ID)
	if err != nil {
		return translate("insert product item", err)
	}
	return nil
}

// Update reemplaza el registro completo.
func (r *ProductItemRepo) Update(ctx context.Context, item *entity.ProductItem) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE product_items SET title = $2, colour = $3, category_id = $4 WHERE id = $1`,
		item.ID, item.Title, item.Colour, item.CategoryID,
	)
	if err != nil {
		return translate("update product item", err)
	}
	if cmd.RowsAffected() == 0 {
		existing, err := r.GetByID(ctx, item.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *ProductItemRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM product_items WHERE id = $1`, id)
	if err != nil {
		return translate("delete product item", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
