package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/catalog-service/internal/domain"
	"github.com/jhoicas/catalog-service/internal/domain/entity"
	"github.com/jhoicas/catalog-service/internal/domain/repository"
)

// fakeCategoryRepo almacén en memoria con errores inyectables por operación.
type fakeCategoryRepo struct {
	rows    map[int64]entity.Category
	nextID  int64
	errs    map[string]error
	calls   []string
	hideNew bool // simula que la fila insertada no es visible al releer
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{rows: map[int64]entity.Category{}, nextID: 1, errs: map[string]error{}}
}

func (f *fakeCategoryRepo) fail(op string) error {
	f.calls = append(f.calls, op)
	return f.errs[op]
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	if err := f.fail("List"); err != nil {
		return nil, err
	}
	out := []entity.Category{}
	for _, c := range f.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	if err := f.fail("GetByID"); err != nil {
		return nil, err
	}
	c, ok := f.rows[id]
	if !ok || (f.hideNew && id == f.nextID-1) {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCategoryRepo) GetWithProductItems(ctx context.Context, id int64) (*entity.Category, error) {
	if err := f.fail("GetWithProductItems"); err != nil {
		return nil, err
	}
	c, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	c.ProductItems = []entity.ProductItem{}
	return &c, nil
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	if err := f.fail("Create"); err != nil {
		return err
	}
	c.ID = f.nextID
	f.nextID++
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	if err := f.fail("Update"); err != nil {
		return err
	}
	if _, ok := f.rows[c.ID]; !ok {
		return domain.ErrNotFound
	}
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id int64) error {
	if err := f.fail("Delete"); err != nil {
		return err
	}
	if _, ok := f.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

// fakeProductItemRepo registra el último filtro recibido.
type fakeProductItemRepo struct {
	rows       map[int64]entity.ProductItem
	nextID     int64
	errs       map[string]error
	lastFilter repository.ProductItemFilter
}

func newFakeProductItemRepo() *fakeProductItemRepo {
	return &fakeProductItemRepo{rows: map[int64]entity.ProductItem{}, nextID: 1, errs: map[string]error{}}
}

func (f *fakeProductItemRepo) List(ctx context.Context, filter repository.ProductItemFilter) ([]entity.ProductItem, error) {
	f.lastFilter = filter
	if err := f.errs["List"]; err != nil {
		return nil, err
	}
	return []entity.ProductItem{}, nil
}

func (f *fakeProductItemRepo) GetByID(ctx context.Context, id int64) (*entity.ProductItem, error) {
	if err := f.errs["GetByID"]; err != nil {
		return nil, err
	}
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProductItemRepo) Create(ctx context.Context, p *entity.ProductItem) error {
	if err := f.errs["Create"]; err != nil {
		return err
	}
	p.ID = f.nextID
	f.nextID++
	f.rows[p.ID] = *p
	return nil
}

func (f *fakeProductItemRepo) Update(ctx context.Context, p *entity.ProductItem) error {
	if err := f.errs["Update"]; err != nil {
		return err
	}
	if _, ok := f.rows[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.rows[p.ID] = *p
	return nil
}

func (f *fakeProductItemRepo) Delete(ctx context.Context, id int64) error {
	if err := f.errs["Delete"]; err != nil {
		return err
	}
	if _, ok := f.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}
