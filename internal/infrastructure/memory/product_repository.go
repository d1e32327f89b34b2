package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/catalog"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s  *Store
	mu locker
}

// NewProductRepository construye el adaptador sobre el store.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s, mu: &s.mu}
}

// Create asigna ID y guarda una copia profunda del producto.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s.seq.products++
	product.ID = r.s.seq.products
	r.s.products[product.ID] = product.Clone()
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s.products[id].Clone(), nil
}

// GetForUpdate en memoria equivale a GetByID: el aislamiento lo da el TxRunner.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// Update reemplaza el producto. ErrNotFound si no existe.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[product.ID] = product.Clone()
	return nil
}

// UpdateStock fija el stock de un producto.
func (r *ProductRepo) UpdateStock(_ context.Context, id int64, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	next := cur.Clone()
	next.Stock = stock
	r.s.products[id] = next
	return nil
}

// List devuelve el catálogo en orden de alta, filtrando por categoría si se indica.
func (r *ProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		if filter.Category != "" && !catalog.SameCategory(p.Category, filter.Category) {
			continue
		}
		list = append(list, p.Clone())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return false, nil
	}
	delete(r.s.products, id)
	return true, nil
}

// Count devuelve la cantidad de productos.
func (r *ProductRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.s.products), nil
}
