package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/catalog"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, category, price, description, images, specs, features, stock, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y carga el ID generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	specs, err := json.Marshal(nonNilSpecs(product.Specs))
	if err != nil {
		return fmt.Errorf("encode specs: %w", err)
	}
	query := `
		INSERT INTO products (name, category, price, description, images, specs, features, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err = r.q.QueryRow(ctx, query,
		product.Name, product.Category, product.Price, product.Description,
		nonNilStrings(product.Images), specs, nonNilStrings(product.Features), product.Stock,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetForUpdate obtiene el producto bloqueando la fila hasta el fin de la transacción.
// Solo tiene efecto si el repo se construyó sobre una pgx.Tx.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) getOne(ctx context.Context, query string, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update reemplaza el producto completo. ErrNotFound si no existe.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	specs, err := json.Marshal(nonNilSpecs(product.Specs))
	if err != nil {
		return fmt.Errorf("encode specs: %w", err)
	}
	query := `
		UPDATE products SET name = $2, category = $3, price = $4, description = $5, images = $6,
			specs = $7, features = $8, stock = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Category, product.Price, product.Description,
		nonNilStrings(product.Images), specs, nonNilStrings(product.Features), product.Stock, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija el stock del producto (reserva de pedidos).
func (r *ProductRepo) UpdateStock(ctx context.Context, id int64, stock int) error {
	cmd, err := r.q.Exec(ctx, `UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve el catálogo en orden de alta. El filtro de categoría ignora mayúsculas y acentos,
// por eso se aplica en Go sobre catalog.SameCategory y no en SQL.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if filter.Category != "" && !catalog.SameCategory(p.Category, filter.Category) {
			continue
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Count devuelve la cantidad de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "products")
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p     entity.Product
		specs []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Description,
		&p.Images, &specs, &p.Features, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Specs = map[string]string{}
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &p.Specs); err != nil {
			return nil, fmt.Errorf("decode specs: %w", err)
		}
	}
	return &p, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilSpecs(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
