package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Las líneas se guardan en order_items; Create solo es atómico dentro de una tx (ver TxRunner).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta cabecera y líneas.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO orders (user_id, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		order.UserID, order.Total, order.Status, order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for i, it := range order.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_items (order_id, line, product_id, quantity, price, name, image)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			order.ID, i+1, it.ProductID, it.Quantity, it.Price, it.Name, it.Image,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un pedido con sus líneas.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(ctx,
		`SELECT id, user_id, total, status, created_at, updated_at FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	byOrder, err := r.loadItems(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = byOrder[o.ID]
	return &o, nil
}

// Update modifica estado y total; las líneas de un pedido son inmutables.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $2, total = $3, updated_at = $4 WHERE id = $1`,
		order.ID, order.Status, order.Total, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los pedidos en orden de alta aplicando los filtros no vacíos.
func (r *OrderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var (
		where []string
		args  []any
	)
	if filter.UserID != 0 {
		args = append(args, filter.UserID)
		where = append(where, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT id, user_id, total, status, created_at, updated_at FROM orders`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var (
		list []*entity.Order
		ids  []int64
	)
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
		ids = append(ids, o.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	byOrder, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		o.Items = byOrder[o.ID]
	}
	return list, nil
}

func (r *OrderRepo) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]entity.OrderItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT order_id, product_id, quantity, price, name, image
		FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, line`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	out := make(map[int64][]entity.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			orderID int64
			it      entity.OrderItem
		)
		if err := rows.Scan(&orderID, &it.ProductID, &it.Quantity, &it.Price, &it.Name, &it.Image); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out[orderID] = append(out[orderID], it)
	}
	return out, rows.Err()
}

// Delete elimina un pedido; sus líneas caen por ON DELETE CASCADE.
func (r *OrderRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Count devuelve la cantidad de pedidos.
func (r *OrderRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "orders")
}
