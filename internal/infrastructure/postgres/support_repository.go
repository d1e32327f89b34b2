package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/catalog"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

var _ repository.SupportRepository = (*SupportRepo)(nil)

const ticketColumns = `id, COALESCE(user_id, 0), name, email, subject, message, category, status, created_at, updated_at`

// SupportRepo implementación del puerto SupportRepository sobre PostgreSQL.
type SupportRepo struct {
	q Querier
}

// NewSupportRepository construye el adaptador de persistencia para tickets.
func NewSupportRepository(q Querier) *SupportRepo {
	return &SupportRepo{q: q}
}

// Create persiste el ticket; UserID 0 se guarda como NULL (ticket anónimo).
func (r *SupportRepo) Create(ctx context.Context, t *entity.SupportTicket) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO support_tickets (user_id, name, email, subject, message, category, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		nullIfZero(t.UserID), t.Name, t.Email, t.Subject, t.Message, t.Category, t.Status, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert support ticket: %w", err)
	}
	return nil
}

func (r *SupportRepo) GetByID(ctx context.Context, id int64) (*entity.SupportTicket, error) {
	t, err := scanTicket(r.q.QueryRow(ctx, `SELECT `+ticketColumns+` FROM support_tickets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get support ticket: %w", err)
	}
	return t, nil
}

func (r *SupportRepo) Update(ctx context.Context, t *entity.SupportTicket) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE support_tickets SET user_id = $2, name = $3, email = $4, subject = $5, message = $6,
			category = $7, status = $8, updated_at = $9
		WHERE id = $1`,
		t.ID, nullIfZero(t.UserID), t.Name, t.Email, t.Subject, t.Message, t.Category, t.Status, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update support ticket: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List filtra usuario y estado en SQL; la categoría se compara sin acentos en Go.
func (r *SupportRepo) List(ctx context.Context, filter repository.SupportFilter) ([]*entity.SupportTicket, error) {
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
	query := `SELECT ` + ticketColumns + ` FROM support_tickets`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list support tickets: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupportTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan support ticket: %w", err)
		}
		if filter.Category != "" && !catalog.SameCategory(t.Category, filter.Category) {
			continue
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *SupportRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM support_tickets WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete support ticket: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *SupportRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "support_tickets")
}

func scanTicket(row pgx.Row) (*entity.SupportTicket, error) {
	var t entity.SupportTicket
	if err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Email, &t.Subject, &t.Message, &t.Category, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
