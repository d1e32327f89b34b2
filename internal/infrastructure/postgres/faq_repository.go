package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/catalog"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

var _ repository.FAQRepository = (*FAQRepo)(nil)

const faqColumns = `id, question, answer, category, sort_order, created_at, updated_at`

// FAQRepo implementación del puerto FAQRepository sobre PostgreSQL.
type FAQRepo struct {
	q Querier
}

// NewFAQRepository construye el adaptador de persistencia para preguntas frecuentes.
func NewFAQRepository(q Querier) *FAQRepo {
	return &FAQRepo{q: q}
}

func (r *FAQRepo) Create(ctx context.Context, f *entity.FAQ) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO faqs (question, answer, category, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		f.Question, f.Answer, f.Category, f.Order, f.CreatedAt, f.UpdatedAt,
	).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("insert faq: %w", err)
	}
	return nil
}

func (r *FAQRepo) GetByID(ctx context.Context, id int64) (*entity.FAQ, error) {
	f, err := scanFAQ(r.q.QueryRow(ctx, `SELECT `+faqColumns+` FROM faqs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get faq: %w", err)
	}
	return f, nil
}

func (r *FAQRepo) Update(ctx context.Context, f *entity.FAQ) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE faqs SET question = $2, answer = $3, category = $4, sort_order = $5, updated_at = $6
		WHERE id = $1`,
		f.ID, f.Question, f.Answer, f.Category, f.Order, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update faq: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List ordena por sort_order y, a igualdad, por id (orden de alta).
func (r *FAQRepo) List(ctx context.Context, category string) ([]*entity.FAQ, error) {
	rows, err := r.q.Query(ctx, `SELECT `+faqColumns+` FROM faqs ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()
	var list []*entity.FAQ
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		if category != "" && !catalog.SameCategory(f.Category, category) {
			continue
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func (r *FAQRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete faq: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *FAQRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.q, "faqs")
}

func scanFAQ(row pgx.Row) (*entity.FAQ, error) {
	var f entity.FAQ
	if err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.Order, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}
