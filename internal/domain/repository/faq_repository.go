package repository

import (
	"context"

	"github.com/jhoicas/autotienda-api/internal/domain/entity"
)

// FAQRepository define el puerto de persistencia para FAQ.
// List devuelve las FAQ ordenadas por Order ascendente; empates por orden de inserción (ID).
type FAQRepository interface {
	Create(ctx context.Context, faq *entity.FAQ) error
	GetByID(ctx context.Context, id int64) (*entity.FAQ, error)
	Update(ctx context.Context, faq *entity.FAQ) error
	List(ctx context.Context, category string) ([]*entity.FAQ, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}
