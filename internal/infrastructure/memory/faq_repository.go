package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/catalog"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

var _ repository.FAQRepository = (*FAQRepo)(nil)

// FAQRepo implementación en memoria de FAQRepository.
type FAQRepo struct {
	s  *Store
	mu locker
}

// NewFAQRepository construye el adaptador sobre el store.
func NewFAQRepository(s *Store) *FAQRepo {
	return &FAQRepo{s: s, mu: &s.mu}
}

func (r *FAQRepo) Create(_ context.Context, faq *entity.FAQ) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s.seq.faqs++
	faq.ID = r.s.seq.faqs
	cp := *faq
	r.s.faqs[faq.ID] = &cp
	return nil
}

func (r *FAQRepo) GetByID(_ context.Context, id int64) (*entity.FAQ, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.s.faqs[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, nil
}

func (r *FAQRepo) Update(_ context.Context, faq *entity.FAQ) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.faqs[faq.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *faq
	r.s.faqs[faq.ID] = &cp
	return nil
}

// List ordena por Order ascendente; a igual Order se conserva el orden de alta.
func (r *FAQRepo) List(_ context.Context, category string) ([]*entity.FAQ, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.FAQ, 0, len(r.s.faqs))
	for _, f := range r.s.faqs {
		if category != "" && !catalog.SameCategory(f.Category, category) {
			continue
		}
		cp := *f
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Order != list[j].Order {
			return list[i].Order < list[j].Order
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *FAQRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.faqs[id]; !ok {
		return false, nil
	}
	delete(r.s.faqs, id)
	return true, nil
}

func (r *FAQRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.s.faqs), nil
}
