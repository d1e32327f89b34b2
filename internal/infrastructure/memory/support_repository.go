package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/catalog"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

var _ repository.SupportRepository = (*SupportRepo)(nil)

// SupportRepo implementación en memoria de SupportRepository.
type SupportRepo struct {
	s  *Store
	mu locker
}

// NewSupportRepository construye el adaptador sobre el store.
func NewSupportRepository(s *Store) *SupportRepo {
	return &SupportRepo{s: s, mu: &s.mu}
}

func (r *SupportRepo) Create(_ context.Context, ticket *entity.SupportTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s.seq.tickets++
	ticket.ID = r.s.seq.tickets
	cp := *ticket
	r.s.tickets[ticket.ID] = &cp
	return nil
}

func (r *SupportRepo) GetByID(_ context.Context, id int64) (*entity.SupportTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.s.tickets[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (r *SupportRepo) Update(_ context.Context, ticket *entity.SupportTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.tickets[ticket.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *ticket
	r.s.tickets[ticket.ID] = &cp
	return nil
}

// List filtra por usuario, estado y categoría (esta última sin distinguir acentos).
func (r *SupportRepo) List(_ context.Context, filter repository.SupportFilter) ([]*entity.SupportTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.SupportTicket, 0, len(r.s.tickets))
	for _, t := range r.s.tickets {
		if filter.UserID != 0 && t.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Category != "" && !catalog.SameCategory(t.Category, filter.Category) {
			continue
		}
		cp := *t
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *SupportRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.s.tickets[id]; !ok {
		return false, nil
	}
	delete(r.s.tickets, id)
	return true, nil
}

func (r *SupportRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.s.tickets), nil
}
