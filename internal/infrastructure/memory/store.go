// Package memory implementa los puertos de persistencia sobre colecciones en memoria de proceso.
// Es el backend por defecto: se crea al arrancar, se siembra con fixtures y se pierde al terminar.
package memory

import (
	"sync"

	"github.com/jhoicas/autotienda-api/internal/domain/entity"
)

// locker abstrae el RWMutex del store; dentro de una transacción los repos usan noopLocker
// porque el TxRunner ya tiene tomado el bloqueo de escritura.
type locker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}

// sequences último ID asignado por colección. Los IDs nunca se reutilizan tras un borrado.
type sequences struct {
	users, products, orders, tickets, faqs int64
}

// Store dueño de todas las colecciones. Los valores guardados nunca se mutan en sitio:
// cada escritura reemplaza la entrada, lo que permite a TxRunner restaurar con una copia superficial.
type Store struct {
	mu       sync.RWMutex
	users    map[int64]*entity.User
	products map[int64]*entity.Product
	orders   map[int64]*entity.Order
	tickets  map[int64]*entity.SupportTicket
	faqs     map[int64]*entity.FAQ
	seq      sequences
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:    make(map[int64]*entity.User),
		products: make(map[int64]*entity.Product),
		orders:   make(map[int64]*entity.Order),
		tickets:  make(map[int64]*entity.SupportTicket),
		faqs:     make(map[int64]*entity.FAQ),
	}
}

// Repositories agrupa los adaptadores de un store.
type Repositories struct {
	Users    *UserRepo
	Products *ProductRepo
	Orders   *OrderRepo
	Support  *SupportRepo
	FAQs     *FAQRepo
}

// Repositories devuelve los repositorios atados al store (con bloqueo propio).
func (s *Store) Repositories() Repositories {
	return Repositories{
		Users:    &UserRepo{s: s, mu: &s.mu},
		Products: &ProductRepo{s: s, mu: &s.mu},
		Orders:   &OrderRepo{s: s, mu: &s.mu},
		Support:  &SupportRepo{s: s, mu: &s.mu},
		FAQs:     &FAQRepo{s: s, mu: &s.mu},
	}
}
