// Package storage arma el backend de datos elegido por configuración (memoria o PostgreSQL)
// y deja listos los repositorios y el TxRunner para los casos de uso.
package storage

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/autotienda-api/internal/application/orders"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
	"github.com/jhoicas/autotienda-api/internal/infrastructure/fixtures"
	"github.com/jhoicas/autotienda-api/internal/infrastructure/memory"
	"github.com/jhoicas/autotienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/autotienda-api/pkg/config"
	"github.com/jhoicas/autotienda-api/pkg/logger"
)

// Backend repositorios de un store abierto. Close libera el pool si lo hay.
type Backend struct {
	Driver   string
	Users    repository.UserRepository
	Products repository.ProductRepository
	Orders   repository.OrderRepository
	Support  repository.SupportRepository
	FAQs     repository.FAQRepository
	TxRunner orders.TxRunner
	Close    func()
}

// Open crea el store indicado en cfg.Storage.Driver. Con PostgreSQL aplica las migraciones
// embebidas antes de devolver. Si SeedFixtures está activo siembra los datos de arranque
// (la siembra se omite sola cuando ya hay usuarios).
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Backend, error) {
	var b *Backend
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("storage: conexión a PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("storage: migraciones: %w", err)
		}
		repos := postgres.NewRepositories(pool)
		b = &Backend{
			Driver:   config.StoragePostgres,
			Users:    repos.Users,
			Products: repos.Products,
			Orders:   repos.Orders,
			Support:  repos.Support,
			FAQs:     repos.FAQs,
			TxRunner: postgres.NewTxRunner(pool),
			Close:    pool.Close,
		}
	default:
		store := memory.NewStore()
		repos := store.Repositories()
		b = &Backend{
			Driver:   config.StorageMemory,
			Users:    repos.Users,
			Products: repos.Products,
			Orders:   repos.Orders,
			Support:  repos.Support,
			FAQs:     repos.FAQs,
			TxRunner: memory.NewTxRunner(store),
			Close:    func() {},
		}
	}
	log.Info().Str("driver", b.Driver).Msg("store abierto")

	if cfg.Storage.SeedFixtures {
		if err := b.seed(ctx, log); err != nil {
			b.Close()
			return nil, err
		}
	}
	return b, nil
}

func (b *Backend) seed(ctx context.Context, log *logger.Logger) error {
	set, err := fixtures.Default()
	if err != nil {
		return err
	}
	seeded, err := fixtures.Seed(ctx, fixtures.Target{
		Users:    b.Users,
		Products: b.Products,
		Orders:   b.Orders,
		Support:  b.Support,
		FAQs:     b.FAQs,
	}, set, fixtures.Options{BcryptCost: bcrypt.DefaultCost})
	if err != nil {
		return fmt.Errorf("storage: sembrar fixtures: %w", err)
	}
	if !seeded {
		log.Info().Msg("el store ya tiene datos; fixtures omitidos")
	}
	return nil
}
