package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

// LatencySource fuente de percentiles de latencia HTTP (implementada por metrics.LatencyRecorder).
type LatencySource interface {
	Snapshot() dto.LatencyStats
}

// DashboardRepos repositorios que el tablero consulta para contar registros.
type DashboardRepos struct {
	Users    repository.UserRepository
	Products repository.ProductRepository
	Orders   repository.OrderRepository
	Support  repository.SupportRepository
	FAQs     repository.FAQRepository
}

// DashboardUseCase arma el tablero del panel admin: conteos por recurso y latencias.
type DashboardUseCase struct {
	repos   DashboardRepos
	latency LatencySource
}

// NewDashboardUseCase construye el caso de uso. latency puede ser nil.
func NewDashboardUseCase(repos DashboardRepos, latency LatencySource) *DashboardUseCase {
	return &DashboardUseCase{repos: repos, latency: latency}
}

// GetStats devuelve el tablero.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	var out dto.StatsResponse
	counters := []struct {
		name  string
		count func(context.Context) (int, error)
		dst   *int
	}{
		{"usuarios", uc.repos.Users.Count, &out.Counts.Users},
		{"productos", uc.repos.Products.Count, &out.Counts.Products},
		{"pedidos", uc.repos.Orders.Count, &out.Counts.Orders},
		{"tickets", uc.repos.Support.Count, &out.Counts.Tickets},
		{"faqs", uc.repos.FAQs.Count, &out.Counts.FAQs},
	}
	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, fmt.Errorf("contar %s: %w", c.name, err)
		}
		*c.dst = n
	}
	if uc.latency != nil {
		out.Latency = uc.latency.Snapshot()
	}
	return &out, nil
}
