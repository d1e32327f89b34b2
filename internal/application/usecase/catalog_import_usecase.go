package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

// CatalogImportUseCase carga en bloque vehículos leídos de un catálogo externo.
// Cada vehículo pasa por las mismas validaciones que un alta desde la API.
type CatalogImportUseCase struct {
	repo     repository.ProductRepository
	products *ProductUseCase
}

// NewCatalogImportUseCase construye el caso de uso.
func NewCatalogImportUseCase(repo repository.ProductRepository) *CatalogImportUseCase {
	return &CatalogImportUseCase{repo: repo, products: NewProductUseCase(repo)}
}

// Import crea los vehículos cuyo nombre aún no existe en el catálogo (comparación sin mayúsculas).
// Un vehículo inválido se reporta en Failed y no detiene la carga; un error de infraestructura sí.
func (uc *CatalogImportUseCase) Import(ctx context.Context, items []dto.CreateProductRequest) (*dto.ImportResult, error) {
	existing, err := uc.repo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("listar catálogo: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[strings.ToLower(strings.TrimSpace(p.Name))] = true
	}

	out := &dto.ImportResult{}
	for _, in := range items {
		key := strings.ToLower(strings.TrimSpace(in.Name))
		if seen[key] {
			out.Duplicates = append(out.Duplicates, in.Name)
			continue
		}
		created, err := uc.products.Create(ctx, in)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				out.Failed = append(out.Failed, fmt.Sprintf("%s: %v", in.Name, err))
				continue
			}
			return out, err
		}
		seen[key] = true
		out.Created = append(out.Created, created.ID)
	}
	return out, nil
}
