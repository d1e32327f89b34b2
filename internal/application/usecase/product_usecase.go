package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/catalog"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo de vehículos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Images nunca queda vacío: sin fotos se usa un placeholder con el nombre.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" || in.Price == nil || in.Description == "" {
		return nil, fmt.Errorf("%w: name, price y description son requeridos", domain.ErrInvalidInput)
	}
	if err := validatePrice(*in.Price); err != nil {
		return nil, err
	}
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock no puede ser negativo", domain.ErrInvalidInput)
	}
	now := time.Now()
	product := &entity.Product{
		Name:        in.Name,
		Category:    strings.TrimSpace(in.Category),
		Price:       *in.Price,
		Description: in.Description,
		Images:      catalog.NormalizeImages(in.Name, in.Image, in.Images),
		Specs:       in.Specs,
		Features:    cleanList(in.Features),
		Stock:       stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if product.Specs == nil {
		product.Specs = map[string]string{}
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update aplica solo los campos presentes. (nil, nil) si el producto no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		product.Name = name
	}
	if in.Category != nil {
		product.Category = strings.TrimSpace(*in.Category)
	}
	if in.Price != nil {
		if err := validatePrice(*in.Price); err != nil {
			return nil, err
		}
		product.Price = *in.Price
	}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if desc == "" {
			return nil, fmt.Errorf("%w: description no puede quedar vacía", domain.ErrInvalidInput)
		}
		product.Description = desc
	}
	if in.Image != nil || in.Images != nil {
		var single string
		images := product.Images
		if in.Images != nil {
			images = *in.Images
		}
		if in.Image != nil {
			single = *in.Image
		}
		product.Images = catalog.NormalizeImages(product.Name, single, images)
	}
	if in.Specs != nil {
		product.Specs = *in.Specs
		if product.Specs == nil {
			product.Specs = map[string]string{}
		}
	}
	if in.Features != nil {
		product.Features = cleanList(*in.Features)
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, fmt.Errorf("%w: stock no puede ser negativo", domain.ErrInvalidInput)
		}
		product.Stock = *in.Stock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista el catálogo, opcionalmente por categoría.
func (uc *ProductUseCase) List(ctx context.Context, category string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{Category: strings.TrimSpace(category)})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Products: items}, nil
}

// Delete elimina un producto por ID. false si no existía.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

// PriceDecimals decimales que admite un precio; coincide con NUMERIC(16,2) en PostgreSQL.
const PriceDecimals = 2

// validatePrice exige price > 0 sin más de PriceDecimals decimales significativos,
// para que ambos backends guarden el mismo valor.
func validatePrice(price decimal.Decimal) error {
	if !price.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: price debe ser mayor que 0", domain.ErrInvalidInput)
	}
	if !price.Equal(price.Round(PriceDecimals)) {
		return fmt.Errorf("%w: price admite como máximo %d decimales", domain.ErrInvalidInput, PriceDecimals)
	}
	return nil
}

// cleanList recorta espacios y descarta entradas vacías.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	specs := p.Specs
	if specs == nil {
		specs = map[string]string{}
	}
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Description: p.Description,
		Images:      p.Images,
		Specs:       specs,
		Features:    features,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
