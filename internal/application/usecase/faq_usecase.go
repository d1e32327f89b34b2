package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

// FAQUseCase casos de uso de preguntas frecuentes.
type FAQUseCase struct {
	repo repository.FAQRepository
}

// NewFAQUseCase construye el caso de uso.
func NewFAQUseCase(repo repository.FAQRepository) *FAQUseCase {
	return &FAQUseCase{repo: repo}
}

// Create crea una FAQ con category "general" y order 999 si no se indican.
func (uc *FAQUseCase) Create(ctx context.Context, in dto.CreateFAQRequest) (*dto.FAQResponse, error) {
	question := strings.TrimSpace(in.Question)
	answer := strings.TrimSpace(in.Answer)
	if question == "" || answer == "" {
		return nil, fmt.Errorf("%w: question y answer son requeridos", domain.ErrInvalidInput)
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = entity.DefaultFAQCategory
	}
	order := entity.DefaultFAQOrder
	if in.Order != nil {
		order = *in.Order
	}
	now := time.Now()
	faq := &entity.FAQ{
		Question:  question,
		Answer:    answer,
		Category:  category,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, faq); err != nil {
		return nil, err
	}
	return toFAQResponse(faq), nil
}

// GetByID obtiene una FAQ. (nil, nil) si no existe.
func (uc *FAQUseCase) GetByID(ctx context.Context, id int64) (*dto.FAQResponse, error) {
	faq, err := uc.repo.GetByID(ctx, id)
	if err != nil || faq == nil {
		return nil, err
	}
	return toFAQResponse(faq), nil
}

// List devuelve las FAQ ordenadas por Order (estable), opcionalmente de una categoría.
func (uc *FAQUseCase) List(ctx context.Context, category string) (*dto.FAQListResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, err
	}
	out := make([]dto.FAQResponse, 0, len(list))
	for _, f := range list {
		out = append(out, *toFAQResponse(f))
	}
	return &dto.FAQListResponse{FAQs: out}, nil
}

// Update aplica solo los campos presentes. (nil, nil) si no existe.
func (uc *FAQUseCase) Update(ctx context.Context, id int64, in dto.UpdateFAQRequest) (*dto.FAQResponse, error) {
	faq, err := uc.repo.GetByID(ctx, id)
	if err != nil || faq == nil {
		return nil, err
	}
	if in.Question != nil {
		q := strings.TrimSpace(*in.Question)
		if q == "" {
			return nil, fmt.Errorf("%w: question no puede quedar vacía", domain.ErrInvalidInput)
		}
		faq.Question = q
	}
	if in.Answer != nil {
		a := strings.TrimSpace(*in.Answer)
		if a == "" {
			return nil, fmt.Errorf("%w: answer no puede quedar vacía", domain.ErrInvalidInput)
		}
		faq.Answer = a
	}
	if in.Category != nil {
		faq.Category = strings.TrimSpace(*in.Category)
		if faq.Category == "" {
			faq.Category = entity.DefaultFAQCategory
		}
	}
	if in.Order != nil {
		faq.Order = *in.Order
	}
	faq.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, faq); err != nil {
		return nil, err
	}
	return toFAQResponse(faq), nil
}

// Delete elimina una FAQ. false si no existía.
func (uc *FAQUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func toFAQResponse(f *entity.FAQ) *dto.FAQResponse {
	return &dto.FAQResponse{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		Category:  f.Category,
		Order:     f.Order,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
