package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/autotienda-api/internal/application/auth"
	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

// SupportUseCase casos de uso de tickets de soporte.
// Los clientes solo ven sus propios tickets; el admin ve y gestiona todos.
type SupportUseCase struct {
	repo repository.SupportRepository
}

// NewSupportUseCase construye el caso de uso.
func NewSupportUseCase(repo repository.SupportRepository) *SupportUseCase {
	return &SupportUseCase{repo: repo}
}

// Create registra un ticket. Un cliente autenticado siempre queda como dueño; un visitante anónimo
// crea tickets sin dueño aunque envíe userId.
func (uc *SupportUseCase) Create(ctx context.Context, actor *dto.Actor, in dto.CreateSupportTicketRequest) (*dto.SupportTicketResponse, error) {
	subject := strings.TrimSpace(in.Subject)
	message := strings.TrimSpace(in.Message)
	category := strings.TrimSpace(in.Category)
	if subject == "" || message == "" || category == "" {
		return nil, fmt.Errorf("%w: subject, message y category son requeridos", domain.ErrInvalidInput)
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" && !auth.ValidEmail(email) {
		return nil, fmt.Errorf("%w: email con formato inválido", domain.ErrInvalidInput)
	}

	var userID int64
	switch {
	case actor.IsAdmin():
		userID = in.UserID
	case actor.IsAuthenticated():
		userID = actor.UserID
	}

	now := time.Now()
	ticket := &entity.SupportTicket{
		UserID:    userID,
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Subject:   subject,
		Message:   message,
		Category:  category,
		Status:    entity.TicketStatusAbierto,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return toTicketResponse(ticket), nil
}

// GetByID obtiene un ticket. (nil, nil) si no existe o no es del actor.
func (uc *SupportUseCase) GetByID(ctx context.Context, actor *dto.Actor, id int64) (*dto.SupportTicketResponse, error) {
	ticket, err := uc.repo.GetByID(ctx, id)
	if err != nil || ticket == nil {
		return nil, err
	}
	if !actor.CanAccess(ticket.UserID) {
		return nil, nil
	}
	return toTicketResponse(ticket), nil
}

// List lista tickets con filtros. Para clientes el filtro userId se fuerza a su propio ID.
func (uc *SupportUseCase) List(ctx context.Context, actor *dto.Actor, filter repository.SupportFilter) (*dto.SupportTicketListResponse, error) {
	if !actor.IsAdmin() {
		if !actor.IsAuthenticated() {
			return nil, domain.ErrUnauthorized
		}
		filter.UserID = actor.UserID
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupportTicketResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTicketResponse(t))
	}
	return &dto.SupportTicketListResponse{Tickets: out}, nil
}

// Update aplica solo los campos presentes y refresca UpdatedAt. (nil, nil) si no existe.
func (uc *SupportUseCase) Update(ctx context.Context, id int64, in dto.UpdateSupportTicketRequest) (*dto.SupportTicketResponse, error) {
	ticket, err := uc.repo.GetByID(ctx, id)
	if err != nil || ticket == nil {
		return nil, err
	}
	if in.Name != nil {
		ticket.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != "" && !auth.ValidEmail(email) {
			return nil, fmt.Errorf("%w: email con formato inválido", domain.ErrInvalidInput)
		}
		ticket.Email = email
	}
	for _, f := range []struct {
		in   *string
		dst  *string
		name string
	}{
		{in.Subject, &ticket.Subject, "subject"},
		{in.Message, &ticket.Message, "message"},
		{in.Category, &ticket.Category, "category"},
	} {
		if f.in == nil {
			continue
		}
		v := strings.TrimSpace(*f.in)
		if v == "" {
			return nil, fmt.Errorf("%w: %s no puede quedar vacío", domain.ErrInvalidInput, f.name)
		}
		*f.dst = v
	}
	if in.Status != nil {
		if !entity.ValidTicketStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status inválido %q", domain.ErrInvalidInput, *in.Status)
		}
		ticket.Status = *in.Status
	}
	ticket.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return toTicketResponse(ticket), nil
}

// Delete elimina un ticket. false si no existía.
func (uc *SupportUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func toTicketResponse(t *entity.SupportTicket) *dto.SupportTicketResponse {
	out := &dto.SupportTicketResponse{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Subject:   t.Subject,
		Message:   t.Message,
		Category:  t.Category,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.UserID > 0 {
		uid := t.UserID
		out.UserID = &uid
	}
	return out
}
