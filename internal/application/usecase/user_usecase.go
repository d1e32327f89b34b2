package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/autotienda-api/internal/application/auth"
	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

// UserUseCase administración de cuentas desde el panel admin.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create da de alta un usuario. Password es opcional: sin él la cuenta no puede iniciar sesión.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Username == "" || in.Email == "" || in.Role == "" {
		return nil, fmt.Errorf("%w: name, username, email y role son requeridos", domain.ErrInvalidInput)
	}
	if !auth.ValidEmail(in.Email) {
		return nil, fmt.Errorf("%w: email con formato inválido", domain.ErrInvalidInput)
	}
	if !entity.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: role debe ser admin o cliente", domain.ErrInvalidInput)
	}
	if in.Status == "" {
		in.Status = entity.UserStatusActivo
	}
	if !entity.ValidUserStatus(in.Status) {
		return nil, fmt.Errorf("%w: status debe ser activo o inactivo", domain.ErrInvalidInput)
	}
	if err := uc.ensureUnique(ctx, 0, in.Username, in.Email); err != nil {
		return nil, err
	}

	var hash string
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}
	now := time.Now()
	user := &entity.User{
		Name:         in.Name,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Status:       in.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// List lista todos los usuarios sin datos sensibles.
func (uc *UserUseCase) List(ctx context.Context) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{Users: out}, nil
}

// Update aplica solo los campos presentes. (nil, nil) si el usuario no existe.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		user.Name = name
	}
	username, email := user.Username, user.Email
	if in.Username != nil {
		username = strings.TrimSpace(*in.Username)
		if username == "" {
			return nil, fmt.Errorf("%w: username no puede quedar vacío", domain.ErrInvalidInput)
		}
	}
	if in.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*in.Email))
		if !auth.ValidEmail(email) {
			return nil, fmt.Errorf("%w: email con formato inválido", domain.ErrInvalidInput)
		}
	}
	if username != user.Username || email != user.Email {
		if err := uc.ensureUnique(ctx, user.ID, username, email); err != nil {
			return nil, err
		}
		user.Username, user.Email = username, email
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, fmt.Errorf("%w: role debe ser admin o cliente", domain.ErrInvalidInput)
		}
		user.Role = *in.Role
	}
	if in.Status != nil {
		if !entity.ValidUserStatus(*in.Status) {
			return nil, fmt.Errorf("%w: status debe ser activo o inactivo", domain.ErrInvalidInput)
		}
		user.Status = *in.Status
	}
	if in.Password != nil {
		if len(*in.Password) < auth.MinPasswordLength {
			return nil, fmt.Errorf("%w: password debe tener al menos %d caracteres", domain.ErrInvalidInput, auth.MinPasswordLength)
		}
		h, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(h)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Delete elimina un usuario. false si no existía.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

// ensureUnique verifica que username y email no pertenezcan a otro usuario distinto de selfID.
func (uc *UserUseCase) ensureUnique(ctx context.Context, selfID int64, username, email string) error {
	other, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return domain.ErrUsernameTaken
	}
	other, err = uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return domain.ErrEmailAlreadyExists
	}
	return nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
