package dto

import "time"

// CreateUserRequest alta de usuario desde el panel admin (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin cliente"`
	Status   string `json:"status" validate:"omitempty,oneof=activo inactivo"`
}

// UpdateUserRequest actualización parcial: solo los campos presentes cambian.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

// RegisterRequest entrada para registro público (auth).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserEnvelope respuesta de un único usuario.
type UserEnvelope struct {
	User UserResponse `json:"user"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// AuthResponse salida de login/registro con token JWT.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
