package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleCliente = "cliente"
)

// Estados de cuenta.
const (
	UserStatusActivo   = "activo"
	UserStatusInactivo = "inactivo"
)

// User representa una cuenta de la tienda (administrador o cliente).
type User struct {
	ID           int64
	Name         string
	Username     string // único
	Email        string // único
	PasswordHash string // bcrypt; vacío = la cuenta no puede iniciar sesión
	Role         string // admin, cliente
	Status       string // activo, inactivo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// ValidRole indica si role es uno de los roles soportados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCliente
}

// ValidUserStatus indica si status es un estado de cuenta soportado.
func ValidUserStatus(status string) bool {
	return status == UserStatusActivo || status == UserStatusInactivo
}
