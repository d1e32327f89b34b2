package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/pkg/jwt"
)

// TokenCookie nombre de la cookie HttpOnly que guarda el JWT (login la fija, logout la borra).
const TokenCookie = "token"

// Locals keys para los datos del token en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// ActorResolver valida contra el almacén la cuenta dueña de un token.
type ActorResolver interface {
	ResolveActor(ctx context.Context, userID int64) (*dto.Actor, error)
}

// AuthMiddleware exige un JWT válido (Bearer o cookie) de una cuenta existente y activa,
// y carga UserID, Username y Role vigentes en c.Locals.
func AuthMiddleware(jwtSecret string, accounts ActorResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, code, msg := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Error: msg})
		}
		userID, _, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "token inválido o expirado"})
		}
		actor, err := accounts.ResolveActor(c.UserContext(), userID)
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "ACCOUNT_NOT_FOUND", Error: "la cuenta del token ya no existe"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCOUNT_INACTIVE", Error: "la cuenta está inactiva"})
		case err != nil:
			return err
		}
		setActor(c, actor)
		return c.Next()
	}
}

// OptionalAuth carga el actor si hay un token válido de una cuenta activa; en otro caso sigue como anónimo.
func OptionalAuth(jwtSecret string, accounts ActorResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, _, _ := extractToken(c)
		if tokenString == "" {
			return c.Next()
		}
		userID, _, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Next()
		}
		if actor, err := accounts.ResolveActor(c.UserContext(), userID); err == nil {
			setActor(c, actor)
		}
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Error: "la cuenta no tiene rol"})
		}
		for _, r := range roles {
			if strings.EqualFold(r, role) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:  "FORBIDDEN",
			Error: "el rol '" + role + "' no tiene permiso para este recurso",
		})
	}
}

// extractToken prioriza el header Authorization y cae a la cookie.
func extractToken(c *fiber.Ctx) (token, code, msg string) {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", "INVALID_TOKEN", "formato: Bearer <token>"
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return "", "MISSING_TOKEN", "token vacío"
		}
		return tokenString, "", ""
	}
	if cookie := strings.TrimSpace(c.Cookies(TokenCookie)); cookie != "" {
		return cookie, "", ""
	}
	return "", "MISSING_TOKEN", "se requiere autenticación"
}

func setActor(c *fiber.Ctx, actor *dto.Actor) {
	c.Locals(LocalUserID, actor.UserID)
	c.Locals(LocalUsername, actor.Username)
	c.Locals(LocalRole, actor.Role)
}

// GetUserID devuelve el UserID del contexto (0 si la petición es anónima).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetRole devuelve el rol del contexto ("" si la petición es anónima).
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}

// GetActor arma el dto.Actor para los casos de uso. nil si la petición es anónima.
func GetActor(c *fiber.Ctx) *dto.Actor {
	id := GetUserID(c)
	if id == 0 {
		return nil
	}
	username, _ := c.Locals(LocalUsername).(string)
	return &dto.Actor{UserID: id, Username: username, Role: GetRole(c)}
}
