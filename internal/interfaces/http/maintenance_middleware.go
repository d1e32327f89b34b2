package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
)

// maintenanceChecker contrato mínimo que necesita el middleware. Lo implementa *usecase.SettingsService.
type maintenanceChecker interface {
	MaintenanceMode() bool
}

// RejectDuringMaintenance responde 503 a los no-admin mientras la tienda está en mantenimiento.
// Debe montarse DESPUÉS de AuthMiddleware u OptionalAuth para conocer el rol.
func RejectDuringMaintenance(checker maintenanceChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !checker.MaintenanceMode() || GetRole(c) == entity.RoleAdmin {
			return c.Next()
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code:  "MAINTENANCE",
			Error: "la tienda está en mantenimiento, intente más tarde",
		})
	}
}
