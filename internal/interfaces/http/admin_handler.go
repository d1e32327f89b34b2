package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autotienda-api/internal/application/analytics"
	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/application/usecase"
)

// AdminHandler tablero y ajustes del panel de administración.
type AdminHandler struct {
	dashboard *analytics.DashboardUseCase
	settings  *usecase.SettingsService
}

// NewAdminHandler construye el handler.
func NewAdminHandler(dashboard *analytics.DashboardUseCase, settings *usecase.SettingsService) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, settings: settings}
}

// Stats godoc
// @Summary      Tablero: conteos por recurso y latencias HTTP
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	out, err := h.dashboard.GetStats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetSettings godoc
// @Summary      Ajustes de la tienda
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/admin/settings [get]
func (h *AdminHandler) GetSettings(c *fiber.Ctx) error {
	return c.JSON(h.settings.Get())
}

// UpdateSettings godoc
// @Summary      Actualizar ajustes de la tienda
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "maintenanceMode"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/settings [put]
func (h *AdminHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	return c.JSON(h.settings.Update(in))
}
