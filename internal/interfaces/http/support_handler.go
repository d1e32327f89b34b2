package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/application/usecase"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

// SupportHandler tickets de soporte. Crear es público; el resto requiere sesión.
type SupportHandler struct {
	uc *usecase.SupportUseCase
}

// NewSupportHandler construye el handler.
func NewSupportHandler(uc *usecase.SupportUseCase) *SupportHandler {
	return &SupportHandler{uc: uc}
}

// List godoc
// @Summary      Listar tickets
// @Description  Un cliente solo ve sus propios tickets; el admin ve todos.
// @Tags         support
// @Security     Bearer
// @Produce      json
// @Param        userId    query  int     false  "Filtrar por usuario (admin)"
// @Param        status    query  string  false  "abierto | en_proceso | resuelto | cerrado"
// @Param        category  query  string  false  "Categoría"
// @Success      200       {object}  dto.SupportTicketListResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/support [get]
func (h *SupportHandler) List(c *fiber.Ctx) error {
	userID, ok := queryID(c, "userId")
	if !ok {
		return invalidQuery(c, "userId")
	}
	out, err := h.uc.List(c.UserContext(), GetActor(c), repository.SupportFilter{
		UserID:   userID,
		Status:   c.Query("status"),
		Category: c.Query("category"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ticket por ID
// @Tags         support
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del ticket"
// @Success      200  {object}  dto.SupportTicketEnvelope
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/support/{id} [get]
func (h *SupportHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "ticket no encontrado")
	}
	return c.JSON(dto.SupportTicketEnvelope{Ticket: *out})
}

// Create godoc
// @Summary      Abrir ticket de soporte
// @Description  Público. Con sesión el ticket queda asociado al usuario del token.
// @Tags         support
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupportTicketRequest  true  "subject, message, category"
// @Success      201   {object}  dto.SupportTicketEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/support [post]
func (h *SupportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupportTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SupportTicketEnvelope{Ticket: *out})
}

// Update godoc
// @Summary      Actualizar ticket
// @Tags         support
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del ticket"
// @Param        body  body  dto.UpdateSupportTicketRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SupportTicketEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/support/{id} [put]
func (h *SupportHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateSupportTicketRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "ticket no encontrado")
	}
	return c.JSON(dto.SupportTicketEnvelope{Ticket: *out})
}

// Delete godoc
// @Summary      Eliminar ticket
// @Tags         support
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del ticket"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/support/{id} [delete]
func (h *SupportHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	removed, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if !removed {
		return notFound(c, "ticket no encontrado")
	}
	return deleted(c, "ticket eliminado", id)
}
