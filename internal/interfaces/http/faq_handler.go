package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/application/usecase"
)

// FAQHandler preguntas frecuentes. Lectura pública, escritura admin.
type FAQHandler struct {
	uc *usecase.FAQUseCase
}

// NewFAQHandler construye el handler.
func NewFAQHandler(uc *usecase.FAQUseCase) *FAQHandler {
	return &FAQHandler{uc: uc}
}

// List godoc
// @Summary      Listar FAQ ordenadas por "order"
// @Tags         faq
// @Produce      json
// @Param        category  query  string  false  "Categoría"
// @Success      200       {object}  dto.FAQListResponse
// @Router       /api/faq [get]
func (h *FAQHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("category"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener FAQ por ID
// @Tags         faq
// @Produce      json
// @Param        id   path  int  true  "ID de la FAQ"
// @Success      200  {object}  dto.FAQEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/faq/{id} [get]
func (h *FAQHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "faq no encontrada")
	}
	return c.JSON(dto.FAQEnvelope{FAQ: *out})
}

// Create godoc
// @Summary      Crear FAQ
// @Tags         faq
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFAQRequest  true  "question, answer, category, order"
// @Success      201   {object}  dto.FAQEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/faq [post]
func (h *FAQHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFAQRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FAQEnvelope{FAQ: *out})
}

// Update godoc
// @Summary      Actualizar FAQ
// @Tags         faq
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la FAQ"
// @Param        body  body  dto.UpdateFAQRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.FAQEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/faq/{id} [put]
func (h *FAQHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateFAQRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "faq no encontrada")
	}
	return c.JSON(dto.FAQEnvelope{FAQ: *out})
}

// Delete godoc
// @Summary      Eliminar FAQ
// @Tags         faq
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la FAQ"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/faq/{id} [delete]
func (h *FAQHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	removed, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if !removed {
		return notFound(c, "faq no encontrada")
	}
	return deleted(c, "faq eliminada", id)
}
