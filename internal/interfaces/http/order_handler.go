package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/autotienda-api/internal/application/dto"
	"github.com/jhoicas/autotienda-api/internal/application/orders"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

// OrderHandler pedidos y su comprobante PDF.
type OrderHandler struct {
	create  *orders.CreateOrderUseCase
	orders  *orders.OrderUseCase
	receipt *orders.ReceiptUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(create *orders.CreateOrderUseCase, uc *orders.OrderUseCase, receipt *orders.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{create: create, orders: uc, receipt: receipt}
}

// List godoc
// @Summary      Listar pedidos
// @Description  Un cliente solo ve sus propios pedidos; el admin ve todos.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        userId  query  int     false  "Filtrar por usuario (admin)"
// @Param        status  query  string  false  "pendiente | procesando | enviado | entregado | cancelado"
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	userID, ok := queryID(c, "userId")
	if !ok {
		return invalidQuery(c, "userId")
	}
	out, err := h.orders.ListOrders(c.UserContext(), GetActor(c), repository.OrderFilter{
		UserID: userID,
		Status: c.Query("status"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.OrderEnvelope
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.orders.GetOrder(c.UserContext(), GetActor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OrderEnvelope{Order: *out})
}

// Create godoc
// @Summary      Crear pedido
// @Description  Todo o nada: si alguna línea falla (producto inexistente o stock insuficiente) no se guarda nada.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "userId e items"
// @Success      201   {object}  dto.OrderEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.create.CreateOrder(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OrderEnvelope{Order: *out})
}

// Update godoc
// @Summary      Cambiar estado del pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderRequest  true  "status"
// @Success      200   {object}  dto.OrderEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.orders.UpdateOrder(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OrderEnvelope{Order: *out})
}

// Delete godoc
// @Summary      Eliminar pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	removed, err := h.orders.DeleteOrder(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if !removed {
		return notFound(c, "pedido no encontrado")
	}
	return deleted(c, "pedido eliminado", id)
}

// Receipt godoc
// @Summary      Descargar comprobante PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del pedido"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}
	pdf, filename, err := h.receipt.DownloadReceipt(c.UserContext(), GetActor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
