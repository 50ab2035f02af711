package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/application/pedidos"
)

// PedidoHandler maneja el ciclo de vida de los pedidos de reposición.
type PedidoHandler struct {
	uc *pedidos.UseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *pedidos.UseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// List godoc
// @Summary      Listar pedidos
// @Description  Usuarios de sucursal ven solo los pedidos destinados a su sucursal.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PedidoResponse
// @Router       /api/inventory/pedidos/ [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), actorDe(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de pedido
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.PedidoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/pedidos/{id}/ [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), actorDe(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear pedido en borrador
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PedidoRequest  true  "destino e items"
// @Success      201  {object}  dto.PedidoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/pedidos/ [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.PedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), actorDe(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Modificar pedido (solo en borrador)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del pedido"
// @Param        body  body  dto.PedidoRequest  true  "destino e items"
// @Success      200  {object}  dto.PedidoResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/pedidos/{id}/ [put]
func (h *PedidoHandler) Update(c *fiber.Ctx) error {
	var in dto.PedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Context(), actorDe(c), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido (solo en borrador)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.StatusResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/pedidos/{id}/ [delete]
func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), actorDe(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "eliminado"})
}

// EnviarARevision godoc
// @Summary      Enviar pedido a revisión (borrador a pendiente)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.StatusResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/pedidos/{id}/enviar_a_revision/ [post]
func (h *PedidoHandler) EnviarARevision(c *fiber.Ctx) error {
	if err := h.uc.EnviarARevision(c.Context(), actorDe(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "pendiente"})
}

// Aprobar godoc
// @Summary      Aprobar pedido pendiente (solo admin)
// @Description  Con provisto_desde_almacen los items requieren sub-ubicación de
//
//	origen en el almacén central; el stock se descuenta en una sola
//	transacción o no se descuenta nada.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del pedido"
// @Param        body  body  dto.AprobarPedidoRequest  true  "decisión de aprobación"
// @Success      200  {object}  dto.StatusResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/pedidos/{id}/aprobar/ [post]
func (h *PedidoHandler) Aprobar(c *fiber.Ctx) error {
	var in dto.AprobarPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Aprobar(c.Context(), actorDe(c), c.Params("id"), in); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "aprobado"})
}

// Rechazar godoc
// @Summary      Rechazar pedido pendiente (solo admin)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.StatusResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/pedidos/{id}/rechazar/ [post]
func (h *PedidoHandler) Rechazar(c *fiber.Ctx) error {
	if err := h.uc.Rechazar(c.Context(), actorDe(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "rechazado"})
}

// Recibir godoc
// @Summary      Registrar recepción de un pedido aprobado
// @Description  Cada item requiere sub-ubicación de destino dentro de la
//
//	ubicación destino del pedido; el stock se suma en una sola transacción.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del pedido"
// @Param        body  body  dto.RecibirPedidoRequest  true  "destinos por item"
// @Success      200  {object}  dto.StatusResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/pedidos/{id}/recibir/ [post]
func (h *PedidoHandler) Recibir(c *fiber.Ctx) error {
	var in dto.RecibirPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Recibir(c.Context(), actorDe(c), c.Params("id"), in); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "recibido"})
}
