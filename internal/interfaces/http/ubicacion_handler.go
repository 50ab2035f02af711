package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/application/ubicaciones"
)

// UbicacionHandler maneja sucursales y almacenes con sus sub-ubicaciones.
type UbicacionHandler struct {
	uc *ubicaciones.UseCase
}

// NewUbicacionHandler construye el handler.
func NewUbicacionHandler(uc *ubicaciones.UseCase) *UbicacionHandler {
	return &UbicacionHandler{uc: uc}
}

// List godoc
// @Summary      Listar ubicaciones con sus sub-ubicaciones
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UbicacionResponse
// @Router       /api/locations/sucursales/ [get]
func (h *UbicacionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ubicación (solo admin)
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UbicacionRequest  true  "nombre, tipo y sub-ubicaciones"
// @Success      201  {object}  dto.UbicacionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/locations/sucursales/ [post]
func (h *UbicacionHandler) Create(c *fiber.Ctx) error {
	var in dto.UbicacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Modificar ubicación y reconciliar sub-ubicaciones (solo admin)
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID de la ubicación"
// @Param        body  body  dto.UbicacionRequest  true  "ubicación"
// @Success      200  {object}  dto.UbicacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locations/sucursales/{id}/ [put]
func (h *UbicacionHandler) Update(c *fiber.Ctx) error {
	var in dto.UbicacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ubicación (solo admin)
// @Tags         locations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.StatusResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/locations/sucursales/{id}/ [delete]
func (h *UbicacionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "eliminado"})
}
