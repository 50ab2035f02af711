package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/application/ventas"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

// VentaHandler maneja el registro y la consulta de ventas.
type VentaHandler struct {
	uc *ventas.UseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *ventas.UseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// parseFecha interpreta un query param de fecha en formato YYYY-MM-DD.
// Devuelve nil si está vacío o malformado.
func parseFecha(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// Create godoc
// @Summary      Registrar venta
// @Description  Descuenta el stock de todas las líneas en una sola transacción
//
//	o falla completa sin descontar nada.
//
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VentaRequest  true  "sucursal e items"
// @Success      201  {object}  dto.VentaResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/ventas/ [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.VentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), actorDe(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Description  Usuarios de sucursal ven solo sus propias ventas.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        sucursal     query  string  false  "ID de sucursal"
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.VentaResponse
// @Router       /api/sales/ventas/ [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	filter := repository.VentaFilter{
		SucursalID: c.Query("sucursal"),
		Desde:      parseFecha(c.Query("fecha_desde")),
		Hasta:      parseFecha(c.Query("fecha_hasta")),
	}
	out, err := h.uc.List(c.Context(), actorDe(c), filter)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
