package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mvillagra/stock-sucursales/internal/application/stock"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

// StockHandler maneja la consulta de stock por sub-ubicación.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Consultar stock
// @Description  Usuarios de sucursal ven solo su propia ubicación; admin ve todo.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        ubicacion      query  string  false  "ID de ubicación"
// @Param        sub_ubicacion  query  string  false  "ID de sub-ubicación"
// @Param        producto       query  string  false  "ID de producto"
// @Param        con_stock      query  bool    false  "solo filas con cantidad > 0"
// @Success      200  {array}  dto.StockResponse
// @Router       /api/inventory/stock/ [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	filter := repository.StockFilter{
		UbicacionID:    c.Query("ubicacion"),
		SubUbicacionID: c.Query("sub_ubicacion"),
		ProductoID:     c.Query("producto"),
		SoloConStock:   c.QueryBool("con_stock"),
	}
	out, err := h.uc.List(c.Context(), actorDe(c), filter)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
