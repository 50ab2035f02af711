package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/application/reportes"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

// ReportePDFGenerator genera la versión PDF del reporte económico.
type ReportePDFGenerator interface {
	Generate(reporte *dto.ReporteEconomico, desde, hasta *time.Time) ([]byte, error)
}

// ReporteHandler maneja el reporte económico por sucursal.
type ReporteHandler struct {
	uc  *reportes.UseCase
	pdf ReportePDFGenerator
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reportes.UseCase, pdf ReportePDFGenerator) *ReporteHandler {
	return &ReporteHandler{uc: uc, pdf: pdf}
}

func (h *ReporteHandler) filtro(c *fiber.Ctx) repository.ReporteFilter {
	return repository.ReporteFilter{
		SucursalID: c.Query("sucursal"),
		Desde:      parseFecha(c.Query("fecha_desde")),
		Hasta:      parseFecha(c.Query("fecha_hasta")),
	}
}

// Economico godoc
// @Summary      Reporte económico por sucursal
// @Description  Gastos (pedidos que afectaron stock), ventas y balance por
//
//	sucursal, más totales. Usuarios de sucursal ven solo la propia.
//
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        sucursal     query  string  false  "ID de sucursal"
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.ReporteEconomico
// @Router       /api/sales/reporte-economico/ [get]
func (h *ReporteHandler) Economico(c *fiber.Ctx) error {
	out, err := h.uc.Economico(c.Context(), actorDe(c), h.filtro(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// EconomicoPDF godoc
// @Summary      Reporte económico en PDF
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        sucursal     query  string  false  "ID de sucursal"
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  byte
// @Router       /api/sales/reporte-economico/pdf/ [get]
func (h *ReporteHandler) EconomicoPDF(c *fiber.Ctx) error {
	filtro := h.filtro(c)
	out, err := h.uc.Economico(c.Context(), actorDe(c), filtro)
	if err != nil {
		return responderError(c, err)
	}
	raw, err := h.pdf.Generate(out, filtro.Desde, filtro.Hasta)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_GENERATION", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-economico.pdf"`)
	return c.Send(raw)
}
