package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReporteFilter filtros del reporte económico.
type ReporteFilter struct {
	SucursalID string
	Desde      *time.Time
	Hasta      *time.Time
}

// ReporteSucursalResult agregado económico de una sucursal: ingresos por
// ventas y gastos por pedidos que afectaron stock (aprobados desde almacén o
// recibidos).
type ReporteSucursalResult struct {
	SucursalID     string
	SucursalNombre string
	TotalVentas    decimal.Decimal
	TotalGastos    decimal.Decimal
}

// ReporteRepository consultas de solo lectura para el reporte económico.
type ReporteRepository interface {
	PorSucursal(ctx context.Context, filter ReporteFilter) ([]ReporteSucursalResult, error)
}
