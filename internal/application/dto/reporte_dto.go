package dto

import "github.com/shopspring/decimal"

// ReporteSucursal agregado económico de una sucursal.
type ReporteSucursal struct {
	SucursalID     string          `json:"sucursal_id"`
	SucursalNombre string          `json:"sucursal_nombre"`
	TotalGastos    decimal.Decimal `json:"total_gastos"`
	TotalVentas    decimal.Decimal `json:"total_ventas"`
	Balance        decimal.Decimal `json:"balance"`
}

// ReporteTotales suma global del reporte.
type ReporteTotales struct {
	TotalGastos decimal.Decimal `json:"total_gastos"`
	TotalVentas decimal.Decimal `json:"total_ventas"`
	Balance     decimal.Decimal `json:"balance"`
}

// ReporteEconomico reporte completo: desglose por sucursal más totales.
type ReporteEconomico struct {
	PorSucursal []ReporteSucursal `json:"por_sucursal"`
	Totales     ReporteTotales    `json:"totales"`
}
