package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaItemRequest línea de una venta. Si PrecioVentaMomento es nil se toma
// el precio de venta vigente del catálogo.
type VentaItemRequest struct {
	Producto           string           `json:"producto"`
	SubUbicacionOrigen string           `json:"sub_ubicacion_origen"`
	Cantidad           decimal.Decimal  `json:"cantidad"`
	PrecioVentaMomento *decimal.Decimal `json:"precio_venta_momento"`
}

// VentaRequest registro de una venta multi-línea contra el stock de la sucursal.
type VentaRequest struct {
	Sucursal string             `json:"sucursal"`
	Items    []VentaItemRequest `json:"items"`
}

// VentaItemResponse línea de venta persistida.
type VentaItemResponse struct {
	ID                 string          `json:"id"`
	Producto           string          `json:"producto"`
	SubUbicacionOrigen string          `json:"sub_ubicacion_origen"`
	Cantidad           decimal.Decimal `json:"cantidad"`
	PrecioVentaMomento decimal.Decimal `json:"precio_venta_momento"`
}

// VentaResponse venta con su total derivado.
type VentaResponse struct {
	ID       string              `json:"id"`
	Vendedor string              `json:"vendedor"`
	Sucursal string              `json:"sucursal"`
	Fecha    time.Time           `json:"fecha"`
	Total    decimal.Decimal     `json:"total"`
	Items    []VentaItemResponse `json:"items"`
}
