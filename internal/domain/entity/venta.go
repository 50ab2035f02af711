package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta registra una venta de una sucursal contra su stock disponible.
// Total es la suma de cantidad × precio de cada línea, calculada al crear.
type Venta struct {
	ID         string
	Vendedor   string
	SucursalID string
	Fecha      time.Time
	Total      decimal.Decimal
	Items      []*VentaItem
}

// VentaItem es una línea de venta. PrecioVentaMomento es una foto del precio
// al momento de vender; el stock se descuenta de SubUbicacionOrigen.
type VentaItem struct {
	ID                 string
	VentaID            string
	ProductoID         string
	SubUbicacionOrigen string
	Cantidad           decimal.Decimal
	PrecioVentaMomento decimal.Decimal
}

// Subtotal devuelve cantidad × precio de la línea.
func (i *VentaItem) Subtotal() decimal.Decimal {
	return i.Cantidad.Mul(i.PrecioVentaMomento)
}
