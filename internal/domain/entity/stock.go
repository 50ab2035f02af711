package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa la cantidad de un producto en una sub-ubicación. La fila
// ausente equivale a cantidad cero; la cantidad nunca es negativa (invariante
// protegido por el descuento transaccional, no por convención de los callers).
type Stock struct {
	ProductoID           string
	SubUbicacionID       string
	Cantidad             decimal.Decimal
	UltimaActualizacion  time.Time
}
