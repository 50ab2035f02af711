package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockResponse fila de stock con los nombres resueltos para el cliente.
type StockResponse struct {
	Producto                 string          `json:"producto"`
	ProductoNombre           string          `json:"producto_nombre"`
	ProductoTipoConservacion string          `json:"producto_tipo_conservacion"`
	SubUbicacion             string          `json:"sub_ubicacion"`
	SubUbicacionNombre       string          `json:"sub_ubicacion_nombre"`
	SubUbicacionTipo         string          `json:"sub_ubicacion_tipo"`
	UbicacionID              string          `json:"ubicacion_id"`
	UbicacionNombre          string          `json:"ubicacion_nombre"`
	Cantidad                 decimal.Decimal `json:"cantidad"`
	UltimaActualizacion      time.Time       `json:"ultima_actualizacion"`
}
