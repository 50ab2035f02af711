package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PedidoItemRequest línea de un alta/modificación de pedido. Si
// PrecioCostoMomento es nil se toma el costo vigente del catálogo.
type PedidoItemRequest struct {
	Producto           string           `json:"producto"`
	Cantidad           decimal.Decimal  `json:"cantidad"`
	PrecioCostoMomento *decimal.Decimal `json:"precio_costo_momento"`
}

// PedidoRequest alta/modificación (solo en borrador) de un pedido.
type PedidoRequest struct {
	Destino string              `json:"destino"`
	Items   []PedidoItemRequest `json:"items"`
}

// AprobarItemRequest asignación de sub-ubicación de origen (en un almacén)
// para una línea, cuando se aprueba con provisto_desde_almacen.
type AprobarItemRequest struct {
	ID                 string `json:"id"`
	SubUbicacionOrigen string `json:"sub_ubicacion_origen"`
}

// AprobarPedidoRequest decisión de aprobación: desde el almacén central
// (con orígenes por línea) o desde un proveedor externo.
type AprobarPedidoRequest struct {
	ProvistoDesdeAlmacen bool                 `json:"provisto_desde_almacen"`
	Items                []AprobarItemRequest `json:"items"`
}

// RecibirItemRequest asignación de sub-ubicación de destino para una línea
// al recibir la mercadería.
type RecibirItemRequest struct {
	ID                  string `json:"id"`
	SubUbicacionDestino string `json:"sub_ubicacion_destino"`
}

// RecibirPedidoRequest recepción del pedido: todas las líneas necesitan destino.
type RecibirPedidoRequest struct {
	Items []RecibirItemRequest `json:"items"`
}

// PedidoItemResponse línea de pedido.
type PedidoItemResponse struct {
	ID                  string          `json:"id"`
	Producto            string          `json:"producto"`
	ProductoNombre      string          `json:"producto_nombre"`
	Cantidad            decimal.Decimal `json:"cantidad"`
	PrecioCostoMomento  decimal.Decimal `json:"precio_costo_momento"`
	SubUbicacionOrigen  *string         `json:"sub_ubicacion_origen"`
	SubUbicacionDestino *string         `json:"sub_ubicacion_destino"`
}

// PedidoResponse pedido con líneas y nombres resueltos.
type PedidoResponse struct {
	ID                   string               `json:"id"`
	CreadoPor            string               `json:"creado_por"`
	Destino              string               `json:"destino"`
	DestinoNombre        string               `json:"destino_nombre"`
	Estado               string               `json:"estado"`
	ProvistoDesdeAlmacen bool                 `json:"provisto_desde_almacen"`
	FechaCreacion        time.Time            `json:"fecha_creacion"`
	Items                []PedidoItemResponse `json:"items"`
}
