package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido. El flujo solo avanza:
// borrador → pendiente → {aprobado | rechazado}; aprobado → recibido.
// Un borrador puede eliminarse (cancelación); rechazado y recibido son terminales.
const (
	PedidoBorrador  = "borrador"
	PedidoPendiente = "pendiente"
	PedidoAprobado  = "aprobado"
	PedidoRechazado = "rechazado"
	PedidoRecibido  = "recibido"
)

// transicionesPedido enumera las transiciones legales del estado de un pedido.
var transicionesPedido = map[string][]string{
	PedidoBorrador:  {PedidoPendiente},
	PedidoPendiente: {PedidoAprobado, PedidoRechazado},
	PedidoAprobado:  {PedidoRecibido},
	PedidoRechazado: {},
	PedidoRecibido:  {},
}

// TransicionPedidoValida indica si el pedido puede pasar de `desde` a `hacia`.
func TransicionPedidoValida(desde, hacia string) bool {
	for _, e := range transicionesPedido[desde] {
		if e == hacia {
			return true
		}
	}
	return false
}

// Pedido es una orden de compra de mercadería con destino a una ubicación.
// ProvistoDesdeAlmacen se fija una única vez, al aprobar, e indica si la
// mercadería sale del stock del almacén central o de un proveedor externo.
type Pedido struct {
	ID                   string
	CreadoPor            string
	DestinoID            string
	Estado               string
	ProvistoDesdeAlmacen bool
	FechaCreacion        time.Time
	Items                []*PedidoItem
}

// PedidoItem es una línea del pedido. PrecioCostoMomento es una foto del costo
// al crear el pedido y no cambia después. SubUbicacionOrigen se fija al aprobar
// desde almacén; SubUbicacionDestino al recibir, y debe pertenecer al destino
// del pedido.
type PedidoItem struct {
	ID                  string
	PedidoID            string
	ProductoID          string
	Cantidad            decimal.Decimal
	PrecioCostoMomento  decimal.Decimal
	SubUbicacionOrigen  *string
	SubUbicacionDestino *string
}

// Costo devuelve cantidad × precio de costo de la línea.
func (i *PedidoItem) Costo() decimal.Decimal {
	return i.Cantidad.Mul(i.PrecioCostoMomento)
}
