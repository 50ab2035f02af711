package repository

import "github.com/mvillagra/stock-sucursales/internal/domain/entity"

// PedidoFilter filtros para listar pedidos.
type PedidoFilter struct {
	DestinoID string
	Estado    string
}

// PedidoRepository define el puerto de persistencia para pedidos y sus líneas.
// Las mutaciones de items (origen/destino) y de estado se ejecutan dentro de
// transacciones junto con los movimientos de stock.
type PedidoRepository interface {
	Create(p *entity.Pedido) error
	GetByID(id string) (*entity.Pedido, error)
	List(filter PedidoFilter) ([]*entity.Pedido, error)
	// ReplaceBorrador reemplaza destino e items de un pedido en borrador.
	ReplaceBorrador(p *entity.Pedido) error
	Delete(id string) error
	// UpdateEstado transiciona el pedido de `desde` a `hacia` de forma
	// condicional: si el estado actual ya no es `desde` (otro escritor ganó la
	// transición) devuelve ErrInvalidState sin modificar nada.
	UpdateEstado(id, desde, hacia string) error
	// SetProvistoDesdeAlmacen fija el origen del aprovisionamiento; se llama
	// una sola vez, al aprobar.
	SetProvistoDesdeAlmacen(id string, provisto bool) error
	SetItemOrigen(itemID, subUbicacionID string) error
	SetItemDestino(itemID, subUbicacionID string) error
}
