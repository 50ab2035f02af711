package pedidos

import (
	"context"

	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para las transiciones
// que mueven stock (aprobar desde almacén, recibir).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		pedidoRepo repository.PedidoRepository,
	) error) error
}
