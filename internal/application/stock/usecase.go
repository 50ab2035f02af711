package stock

import (
	"context"

	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/domain"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

// UseCase consulta de stock por ubicación/sub-ubicación/producto. Solo
// lectura: las mutaciones de stock viven en los motores de pedidos y ventas.
type UseCase struct {
	stockRepo repository.StockRepository
}

// NewUseCase construye el caso de uso de consulta de stock.
func NewUseCase(stockRepo repository.StockRepository) *UseCase {
	return &UseCase{stockRepo: stockRepo}
}

// List devuelve filas de stock con nombres resueltos. Los usuarios de
// sucursal solo consultan su propia ubicación.
func (uc *UseCase) List(ctx context.Context, actor dto.Actor, filter repository.StockFilter) ([]dto.StockResponse, error) {
	if !actor.EsAdmin() {
		if actor.SucursalID == nil {
			return nil, domain.ErrForbidden
		}
		filter.UbicacionID = *actor.SucursalID
	}
	rows, err := uc.stockRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockResponse{
			Producto:                 r.ProductoID,
			ProductoNombre:           r.ProductoNombre,
			ProductoTipoConservacion: r.ProductoTipoConservacion,
			SubUbicacion:             r.SubUbicacionID,
			SubUbicacionNombre:       r.SubUbicacionNombre,
			SubUbicacionTipo:         r.SubUbicacionTipo,
			UbicacionID:              r.UbicacionID,
			UbicacionNombre:          r.UbicacionNombre,
			Cantidad:                 r.Cantidad,
			UltimaActualizacion:      r.UltimaActualizacion,
		})
	}
	return out, nil
}
