package ventas

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/domain"
	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de stock y ventas atados a esa tx.
type TxRunner interface {
	RunVenta(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		ventaRepo repository.VentaRepository,
	) error) error
}

// UseCase registra ventas multi-línea contra el stock disponible de una
// sucursal. El descuento es todo-o-nada: si una sola línea no tiene stock
// suficiente, ninguna fila queda modificada.
type UseCase struct {
	txRunner      TxRunner
	ventaRepo     repository.VentaRepository
	productoRepo  repository.ProductoRepository
	ubicacionRepo repository.UbicacionRepository
}

// NewUseCase construye el registrador de ventas.
func NewUseCase(
	txRunner TxRunner,
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	ubicacionRepo repository.UbicacionRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		ventaRepo:     ventaRepo,
		productoRepo:  productoRepo,
		ubicacionRepo: ubicacionRepo,
	}
}

// Crear valida las líneas (fuera de la tx, solo lectura), toma la foto de
// precio vigente cuando falta, y dentro de una transacción descuenta cada
// (producto, sub-ubicación) con la fila bloqueada y persiste la venta con su
// total.
func (uc *UseCase) Crear(ctx context.Context, actor dto.Actor, in dto.VentaRequest) (*dto.VentaResponse, error) {
	if in.Sucursal == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !actor.EsAdmin() && !actor.PerteneceA(in.Sucursal) {
		return nil, domain.ErrForbidden
	}

	sucursal, err := uc.ubicacionRepo.GetByID(in.Sucursal)
	if err != nil {
		return nil, err
	}
	if sucursal == nil {
		return nil, domain.ErrNotFound
	}

	items := make([]*entity.VentaItem, 0, len(in.Items))
	total := decimal.Zero
	for _, line := range in.Items {
		if line.Producto == "" || line.SubUbicacionOrigen == "" || !line.Cantidad.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		// La sub-ubicación de origen debe pertenecer a la sucursal que vende.
		if sucursal.SubUbicacion(line.SubUbicacionOrigen) == nil {
			return nil, domain.ErrInvalidInput
		}
		producto, err := uc.productoRepo.GetByID(line.Producto)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			return nil, domain.ErrInvalidInput
		}
		precio := producto.PrecioVenta
		if line.PrecioVentaMomento != nil {
			if line.PrecioVentaMomento.LessThan(decimal.Zero) {
				return nil, domain.ErrInvalidInput
			}
			precio = *line.PrecioVentaMomento
		}
		item := &entity.VentaItem{
			ID:                 uuid.New().String(),
			ProductoID:         line.Producto,
			SubUbicacionOrigen: line.SubUbicacionOrigen,
			Cantidad:           line.Cantidad,
			PrecioVentaMomento: precio,
		}
		items = append(items, item)
		total = total.Add(item.Subtotal())
	}

	now := time.Now()
	venta := &entity.Venta{
		ID:         uuid.New().String(),
		Vendedor:   actor.UserID,
		SucursalID: in.Sucursal,
		Fecha:      now,
		Total:      total,
		Items:      items,
	}
	for _, it := range items {
		it.VentaID = venta.ID
	}

	// Dos líneas pueden vender desde la misma fila de stock; el descuento se
	// verifica y aplica por la suma agrupada, no línea por línea.
	descuentos := agruparPorStock(items)

	err = uc.txRunner.RunVenta(ctx, func(
		stockRepo repository.StockRepository,
		ventaRepo repository.VentaRepository,
	) error {
		// Bloquear y verificar todas las filas antes del primer descuento.
		stocks := make([]*entity.Stock, len(descuentos))
		for i, d := range descuentos {
			stock, err := stockRepo.GetForUpdate(d.productoID, d.subUbicacionID)
			if err != nil {
				return err
			}
			if stock.Cantidad.LessThan(d.cantidad) {
				return &domain.StockInsuficienteError{
					ProductoID:     d.productoID,
					SubUbicacionID: d.subUbicacionID,
					Solicitado:     d.cantidad,
					Disponible:     stock.Cantidad,
				}
			}
			stocks[i] = stock
		}
		for i, d := range descuentos {
			stocks[i].Cantidad = stocks[i].Cantidad.Sub(d.cantidad)
			stocks[i].UltimaActualizacion = now
			if err := stockRepo.Upsert(stocks[i]); err != nil {
				return err
			}
		}
		return ventaRepo.Create(venta)
	})
	if err != nil {
		return nil, err
	}
	return toResponse(venta), nil
}

// descuentoStock cantidad total a descontar de una misma fila de stock.
type descuentoStock struct {
	productoID     string
	subUbicacionID string
	cantidad       decimal.Decimal
}

// agruparPorStock suma las cantidades por (producto, sub-ubicación) en orden
// de aparición, para que las líneas repetidas se verifiquen y descuenten como
// un único movimiento.
func agruparPorStock(items []*entity.VentaItem) []*descuentoStock {
	idx := make(map[string]int, len(items))
	var out []*descuentoStock
	for _, it := range items {
		key := it.ProductoID + "|" + it.SubUbicacionOrigen
		if i, ok := idx[key]; ok {
			out[i].cantidad = out[i].cantidad.Add(it.Cantidad)
			continue
		}
		idx[key] = len(out)
		out = append(out, &descuentoStock{
			productoID:     it.ProductoID,
			subUbicacionID: it.SubUbicacionOrigen,
			cantidad:       it.Cantidad,
		})
	}
	return out
}

// List devuelve ventas filtradas. Los usuarios de sucursal solo ven las suyas.
func (uc *UseCase) List(ctx context.Context, actor dto.Actor, filter repository.VentaFilter) ([]dto.VentaResponse, error) {
	if !actor.EsAdmin() {
		if actor.SucursalID == nil {
			return nil, domain.ErrForbidden
		}
		filter.SucursalID = *actor.SucursalID
	}
	list, err := uc.ventaRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toResponse(v))
	}
	return out, nil
}

func toResponse(v *entity.Venta) *dto.VentaResponse {
	items := make([]dto.VentaItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, dto.VentaItemResponse{
			ID:                 it.ID,
			Producto:           it.ProductoID,
			SubUbicacionOrigen: it.SubUbicacionOrigen,
			Cantidad:           it.Cantidad,
			PrecioVentaMomento: it.PrecioVentaMomento,
		})
	}
	return &dto.VentaResponse{
		ID:       v.ID,
		Vendedor: v.Vendedor,
		Sucursal: v.SucursalID,
		Fecha:    v.Fecha,
		Total:    v.Total,
		Items:    items,
	}
}
