package pedidos

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

// UseCase es el motor del ciclo de vida de los pedidos: creación, envío a
// revisión, aprobación (con o sin aprovisionamiento desde el almacén central),
// rechazo y recepción. Las transiciones que mueven stock se ejecutan dentro de
// una transacción con bloqueo de filas (TxRunner + SELECT FOR UPDATE) y nunca
// se aplican parcialmente: se valida la lista completa de líneas antes de
// tocar la primera fila de stock.
type UseCase struct {
	txRunner      TxRunner
	pedidoRepo    repository.PedidoRepository
	productoRepo  repository.ProductoRepository
	ubicacionRepo repository.UbicacionRepository
}

// NewUseCase construye el motor de pedidos.
func NewUseCase(
	txRunner TxRunner,
	pedidoRepo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
	ubicacionRepo repository.UbicacionRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		pedidoRepo:    pedidoRepo,
		productoRepo:  productoRepo,
		ubicacionRepo: ubicacionRepo,
	}
}

// Crear da de alta un pedido en borrador. Cada línea toma una foto del costo
// vigente del catálogo salvo que el caller la provea. Un usuario de sucursal
// solo puede crear pedidos con destino a su propia sucursal.
func (uc *UseCase) Crear(ctx context.Context, actor dto.Actor, in dto.PedidoRequest) (*dto.PedidoResponse, error) {
	if !actor.EsAdmin() && !actor.PerteneceA(in.Destino) {
		return nil, domain.ErrForbidden
	}

	destino, err := uc.ubicacionRepo.GetByID(in.Destino)
	if err != nil {
		return nil, err
	}
	if destino == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	p := &entity.Pedido{
		ID:            uuid.New().String(),
		CreadoPor:     actor.UserID,
		DestinoID:     in.Destino,
		Estado:        entity.PedidoBorrador,
		FechaCreacion: time.Now(),
		Items:         items,
	}
	for _, it := range items {
		it.PedidoID = p.ID
	}
	if err := uc.pedidoRepo.Create(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p)
}

// buildItems valida las líneas del request y resuelve la foto de costo.
func (uc *UseCase) buildItems(in []dto.PedidoItemRequest) ([]*entity.PedidoItem, error) {
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]*entity.PedidoItem, 0, len(in))
	for _, line := range in {
		if line.Producto == "" || !line.Cantidad.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		producto, err := uc.productoRepo.GetByID(line.Producto)
		if err != nil {
			return nil, err
		}
		if producto == nil {
			return nil, domain.ErrInvalidInput
		}
		costo := producto.CostoCompra
		if line.PrecioCostoMomento != nil {
			if line.PrecioCostoMomento.LessThan(decimal.Zero) {
				return nil, domain.ErrInvalidInput
			}
			costo = *line.PrecioCostoMomento
		}
		items = append(items, &entity.PedidoItem{
			ID:                 uuid.New().String(),
			ProductoID:         line.Producto,
			Cantidad:           line.Cantidad,
			PrecioCostoMomento: costo,
		})
	}
	return items, nil
}

// Actualizar reemplaza destino e items de un pedido en borrador.
func (uc *UseCase) Actualizar(ctx context.Context, actor dto.Actor, id string, in dto.PedidoRequest) (*dto.PedidoResponse, error) {
	p, err := uc.getOwned(actor, id)
	if err != nil {
		return nil, err
	}
	if p.Estado != entity.PedidoBorrador {
		return nil, domain.ErrInvalidState
	}
	if !actor.EsAdmin() && !actor.PerteneceA(in.Destino) {
		return nil, domain.ErrForbidden
	}
	destino, err := uc.ubicacionRepo.GetByID(in.Destino)
	if err != nil {
		return nil, err
	}
	if destino == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	p.DestinoID = in.Destino
	p.Items = items
	for _, it := range items {
		it.PedidoID = p.ID
	}
	if err := uc.pedidoRepo.ReplaceBorrador(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p)
}

// Eliminar cancela un pedido en borrador eliminándolo.
func (uc *UseCase) Eliminar(ctx context.Context, actor dto.Actor, id string) error {
	p, err := uc.getOwned(actor, id)
	if err != nil {
		return err
	}
	if p.Estado != entity.PedidoBorrador {
		return domain.ErrInvalidState
	}
	return uc.pedidoRepo.Delete(id)
}

// EnviarARevision pasa el pedido de borrador a pendiente.
func (uc *UseCase) EnviarARevision(ctx context.Context, actor dto.Actor, id string) error {
	p, err := uc.getOwned(actor, id)
	if err != nil {
		return err
	}
	if !entity.TransicionPedidoValida(p.Estado, entity.PedidoPendiente) {
		return domain.ErrInvalidState
	}
	return uc.pedidoRepo.UpdateEstado(id, entity.PedidoBorrador, entity.PedidoPendiente)
}

// Rechazar pasa el pedido de pendiente a rechazado, sin efecto sobre el stock.
func (uc *UseCase) Rechazar(ctx context.Context, actor dto.Actor, id string) error {
	if !actor.EsAdmin() {
		return domain.ErrForbidden
	}
	p, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if !entity.TransicionPedidoValida(p.Estado, entity.PedidoRechazado) {
		return domain.ErrInvalidState
	}
	return uc.pedidoRepo.UpdateEstado(id, entity.PedidoPendiente, entity.PedidoRechazado)
}

// Aprobar pasa el pedido de pendiente a aprobado. Con provisto_desde_almacen
// el caller asigna a cada línea una sub-ubicación de origen en un almacén; se
// verifica tipo de conservación y suficiencia de stock para TODAS las líneas
// (con las filas ya bloqueadas) antes de descontar la primera. Cualquier
// faltante aborta la aprobación completa.
func (uc *UseCase) Aprobar(ctx context.Context, actor dto.Actor, id string, in dto.AprobarPedidoRequest) error {
	if !actor.EsAdmin() {
		return domain.ErrForbidden
	}
	p, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if !entity.TransicionPedidoValida(p.Estado, entity.PedidoAprobado) {
		return domain.ErrInvalidState
	}

	if !in.ProvistoDesdeAlmacen {
		return uc.txRunner.Run(ctx, func(
			_ repository.StockRepository,
			pedidoRepo repository.PedidoRepository,
		) error {
			if err := pedidoRepo.UpdateEstado(id, entity.PedidoPendiente, entity.PedidoAprobado); err != nil {
				return err
			}
			return pedidoRepo.SetProvistoDesdeAlmacen(id, false)
		})
	}

	// Origen por línea: todas las líneas del pedido necesitan asignación.
	origenes := make(map[string]string, len(in.Items))
	for _, a := range in.Items {
		origenes[a.ID] = a.SubUbicacionOrigen
	}
	for _, item := range p.Items {
		origenID, ok := origenes[item.ID]
		if !ok || origenID == "" {
			return domain.ErrInvalidInput
		}
		if err := uc.validarSubUbicacion(origenID, item.ProductoID, entity.UbicacionAlmacen); err != nil {
			return err
		}
	}

	// Dos líneas del pedido pueden salir de la misma fila de stock; la
	// suficiencia se verifica contra la suma, no línea por línea.
	necesidades := agruparPorStock(p.Items, origenes)

	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		pedidoRepo repository.PedidoRepository,
	) error {
		// La transición condicional va primero: bloquea la fila del pedido y
		// descarta aprobaciones concurrentes antes de tocar stock.
		if err := pedidoRepo.UpdateEstado(id, entity.PedidoPendiente, entity.PedidoAprobado); err != nil {
			return err
		}
		// Primera pasada: bloquear todas las filas y verificar suficiencia.
		stocks := make([]*entity.Stock, len(necesidades))
		for i, n := range necesidades {
			stock, err := stockRepo.GetForUpdate(n.productoID, n.subUbicacionID)
			if err != nil {
				return err
			}
			if stock.Cantidad.LessThan(n.cantidad) {
				return &domain.StockInsuficienteError{
					ProductoID:     n.productoID,
					SubUbicacionID: n.subUbicacionID,
					Solicitado:     n.cantidad,
					Disponible:     stock.Cantidad,
				}
			}
			stocks[i] = stock
		}
		// Segunda pasada: un solo descuento por fila de stock.
		now := time.Now()
		for i, n := range necesidades {
			stocks[i].Cantidad = stocks[i].Cantidad.Sub(n.cantidad)
			stocks[i].UltimaActualizacion = now
			if err := stockRepo.Upsert(stocks[i]); err != nil {
				return err
			}
		}
		for _, item := range p.Items {
			if err := pedidoRepo.SetItemOrigen(item.ID, origenes[item.ID]); err != nil {
				return err
			}
		}
		return pedidoRepo.SetProvistoDesdeAlmacen(id, true)
	})
}

// necesidadStock cantidad total requerida sobre una misma fila de stock.
type necesidadStock struct {
	productoID     string
	subUbicacionID string
	cantidad       decimal.Decimal
}

// agruparPorStock suma las cantidades por (producto, sub-ubicación) en orden
// de aparición, para que las líneas repetidas se verifiquen y descuenten como
// un único movimiento.
func agruparPorStock(items []*entity.PedidoItem, subPorItem map[string]string) []*necesidadStock {
	idx := make(map[string]int, len(items))
	var out []*necesidadStock
	for _, it := range items {
		key := it.ProductoID + "|" + subPorItem[it.ID]
		if i, ok := idx[key]; ok {
			out[i].cantidad = out[i].cantidad.Add(it.Cantidad)
			continue
		}
		idx[key] = len(out)
		out = append(out, &necesidadStock{
			productoID:     it.ProductoID,
			subUbicacionID: subPorItem[it.ID],
			cantidad:       it.Cantidad,
		})
	}
	return out
}

// Recibir pasa el pedido de aprobado a recibido. Cada línea necesita una
// sub-ubicación de destino perteneciente al destino del pedido; recién con la
// lista completa validada se incrementa el stock (la mercadería ya llegó, por
// lo que no existe modo de falla por insuficiencia).
func (uc *UseCase) Recibir(ctx context.Context, actor dto.Actor, id string, in dto.RecibirPedidoRequest) error {
	p, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}

	destino, err := uc.ubicacionRepo.GetByID(p.DestinoID)
	if err != nil {
		return err
	}
	if destino == nil {
		return domain.ErrNotFound
	}
	// Recibe el usuario de la sucursal destino; los pedidos con destino al
	// almacén los recibe un admin.
	if actor.EsAdmin() {
		if !destino.EsAlmacen() {
			return domain.ErrForbidden
		}
	} else if !actor.PerteneceA(p.DestinoID) {
		return domain.ErrForbidden
	}
	if !entity.TransicionPedidoValida(p.Estado, entity.PedidoRecibido) {
		return domain.ErrInvalidState
	}

	destinos := make(map[string]string, len(in.Items))
	for _, r := range in.Items {
		destinos[r.ID] = r.SubUbicacionDestino
	}
	for _, item := range p.Items {
		destinoSubID, ok := destinos[item.ID]
		if !ok || destinoSubID == "" {
			return domain.ErrInvalidInput
		}
		sub := destino.SubUbicacion(destinoSubID)
		if sub == nil {
			return domain.ErrInvalidInput
		}
		if err := uc.validarTipoConservacion(sub, item.ProductoID); err != nil {
			return err
		}
	}

	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		pedidoRepo repository.PedidoRepository,
	) error {
		// Transición condicional primero: dos recepciones concurrentes del
		// mismo pedido no pueden sumar el stock dos veces.
		if err := pedidoRepo.UpdateEstado(id, entity.PedidoAprobado, entity.PedidoRecibido); err != nil {
			return err
		}
		now := time.Now()
		for _, item := range p.Items {
			stock, err := stockRepo.GetForUpdate(item.ProductoID, destinos[item.ID])
			if err != nil {
				return err
			}
			stock.Cantidad = stock.Cantidad.Add(item.Cantidad)
			stock.UltimaActualizacion = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
			if err := pedidoRepo.SetItemDestino(item.ID, destinos[item.ID]); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID devuelve el pedido con sus líneas. Los usuarios de sucursal solo
// ven pedidos con destino a su sucursal.
func (uc *UseCase) GetByID(ctx context.Context, actor dto.Actor, id string) (*dto.PedidoResponse, error) {
	p, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.EsAdmin() && !actor.PerteneceA(p.DestinoID) {
		return nil, domain.ErrForbidden
	}
	return uc.toResponse(p)
}

// List devuelve los pedidos visibles para el actor (todos para admin, los de
// su sucursal para usuarios de sucursal).
func (uc *UseCase) List(ctx context.Context, actor dto.Actor) ([]dto.PedidoResponse, error) {
	filter := repository.PedidoFilter{}
	if !actor.EsAdmin() {
		if actor.SucursalID == nil {
			return nil, domain.ErrForbidden
		}
		filter.DestinoID = *actor.SucursalID
	}
	list, err := uc.pedidoRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		resp, err := uc.toResponse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// getOwned carga el pedido y verifica que el actor sea su creador (o admin).
func (uc *UseCase) getOwned(actor dto.Actor, id string) (*entity.Pedido, error) {
	p, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.EsAdmin() && p.CreadoPor != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// validarSubUbicacion verifica que la sub-ubicación exista, pertenezca a una
// ubicación del tipo esperado y coincida con la conservación del producto.
func (uc *UseCase) validarSubUbicacion(subID, productoID, tipoUbicacion string) error {
	sub, err := uc.ubicacionRepo.GetSubUbicacion(subID)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrInvalidInput
	}
	ubicacion, err := uc.ubicacionRepo.GetByID(sub.UbicacionID)
	if err != nil {
		return err
	}
	if ubicacion == nil || ubicacion.Tipo != tipoUbicacion {
		return domain.ErrInvalidInput
	}
	return uc.validarTipoConservacion(sub, productoID)
}

// validarTipoConservacion exige que el tipo de la sub-ubicación coincida con
// el tipo de conservación del producto (un freezer no recibe productos de
// ambiente ni viceversa).
func (uc *UseCase) validarTipoConservacion(sub *entity.SubUbicacion, productoID string) error {
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	if sub.Tipo != producto.TipoConservacion {
		return domain.ErrTipoConservacion
	}
	return nil
}

// toResponse arma la respuesta resolviendo nombres de producto y destino.
func (uc *UseCase) toResponse(p *entity.Pedido) (*dto.PedidoResponse, error) {
	destinoNombre := ""
	if destino, err := uc.ubicacionRepo.GetByID(p.DestinoID); err != nil {
		return nil, err
	} else if destino != nil {
		destinoNombre = destino.Nombre
	}
	items := make([]dto.PedidoItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		nombre := ""
		if producto, err := uc.productoRepo.GetByID(it.ProductoID); err != nil {
			return nil, err
		} else if producto != nil {
			nombre = producto.Nombre
		}
		items = append(items, dto.PedidoItemResponse{
			ID:                  it.ID,
			Producto:            it.ProductoID,
			ProductoNombre:      nombre,
			Cantidad:            it.Cantidad,
			PrecioCostoMomento:  it.PrecioCostoMomento,
			SubUbicacionOrigen:  it.SubUbicacionOrigen,
			SubUbicacionDestino: it.SubUbicacionDestino,
		})
	}
	return &dto.PedidoResponse{
		ID:                   p.ID,
		CreadoPor:            p.CreadoPor,
		Destino:              p.DestinoID,
		DestinoNombre:        destinoNombre,
		Estado:               p.Estado,
		ProvistoDesdeAlmacen: p.ProvistoDesdeAlmacen,
		FechaCreacion:        p.FechaCreacion,
		Items:                items,
	}, nil
}
