package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/mvillagra/stock-sucursales/internal/domain"
	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL
// (usable con pool o tx; las transiciones que mueven stock la usan atada a tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos.
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste el pedido con sus líneas.
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	ctx := context.Background()
	query := `
		INSERT INTO pedidos (id, creado_por, destino_id, estado, provisto_desde_almacen, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query,
		p.ID, p.CreadoPor, p.DestinoID, p.Estado, p.ProvistoDesdeAlmacen, p.FechaCreacion,
	); err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return r.insertItems(ctx, p.Items)
}

func (r *PedidoRepo) insertItems(ctx context.Context, items []*entity.PedidoItem) error {
	query := `
		INSERT INTO pedido_items (id, pedido_id, producto_id, cantidad, precio_costo_momento, sub_ubicacion_origen, sub_ubicacion_destino, orden)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, it := range items {
		if _, err := r.q.Exec(ctx, query,
			it.ID, it.PedidoID, it.ProductoID, it.Cantidad, it.PrecioCostoMomento,
			it.SubUbicacionOrigen, it.SubUbicacionDestino, i,
		); err != nil {
			return fmt.Errorf("insert pedido_item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene el pedido con sus líneas en el orden almacenado. Devuelve
// nil sin error si no existe.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	ctx := context.Background()
	query := `
		SELECT id, creado_por, destino_id, estado, provisto_desde_almacen, fecha_creacion
		FROM pedidos WHERE id = $1`
	var p entity.Pedido
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CreadoPor, &p.DestinoID, &p.Estado, &p.ProvistoDesdeAlmacen, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	items, err := r.itemsDe(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return &p, nil
}

func (r *PedidoRepo) itemsDe(ctx context.Context, pedidoID string) ([]*entity.PedidoItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, pedido_id, producto_id, cantidad, precio_costo_momento, sub_ubicacion_origen, sub_ubicacion_destino
		FROM pedido_items WHERE pedido_id = $1 ORDER BY orden`, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list pedido_items: %w", err)
	}
	defer rows.Close()

	var items []*entity.PedidoItem
	for rows.Next() {
		var it entity.PedidoItem
		if err := rows.Scan(
			&it.ID, &it.PedidoID, &it.ProductoID, &it.Cantidad, &it.PrecioCostoMomento,
			&it.SubUbicacionOrigen, &it.SubUbicacionDestino,
		); err != nil {
			return nil, fmt.Errorf("scan pedido_item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// List lista pedidos (más recientes primero) con sus líneas.
func (r *PedidoRepo) List(filter repository.PedidoFilter) ([]*entity.Pedido, error) {
	ctx := context.Background()
	query := `
		SELECT id, creado_por, destino_id, estado, provisto_desde_almacen, fecha_creacion
		FROM pedidos`
	var (
		args  []any
		where []string
	)
	if filter.DestinoID != "" {
		args = append(args, filter.DestinoID)
		where = append(where, "destino_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Estado != "" {
		args = append(args, filter.Estado)
		where = append(where, "estado = $"+strconv.Itoa(len(args)))
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " ORDER BY fecha_creacion DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()

	var out []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(
			&p.ID, &p.CreadoPor, &p.DestinoID, &p.Estado, &p.ProvistoDesdeAlmacen, &p.FechaCreacion,
		); err != nil {
			return nil, fmt.Errorf("list pedidos scan: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range out {
		items, err := r.itemsDe(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Items = items
	}
	return out, nil
}

// ReplaceBorrador reemplaza destino e items de un pedido en borrador.
func (r *PedidoRepo) ReplaceBorrador(p *entity.Pedido) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `UPDATE pedidos SET destino_id = $2 WHERE id = $1`, p.ID, p.DestinoID); err != nil {
		return fmt.Errorf("update pedido destino: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM pedido_items WHERE pedido_id = $1`, p.ID); err != nil {
		return fmt.Errorf("delete pedido_items: %w", err)
	}
	return r.insertItems(ctx, p.Items)
}

// Delete elimina el pedido y sus líneas (cancelación de borrador).
func (r *PedidoRepo) Delete(id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM pedido_items WHERE pedido_id = $1`, id); err != nil {
		return fmt.Errorf("delete pedido_items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM pedidos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	return nil
}

// UpdateEstado cambia el estado del pedido solo si el estado actual sigue
// siendo `desde` (compare-and-swap). Cero filas afectadas significa que otro
// escritor ganó la transición.
func (r *PedidoRepo) UpdateEstado(id, desde, hacia string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET estado = $3 WHERE id = $1 AND estado = $2`, id, desde, hacia)
	if err != nil {
		return fmt.Errorf("update pedido estado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidState
	}
	return nil
}

// SetProvistoDesdeAlmacen fija el origen del aprovisionamiento al aprobar.
func (r *PedidoRepo) SetProvistoDesdeAlmacen(id string, provisto bool) error {
	if _, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET provisto_desde_almacen = $2 WHERE id = $1`, id, provisto); err != nil {
		return fmt.Errorf("update pedido provisto: %w", err)
	}
	return nil
}

// SetItemOrigen registra la sub-ubicación de origen de una línea.
func (r *PedidoRepo) SetItemOrigen(itemID, subUbicacionID string) error {
	if _, err := r.q.Exec(context.Background(),
		`UPDATE pedido_items SET sub_ubicacion_origen = $2 WHERE id = $1`, itemID, subUbicacionID); err != nil {
		return fmt.Errorf("update pedido_item origen: %w", err)
	}
	return nil
}

// SetItemDestino registra la sub-ubicación de destino de una línea.
func (r *PedidoRepo) SetItemDestino(itemID, subUbicacionID string) error {
	if _, err := r.q.Exec(context.Background(),
		`UPDATE pedido_items SET sub_ubicacion_destino = $2 WHERE id = $1`, itemID, subUbicacionID); err != nil {
		return fmt.Errorf("update pedido_item destino: %w", err)
	}
	return nil
}
