package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL
// (usable con pool o tx; la creación siempre corre atada a tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de persistencia para ventas.
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la venta con sus líneas.
func (r *VentaRepo) Create(v *entity.Venta) error {
	ctx := context.Background()
	query := `
		INSERT INTO ventas (id, vendedor, sucursal_id, fecha, total)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query, v.ID, v.Vendedor, v.SucursalID, v.Fecha, v.Total); err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	itemQuery := `
		INSERT INTO venta_items (id, venta_id, producto_id, sub_ubicacion_origen, cantidad, precio_venta_momento, orden)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, it := range v.Items {
		if _, err := r.q.Exec(ctx, itemQuery,
			it.ID, it.VentaID, it.ProductoID, it.SubUbicacionOrigen, it.Cantidad, it.PrecioVentaMomento, i,
		); err != nil {
			return fmt.Errorf("insert venta_item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la venta con sus líneas. Devuelve nil sin error si no existe.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	ctx := context.Background()
	var v entity.Venta
	err := r.q.QueryRow(ctx,
		`SELECT id, vendedor, sucursal_id, fecha, total FROM ventas WHERE id = $1`, id).
		Scan(&v.ID, &v.Vendedor, &v.SucursalID, &v.Fecha, &v.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	items, err := r.itemsDe(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Items = items
	return &v, nil
}

func (r *VentaRepo) itemsDe(ctx context.Context, ventaID string) ([]*entity.VentaItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, venta_id, producto_id, sub_ubicacion_origen, cantidad, precio_venta_momento
		FROM venta_items WHERE venta_id = $1 ORDER BY orden`, ventaID)
	if err != nil {
		return nil, fmt.Errorf("list venta_items: %w", err)
	}
	defer rows.Close()

	var items []*entity.VentaItem
	for rows.Next() {
		var it entity.VentaItem
		if err := rows.Scan(
			&it.ID, &it.VentaID, &it.ProductoID, &it.SubUbicacionOrigen, &it.Cantidad, &it.PrecioVentaMomento,
		); err != nil {
			return nil, fmt.Errorf("scan venta_item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// List lista ventas (más recientes primero) con filtros opcionales.
func (r *VentaRepo) List(filter repository.VentaFilter) ([]*entity.Venta, error) {
	ctx := context.Background()
	query := `SELECT id, vendedor, sucursal_id, fecha, total FROM ventas`
	var (
		args  []any
		where []string
	)
	if filter.SucursalID != "" {
		args = append(args, filter.SucursalID)
		where = append(where, "sucursal_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Desde != nil {
		args = append(args, *filter.Desde)
		where = append(where, "fecha >= $"+strconv.Itoa(len(args)))
	}
	if filter.Hasta != nil {
		args = append(args, *filter.Hasta)
		where = append(where, "fecha <= $"+strconv.Itoa(len(args)))
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " ORDER BY fecha DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.Vendedor, &v.SucursalID, &v.Fecha, &v.Total); err != nil {
			return nil, fmt.Errorf("list ventas scan: %w", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, v := range out {
		items, err := r.itemsDe(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		v.Items = items
	}
	return out, nil
}
