package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock de un producto en una sub-ubicación. La fila ausente
// se devuelve como cantidad cero.
func (r *StockRepo) Get(productoID, subUbicacionID string) (*entity.Stock, error) {
	query := `
		SELECT producto_id, sub_ubicacion_id, cantidad, ultima_actualizacion
		FROM stock WHERE producto_id = $1 AND sub_ubicacion_id = $2`
	return r.scanOne(query, productoID, subUbicacionID, "get stock")
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE) para que
// la verificación de suficiencia y la escritura sean atómicas frente a
// escritores concurrentes. La fila se materializa con cantidad cero si nunca
// existió: sin fila no habría nada que bloquear y dos primeras recepciones
// concurrentes se pisarían la escritura.
func (r *StockRepo) GetForUpdate(productoID, subUbicacionID string) (*entity.Stock, error) {
	insert := `
		INSERT INTO stock (producto_id, sub_ubicacion_id, cantidad, ultima_actualizacion)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (producto_id, sub_ubicacion_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, productoID, subUbicacionID); err != nil {
		return nil, fmt.Errorf("ensure stock row: %w", err)
	}
	query := `
		SELECT producto_id, sub_ubicacion_id, cantidad, ultima_actualizacion
		FROM stock WHERE producto_id = $1 AND sub_ubicacion_id = $2
		FOR UPDATE`
	return r.scanOne(query, productoID, subUbicacionID, "get stock for update")
}

func (r *StockRepo) scanOne(query, productoID, subUbicacionID, op string) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productoID, subUbicacionID).Scan(
		&s.ProductoID, &s.SubUbicacionID, &s.Cantidad, &s.UltimaActualizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductoID: productoID, SubUbicacionID: subUbicacionID, Cantidad: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y sub-ubicación).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (producto_id, sub_ubicacion_id, cantidad, ultima_actualizacion)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (producto_id, sub_ubicacion_id)
		DO UPDATE SET cantidad = EXCLUDED.cantidad, ultima_actualizacion = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductoID, stock.SubUbicacionID, stock.Cantidad)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// List devuelve filas de stock con nombres de producto y ubicación resueltos,
// aplicando los filtros presentes.
func (r *StockRepo) List(filter repository.StockFilter) ([]*repository.StockListado, error) {
	query := `
		SELECT s.producto_id, p.nombre, p.tipo_conservacion,
		       s.sub_ubicacion_id, su.nombre, su.tipo,
		       u.id, u.nombre,
		       s.cantidad, s.ultima_actualizacion
		FROM stock s
		JOIN productos p        ON p.id = s.producto_id
		JOIN sub_ubicaciones su ON su.id = s.sub_ubicacion_id
		JOIN ubicaciones u      ON u.id = su.ubicacion_id`
	var (
		args  []any
		where []string
	)
	add := func(cond string, val any) {
		args = append(args, val)
		where = append(where, cond+"$"+strconv.Itoa(len(args)))
	}
	if filter.UbicacionID != "" {
		add("u.id = ", filter.UbicacionID)
	}
	if filter.SubUbicacionID != "" {
		add("su.id = ", filter.SubUbicacionID)
	}
	if filter.ProductoID != "" {
		add("s.producto_id = ", filter.ProductoID)
	}
	if filter.SoloConStock {
		where = append(where, "s.cantidad > 0")
	}
	for i, w := range where {
		if i == 0 {
			query += "\n\t\tWHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += "\n\t\tORDER BY u.nombre, su.orden, p.nombre"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var out []*repository.StockListado
	for rows.Next() {
		var row repository.StockListado
		if err := rows.Scan(
			&row.ProductoID, &row.ProductoNombre, &row.ProductoTipoConservacion,
			&row.SubUbicacionID, &row.SubUbicacionNombre, &row.SubUbicacionTipo,
			&row.UbicacionID, &row.UbicacionNombre,
			&row.Cantidad, &row.UltimaActualizacion,
		); err != nil {
			return nil, fmt.Errorf("list stock scan: %w", err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}
