package postgres

import (
	"context"
	"fmt"

	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas de solo lectura para el reporte económico.
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador de reportes.
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// PorSucursal agrega, por ubicación, los ingresos por ventas y los gastos por
// pedidos que afectaron stock (aprobados desde almacén o recibidos), dentro
// del rango de fechas si se indica. Gastos = Σ cantidad × precio_costo_momento.
func (r *ReporteRepo) PorSucursal(ctx context.Context, filter repository.ReporteFilter) ([]repository.ReporteSucursalResult, error) {
	query := `
	SELECT
	    u.id,
	    u.nombre,
	    COALESCE(v.total_ventas, 0) AS total_ventas,
	    COALESCE(g.total_gastos, 0) AS total_gastos
	FROM ubicaciones u
	LEFT JOIN (
	    SELECT sucursal_id, SUM(total) AS total_ventas
	    FROM ventas
	    WHERE ($2::timestamptz IS NULL OR fecha >= $2)
	      AND ($3::timestamptz IS NULL OR fecha <= $3)
	    GROUP BY sucursal_id
	) v ON v.sucursal_id = u.id
	LEFT JOIN (
	    SELECT p.destino_id, SUM(i.cantidad * i.precio_costo_momento) AS total_gastos
	    FROM pedidos p
	    JOIN pedido_items i ON i.pedido_id = p.id
	    WHERE (p.estado = 'recibido' OR (p.estado = 'aprobado' AND p.provisto_desde_almacen))
	      AND ($2::timestamptz IS NULL OR p.fecha_creacion >= $2)
	      AND ($3::timestamptz IS NULL OR p.fecha_creacion <= $3)
	    GROUP BY p.destino_id
	) g ON g.destino_id = u.id
	WHERE ($1::text IS NULL OR u.id = $1)`

	var sucursal *string
	if filter.SucursalID != "" {
		sucursal = &filter.SucursalID
	}
	args := []any{sucursal, filter.Desde, filter.Hasta}

	// Sin filtro de sucursal no se listan ubicaciones sin movimiento.
	if sucursal == nil {
		query += "\n\t  AND (v.total_ventas IS NOT NULL OR g.total_gastos IS NOT NULL)"
	}
	query += "\n\tORDER BY u.nombre"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reporte por sucursal: %w", err)
	}
	defer rows.Close()

	var out []repository.ReporteSucursalResult
	for rows.Next() {
		var row repository.ReporteSucursalResult
		if err := rows.Scan(&row.SucursalID, &row.SucursalNombre, &row.TotalVentas, &row.TotalGastos); err != nil {
			return nil, fmt.Errorf("reporte por sucursal scan: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
