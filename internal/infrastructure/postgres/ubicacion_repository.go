package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mvillagra/stock-sucursales/internal/domain"
	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

var _ repository.UbicacionRepository = (*UbicacionRepo)(nil)

// UbicacionRepo implementación del puerto UbicacionRepository sobre PostgreSQL.
type UbicacionRepo struct {
	q Querier
}

// NewUbicacionRepository construye el adaptador de persistencia para ubicaciones.
func NewUbicacionRepository(q Querier) *UbicacionRepo {
	return &UbicacionRepo{q: q}
}

// Create persiste una ubicación con sus sub-ubicaciones.
func (r *UbicacionRepo) Create(u *entity.Ubicacion) error {
	ctx := context.Background()
	query := `INSERT INTO ubicaciones (id, nombre, tipo, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query, u.ID, u.Nombre, u.Tipo, u.CreatedAt, u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ubicacion: %w", err)
	}
	for _, s := range u.SubUbicaciones {
		if err := r.insertSub(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *UbicacionRepo) insertSub(ctx context.Context, s *entity.SubUbicacion) error {
	query := `INSERT INTO sub_ubicaciones (id, ubicacion_id, nombre, tipo, orden) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query, s.ID, s.UbicacionID, s.Nombre, s.Tipo, s.Orden); err != nil {
		return fmt.Errorf("insert sub_ubicacion: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación con sus sub-ubicaciones. Devuelve nil sin
// error si no existe.
func (r *UbicacionRepo) GetByID(id string) (*entity.Ubicacion, error) {
	ctx := context.Background()
	query := `SELECT id, nombre, tipo, created_at, updated_at FROM ubicaciones WHERE id = $1`
	var u entity.Ubicacion
	err := r.q.QueryRow(ctx, query, id).Scan(&u.ID, &u.Nombre, &u.Tipo, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ubicacion: %w", err)
	}
	subs, err := r.subsDe(ctx, id)
	if err != nil {
		return nil, err
	}
	u.SubUbicaciones = subs
	return &u, nil
}

func (r *UbicacionRepo) subsDe(ctx context.Context, ubicacionID string) ([]*entity.SubUbicacion, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, ubicacion_id, nombre, tipo, orden FROM sub_ubicaciones WHERE ubicacion_id = $1 ORDER BY orden`,
		ubicacionID)
	if err != nil {
		return nil, fmt.Errorf("list sub_ubicaciones: %w", err)
	}
	defer rows.Close()

	var subs []*entity.SubUbicacion
	for rows.Next() {
		var s entity.SubUbicacion
		if err := rows.Scan(&s.ID, &s.UbicacionID, &s.Nombre, &s.Tipo, &s.Orden); err != nil {
			return nil, fmt.Errorf("scan sub_ubicacion: %w", err)
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// Update actualiza la ubicación y reconcilia el conjunto de sub-ubicaciones:
// upsert de las presentes y eliminación de las ausentes (bloqueada por FK si
// tienen stock o movimientos).
func (r *UbicacionRepo) Update(u *entity.Ubicacion) error {
	ctx := context.Background()
	query := `UPDATE ubicaciones SET nombre = $2, tipo = $3, updated_at = $4 WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, u.ID, u.Nombre, u.Tipo, u.UpdatedAt); err != nil {
		return fmt.Errorf("update ubicacion: %w", err)
	}

	existentes, err := r.subsDe(ctx, u.ID)
	if err != nil {
		return err
	}
	keep := make(map[string]bool, len(u.SubUbicaciones))
	for _, s := range u.SubUbicaciones {
		keep[s.ID] = true
		upsert := `
			INSERT INTO sub_ubicaciones (id, ubicacion_id, nombre, tipo, orden)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET nombre = EXCLUDED.nombre, tipo = EXCLUDED.tipo, orden = EXCLUDED.orden`
		if _, err := r.q.Exec(ctx, upsert, s.ID, s.UbicacionID, s.Nombre, s.Tipo, s.Orden); err != nil {
			return fmt.Errorf("upsert sub_ubicacion: %w", err)
		}
	}
	for _, s := range existentes {
		if keep[s.ID] {
			continue
		}
		if _, err := r.q.Exec(ctx, `DELETE FROM sub_ubicaciones WHERE id = $1`, s.ID); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrHasReferences
			}
			return fmt.Errorf("delete sub_ubicacion: %w", err)
		}
	}
	return nil
}

// Delete elimina una ubicación; las FK bloquean si tiene stock o movimientos.
func (r *UbicacionRepo) Delete(id string) error {
	ctx := context.Background()
	// Las sub-ubicaciones sin referencias caen primero; cualquier FK restante bloquea.
	if _, err := r.q.Exec(ctx, `DELETE FROM sub_ubicaciones WHERE ubicacion_id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasReferences
		}
		return fmt.Errorf("delete sub_ubicaciones: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM ubicaciones WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasReferences
		}
		return fmt.Errorf("delete ubicacion: %w", err)
	}
	return nil
}

// List devuelve todas las ubicaciones con sub-ubicaciones anidadas.
func (r *UbicacionRepo) List() ([]*entity.Ubicacion, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `SELECT id, nombre, tipo, created_at, updated_at FROM ubicaciones ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list ubicaciones: %w", err)
	}
	defer rows.Close()

	var out []*entity.Ubicacion
	for rows.Next() {
		var u entity.Ubicacion
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Tipo, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list ubicaciones scan: %w", err)
		}
		out = append(out, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, u := range out {
		subs, err := r.subsDe(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		u.SubUbicaciones = subs
	}
	return out, nil
}

// GetSubUbicacion busca una sub-ubicación por ID. Devuelve nil sin error si no existe.
func (r *UbicacionRepo) GetSubUbicacion(id string) (*entity.SubUbicacion, error) {
	var s entity.SubUbicacion
	err := r.q.QueryRow(context.Background(),
		`SELECT id, ubicacion_id, nombre, tipo, orden FROM sub_ubicaciones WHERE id = $1`, id).
		Scan(&s.ID, &s.UbicacionID, &s.Nombre, &s.Tipo, &s.Orden)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sub_ubicacion: %w", err)
	}
	return &s, nil
}
