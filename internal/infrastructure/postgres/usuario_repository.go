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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

const usuarioCols = `id, username, password_hash, rol, sucursal_id, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `INSERT INTO usuarios (` + usuarioCols + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Username, u.PasswordHash, u.Rol, u.SucursalID, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve nil sin error si no existe.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.getBy(`SELECT `+usuarioCols+` FROM usuarios WHERE id = $1`, id)
}

// FindByUsername busca por nombre de usuario. Devuelve nil sin error si no existe.
func (r *UsuarioRepo) FindByUsername(username string) (*entity.Usuario, error) {
	return r.getBy(`SELECT `+usuarioCols+` FROM usuarios WHERE username = $1`, username)
}

func (r *UsuarioRepo) getBy(query, arg string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Rol, &u.SucursalID, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// List lista usuarios con paginación.
func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+usuarioCols+` FROM usuarios ORDER BY username LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var out []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.ID, &u.Username, &u.PasswordHash, &u.Rol, &u.SucursalID, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("list usuarios scan: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}
