package repository

import "github.com/mvillagra/stock-sucursales/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para usuarios.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByUsername(username string) (*entity.Usuario, error)
	List(limit, offset int) ([]*entity.Usuario, error)
}
