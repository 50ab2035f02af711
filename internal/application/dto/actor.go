package dto

import "github.com/mvillagra/stock-sucursales/internal/domain/entity"

// Actor identidad autenticada que ejecuta una operación (extraída del JWT).
// Los casos de uso verifican permisos contra el actor: la capa HTTP sola no
// alcanza como barrera.
type Actor struct {
	UserID     string
	Rol        string
	SucursalID *string
}

// EsAdmin indica si el actor tiene rol admin.
func (a Actor) EsAdmin() bool { return a.Rol == entity.RolAdmin }

// PerteneceA indica si el actor es un usuario de la sucursal dada.
func (a Actor) PerteneceA(ubicacionID string) bool {
	return a.Rol == entity.RolSucursal && a.SucursalID != nil && *a.SucursalID == ubicacionID
}
