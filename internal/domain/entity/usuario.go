package entity

import "time"

// Roles de usuario.
const (
	RolAdmin    = "admin"
	RolSucursal = "sucursal"
)

// Usuario de la aplicación. Los usuarios de rol sucursal quedan atados a una
// ubicación; los admin operan sobre todas.
type Usuario struct {
	ID           string
	Username     string
	PasswordHash string
	Rol          string  // admin | sucursal
	SucursalID   *string // obligatorio para rol sucursal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
