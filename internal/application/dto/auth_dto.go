package dto

import "time"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token de acceso más los datos que el cliente usa para
// acotar sus llamadas (rol y sucursal).
type LoginResponse struct {
	Access   string  `json:"access"`
	Rol      string  `json:"rol"`
	Sucursal *string `json:"sucursal"`
	Username string  `json:"username"`
}

// RegisterUsuarioRequest alta de usuario (solo admin).
type RegisterUsuarioRequest struct {
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	Rol        string  `json:"rol"`
	SucursalID *string `json:"sucursal"`
}

// UsuarioResponse usuario sin datos sensibles.
type UsuarioResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Rol        string    `json:"rol"`
	SucursalID *string   `json:"sucursal"`
	CreatedAt  time.Time `json:"created_at"`
}
