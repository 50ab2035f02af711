package dto

// SubUbicacionRequest sub-ubicación dentro de un alta/modificación de ubicación.
// ID vacío crea una nueva; con ID modifica la existente.
type SubUbicacionRequest struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Tipo   string `json:"tipo"`
}

// UbicacionRequest alta/modificación de una sucursal o almacén con sus
// sub-ubicaciones.
type UbicacionRequest struct {
	Nombre         string                `json:"nombre"`
	Tipo           string                `json:"tipo"`
	SubUbicaciones []SubUbicacionRequest `json:"sub_ubicaciones"`
}

// SubUbicacionResponse sub-ubicación.
type SubUbicacionResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Tipo   string `json:"tipo"`
}

// UbicacionResponse ubicación con sub-ubicaciones anidadas.
type UbicacionResponse struct {
	ID             string                 `json:"id"`
	Nombre         string                 `json:"nombre"`
	Tipo           string                 `json:"tipo"`
	SubUbicaciones []SubUbicacionResponse `json:"sub_ubicaciones"`
}
