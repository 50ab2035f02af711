package entity

import "time"

// Tipos de ubicación.
const (
	UbicacionSucursal = "sucursal"
	UbicacionAlmacen  = "almacen"
)

// Ubicacion es una sucursal o un almacén central. Es dueña de sus sub-ubicaciones;
// una sub-ubicación nunca se comparte entre ubicaciones.
type Ubicacion struct {
	ID             string
	Nombre         string
	Tipo           string // sucursal | almacen
	SubUbicaciones []*SubUbicacion
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EsAlmacen indica si la ubicación es un almacén central.
func (u *Ubicacion) EsAlmacen() bool { return u.Tipo == UbicacionAlmacen }

// SubUbicacion devuelve la sub-ubicación con el ID dado, o nil si no pertenece
// a esta ubicación.
func (u *Ubicacion) SubUbicacion(id string) *SubUbicacion {
	for _, s := range u.SubUbicaciones {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// SubUbicacion es la unidad de almacenamiento de stock dentro de una ubicación
// (una heladera, un freezer o un espacio a temperatura ambiente).
type SubUbicacion struct {
	ID          string
	UbicacionID string
	Nombre      string
	Tipo        string // ambiente | heladera | freezer
	Orden       int
}
