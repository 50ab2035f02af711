package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de conservación de un producto (y de las sub-ubicaciones que lo almacenan).
const (
	ConservacionAmbiente = "ambiente"
	ConservacionHeladera = "heladera"
	ConservacionFreezer  = "freezer"
)

// TipoConservacionValido verifica que el valor pertenezca al conjunto permitido.
func TipoConservacionValido(t string) bool {
	return t == ConservacionAmbiente || t == ConservacionHeladera || t == ConservacionFreezer
}

// Producto representa un artículo del catálogo. PrecioVenta y CostoCompra son los
// valores vigentes; pedidos y ventas guardan su propia copia al momento de crearse.
type Producto struct {
	ID               string
	Nombre           string
	CategoriaID      string
	TipoConservacion string // ambiente | heladera | freezer
	PrecioVenta      decimal.Decimal
	CostoCompra      decimal.Decimal
	SKU              *string // único si está presente
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Categoria agrupa productos. No se puede eliminar mientras tenga productos.
type Categoria struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
