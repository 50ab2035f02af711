package repository

import (
	"time"

	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
)

// VentaFilter filtros para listar ventas.
type VentaFilter struct {
	SucursalID string
	Desde      *time.Time
	Hasta      *time.Time
}

// VentaRepository define el puerto de persistencia para ventas y sus líneas.
type VentaRepository interface {
	Create(v *entity.Venta) error
	GetByID(id string) (*entity.Venta, error)
	List(filter VentaFilter) ([]*entity.Venta, error)
}
