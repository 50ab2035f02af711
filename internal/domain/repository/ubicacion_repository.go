package repository

import "github.com/mvillagra/stock-sucursales/internal/domain/entity"

// UbicacionRepository define el puerto de persistencia para ubicaciones
// (sucursales y almacenes) con sus sub-ubicaciones anidadas.
// Delete retorna domain.ErrHasReferences si alguna sub-ubicación tiene stock
// o está referenciada por pedidos/ventas.
type UbicacionRepository interface {
	Create(u *entity.Ubicacion) error
	GetByID(id string) (*entity.Ubicacion, error)
	Update(u *entity.Ubicacion) error
	Delete(id string) error
	List() ([]*entity.Ubicacion, error)
	// GetSubUbicacion busca una sub-ubicación por ID en cualquier ubicación.
	GetSubUbicacion(id string) (*entity.SubUbicacion, error)
}
