package repository

import "github.com/mvillagra/stock-sucursales/internal/domain/entity"

// ProductoFilter filtros opcionales para listar productos. La búsqueda por
// texto se resuelve en el caso de uso (comparación sin acentos).
type ProductoFilter struct {
	TipoConservacion string
	CategoriaID      string
}

// ProductoRepository define el puerto de persistencia para productos del catálogo.
// Delete retorna domain.ErrHasReferences si existe stock o líneas de pedido
// que referencien al producto.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	Update(p *entity.Producto) error
	Delete(id string) error
	List(filter ProductoFilter) ([]*entity.Producto, error)
}

// CategoriaRepository define el puerto de persistencia para categorías.
// Delete retorna domain.ErrHasReferences si hay productos en la categoría.
type CategoriaRepository interface {
	Create(c *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	Update(c *entity.Categoria) error
	Delete(id string) error
	List() ([]*entity.Categoria, error)
}
