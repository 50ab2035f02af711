package catalogo_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvillagra/stock-sucursales/internal/application/catalogo"
	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/domain"
	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func (f *fakeProductoRepo) Create(p *entity.Producto) error { f.productos[p.ID] = p; return nil }
func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return f.productos[id], nil
}
func (f *fakeProductoRepo) Update(p *entity.Producto) error { f.productos[p.ID] = p; return nil }
func (f *fakeProductoRepo) Delete(id string) error {
	delete(f.productos, id)
	return nil
}
func (f *fakeProductoRepo) List(filter repository.ProductoFilter) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range f.productos {
		if filter.TipoConservacion != "" && p.TipoConservacion != filter.TipoConservacion {
			continue
		}
		if filter.CategoriaID != "" && p.CategoriaID != filter.CategoriaID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type fakeCategoriaRepo struct {
	categorias map[string]*entity.Categoria
}

func (f *fakeCategoriaRepo) Create(c *entity.Categoria) error { f.categorias[c.ID] = c; return nil }
func (f *fakeCategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	return f.categorias[id], nil
}
func (f *fakeCategoriaRepo) Update(c *entity.Categoria) error { f.categorias[c.ID] = c; return nil }
func (f *fakeCategoriaRepo) Delete(id string) error {
	delete(f.categorias, id)
	return nil
}
func (f *fakeCategoriaRepo) List() ([]*entity.Categoria, error) {
	var out []*entity.Categoria
	for _, c := range f.categorias {
		out = append(out, c)
	}
	return out, nil
}

const categoriaAlmacen = "cat-almacen"

func nuevoUseCase() (*catalogo.UseCase, *fakeProductoRepo) {
	productoRepo := &fakeProductoRepo{productos: map[string]*entity.Producto{
		"p1": {ID: "p1", Nombre: "Café torrado", CategoriaID: categoriaAlmacen, TipoConservacion: entity.ConservacionAmbiente},
		"p2": {ID: "p2", Nombre: "Azúcar", CategoriaID: categoriaAlmacen, TipoConservacion: entity.ConservacionAmbiente},
		"p3": {ID: "p3", Nombre: "Helado de limón", CategoriaID: categoriaAlmacen, TipoConservacion: entity.ConservacionFreezer},
	}}
	categoriaRepo := &fakeCategoriaRepo{categorias: map[string]*entity.Categoria{
		categoriaAlmacen: {ID: categoriaAlmacen, Nombre: "Almacén"},
	}}
	return catalogo.NewUseCase(productoRepo, categoriaRepo), productoRepo
}

func TestListProductos_BusquedaSinAcentos(t *testing.T) {
	uc, _ := nuevoUseCase()

	// "cafe" sin tilde debe encontrar "Café torrado".
	out, err := uc.ListProductos(context.Background(), repository.ProductoFilter{}, "cafe")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Café torrado", out[0].Nombre)

	// Y la búsqueda con tilde también encuentra el nombre sin tilde.
	out, err = uc.ListProductos(context.Background(), repository.ProductoFilter{}, "azúcar")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Azúcar", out[0].Nombre)
}

func TestListProductos_MayusculasIndistintas(t *testing.T) {
	uc, _ := nuevoUseCase()

	out, err := uc.ListProductos(context.Background(), repository.ProductoFilter{}, "HELADO")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Helado de limón", out[0].Nombre)
}

func TestListProductos_FiltroPorConservacion(t *testing.T) {
	uc, _ := nuevoUseCase()

	out, err := uc.ListProductos(context.Background(),
		repository.ProductoFilter{TipoConservacion: entity.ConservacionFreezer}, "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Helado de limón", out[0].Nombre)
}

func TestCrearProducto_ValidaTipoYCategoria(t *testing.T) {
	uc, _ := nuevoUseCase()

	_, err := uc.CrearProducto(context.Background(), dto.ProductoRequest{
		Nombre: "Yogur", Categoria: categoriaAlmacen, TipoConservacion: "congelador",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo de conservación fuera del conjunto permitido")

	_, err = uc.CrearProducto(context.Background(), dto.ProductoRequest{
		Nombre: "Yogur", Categoria: "cat-inexistente", TipoConservacion: entity.ConservacionHeladera,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la categoría debe existir")

	resp, err := uc.CrearProducto(context.Background(), dto.ProductoRequest{
		Nombre: "Yogur", Categoria: categoriaAlmacen, TipoConservacion: entity.ConservacionHeladera,
		PrecioVenta: decimal.NewFromInt(200), CostoCompra: decimal.NewFromInt(120),
	})
	require.NoError(t, err)
	assert.Equal(t, "Almacén", resp.CategoriaNombre)
}

func TestCrearProducto_PrecioNegativo_InvalidInput(t *testing.T) {
	uc, _ := nuevoUseCase()

	_, err := uc.CrearProducto(context.Background(), dto.ProductoRequest{
		Nombre: "Yogur", Categoria: categoriaAlmacen, TipoConservacion: entity.ConservacionHeladera,
		PrecioVenta: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActualizarProducto_NoExiste_NotFound(t *testing.T) {
	uc, _ := nuevoUseCase()

	_, err := uc.ActualizarProducto(context.Background(), "no-existe", dto.ProductoRequest{
		Nombre: "X", Categoria: categoriaAlmacen, TipoConservacion: entity.ConservacionAmbiente,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
