package stock_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/application/stock"
	"github.com/mvillagra/stock-sucursales/internal/domain"
	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

type fakeStockRepo struct {
	filas      []*repository.StockListado
	lastFilter repository.StockFilter
}

func (f *fakeStockRepo) Get(productoID, subUbicacionID string) (*entity.Stock, error) {
	return nil, nil
}
func (f *fakeStockRepo) GetForUpdate(productoID, subUbicacionID string) (*entity.Stock, error) {
	return nil, nil
}
func (f *fakeStockRepo) Upsert(s *entity.Stock) error { return nil }
func (f *fakeStockRepo) List(filter repository.StockFilter) ([]*repository.StockListado, error) {
	f.lastFilter = filter
	var out []*repository.StockListado
	for _, fila := range f.filas {
		if filter.UbicacionID != "" && fila.UbicacionID != filter.UbicacionID {
			continue
		}
		out = append(out, fila)
	}
	return out, nil
}

func ptr(s string) *string { return &s }

func TestList_AdminVeTodasLasUbicaciones(t *testing.T) {
	repo := &fakeStockRepo{filas: []*repository.StockListado{
		{ProductoID: "p1", UbicacionID: "suc-centro", Cantidad: decimal.NewFromInt(10)},
		{ProductoID: "p1", UbicacionID: "almacen", Cantidad: decimal.NewFromInt(50)},
	}}
	uc := stock.NewUseCase(repo)

	admin := dto.Actor{UserID: "u1", Rol: entity.RolAdmin}
	rows, err := uc.List(context.Background(), admin, repository.StockFilter{})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestList_UsuarioDeSucursalQuedaAcotadoASuUbicacion(t *testing.T) {
	repo := &fakeStockRepo{filas: []*repository.StockListado{
		{ProductoID: "p1", UbicacionID: "suc-centro", Cantidad: decimal.NewFromInt(10)},
		{ProductoID: "p1", UbicacionID: "almacen", Cantidad: decimal.NewFromInt(50)},
	}}
	uc := stock.NewUseCase(repo)

	vendedora := dto.Actor{UserID: "u2", Rol: entity.RolSucursal, SucursalID: ptr("suc-centro")}
	// Aunque pida otra ubicación, el filtro se fuerza a la propia.
	rows, err := uc.List(context.Background(), vendedora, repository.StockFilter{UbicacionID: "almacen"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "suc-centro", rows[0].UbicacionID)
	assert.Equal(t, "suc-centro", repo.lastFilter.UbicacionID)
}

func TestList_SucursalSinAsignacion_Forbidden(t *testing.T) {
	uc := stock.NewUseCase(&fakeStockRepo{})

	_, err := uc.List(context.Background(), dto.Actor{UserID: "u3", Rol: entity.RolSucursal}, repository.StockFilter{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
