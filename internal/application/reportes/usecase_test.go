package reportes_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/application/reportes"
	"github.com/mvillagra/stock-sucursales/internal/domain"
	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

type fakeReporteRepo struct {
	rows       []repository.ReporteSucursalResult
	lastFilter repository.ReporteFilter
}

func (f *fakeReporteRepo) PorSucursal(ctx context.Context, filter repository.ReporteFilter) ([]repository.ReporteSucursalResult, error) {
	f.lastFilter = filter
	if filter.SucursalID == "" {
		return f.rows, nil
	}
	var out []repository.ReporteSucursalResult
	for _, r := range f.rows {
		if r.SucursalID == filter.SucursalID {
			out = append(out, r)
		}
	}
	return out, nil
}

func nuevoRepo() *fakeReporteRepo {
	return &fakeReporteRepo{rows: []repository.ReporteSucursalResult{
		{
			SucursalID: "suc-centro", SucursalNombre: "Centro",
			TotalVentas: decimal.NewFromInt(10000), TotalGastos: decimal.NewFromInt(6000),
		},
		{
			SucursalID: "suc-norte", SucursalNombre: "Norte",
			TotalVentas: decimal.NewFromInt(3000), TotalGastos: decimal.NewFromInt(4500),
		},
	}}
}

func TestEconomico_BalancePorSucursalYTotales(t *testing.T) {
	uc := reportes.NewUseCase(nuevoRepo())
	admin := dto.Actor{UserID: "u1", Rol: entity.RolAdmin}

	out, err := uc.Economico(context.Background(), admin, repository.ReporteFilter{})
	require.NoError(t, err)
	require.Len(t, out.PorSucursal, 2)

	assert.True(t, out.PorSucursal[0].Balance.Equal(decimal.NewFromInt(4000)),
		"balance = ventas - gastos")
	assert.True(t, out.PorSucursal[1].Balance.Equal(decimal.NewFromInt(-1500)),
		"el balance puede ser negativo")

	assert.True(t, out.Totales.TotalVentas.Equal(decimal.NewFromInt(13000)))
	assert.True(t, out.Totales.TotalGastos.Equal(decimal.NewFromInt(10500)))
	assert.True(t, out.Totales.Balance.Equal(decimal.NewFromInt(2500)))
}

func TestEconomico_UsuarioDeSucursalQuedaAcotado(t *testing.T) {
	repo := nuevoRepo()
	uc := reportes.NewUseCase(repo)
	sucursal := "suc-norte"
	actor := dto.Actor{UserID: "u2", Rol: entity.RolSucursal, SucursalID: &sucursal}

	// Aunque pida otra sucursal, el filtro se fuerza a la propia.
	out, err := uc.Economico(context.Background(), actor, repository.ReporteFilter{SucursalID: "suc-centro"})
	require.NoError(t, err)
	assert.Equal(t, sucursal, repo.lastFilter.SucursalID)
	require.Len(t, out.PorSucursal, 1)
	assert.Equal(t, "Norte", out.PorSucursal[0].SucursalNombre)
}

func TestEconomico_SucursalSinAsignacion_Forbidden(t *testing.T) {
	uc := reportes.NewUseCase(nuevoRepo())
	actor := dto.Actor{UserID: "u3", Rol: entity.RolSucursal}

	_, err := uc.Economico(context.Background(), actor, repository.ReporteFilter{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEconomico_SinMovimientos(t *testing.T) {
	uc := reportes.NewUseCase(&fakeReporteRepo{})
	admin := dto.Actor{UserID: "u1", Rol: entity.RolAdmin}

	out, err := uc.Economico(context.Background(), admin, repository.ReporteFilter{})
	require.NoError(t, err)
	assert.Empty(t, out.PorSucursal)
	assert.True(t, out.Totales.Balance.IsZero())
}
