package reportes

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mvillagra/stock-sucursales/internal/application/dto"
	"github.com/mvillagra/stock-sucursales/internal/domain"
	"github.com/mvillagra/stock-sucursales/internal/domain/repository"
)

// UseCase arma el reporte económico: por sucursal, ingresos por ventas menos
// gastos por pedidos que afectaron stock. Solo lectura, sin invariantes propios.
type UseCase struct {
	reporteRepo repository.ReporteRepository
}

// NewUseCase construye el agregador de reportes.
func NewUseCase(reporteRepo repository.ReporteRepository) *UseCase {
	return &UseCase{reporteRepo: reporteRepo}
}

// Economico devuelve el desglose por sucursal y los totales del período.
// Los usuarios de sucursal solo consultan su propia sucursal.
func (uc *UseCase) Economico(ctx context.Context, actor dto.Actor, filter repository.ReporteFilter) (*dto.ReporteEconomico, error) {
	if !actor.EsAdmin() {
		if actor.SucursalID == nil {
			return nil, domain.ErrForbidden
		}
		filter.SucursalID = *actor.SucursalID
	}

	rows, err := uc.reporteRepo.PorSucursal(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := &dto.ReporteEconomico{
		PorSucursal: make([]dto.ReporteSucursal, 0, len(rows)),
		Totales: dto.ReporteTotales{
			TotalGastos: decimal.Zero,
			TotalVentas: decimal.Zero,
			Balance:     decimal.Zero,
		},
	}
	for _, r := range rows {
		balance := r.TotalVentas.Sub(r.TotalGastos)
		out.PorSucursal = append(out.PorSucursal, dto.ReporteSucursal{
			SucursalID:     r.SucursalID,
			SucursalNombre: r.SucursalNombre,
			TotalGastos:    r.TotalGastos,
			TotalVentas:    r.TotalVentas,
			Balance:        balance,
		})
		out.Totales.TotalGastos = out.Totales.TotalGastos.Add(r.TotalGastos)
		out.Totales.TotalVentas = out.Totales.TotalVentas.Add(r.TotalVentas)
		out.Totales.Balance = out.Totales.Balance.Add(balance)
	}
	return out, nil
}
