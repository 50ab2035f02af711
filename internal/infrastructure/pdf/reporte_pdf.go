// Package pdf genera la versión imprimible del reporte económico por
// sucursal (tabla de gastos/ventas/balance más totales) usando Maroto v2.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/mvillagra/stock-sucursales/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReporteGenerator genera el PDF del reporte económico.
type ReporteGenerator struct{}

// NewReporteGenerator construye el generador.
func NewReporteGenerator() *ReporteGenerator { return &ReporteGenerator{} }

// Generate arma el PDF y devuelve sus bytes.
func (g *ReporteGenerator) Generate(reporte *dto.ReporteEconomico, desde, hasta *time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Económico", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(10).Add(
		text.NewCol(8, "Reporte Económico por Sucursal", props.Text{
			Size: 14, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Left,
		}),
		text.NewCol(4, periodo(desde, hasta), props.Text{
			Size: 9, Color: colorGray, Align: align.Right, Top: 2,
		}),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(headerRow())
	for _, s := range reporte.PorSucursal {
		m.AddRows(row.New(6).Add(
			text.NewCol(4, s.SucursalNombre, props.Text{Size: 9}),
			montoCol(3, s.TotalGastos.StringFixed(2)),
			montoCol(3, s.TotalVentas.StringFixed(2)),
			montoCol(2, s.Balance.StringFixed(2)),
		))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(7).Add(
		text.NewCol(4, "TOTALES", props.Text{Size: 10, Style: fontstyle.Bold}),
		totalCol(3, reporte.Totales.TotalGastos.StringFixed(2)),
		totalCol(3, reporte.Totales.TotalVentas.StringFixed(2)),
		totalCol(2, reporte.Totales.Balance.StringFixed(2)),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF del reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	headerRight := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		text.NewCol(4, "Sucursal", header),
		text.NewCol(3, "Gastos", headerRight),
		text.NewCol(3, "Ventas", headerRight),
		text.NewCol(2, "Balance", headerRight),
	)
}

func montoCol(size int, v string) core.Col {
	return text.NewCol(size, "$ "+v, props.Text{Size: 9, Align: align.Right})
}

func totalCol(size int, v string) core.Col {
	return text.NewCol(size, "$ "+v, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right})
}

func periodo(desde, hasta *time.Time) string {
	const f = "02/01/2006"
	switch {
	case desde != nil && hasta != nil:
		return desde.Format(f) + " a " + hasta.Format(f)
	case desde != nil:
		return "desde " + desde.Format(f)
	case hasta != nil:
		return "hasta " + hasta.Format(f)
	default:
		return "histórico completo"
	}
}
