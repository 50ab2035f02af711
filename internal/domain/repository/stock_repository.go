package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
)

// StockFilter filtros para el listado de stock.
type StockFilter struct {
	UbicacionID    string
	SubUbicacionID string
	ProductoID     string
	SoloConStock   bool
}

// StockListado fila de stock enriquecida con los nombres de producto y
// ubicación para el listado de consulta.
type StockListado struct {
	ProductoID               string
	ProductoNombre           string
	ProductoTipoConservacion string
	SubUbicacionID           string
	SubUbicacionNombre       string
	SubUbicacionTipo         string
	UbicacionID              string
	UbicacionNombre          string
	Cantidad                 decimal.Decimal
	UltimaActualizacion      time.Time
}

// StockRepository define el puerto para consultar/actualizar stock por
// (producto, sub-ubicación). Las mutaciones solo ocurren dentro de
// transacciones; GetForUpdate bloquea la fila (SELECT FOR UPDATE) para que la
// verificación de suficiencia y el descuento no se separen entre escritores
// concurrentes.
type StockRepository interface {
	Get(productoID, subUbicacionID string) (*entity.Stock, error)
	GetForUpdate(productoID, subUbicacionID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	List(filter StockFilter) ([]*StockListado, error)
}
