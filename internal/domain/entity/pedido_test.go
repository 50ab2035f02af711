package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
)

// Tabla completa de transiciones: solo las cuatro marcadas como válidas pueden
// ocurrir; rechazado y recibido son estados terminales.
func TestTransicionPedidoValida(t *testing.T) {
	estados := []string{
		entity.PedidoBorrador,
		entity.PedidoPendiente,
		entity.PedidoAprobado,
		entity.PedidoRechazado,
		entity.PedidoRecibido,
	}
	validas := map[[2]string]bool{
		{entity.PedidoBorrador, entity.PedidoPendiente}:  true,
		{entity.PedidoPendiente, entity.PedidoAprobado}:  true,
		{entity.PedidoPendiente, entity.PedidoRechazado}: true,
		{entity.PedidoAprobado, entity.PedidoRecibido}:   true,
	}

	for _, desde := range estados {
		for _, hacia := range estados {
			got := entity.TransicionPedidoValida(desde, hacia)
			want := validas[[2]string{desde, hacia}]
			assert.Equal(t, want, got, "transición %s → %s", desde, hacia)
		}
	}
}

func TestTransicionPedidoValida_EstadoDesconocido(t *testing.T) {
	assert.False(t, entity.TransicionPedidoValida("cualquiera", entity.PedidoAprobado))
	assert.False(t, entity.TransicionPedidoValida(entity.PedidoPendiente, "cualquiera"))
}

func TestPedidoItem_Costo(t *testing.T) {
	item := &entity.PedidoItem{
		Cantidad:           decimal.NewFromInt(3),
		PrecioCostoMomento: decimal.RequireFromString("150.50"),
	}
	assert.True(t, item.Costo().Equal(decimal.RequireFromString("451.50")))
}

func TestVentaItem_Subtotal(t *testing.T) {
	item := &entity.VentaItem{
		Cantidad:           decimal.RequireFromString("2.5"),
		PrecioVentaMomento: decimal.NewFromInt(100),
	}
	assert.True(t, item.Subtotal().Equal(decimal.NewFromInt(250)))
}

func TestTipoConservacionValido(t *testing.T) {
	assert.True(t, entity.TipoConservacionValido(entity.ConservacionAmbiente))
	assert.True(t, entity.TipoConservacionValido(entity.ConservacionHeladera))
	assert.True(t, entity.TipoConservacionValido(entity.ConservacionFreezer))
	assert.False(t, entity.TipoConservacionValido("congelador"))
	assert.False(t, entity.TipoConservacionValido(""))
}
