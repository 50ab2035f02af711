package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mvillagra/stock-sucursales/internal/application/auth"
	"github.com/mvillagra/stock-sucursales/internal/application/catalogo"
	"github.com/mvillagra/stock-sucursales/internal/application/pedidos"
	"github.com/mvillagra/stock-sucursales/internal/application/reportes"
	"github.com/mvillagra/stock-sucursales/internal/application/stock"
	"github.com/mvillagra/stock-sucursales/internal/application/ubicaciones"
	"github.com/mvillagra/stock-sucursales/internal/application/ventas"
	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	CatalogoUC  *catalogo.UseCase
	UbicacionUC *ubicaciones.UseCase
	StockUC     *stock.UseCase
	PedidoUC    *pedidos.UseCase
	VentaUC     *ventas.UseCase
	ReporteUC   *reportes.UseCase
	ReportePDF  ReportePDFGenerator
	JWTSecret   string
}

// Router registra las rutas de la API. Las rutas replican los paths que el
// cliente web ya consume, con grupos por recurso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/token/", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	soloAdmin := RequireRole(entity.RolAdmin)

	// Usuarios (solo admin)
	usuarios := protected.Group("/auth/usuarios", soloAdmin)
	usuarios.Post("/", authHandler.Register)
	usuarios.Get("/", authHandler.ListUsuarios)

	// Ubicaciones: lectura para todos, mutaciones solo admin
	locations := protected.Group("/locations/sucursales")
	ubicacionHandler := NewUbicacionHandler(deps.UbicacionUC)
	locations.Get("/", ubicacionHandler.List)
	locations.Post("/", soloAdmin, ubicacionHandler.Create)
	locations.Put("/:id", soloAdmin, ubicacionHandler.Update)
	locations.Delete("/:id", soloAdmin, ubicacionHandler.Delete)

	// Catálogo: lectura para todos, mutaciones solo admin
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	productos := protected.Group("/products/productos")
	productos.Get("/", catalogoHandler.ListProductos)
	productos.Get("/:id", catalogoHandler.GetProducto)
	productos.Post("/", soloAdmin, catalogoHandler.CreateProducto)
	productos.Put("/:id", soloAdmin, catalogoHandler.UpdateProducto)
	productos.Delete("/:id", soloAdmin, catalogoHandler.DeleteProducto)
	categorias := protected.Group("/products/categorias")
	categorias.Get("/", catalogoHandler.ListCategorias)
	categorias.Post("/", soloAdmin, catalogoHandler.CreateCategoria)
	categorias.Put("/:id", soloAdmin, catalogoHandler.UpdateCategoria)
	categorias.Delete("/:id", soloAdmin, catalogoHandler.DeleteCategoria)

	// Stock (el caso de uso acota por sucursal según el actor)
	stockHandler := NewStockHandler(deps.StockUC)
	protected.Get("/inventory/stock/", stockHandler.List)

	// Pedidos: ambos roles; el caso de uso decide quién puede qué
	pedidosGroup := protected.Group("/inventory/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidosGroup.Get("/", pedidoHandler.List)
	pedidosGroup.Post("/", pedidoHandler.Create)
	pedidosGroup.Get("/:id", pedidoHandler.GetByID)
	pedidosGroup.Put("/:id", pedidoHandler.Update)
	pedidosGroup.Delete("/:id", pedidoHandler.Delete)
	pedidosGroup.Post("/:id/enviar_a_revision/", pedidoHandler.EnviarARevision)
	pedidosGroup.Post("/:id/aprobar/", soloAdmin, pedidoHandler.Aprobar)
	pedidosGroup.Post("/:id/rechazar/", soloAdmin, pedidoHandler.Rechazar)
	pedidosGroup.Post("/:id/recibir/", pedidoHandler.Recibir)

	// Ventas y reporte económico
	sales := protected.Group("/sales")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	sales.Post("/ventas/", ventaHandler.Create)
	sales.Get("/ventas/", ventaHandler.List)
	reporteHandler := NewReporteHandler(deps.ReporteUC, deps.ReportePDF)
	sales.Get("/reporte-economico/", reporteHandler.Economico)
	sales.Get("/reporte-economico/pdf/", reporteHandler.EconomicoPDF)
}
