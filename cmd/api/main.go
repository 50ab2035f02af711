package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mvillagra/stock-sucursales/internal/application/auth"
	"github.com/mvillagra/stock-sucursales/internal/application/catalogo"
	"github.com/mvillagra/stock-sucursales/internal/application/pedidos"
	"github.com/mvillagra/stock-sucursales/internal/application/reportes"
	"github.com/mvillagra/stock-sucursales/internal/application/stock"
	"github.com/mvillagra/stock-sucursales/internal/application/ubicaciones"
	"github.com/mvillagra/stock-sucursales/internal/application/ventas"
	infrapdf "github.com/mvillagra/stock-sucursales/internal/infrastructure/pdf"
	"github.com/mvillagra/stock-sucursales/internal/infrastructure/postgres"
	httpRouter "github.com/mvillagra/stock-sucursales/internal/interfaces/http"
	"github.com/mvillagra/stock-sucursales/pkg/config"
	"github.com/mvillagra/stock-sucursales/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	ubicacionRepo := postgres.NewUbicacionRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(usuarioRepo, ubicacionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogoUC := catalogo.NewUseCase(productoRepo, categoriaRepo)
	ubicacionUC := ubicaciones.NewUseCase(ubicacionRepo)
	stockUC := stock.NewUseCase(stockRepo)
	pedidoUC := pedidos.NewUseCase(txRunner, pedidoRepo, productoRepo, ubicacionRepo)
	ventaUC := ventas.NewUseCase(txRunner, ventaRepo, productoRepo, ubicacionRepo)
	reporteUC := reportes.NewUseCase(reporteRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Sucursales API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogoUC:  catalogoUC,
		UbicacionUC: ubicacionUC,
		StockUC:     stockUC,
		PedidoUC:    pedidoUC,
		VentaUC:     ventaUC,
		ReporteUC:   reporteUC,
		ReportePDF:  infrapdf.NewReporteGenerator(),
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
