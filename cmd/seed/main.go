// seed aplica el esquema SQL y crea los datos mínimos para operar: un usuario
// admin, el almacén central con sus sub-ubicaciones y una categoría general.
//
// Uso: go run ./cmd/seed [-admin-password <pass>]
// Idempotente: si el username admin ya existe no vuelve a crearlo.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mvillagra/stock-sucursales/internal/domain/entity"
	"github.com/mvillagra/stock-sucursales/internal/infrastructure/postgres"
	"github.com/mvillagra/stock-sucursales/pkg/config"
	"github.com/mvillagra/stock-sucursales/pkg/logger"
)

func main() {
	adminPassword := flag.String("admin-password", "admin1234", "password inicial del usuario admin")
	schemaPath := flag.String("schema", "migrations/001_init.sql", "ruta del esquema SQL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	schema, err := os.ReadFile(*schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *schemaPath).Msg("leer esquema")
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Str("path", *schemaPath).Msg("esquema aplicado")

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	ubicacionRepo := postgres.NewUbicacionRepository(pool)

	existing, err := usuarioRepo.FindByUsername("admin")
	if err != nil {
		log.Fatal().Err(err).Msg("buscar usuario admin")
	}
	if existing != nil {
		log.Info().Msg("usuario admin ya existe, nada que sembrar")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}
	now := time.Now()
	admin := &entity.Usuario{
		ID:           uuid.NewString(),
		Username:     "admin",
		PasswordHash: string(hash),
		Rol:          entity.RolAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := usuarioRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear usuario admin")
	}
	log.Info().Str("username", admin.Username).Msg("usuario admin creado")

	almacenID := uuid.NewString()
	almacen := &entity.Ubicacion{
		ID:        almacenID,
		Nombre:    "Almacén Central",
		Tipo:      entity.UbicacionAlmacen,
		CreatedAt: now,
		UpdatedAt: now,
		SubUbicaciones: []*entity.SubUbicacion{
			{ID: uuid.NewString(), UbicacionID: almacenID, Nombre: "Depósito seco", Tipo: entity.ConservacionAmbiente, Orden: 0},
			{ID: uuid.NewString(), UbicacionID: almacenID, Nombre: "Cámara fría", Tipo: entity.ConservacionHeladera, Orden: 1},
			{ID: uuid.NewString(), UbicacionID: almacenID, Nombre: "Cámara de congelados", Tipo: entity.ConservacionFreezer, Orden: 2},
		},
	}
	if err := ubicacionRepo.Create(almacen); err != nil {
		log.Fatal().Err(err).Msg("crear almacén central")
	}
	log.Info().Str("nombre", almacen.Nombre).Msg("almacén central creado")

	categoriaRepo := postgres.NewCategoriaRepository(pool)
	general := &entity.Categoria{ID: uuid.NewString(), Nombre: "General", CreatedAt: now, UpdatedAt: now}
	if err := categoriaRepo.Create(general); err != nil {
		log.Fatal().Err(err).Msg("crear categoría general")
	}
	log.Info().Msg("seed completado")
}
