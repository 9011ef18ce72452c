package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/PJECZ/pjecz-perseo-api/internal/application/auth"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/generadores"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/quincenas"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/tabuladores"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/tareas"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/timbrados"
	"github.com/PJECZ/pjecz-perseo-api/internal/infrastructure/excel"
	"github.com/PJECZ/pjecz-perseo-api/internal/infrastructure/postgres"
	"github.com/PJECZ/pjecz-perseo-api/internal/infrastructure/storage"
	httpRouter "github.com/PJECZ/pjecz-perseo-api/internal/interfaces/http"
	"github.com/PJECZ/pjecz-perseo-api/pkg/config"
	"github.com/PJECZ/pjecz-perseo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
		App:   cfg.App.Name,
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

	// Directorios locales de artefactos y de XML conciliados. El disco es la
	// fuente de verdad; la subida a objetos es opcional.
	dirTimbrados := filepath.Join(cfg.Storage.Dir, "timbrados")
	for _, dir := range []string{cfg.Storage.Dir, dirTimbrados} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("crear directorio de artefactos")
		}
	}

	// Almacén de objetos: bucket vacío = solo disco local.
	var almacen storage.Almacen
	if cfg.Storage.Bucket != "" {
		almacenMinio, err := storage.NewAlmacenMinio(cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de almacén de objetos")
		}
		almacen = almacenMinio
		log.Info().Str("bucket", cfg.Storage.Bucket).Msg("subida a objetos habilitada")
	}

	quincenaRepo := postgres.NewQuincenaRepository(pool)
	nominaRepo := postgres.NewNominaRepository(pool)
	productoRepo := postgres.NewQuincenaProductoRepository(pool)
	timbradoRepo := postgres.NewTimbradoRepository(pool)
	personaRepo := postgres.NewPersonaRepository(pool)
	tabuladorRepo := postgres.NewTabuladorRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := quincenas.NewResolver(quincenaRepo)
	cierre := quincenas.NewCierre(txRunner)
	exportador := generadores.NewExportador(txRunner, productoRepo, excel.NewEscritor(), almacen, cfg.Nomina, cfg.Storage.Dir)
	reconciliador := timbrados.NewReconciliador(nominaRepo, timbradoRepo, almacen, dirTimbrados)
	tabuladorUC := tabuladores.NewConsulta(personaRepo, tabuladorRepo, cfg.Nomina)
	ejecutor := tareas.NewEjecutor()
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024, // lotes de XML timbrados
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		Resolver:      resolver,
		Cierre:        cierre,
		Exportador:    exportador,
		ProductoRepo:  productoRepo,
		Reconciliador: reconciliador,
		TabuladorUC:   tabuladorUC,
		Ejecutor:      ejecutor,
		JWTSecret:     cfg.JWT.Secret,
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
