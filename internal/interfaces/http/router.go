package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PJECZ/pjecz-perseo-api/internal/application/auth"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/generadores"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/quincenas"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/tabuladores"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/tareas"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/timbrados"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	Resolver      *quincenas.Resolver
	Cierre        *quincenas.Cierre
	Exportador    *generadores.Exportador
	ProductoRepo  repository.QuincenaProductoRepository
	Reconciliador *timbrados.Reconciliador
	TabuladorUC   *tabuladores.Consulta
	Ejecutor      *tareas.Ejecutor
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; alta de usuarios solo admin)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/usuarios", RequireRol(entity.RolAdministrador), authHandler.CrearUsuario)

	// Quincenas: catálogo y cierre
	quincenaHandler := NewQuincenaHandler(deps.Resolver, deps.Cierre)
	protected.Get("/quincenas", quincenaHandler.Listar)
	protected.Get("/quincenas/:clave", quincenaHandler.Obtener)
	protected.Post("/quincenas/:clave/cerrar", RequireRol(entity.RolAdministrador, entity.RolOperador), quincenaHandler.Cerrar)

	// Generadores de artefactos (corridas en segundo plano)
	generadorHandler := NewGeneradorHandler(deps.Exportador, deps.Resolver, deps.ProductoRepo, deps.Ejecutor)
	protected.Get("/nominas/fuentes", generadorHandler.Fuentes)
	protected.Post("/nominas/generar", RequireRol(entity.RolAdministrador, entity.RolOperador), generadorHandler.Generar)
	protected.Get("/quincenas/:clave/productos", generadorHandler.Productos)

	// Timbrados (conciliación de XML del SAT)
	timbradoHandler := NewTimbradoHandler(deps.Reconciliador)
	protected.Post("/timbrados/conciliar", RequireRol(entity.RolAdministrador, entity.RolOperador), timbradoHandler.Conciliar)

	// Tabulador (consulta)
	tabuladorHandler := NewTabuladorHandler(deps.TabuladorUC)
	protected.Get("/tabuladores", tabuladorHandler.ConsultarPorRFC)

	// Tareas en segundo plano
	tareaHandler := NewTareaHandler(deps.Ejecutor)
	protected.Get("/tareas/:id", tareaHandler.Estado)
}
