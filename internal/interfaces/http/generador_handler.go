package http

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/PJECZ/pjecz-perseo-api/internal/application/dto"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/generadores"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/quincenas"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/tareas"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

// GeneradorHandler lanza corridas de explotación y consulta sus manifiestos.
type GeneradorHandler struct {
	exportador   *generadores.Exportador
	resolver     *quincenas.Resolver
	productoRepo repository.QuincenaProductoRepository
	ejecutor     *tareas.Ejecutor
}

// NewGeneradorHandler construye el handler de generadores.
func NewGeneradorHandler(
	exportador *generadores.Exportador,
	resolver *quincenas.Resolver,
	productoRepo repository.QuincenaProductoRepository,
	ejecutor *tareas.Ejecutor,
) *GeneradorHandler {
	return &GeneradorHandler{
		exportador:   exportador,
		resolver:     resolver,
		productoRepo: productoRepo,
		ejecutor:     ejecutor,
	}
}

// Generar lanza la corrida en segundo plano y responde de inmediato con el id
// de la tarea. La corrida en sí valida quincena y fuente; una clave malformada
// o una fuente desconocida se rechazan antes de lanzar.
func (h *GeneradorHandler) Generar(c *fiber.Ctx) error {
	var in dto.GenerarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.QuincenaClave == "" || in.Fuente == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quincena_clave y fuente son requeridos"})
	}
	fuente := strings.ToLower(strings.TrimSpace(in.Fuente))
	clave := strings.TrimSpace(in.QuincenaClave)

	// Validar las precondiciones de forma síncrona: el cliente merece un 4xx
	// inmediato en vez de una tarea que nace muerta.
	if _, err := h.resolver.ResolverAbierta(c.Context(), clave); err != nil {
		return errorQuincena(c, err)
	}

	nombre := fmt.Sprintf("generar %s %s", fuente, clave)
	tareaID := h.ejecutor.Lanzar(nombre, func(ctx context.Context, avance func(int, string)) error {
		_, err := h.exportador.Exportar(ctx, fuente, clave, avance)
		return err
	})
	return c.Status(fiber.StatusAccepted).JSON(dto.TareaResponse{
		TareaID: tareaID,
		Mensaje: "corrida lanzada; consultar /api/tareas/" + tareaID,
	})
}

// Fuentes devuelve los generadores disponibles.
func (h *GeneradorHandler) Fuentes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"fuentes": h.exportador.Fuentes()})
}

// Productos devuelve los manifiestos de artefactos de la quincena, el más
// reciente primero. Admite quincenas cerradas.
func (h *GeneradorHandler) Productos(c *fiber.Ctx) error {
	quincena, err := h.resolver.Obtener(c.Context(), c.Params("clave"))
	if err != nil {
		return errorQuincena(c, err)
	}
	productos, err := h.productoRepo.ListarPorQuincena(c.Context(), quincena.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		var mensajes []string
		if p.Mensajes != "" {
			mensajes = strings.Split(p.Mensajes, "\n")
		}
		out = append(out, dto.ProductoResponse{
			Fuente:          p.Fuente,
			Archivo:         p.Archivo,
			URLPublica:      p.URLPublica,
			Mensajes:        mensajes,
			EsSatisfactorio: p.EsSatisfactorio,
			CreadoEn:        p.CreadoEn,
		})
	}
	return c.JSON(out)
}
