package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/PJECZ/pjecz-perseo-api/internal/application/dto"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/quincenas"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
)

// QuincenaHandler maneja el catálogo de quincenas y su cierre.
type QuincenaHandler struct {
	resolver *quincenas.Resolver
	cierre   *quincenas.Cierre
}

// NewQuincenaHandler construye el handler de quincenas.
func NewQuincenaHandler(resolver *quincenas.Resolver, cierre *quincenas.Cierre) *QuincenaHandler {
	return &QuincenaHandler{resolver: resolver, cierre: cierre}
}

// Listar devuelve las quincenas activas, la más reciente primero.
func (h *QuincenaHandler) Listar(c *fiber.Ctx) error {
	lista, err := h.resolver.Listar(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.QuincenaResponse, 0, len(lista))
	for i := range lista {
		out = append(out, toQuincenaResponse(&lista[i]))
	}
	return c.JSON(out)
}

// Obtener devuelve una quincena por clave.
func (h *QuincenaHandler) Obtener(c *fiber.Ctx) error {
	quincena, err := h.resolver.Obtener(c.Context(), c.Params("clave"))
	if err != nil {
		return errorQuincena(c, err)
	}
	return c.JSON(toQuincenaResponse(quincena))
}

// Cerrar cierra la quincena: estado CERRADA y sincronización de consecutivos
// en una sola transacción.
func (h *QuincenaHandler) Cerrar(c *fiber.Ctx) error {
	clave := c.Params("clave")
	if err := h.cierre.CerrarQuincena(c.Context(), clave); err != nil {
		return errorQuincena(c, err)
	}
	return c.JSON(fiber.Map{"mensaje": "quincena " + clave + " cerrada"})
}

func toQuincenaResponse(q *entity.Quincena) dto.QuincenaResponse {
	return dto.QuincenaResponse{
		Clave:                   q.Clave,
		Estado:                  q.Estado,
		Estatus:                 q.Estatus,
		TieneAguinaldos:         q.TieneAguinaldos,
		TieneApoyosAnuales:      q.TieneApoyosAnuales,
		TienePrimasVacacionales: q.TienePrimasVacacionales,
	}
}

// errorQuincena traduce los errores de la máquina de estados de quincenas a HTTP.
func errorQuincena(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrClaveInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CLAVE_INVALIDA", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la quincena no existe"})
	case errors.Is(err, domain.ErrQuincenaEliminada):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "QUINCENA_ELIMINADA", Message: err.Error()})
	case errors.Is(err, domain.ErrQuincenaNoAbierta):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "QUINCENA_NO_ABIERTA", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
