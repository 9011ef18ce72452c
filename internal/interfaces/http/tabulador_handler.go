package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/PJECZ/pjecz-perseo-api/internal/application/dto"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/tabuladores"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain"
)

// TabuladorHandler consulta la tabla salarial por persona.
type TabuladorHandler struct {
	consulta *tabuladores.Consulta
}

// NewTabuladorHandler construye el handler del tabulador.
func NewTabuladorHandler(consulta *tabuladores.Consulta) *TabuladorHandler {
	return &TabuladorHandler{consulta: consulta}
}

// ConsultarPorRFC devuelve el renglón del tabulador para la persona, con el
// quinquenio derivado de su antigüedad a la quincena de referencia.
// Query: rfc, puesto, nivel, quincena.
func (h *TabuladorHandler) ConsultarPorRFC(c *fiber.Ctx) error {
	rfc := c.Query("rfc")
	puesto := c.Query("puesto")
	quincena := c.Query("quincena")
	nivel, err := strconv.Atoi(c.Query("nivel", "0"))
	if rfc == "" || puesto == "" || quincena == "" || err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rfc, puesto, nivel y quincena son requeridos"})
	}

	tabulador, quinquenio, err := h.consulta.ConsultarPorRFC(c.Context(), rfc, puesto, nivel, quincena)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrClaveInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CLAVE_INVALIDA", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.TabuladorResponse{
		PuestoClave: tabulador.PuestoClave,
		Modelo:      tabulador.Modelo,
		Nivel:       tabulador.Nivel,
		Quinquenio:  quinquenio,
		Sueldo:      tabulador.Sueldo.StringFixed(2),
	})
}
