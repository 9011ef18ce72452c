package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PJECZ/pjecz-perseo-api/internal/application/dto"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/tareas"
)

// TareaHandler consulta el avance de tareas en segundo plano.
type TareaHandler struct {
	ejecutor *tareas.Ejecutor
}

// NewTareaHandler construye el handler de tareas.
func NewTareaHandler(ejecutor *tareas.Ejecutor) *TareaHandler {
	return &TareaHandler{ejecutor: ejecutor}
}

// Estado devuelve el avance de la tarea por id.
func (h *TareaHandler) Estado(c *fiber.Ctx) error {
	estado, ok := h.ejecutor.Estado(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la tarea no existe"})
	}
	return c.JSON(dto.TareaEstadoResponse{
		TareaID:   estado.ID,
		Nombre:    estado.Nombre,
		Avance:    estado.Avance,
		Mensaje:   estado.Mensaje,
		Terminada: estado.Terminada,
		ConError:  estado.ConError,
	})
}
