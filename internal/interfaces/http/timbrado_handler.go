package http

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/PJECZ/pjecz-perseo-api/internal/application/dto"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/timbrados"
)

// TimbradoHandler recibe lotes de XML timbrados y los concilia.
type TimbradoHandler struct {
	reconciliador *timbrados.Reconciliador
}

// NewTimbradoHandler construye el handler de timbrados.
func NewTimbradoHandler(reconciliador *timbrados.Reconciliador) *TimbradoHandler {
	return &TimbradoHandler{reconciliador: reconciliador}
}

// Conciliar recibe archivos XML por multipart (campo "archivos") y corre la
// conciliación de forma síncrona. Las fallas por archivo no abortan el lote:
// van en las categorías del resumen.
func (h *TimbradoHandler) Conciliar(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se espera multipart con el campo archivos"})
	}
	cabeceras := form.File["archivos"]
	if len(cabeceras) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ningún archivo en el campo archivos"})
	}

	archivos := make([]timbrados.Archivo, 0, len(cabeceras))
	for _, cabecera := range cabeceras {
		if !strings.HasSuffix(strings.ToLower(cabecera.Filename), ".xml") {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: cabecera.Filename + " no es XML"})
		}
		f, err := cabecera.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		contenido, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		archivos = append(archivos, timbrados.Archivo{Nombre: cabecera.Filename, Contenido: contenido})
	}

	resumen, err := h.reconciliador.ProcesarLote(c.Context(), archivos, nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.TimbradosResponse{
		Procesados:     resumen.Procesados,
		Actualizados:   resumen.Actualizados,
		SinCambios:     resumen.SinCambios,
		Advertencias:   resumen.Advertencias,
		SinNomina:      resumen.SinNomina,
		RFCNoCoinciden: resumen.RFCNoCoinciden,
	})
}
