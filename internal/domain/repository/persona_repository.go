package repository

import (
	"context"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
)

// PersonaRepository puerto de persistencia de personas.
type PersonaRepository interface {
	// ObtenerPorRFC devuelve la persona o nil si no existe.
	ObtenerPorRFC(ctx context.Context, rfc string) (*entity.Persona, error)
}
