package repository

import (
	"context"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
)

// TabuladorRepository puerto de consulta de la tabla salarial.
type TabuladorRepository interface {
	// ObtenerPorLlave devuelve el renglón único por (puesto, modelo, nivel,
	// quinquenio) o nil si no está definido.
	ObtenerPorLlave(ctx context.Context, puestoClave string, modelo, nivel, quinquenio int) (*entity.Tabulador, error)
}
