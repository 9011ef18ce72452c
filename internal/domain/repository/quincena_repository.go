package repository

import (
	"context"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
)

// QuincenaRepository puerto de persistencia del catálogo de quincenas.
type QuincenaRepository interface {
	// ObtenerPorClave devuelve la quincena o nil si no existe.
	ObtenerPorClave(ctx context.Context, clave string) (*entity.Quincena, error)
	// Crear da de alta una quincena (la ingesta la crea ABIERTA al ver una clave nueva).
	Crear(ctx context.Context, quincena *entity.Quincena) error
	// ActualizarEstado cambia el estado (ABIERTA/CERRADA) de la quincena.
	ActualizarEstado(ctx context.Context, id int64, estado string) error
	// Listar devuelve las quincenas activas, la más reciente primero.
	Listar(ctx context.Context) ([]entity.Quincena, error)
}
