package repository

import (
	"context"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
)

// QuincenaProductoRepository puerto de persistencia de manifiestos de artefactos.
type QuincenaProductoRepository interface {
	// Guardar hace upsert: inserta si ID es cero, actualiza en caso contrario.
	Guardar(ctx context.Context, producto *entity.QuincenaProducto) error
	// ListarPorQuincena devuelve los manifiestos activos de la quincena, el
	// más reciente primero.
	ListarPorQuincena(ctx context.Context, quincenaID int64) ([]entity.QuincenaProducto, error)
}
