package repository

import (
	"context"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
)

// TimbradoRepository puerto de persistencia de sellos fiscales.
type TimbradoRepository interface {
	// ObtenerActivoPorNomina devuelve el timbrado activo de la nómina o nil.
	ObtenerActivoPorNomina(ctx context.Context, nominaID int64) (*entity.Timbrado, error)
	Crear(ctx context.Context, timbrado *entity.Timbrado) error
	Actualizar(ctx context.Context, timbrado *entity.Timbrado) error
	// DarDeBaja marca el timbrado con estatus B (al ser reemplazado por uno nuevo).
	DarDeBaja(ctx context.Context, id int64) error
}
