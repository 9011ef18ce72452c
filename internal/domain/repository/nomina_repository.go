package repository

import (
	"context"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
)

// NominaRepository puerto de persistencia de renglones de nómina.
type NominaRepository interface {
	// ListarActivasPorQuincenaYTipo devuelve los renglones activos de la
	// quincena y tipo con la persona cargada, en orden de id ascendente
	// (el orden de emisión de los artefactos).
	ListarActivasPorQuincenaYTipo(ctx context.Context, quincenaID int64, tipo string) ([]entity.Nomina, error)
	// UltimaActivaPorRFCQuincenaTipo devuelve el renglón activo más reciente
	// (id descendente, límite 1) para la llave de conciliación de timbrados,
	// o nil si no hay coincidencia.
	UltimaActivaPorRFCQuincenaTipo(ctx context.Context, rfc, quincenaClave, tipo string) (*entity.Nomina, error)
	// ActualizarNumCheque persiste el número de cheque asignado durante la explotación.
	ActualizarNumCheque(ctx context.Context, nominaID int64, numCheque string) error
}
