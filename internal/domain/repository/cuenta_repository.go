package repository

import (
	"context"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
)

// CuentaRepository puerto de persistencia de cuentas bancarias.
type CuentaRepository interface {
	// ListarActivasPorPersona devuelve las cuentas activas de la persona con
	// su banco, en orden estable (id ascendente).
	ListarActivasPorPersona(ctx context.Context, personaID int64) ([]entity.Cuenta, error)
	// BuscarDuplicadas devuelve las cuentas activas de OTRAS personas con el
	// mismo (banco, número de cuenta). No vacío = anomalía a reportar; el
	// renglón se emite de todas formas con advertencia.
	BuscarDuplicadas(ctx context.Context, cuenta entity.Cuenta) ([]entity.Cuenta, error)
}
