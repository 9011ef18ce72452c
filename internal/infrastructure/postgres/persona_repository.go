package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

var _ repository.PersonaRepository = (*PersonaRepo)(nil)

// PersonaRepo implementación de PersonaRepository.
type PersonaRepo struct {
	q Querier
}

func NewPersonaRepository(q Querier) *PersonaRepo {
	return &PersonaRepo{q: q}
}

// ObtenerPorRFC devuelve la persona o nil si no existe.
func (r *PersonaRepo) ObtenerPorRFC(ctx context.Context, rfc string) (*entity.Persona, error) {
	query := `
		SELECT id, rfc, num_empleado, nombres, apellido_primero, COALESCE(apellido_segundo, ''),
		       COALESCE(curp, ''), modelo, ingreso_pj_fecha, estatus, creado, modificado
		FROM personas
		WHERE rfc = $1`
	var p entity.Persona
	err := r.q.QueryRow(ctx, query, rfc).Scan(
		&p.ID, &p.RFC, &p.NumEmpleado, &p.Nombres, &p.ApellidoPrimero, &p.ApellidoSegundo,
		&p.CURP, &p.Modelo, &p.IngresoPJFecha, &p.Estatus, &p.CreadoEn, &p.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar persona: %w", err)
	}
	return &p, nil
}
