package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

var _ repository.NominaRepository = (*NominaRepo)(nil)

// NominaRepo implementación de NominaRepository (usable con pool o tx).
type NominaRepo struct {
	q Querier
}

// NewNominaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNominaRepository(q Querier) *NominaRepo {
	return &NominaRepo{q: q}
}

const columnasNominaConPersona = `
	n.id, n.persona_id, n.quincena_id, n.tipo, n.percepcion, n.deduccion, n.importe,
	COALESCE(n.num_cheque, ''), n.centro_trabajo_clave, n.plaza_clave, n.estatus, n.creado, n.modificado,
	p.id, p.rfc, p.num_empleado, p.nombres, p.apellido_primero, COALESCE(p.apellido_segundo, ''),
	COALESCE(p.curp, ''), p.modelo, p.ingreso_pj_fecha, p.estatus`

func escanearNominaConPersona(row pgx.Row) (*entity.Nomina, error) {
	var n entity.Nomina
	var p entity.Persona
	err := row.Scan(
		&n.ID, &n.PersonaID, &n.QuincenaID, &n.Tipo, &n.Percepcion, &n.Deduccion, &n.Importe,
		&n.NumCheque, &n.CentroTrabajoClave, &n.PlazaClave, &n.Estatus, &n.CreadoEn, &n.ActualizadoEn,
		&p.ID, &p.RFC, &p.NumEmpleado, &p.Nombres, &p.ApellidoPrimero, &p.ApellidoSegundo,
		&p.CURP, &p.Modelo, &p.IngresoPJFecha, &p.Estatus,
	)
	if err != nil {
		return nil, err
	}
	n.Persona = &p
	return &n, nil
}

// ListarActivasPorQuincenaYTipo devuelve los renglones activos con la persona
// cargada, en orden de id ascendente (el orden de emisión del artefacto).
func (r *NominaRepo) ListarActivasPorQuincenaYTipo(ctx context.Context, quincenaID int64, tipo string) ([]entity.Nomina, error) {
	query := `
		SELECT ` + columnasNominaConPersona + `
		FROM nominas n
		JOIN personas p ON p.id = n.persona_id
		WHERE n.quincena_id = $1 AND n.tipo = $2 AND n.estatus = 'A'
		ORDER BY n.id`
	rows, err := r.q.Query(ctx, query, quincenaID, tipo)
	if err != nil {
		return nil, fmt.Errorf("list nominas: %w", err)
	}
	defer rows.Close()

	var nominas []entity.Nomina
	for rows.Next() {
		n, err := escanearNominaConPersona(rows)
		if err != nil {
			return nil, fmt.Errorf("scan nomina: %w", err)
		}
		nominas = append(nominas, *n)
	}
	return nominas, rows.Err()
}

// UltimaActivaPorRFCQuincenaTipo devuelve el renglón activo más reciente para
// la llave (RFC, quincena, tipo) o nil. En empates gana el id más alto.
func (r *NominaRepo) UltimaActivaPorRFCQuincenaTipo(ctx context.Context, rfc, quincenaClave, tipo string) (*entity.Nomina, error) {
	query := `
		SELECT ` + columnasNominaConPersona + `
		FROM nominas n
		JOIN personas p ON p.id = n.persona_id
		JOIN quincenas q ON q.id = n.quincena_id
		WHERE p.rfc = $1 AND q.clave = $2 AND n.tipo = $3 AND n.estatus = 'A'
		ORDER BY n.id DESC
		LIMIT 1`
	n, err := escanearNominaConPersona(r.q.QueryRow(ctx, query, rfc, quincenaClave, tipo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar nomina por RFC: %w", err)
	}
	return n, nil
}

// ActualizarNumCheque persiste el número de cheque asignado en la explotación.
func (r *NominaRepo) ActualizarNumCheque(ctx context.Context, nominaID int64, numCheque string) error {
	query := `UPDATE nominas SET num_cheque = $2, modificado = NOW() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, nominaID, numCheque); err != nil {
		return fmt.Errorf("update num_cheque: %w", err)
	}
	return nil
}
