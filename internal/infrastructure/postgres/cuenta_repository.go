package postgres

import (
	"context"
	"fmt"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

var _ repository.CuentaRepository = (*CuentaRepo)(nil)

// CuentaRepo implementación de CuentaRepository (usable con pool o tx).
type CuentaRepo struct {
	q Querier
}

// NewCuentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCuentaRepository(q Querier) *CuentaRepo {
	return &CuentaRepo{q: q}
}

// ListarActivasPorPersona devuelve las cuentas activas de la persona con su
// banco, en orden estable de id: la selección de cuenta pagable depende de
// este orden.
func (r *CuentaRepo) ListarActivasPorPersona(ctx context.Context, personaID int64) ([]entity.Cuenta, error) {
	query := `
		SELECT c.id, c.persona_id, c.banco_id, c.num_cuenta, c.estatus, c.creado, c.modificado,
		       b.id, b.clave, b.nombre, b.clave_dispersion_pensionados, b.consecutivo, b.consecutivo_generado, b.estatus
		FROM cuentas c
		JOIN bancos b ON b.id = c.banco_id
		WHERE c.persona_id = $1 AND c.estatus = 'A'
		ORDER BY c.id`
	rows, err := r.q.Query(ctx, query, personaID)
	if err != nil {
		return nil, fmt.Errorf("list cuentas: %w", err)
	}
	defer rows.Close()

	var cuentas []entity.Cuenta
	for rows.Next() {
		var c entity.Cuenta
		var b entity.Banco
		if err := rows.Scan(
			&c.ID, &c.PersonaID, &c.BancoID, &c.NumCuenta, &c.Estatus, &c.CreadoEn, &c.ActualizadoEn,
			&b.ID, &b.Clave, &b.Nombre, &b.ClaveDispersionPensionados, &b.Consecutivo, &b.ConsecutivoGenerado, &b.Estatus,
		); err != nil {
			return nil, fmt.Errorf("scan cuenta: %w", err)
		}
		c.Banco = &b
		cuentas = append(cuentas, c)
	}
	return cuentas, rows.Err()
}

// BuscarDuplicadas devuelve las cuentas activas de OTRAS personas con el mismo
// (banco, número de cuenta).
func (r *CuentaRepo) BuscarDuplicadas(ctx context.Context, cuenta entity.Cuenta) ([]entity.Cuenta, error) {
	query := `
		SELECT id, persona_id, banco_id, num_cuenta, estatus, creado, modificado
		FROM cuentas
		WHERE banco_id = $1 AND num_cuenta = $2 AND persona_id <> $3 AND estatus = 'A'
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, cuenta.BancoID, cuenta.NumCuenta, cuenta.PersonaID)
	if err != nil {
		return nil, fmt.Errorf("buscar duplicadas: %w", err)
	}
	defer rows.Close()

	var duplicadas []entity.Cuenta
	for rows.Next() {
		var c entity.Cuenta
		if err := rows.Scan(&c.ID, &c.PersonaID, &c.BancoID, &c.NumCuenta, &c.Estatus, &c.CreadoEn, &c.ActualizadoEn); err != nil {
			return nil, fmt.Errorf("scan duplicada: %w", err)
		}
		duplicadas = append(duplicadas, c)
	}
	return duplicadas, rows.Err()
}
