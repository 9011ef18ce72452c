package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

var _ repository.QuincenaRepository = (*QuincenaRepo)(nil)

// QuincenaRepo implementación de QuincenaRepository (usable con pool o tx).
type QuincenaRepo struct {
	q Querier
}

// NewQuincenaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuincenaRepository(q Querier) *QuincenaRepo {
	return &QuincenaRepo{q: q}
}

// ObtenerPorClave obtiene la quincena o nil si no existe.
func (r *QuincenaRepo) ObtenerPorClave(ctx context.Context, clave string) (*entity.Quincena, error) {
	query := `
		SELECT id, clave, estado, estatus,
		       tiene_aguinaldos, tiene_apoyos_anuales, tiene_primas_vacacionales,
		       creado, modificado
		FROM quincenas WHERE clave = $1`
	var q entity.Quincena
	err := r.q.QueryRow(ctx, query, clave).Scan(
		&q.ID, &q.Clave, &q.Estado, &q.Estatus,
		&q.TieneAguinaldos, &q.TieneApoyosAnuales, &q.TienePrimasVacacionales,
		&q.CreadoEn, &q.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quincena: %w", err)
	}
	return &q, nil
}

// Crear da de alta una quincena.
func (r *QuincenaRepo) Crear(ctx context.Context, quincena *entity.Quincena) error {
	query := `
		INSERT INTO quincenas (clave, estado, estatus, tiene_aguinaldos, tiene_apoyos_anuales, tiene_primas_vacacionales, creado, modificado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		quincena.Clave, quincena.Estado, quincena.Estatus,
		quincena.TieneAguinaldos, quincena.TieneApoyosAnuales, quincena.TienePrimasVacacionales,
		quincena.CreadoEn, quincena.ActualizadoEn,
	).Scan(&quincena.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("la quincena %s ya existe: %w", quincena.Clave, err)
		}
		return fmt.Errorf("insert quincena: %w", err)
	}
	return nil
}

// ActualizarEstado cambia el estado (ABIERTA/CERRADA).
func (r *QuincenaRepo) ActualizarEstado(ctx context.Context, id int64, estado string) error {
	query := `UPDATE quincenas SET estado = $2, modificado = NOW() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id, estado); err != nil {
		return fmt.Errorf("update estado quincena: %w", err)
	}
	return nil
}

// Listar devuelve las quincenas activas, la más reciente primero.
func (r *QuincenaRepo) Listar(ctx context.Context) ([]entity.Quincena, error) {
	query := `
		SELECT id, clave, estado, estatus,
		       tiene_aguinaldos, tiene_apoyos_anuales, tiene_primas_vacacionales,
		       creado, modificado
		FROM quincenas WHERE estatus = 'A' ORDER BY clave DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list quincenas: %w", err)
	}
	defer rows.Close()

	var quincenas []entity.Quincena
	for rows.Next() {
		var q entity.Quincena
		if err := rows.Scan(
			&q.ID, &q.Clave, &q.Estado, &q.Estatus,
			&q.TieneAguinaldos, &q.TieneApoyosAnuales, &q.TienePrimasVacacionales,
			&q.CreadoEn, &q.ActualizadoEn,
		); err != nil {
			return nil, fmt.Errorf("scan quincena: %w", err)
		}
		quincenas = append(quincenas, q)
	}
	return quincenas, rows.Err()
}
