package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

var _ repository.TabuladorRepository = (*TabuladorRepo)(nil)

// TabuladorRepo implementación de TabuladorRepository.
type TabuladorRepo struct {
	q Querier
}

func NewTabuladorRepository(q Querier) *TabuladorRepo {
	return &TabuladorRepo{q: q}
}

// ObtenerPorLlave devuelve el renglón salarial único por (puesto, modelo,
// nivel, quinquenio) o nil si no está definido.
func (r *TabuladorRepo) ObtenerPorLlave(ctx context.Context, puestoClave string, modelo, nivel, quinquenio int) (*entity.Tabulador, error) {
	query := `
		SELECT id, puesto_clave, modelo, nivel, quinquenio,
		       sueldo, incentivo, monedero_electronico, recreacion_cultural,
		       ayuda_transporte, quinquenio_importe, estatus, creado, modificado
		FROM tabuladores
		WHERE puesto_clave = $1 AND modelo = $2 AND nivel = $3 AND quinquenio = $4 AND estatus = 'A'`
	var t entity.Tabulador
	err := r.q.QueryRow(ctx, query, puestoClave, modelo, nivel, quinquenio).Scan(
		&t.ID, &t.PuestoClave, &t.Modelo, &t.Nivel, &t.Quinquenio,
		&t.Sueldo, &t.Incentivo, &t.MonederoElectronico, &t.RecreacionCultural,
		&t.AyudaTransporte, &t.QuinquenioImporte, &t.Estatus, &t.CreadoEn, &t.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar tabulador: %w", err)
	}
	return &t, nil
}
