package postgres

import (
	"context"
	"fmt"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

var _ repository.BancoRepository = (*BancoRepo)(nil)

// BancoRepo implementación de BancoRepository (usable con pool o tx).
type BancoRepo struct {
	q Querier
}

// NewBancoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBancoRepository(q Querier) *BancoRepo {
	return &BancoRepo{q: q}
}

// ListarActivos devuelve los bancos en alta, por clave.
func (r *BancoRepo) ListarActivos(ctx context.Context) ([]entity.Banco, error) {
	query := `
		SELECT id, clave, nombre, clave_dispersion_pensionados, consecutivo, consecutivo_generado, estatus, creado, modificado
		FROM bancos WHERE estatus = 'A' ORDER BY clave`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bancos: %w", err)
	}
	defer rows.Close()

	var bancos []entity.Banco
	for rows.Next() {
		var b entity.Banco
		if err := rows.Scan(
			&b.ID, &b.Clave, &b.Nombre, &b.ClaveDispersionPensionados,
			&b.Consecutivo, &b.ConsecutivoGenerado, &b.Estatus, &b.CreadoEn, &b.ActualizadoEn,
		); err != nil {
			return nil, fmt.Errorf("scan banco: %w", err)
		}
		bancos = append(bancos, b)
	}
	return bancos, rows.Err()
}

// SiguienteConsecutivo incrementa consecutivo_generado de forma atómica y
// devuelve el valor incrementado. El UPDATE toma el candado del renglón: dos
// corridas concurrentes sobre el mismo banco se serializan y nunca comparten
// un número de cheque.
func (r *BancoRepo) SiguienteConsecutivo(ctx context.Context, bancoID int64) (int64, error) {
	query := `
		UPDATE bancos
		SET consecutivo_generado = consecutivo_generado + 1, modificado = NOW()
		WHERE id = $1
		RETURNING consecutivo_generado`
	var consecutivo int64
	if err := r.q.QueryRow(ctx, query, bancoID).Scan(&consecutivo); err != nil {
		return 0, fmt.Errorf("incrementar consecutivo del banco %d: %w", bancoID, err)
	}
	return consecutivo, nil
}

// ReiniciarConsecutivosGenerados regresa consecutivo_generado al último valor
// finalizado en todos los bancos activos (arranque de una corrida de monedero).
func (r *BancoRepo) ReiniciarConsecutivosGenerados(ctx context.Context) error {
	query := `UPDATE bancos SET consecutivo_generado = consecutivo, modificado = NOW() WHERE estatus = 'A'`
	if _, err := r.q.Exec(ctx, query); err != nil {
		return fmt.Errorf("reiniciar consecutivos: %w", err)
	}
	return nil
}

// SincronizarConsecutivos finaliza los contadores al cerrar la quincena:
// consecutivo := consecutivo_generado en todos los bancos activos.
func (r *BancoRepo) SincronizarConsecutivos(ctx context.Context) error {
	query := `UPDATE bancos SET consecutivo = consecutivo_generado, modificado = NOW() WHERE estatus = 'A'`
	if _, err := r.q.Exec(ctx, query); err != nil {
		return fmt.Errorf("sincronizar consecutivos: %w", err)
	}
	return nil
}
