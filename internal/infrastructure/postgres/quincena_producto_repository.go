package postgres

import (
	"context"
	"fmt"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

var _ repository.QuincenaProductoRepository = (*QuincenaProductoRepo)(nil)

// QuincenaProductoRepo implementación de QuincenaProductoRepository.
type QuincenaProductoRepo struct {
	q Querier
}

func NewQuincenaProductoRepository(q Querier) *QuincenaProductoRepo {
	return &QuincenaProductoRepo{q: q}
}

// Guardar inserta el manifiesto si su ID es cero; actualiza en caso contrario.
func (r *QuincenaProductoRepo) Guardar(ctx context.Context, producto *entity.QuincenaProducto) error {
	if producto.ID == 0 {
		query := `
			INSERT INTO quincenas_productos
				(quincena_id, fuente, archivo, url_publica, mensajes, es_satisfactorio, estatus, creado, modificado)
			VALUES ($1, $2, $3, $4, $5, $6, 'A', NOW(), NOW())
			RETURNING id, creado, modificado`
		err := r.q.QueryRow(ctx, query,
			producto.QuincenaID, producto.Fuente, producto.Archivo,
			nullIfEmpty(producto.URLPublica), producto.Mensajes, producto.EsSatisfactorio,
		).Scan(&producto.ID, &producto.CreadoEn, &producto.ActualizadoEn)
		if err != nil {
			return fmt.Errorf("insert quincena_producto: %w", err)
		}
		producto.Estatus = entity.EstatusActivo
		return nil
	}

	query := `
		UPDATE quincenas_productos
		SET archivo = $2, url_publica = $3, mensajes = $4, es_satisfactorio = $5, modificado = NOW()
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query,
		producto.ID, producto.Archivo, nullIfEmpty(producto.URLPublica),
		producto.Mensajes, producto.EsSatisfactorio,
	); err != nil {
		return fmt.Errorf("update quincena_producto: %w", err)
	}
	return nil
}

// ListarPorQuincena devuelve los manifiestos activos, el más reciente primero.
func (r *QuincenaProductoRepo) ListarPorQuincena(ctx context.Context, quincenaID int64) ([]entity.QuincenaProducto, error) {
	query := `
		SELECT id, quincena_id, fuente, archivo, COALESCE(url_publica, ''),
		       mensajes, es_satisfactorio, estatus, creado, modificado
		FROM quincenas_productos
		WHERE quincena_id = $1 AND estatus = 'A'
		ORDER BY id DESC`
	rows, err := r.q.Query(ctx, query, quincenaID)
	if err != nil {
		return nil, fmt.Errorf("list quincenas_productos: %w", err)
	}
	defer rows.Close()

	var productos []entity.QuincenaProducto
	for rows.Next() {
		var p entity.QuincenaProducto
		if err := rows.Scan(
			&p.ID, &p.QuincenaID, &p.Fuente, &p.Archivo, &p.URLPublica,
			&p.Mensajes, &p.EsSatisfactorio, &p.Estatus, &p.CreadoEn, &p.ActualizadoEn,
		); err != nil {
			return nil, fmt.Errorf("scan quincena_producto: %w", err)
		}
		productos = append(productos, p)
	}
	return productos, rows.Err()
}
