package repository

import (
	"context"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
)

// BancoRepository puerto de persistencia del catálogo de bancos y sus
// contadores de cheques.
type BancoRepository interface {
	// ListarActivos devuelve los bancos en alta, por clave.
	ListarActivos(ctx context.Context) ([]entity.Banco, error)
	// SiguienteConsecutivo incrementa consecutivo_generado del banco de forma
	// atómica (UPDATE ... RETURNING, el candado de renglón serializa corridas
	// concurrentes) y devuelve el valor ya incrementado.
	SiguienteConsecutivo(ctx context.Context, bancoID int64) (int64, error)
	// ReiniciarConsecutivosGenerados regresa consecutivo_generado al último
	// valor finalizado (consecutivo) en todos los bancos activos. Solo las
	// corridas de monedero reinician; las demás componen aditivamente.
	ReiniciarConsecutivosGenerados(ctx context.Context) error
	// SincronizarConsecutivos finaliza la quincena: consecutivo :=
	// consecutivo_generado en todos los bancos activos.
	SincronizarConsecutivos(ctx context.Context) error
}
