package quincenas

import (
	"context"
	"fmt"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

// CierreTxRunner ejecuta el cierre dentro de una transacción con los
// repositorios atados a la tx: el cambio de estado y la sincronización de
// contadores deben ser atómicos frente a corridas de explotación concurrentes.
type CierreTxRunner interface {
	RunCierre(ctx context.Context, fn func(
		quincenaRepo repository.QuincenaRepository,
		bancoRepo repository.BancoRepository,
	) error) error
}

// Cierre cierra una quincena: estado CERRADA y consecutivo := consecutivo_generado
// en todos los bancos activos. Una vez cerrada, la quincena es inmutable salvo
// reapertura administrativa.
type Cierre struct {
	txRunner CierreTxRunner
}

// NewCierre construye el caso de uso de cierre.
func NewCierre(txRunner CierreTxRunner) *Cierre {
	return &Cierre{txRunner: txRunner}
}

// CerrarQuincena valida que la quincena esté abierta y la cierra en una sola
// transacción.
func (c *Cierre) CerrarQuincena(ctx context.Context, clave string) error {
	return c.txRunner.RunCierre(ctx, func(
		quincenaRepo repository.QuincenaRepository,
		bancoRepo repository.BancoRepository,
	) error {
		quincena, err := ResolverAbiertaCon(ctx, quincenaRepo, clave)
		if err != nil {
			return err
		}
		if err := quincenaRepo.ActualizarEstado(ctx, quincena.ID, entity.QuincenaEstadoCerrada); err != nil {
			return fmt.Errorf("cerrar quincena %s: %w", clave, err)
		}
		if err := bancoRepo.SincronizarConsecutivos(ctx); err != nil {
			return fmt.Errorf("sincronizar consecutivos: %w", err)
		}
		return nil
	})
}
