package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PJECZ/pjecz-perseo-api/internal/application/generadores"
	"github.com/PJECZ/pjecz-perseo-api/internal/application/quincenas"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

// Ensure TxRunner implements generadores.TxRunner y quincenas.CierreTxRunner.
var _ generadores.TxRunner = (*TxRunner)(nil)
var _ quincenas.CierreTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunGeneracion inicia una transacción con los repos de una corrida de
// generación y hace Commit o Rollback. Una corrida entera es una transacción:
// los incrementos de consecutivos se confirman junto con los renglones.
func (r *TxRunner) RunGeneracion(ctx context.Context, fn func(
	quincenaRepo repository.QuincenaRepository,
	nominaRepo repository.NominaRepository,
	cuentaRepo repository.CuentaRepository,
	bancoRepo repository.BancoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewQuincenaRepository(tx),
		NewNominaRepository(tx),
		NewCuentaRepository(tx),
		NewBancoRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCierre inicia una transacción con los repos del cierre de quincena
// (estado + sincronización de contadores, atómicos frente a corridas).
func (r *TxRunner) RunCierre(ctx context.Context, fn func(
	quincenaRepo repository.QuincenaRepository,
	bancoRepo repository.BancoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewQuincenaRepository(tx), NewBancoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
