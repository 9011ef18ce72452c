package generadores

import (
	"context"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

// TxRunner ejecuta una corrida de generación dentro de una sola transacción:
// la construcción de filas, los incrementos de consecutivos y la escritura del
// artefacto local deben confirmarse o revertirse juntos (un commit por corrida,
// nunca por renglón, para que una caída no deje cheques a medio asignar).
type TxRunner interface {
	RunGeneracion(ctx context.Context, fn func(
		quincenaRepo repository.QuincenaRepository,
		nominaRepo repository.NominaRepository,
		cuentaRepo repository.CuentaRepository,
		bancoRepo repository.BancoRepository,
	) error) error
}

// EscritorTabular serializa encabezado y filas a un libro tabular en disco.
type EscritorTabular interface {
	Escribir(ruta string, encabezado []string, filas [][]any) error
}
