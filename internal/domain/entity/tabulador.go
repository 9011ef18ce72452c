package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tabulador renglón de la tabla salarial, único por (puesto, modelo, nivel,
// quinquenio). Es insumo de consulta para la ingesta de nóminas; el núcleo de
// explotación no lo muta.
type Tabulador struct {
	ID          int64
	PuestoClave string
	Modelo      int
	Nivel       int
	Quinquenio  int

	Sueldo              decimal.Decimal
	Incentivo           decimal.Decimal
	MonederoElectronico decimal.Decimal
	RecreacionCultural  decimal.Decimal
	AyudaTransporte     decimal.Decimal
	QuinquenioImporte   decimal.Decimal

	Estatus       string
	CreadoEn      time.Time
	ActualizadoEn time.Time
}
