package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de nómina. Corresponden a corridas distintas dentro de la misma quincena.
const (
	NominaTipoSalario         = "SALARIO"
	NominaTipoDespensa        = "DESPENSA"
	NominaTipoAguinaldo       = "AGUINALDO"
	NominaTipoApoyoAnual      = "APOYO ANUAL"
	NominaTipoPrimaVacacional = "PRIMA VACACIONAL"
)

// Nomina es un renglón de percepción/deducción de una persona en una quincena.
// Importe = Percepcion - Deduccion es una expectativa de negocio, no una
// restricción de la base de datos.
type Nomina struct {
	ID         int64
	PersonaID  int64
	QuincenaID int64
	Tipo       string
	Percepcion decimal.Decimal
	Deduccion  decimal.Decimal
	Importe    decimal.Decimal
	// NumCheque se asigna de forma diferida durante la explotación; puede
	// persistirse de vuelta o quedar solo en el artefacto.
	NumCheque string

	CentroTrabajoClave string
	PlazaClave         string

	Persona *Persona
	Estatus string

	CreadoEn      time.Time
	ActualizadoEn time.Time
}
