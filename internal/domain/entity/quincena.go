package entity

import "time"

// Estados de una quincena. Una quincena ABIERTA admite corridas de generación
// que mutan consecutivos; una CERRADA es inmutable salvo reapertura administrativa.
const (
	QuincenaEstadoAbierta = "ABIERTA"
	QuincenaEstadoCerrada = "CERRADA"
)

// Estatus genérico de registros (alta/baja lógica).
const (
	EstatusActivo = "A"
	EstatusBaja   = "B"
)

// Quincena es el periodo de pago quincenal, con clave de seis dígitos YYYYNN
// (NN = 1..24, índice de quincena dentro del año).
type Quincena struct {
	ID      int64
	Clave   string
	Estado  string // ABIERTA | CERRADA
	Estatus string // A | B

	// Banderas de corridas especiales ya explotadas en el periodo.
	TieneAguinaldos        bool
	TieneApoyosAnuales     bool
	TienePrimasVacacionales bool

	CreadoEn      time.Time
	ActualizadoEn time.Time
}

// EstaAbierta indica si la quincena admite operaciones que mutan datos.
func (q *Quincena) EstaAbierta() bool {
	return q.Estado == QuincenaEstadoAbierta && q.Estatus == EstatusActivo
}
