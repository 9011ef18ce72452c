package entity

import "time"

// Cuenta es una cuenta bancaria de una persona. Una persona puede tener varias
// cuentas activas a la vez, típicamente una de nómina y una de monedero (banco
// con la clave reservada del monedero).
type Cuenta struct {
	ID        int64
	PersonaID int64
	BancoID   int64
	NumCuenta string
	Estatus   string

	Banco *Banco

	CreadoEn      time.Time
	ActualizadoEn time.Time
}

// EstaActiva indica si la cuenta está en alta.
func (c *Cuenta) EstaActiva() bool {
	return c.Estatus == EstatusActivo
}
