package generadores

import "github.com/shopspring/decimal"

// Registro es un renglón ya resuelto de una corrida: persona, cuenta elegida,
// cheque asignado y los campos derivados de la quincena. Cada generador
// proyecta de aquí las columnas de su artefacto.
type Registro struct {
	// Consecutivo índice de emisión dentro de la corrida, base 1.
	Consecutivo int

	QuincenaClave      string
	CentroTrabajoClave string
	PlazaClave         string

	RFC            string
	NombreCompleto string
	NumEmpleado    int
	Modelo         int

	BancoNombre          string
	BancoClave           string
	BancoClaveDispersion string
	NumCuenta            string

	Importe   decimal.Decimal
	NumCheque string

	// Campos de la dispersión de pensionados, iguales para toda la corrida.
	ReferenciaPago string
	ConceptoPago   string
}
