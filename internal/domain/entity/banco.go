package entity

import "time"

// Banco catálogo de bancos con los contadores de cheques.
//
// Invariante: ConsecutivoGenerado >= Consecutivo siempre. Durante una quincena
// abierta las corridas incrementan ConsecutivoGenerado; al cerrar la quincena
// se finaliza con Consecutivo := ConsecutivoGenerado para todos los bancos activos.
type Banco struct {
	ID     int64
	Clave  string // clave de ruteo, 1 o 2 dígitos
	Nombre string
	// ClaveDispersionPensionados código SAT/bancario usado en los archivos de
	// dispersión de pensionados (columna BANCO RECEPTOR).
	ClaveDispersionPensionados string
	// Consecutivo último consecutivo de cheque finalizado (cierre de quincena).
	Consecutivo int64
	// ConsecutivoGenerado consecutivo en vuelo de las corridas de la quincena abierta.
	ConsecutivoGenerado int64
	Estatus             string

	CreadoEn      time.Time
	ActualizadoEn time.Time
}
