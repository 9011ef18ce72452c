package entity

import "time"

// Fuentes de productos de quincena (nombre del generador que produjo el artefacto).
const (
	FuenteNominas                 = "NOMINAS"
	FuenteMonederos               = "MONEDEROS"
	FuenteAguinaldos              = "AGUINALDOS"
	FuentePensionados             = "PENSIONADOS"
	FuenteDispersionesPensionados = "DISPERSIONES PENSIONADOS"
)

// QuincenaProducto es el manifiesto de un artefacto generado para una quincena:
// archivo, URL pública (si hubo subida a objetos), advertencias acumuladas de la
// corrida y si esta fue totalmente satisfactoria (cero advertencias).
// Se hace upsert de un registro por corrida; el historial es append-only.
type QuincenaProducto struct {
	ID         int64
	QuincenaID int64
	Fuente     string
	Archivo    string
	URLPublica string
	// Mensajes advertencias de la corrida unidas por salto de línea.
	Mensajes        string
	EsSatisfactorio bool
	Estatus         string

	CreadoEn      time.Time
	ActualizadoEn time.Time
}
