package nomina

import "time"

// QuinquenioMaximo es el nivel máximo de antigüedad definido en el tabulador.
const QuinquenioMaximo = 6

// CantidadQuinquenios calcula el nivel de antigüedad (0..6) de una persona:
// un quinquenio por cada cinco años cumplidos entre la fecha de ingreso y la
// fecha de referencia. Nunca negativo; si el ingreso es posterior a la
// referencia el resultado es 0.
func CantidadQuinquenios(ingreso, referencia time.Time) int {
	if !ingreso.Before(referencia) {
		return 0
	}
	anios := referencia.Year() - ingreso.Year()
	// Ajustar si aún no llega el aniversario en el año de referencia.
	aniversario := time.Date(referencia.Year(), ingreso.Month(), ingreso.Day(), 0, 0, 0, 0, time.UTC)
	if aniversario.After(referencia) {
		anios--
	}
	if anios < 0 {
		return 0
	}
	quinquenios := anios / 5
	if quinquenios > QuinquenioMaximo {
		return QuinquenioMaximo
	}
	return quinquenios
}
