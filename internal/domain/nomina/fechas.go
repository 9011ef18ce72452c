package nomina

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain"
)

var claveQuincenaRegexp = regexp.MustCompile(`^\d{6}$`)

// ValidarClave verifica que la clave de quincena tenga el formato YYYYNN con
// año en (1950, año actual + 1] y número de quincena en 1..24.
func ValidarClave(clave string) error {
	if !claveQuincenaRegexp.MatchString(clave) {
		return fmt.Errorf("%w: %q no cumple el formato YYYYNN", domain.ErrClaveInvalida, clave)
	}
	anio, _ := strconv.Atoi(clave[:4])
	num, _ := strconv.Atoi(clave[4:])
	if anio <= 1950 || anio > time.Now().Year()+1 {
		return fmt.Errorf("%w: año %d fuera de rango", domain.ErrClaveInvalida, anio)
	}
	if num < 1 || num > 24 {
		return fmt.Errorf("%w: quincena %d fuera de 1..24", domain.ErrClaveInvalida, num)
	}
	return nil
}

// QuincenaAFecha traduce una clave YYYYNN al primer o último día natural del
// periodo. La quincena NN cae en el mes ceil(NN/2): las impares son la primera
// mitad del mes (día 1 al 15) y las pares la segunda (día 16 al fin de mes).
func QuincenaAFecha(clave string, ultimoDia bool) (time.Time, error) {
	if err := ValidarClave(clave); err != nil {
		return time.Time{}, err
	}
	anio, _ := strconv.Atoi(clave[:4])
	num, _ := strconv.Atoi(clave[4:])

	mes := (num + 1) / 2
	esPrimeraMitad := num%2 == 1

	var dia int
	switch {
	case esPrimeraMitad && !ultimoDia:
		dia = 1
	case esPrimeraMitad && ultimoDia:
		dia = 15
	case !esPrimeraMitad && !ultimoDia:
		dia = 16
	default:
		dia = ultimoDiaDelMes(anio, time.Month(mes))
	}

	return time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, time.UTC), nil
}

// ultimoDiaDelMes devuelve el último día natural del mes (28, 29, 30 o 31).
func ultimoDiaDelMes(anio int, mes time.Month) int {
	// Día cero del mes siguiente.
	return time.Date(anio, mes+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
