package nomina

import "fmt"

// NumeroDeCheque formatea un número de cheque de exactamente nueve caracteres:
// clave del banco rellenada a dos dígitos seguida del consecutivo a siete.
// El consecutivo debe venir ya incrementado (BancoRepository.SiguienteConsecutivo).
func NumeroDeCheque(claveBanco string, consecutivo int64) string {
	clave := claveBanco
	if len(clave) < 2 {
		clave = "0" + clave
	}
	return fmt.Sprintf("%s%07d", clave, consecutivo)
}
