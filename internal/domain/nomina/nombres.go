package nomina

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// LimpiarNombre normaliza un nombre para archivos bancarios: mayúsculas, sin
// acentos ni diéresis y con espacios colapsados. Los layouts de dispersión
// rechazan caracteres fuera de ASCII.
func LimpiarNombre(nombre string) string {
	limpio, _, err := transform.String(quitarDiacriticos, nombre)
	if err != nil {
		limpio = nombre
	}
	limpio = strings.ToUpper(limpio)
	return strings.Join(strings.Fields(limpio), " ")
}
