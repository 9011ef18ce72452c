package nomina

import "fmt"

// ReferenciaPago arma la referencia bancaria de la dispersión de pensionados:
// los dos últimos dígitos de la clave (número de quincena) seguidos de los
// caracteres 3 y 4 (los dos últimos del año).
func ReferenciaPago(clave string) (string, error) {
	if err := ValidarClave(clave); err != nil {
		return "", err
	}
	return clave[4:6] + clave[2:4], nil
}

// ConceptoPago arma el concepto de pago de la dispersión de pensionados.
func ConceptoPago(clave string) (string, error) {
	if err := ValidarClave(clave); err != nil {
		return "", err
	}
	return fmt.Sprintf("QUINCENA %s PENSIONADOS", clave[4:6]), nil
}
