package nomina

import (
	"github.com/PJECZ/pjecz-perseo-api/internal/domain"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
)

// SeleccionarCuentaPagable elige de forma determinista la cuenta de depósito de
// una persona: la primera cuenta activa (en el orden de entrada) cuyo banco no
// es el banco de monedero. Los modos de falla son mutuamente excluyentes:
// ErrSinCuentas si no hay ninguna cuenta activa, ErrSinCuentaPagable si solo
// existen cuentas del banco de monedero.
func SeleccionarCuentaPagable(cuentas []entity.Cuenta, claveBancoMonedero string) (entity.Cuenta, error) {
	hayActivas := false
	for _, cuenta := range cuentas {
		if !cuenta.EstaActiva() || cuenta.Banco == nil {
			continue
		}
		hayActivas = true
		if cuenta.Banco.Clave != claveBancoMonedero {
			return cuenta, nil
		}
	}
	if !hayActivas {
		return entity.Cuenta{}, domain.ErrSinCuentas
	}
	return entity.Cuenta{}, domain.ErrSinCuentaPagable
}

// SeleccionarCuentaMonedero elige la primera cuenta activa del banco de
// monedero (corridas de tarjeta prepagada). ErrSinCuentas si no hay cuentas
// activas, ErrSinCuentaMonedero si ninguna es del banco de monedero.
func SeleccionarCuentaMonedero(cuentas []entity.Cuenta, claveBancoMonedero string) (entity.Cuenta, error) {
	hayActivas := false
	for _, cuenta := range cuentas {
		if !cuenta.EstaActiva() || cuenta.Banco == nil {
			continue
		}
		hayActivas = true
		if cuenta.Banco.Clave == claveBancoMonedero {
			return cuenta, nil
		}
	}
	if !hayActivas {
		return entity.Cuenta{}, domain.ErrSinCuentas
	}
	return entity.Cuenta{}, domain.ErrSinCuentaMonedero
}
