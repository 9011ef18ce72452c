package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Taxonomía: los errores de validación y de precondición abortan la corrida
// antes de cualquier mutación; las condiciones por renglón (sin cuenta,
// cuenta duplicada, timbrado sin nómina) NO son errores: se acumulan como
// advertencias en el resultado de la corrida.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// Validación de claves de quincena (formato YYYYNN).
	ErrClaveInvalida = errors.New("clave de quincena inválida")
	// Precondiciones de la quincena.
	ErrQuincenaNoAbierta = errors.New("la quincena no está abierta")
	ErrQuincenaEliminada = errors.New("la quincena está eliminada")
	// Condición de cero resultados: distinta de un error de uso, indica un
	// hueco de datos en la fuente.
	ErrSinRegistros = errors.New("no hay registros de nómina que cumplan los filtros")

	// Selección de cuentas por persona (mutuamente excluyentes).
	ErrSinCuentas       = errors.New("la persona no tiene cuentas activas")
	ErrSinCuentaPagable = errors.New("la persona solo tiene cuentas de monedero")
	ErrSinCuentaMonedero = errors.New("la persona no tiene cuenta de monedero")
)
