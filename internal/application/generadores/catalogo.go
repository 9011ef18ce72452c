package generadores

import (
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	nominadom "github.com/PJECZ/pjecz-perseo-api/internal/domain/nomina"
	"github.com/PJECZ/pjecz-perseo-api/pkg/config"
)

// Claves de los generadores del catálogo (parámetro fuente de la API).
const (
	GeneradorNominas                 = "nominas"
	GeneradorMonederos               = "monederos"
	GeneradorAguinaldos              = "aguinaldos"
	GeneradorPensionados             = "pensionados"
	GeneradorDispersionesPensionados = "dispersiones_pensionados"
)

// ModoCuenta indica qué cuenta de la persona paga el renglón.
type ModoCuenta int

const (
	// CuentaPagable primera cuenta activa que no es del banco de monedero.
	CuentaPagable ModoCuenta = iota
	// CuentaMonedero primera cuenta activa del banco de monedero.
	CuentaMonedero
)

// Generador parametriza una corrida: los generadores difieren solo en datos
// (tipo de nómina, filtro de modelos, cuenta, encabezado y proyección), nunca
// en flujo de control.
type Generador struct {
	Fuente        string // fuente del manifiesto QuincenaProducto
	NombreArchivo string // raíz del nombre del artefacto
	TipoNomina    string
	ModoCuenta    ModoCuenta

	// FiltroModelos predicado sobre el modelo de la persona. El mapeo de
	// modelos viene de configuración: la fuente no lo aplica con consistencia
	// entre generadores y no se asume aquí.
	FiltroModelos func(modelo int) bool

	// ReiniciarConsecutivos regresa consecutivo_generado a consecutivo antes
	// de construir (solo corridas de monedero, para que una re-corrida
	// arranque de la base correcta).
	ReiniciarConsecutivos bool
	// AsignarCheques incrementa el consecutivo del banco por renglón.
	AsignarCheques bool
	// PersistirCheques escribe num_cheque de vuelta en el renglón de nómina.
	PersistirCheques bool
	// DeduplicarPorPersona emite a lo más un renglón por persona (corridas
	// especiales con renglones fuente duplicados).
	DeduplicarPorPersona bool

	Encabezado []string
	Proyectar  func(r Registro) []any
}

// Encabezados exactos de los artefactos (orden de columnas obligatorio).
var (
	EncabezadoNominas = []string{
		"QUINCENA", "CENTRO DE TRABAJO", "RFC", "NOMBRE COMPLETO",
		"NUMERO DE EMPLEADO", "MODELO", "PLAZA", "NOMBRE DEL BANCO",
		"BANCO ADMINISTRADOR", "NUMERO DE CUENTA", "MONTO A DEPOSITAR",
		"NO DE CHEQUE",
	}
	EncabezadoMonederos = []string{
		"CT_CLASIF", "RFC", "TOT NET CHEQUE", "NUM CHEQUE", "NUM TARJETA",
		"QUINCENA", "MODELO",
	}
	EncabezadoDispersiones = []string{
		"CONSECUTIVO", "FORMA DE PAGO", "TIPO DE CUENTA", "BANCO RECEPTOR",
		"CUENTA ABONO", "IMPORTE PAGO", "CLAVE BENEFICIARIO", "RFC", "NOMBRE",
		"REFERENCIA PAGO", "CONCEPTO PAGO",
	}
)

// Constantes del layout de dispersión bancaria de pensionados.
const (
	dispersionFormaDePago  = "04" // transferencia interbancaria
	dispersionTipoDeCuenta = "01" // cuenta de depósito
)

func proyectarNomina(r Registro) []any {
	return []any{
		r.QuincenaClave, r.CentroTrabajoClave, r.RFC, r.NombreCompleto,
		r.NumEmpleado, r.Modelo, r.PlazaClave, r.BancoNombre, r.BancoClave,
		r.NumCuenta, r.Importe.InexactFloat64(), r.NumCheque,
	}
}

func proyectarMonedero(r Registro) []any {
	return []any{
		r.CentroTrabajoClave, r.RFC, r.Importe.InexactFloat64(), r.NumCheque,
		r.NumCuenta, r.QuincenaClave, r.Modelo,
	}
}

func proyectarDispersion(r Registro) []any {
	return []any{
		r.Consecutivo, dispersionFormaDePago, dispersionTipoDeCuenta,
		r.BancoClaveDispersion, r.NumCuenta, r.Importe.InexactFloat64(),
		r.NumEmpleado, r.RFC, nominadom.LimpiarNombre(r.NombreCompleto),
		r.ReferenciaPago, r.ConceptoPago,
	}
}

// Catalogo arma los generadores disponibles a partir de la configuración de
// modelos. La llave es el parámetro fuente que recibe la API.
func Catalogo(cfg config.NominaConfig) map[string]Generador {
	noPensionados := func(modelo int) bool { return modelo != cfg.ModeloPensionado }
	soloPensionados := func(modelo int) bool { return modelo == cfg.ModeloPensionado }

	return map[string]Generador{
		GeneradorNominas: {
			Fuente:           entity.FuenteNominas,
			NombreArchivo:    "nominas",
			TipoNomina:       entity.NominaTipoSalario,
			ModoCuenta:       CuentaPagable,
			FiltroModelos:    noPensionados,
			AsignarCheques:   true,
			PersistirCheques: true,
			Encabezado:       EncabezadoNominas,
			Proyectar:        proyectarNomina,
		},
		GeneradorMonederos: {
			Fuente:                entity.FuenteMonederos,
			NombreArchivo:         "monederos",
			TipoNomina:            entity.NominaTipoDespensa,
			ModoCuenta:            CuentaMonedero,
			FiltroModelos:         noPensionados,
			ReiniciarConsecutivos: true,
			AsignarCheques:        true,
			PersistirCheques:      true,
			Encabezado:            EncabezadoMonederos,
			Proyectar:             proyectarMonedero,
		},
		GeneradorAguinaldos: {
			Fuente:               entity.FuenteAguinaldos,
			NombreArchivo:        "aguinaldos",
			TipoNomina:           entity.NominaTipoAguinaldo,
			ModoCuenta:           CuentaPagable,
			FiltroModelos:        noPensionados,
			AsignarCheques:       true,
			PersistirCheques:     true,
			DeduplicarPorPersona: true,
			Encabezado:           EncabezadoNominas,
			Proyectar:            proyectarNomina,
		},
		GeneradorPensionados: {
			Fuente:           entity.FuentePensionados,
			NombreArchivo:    "pensionados",
			TipoNomina:       entity.NominaTipoSalario,
			ModoCuenta:       CuentaPagable,
			FiltroModelos:    soloPensionados,
			AsignarCheques:   true,
			PersistirCheques: true,
			Encabezado:       EncabezadoNominas,
			Proyectar:        proyectarNomina,
		},
		GeneradorDispersionesPensionados: {
			Fuente:        entity.FuenteDispersionesPensionados,
			NombreArchivo: "dispersiones_pensionados",
			TipoNomina:    entity.NominaTipoSalario,
			ModoCuenta:    CuentaPagable,
			FiltroModelos: soloPensionados,
			// El layout bancario no lleva número de cheque: no consume consecutivos.
			AsignarCheques: false,
			Encabezado:     EncabezadoDispersiones,
			Proyectar:      proyectarDispersion,
		},
	}
}
