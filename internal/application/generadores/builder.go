package generadores

import (
	"context"
	"errors"
	"fmt"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	nominadom "github.com/PJECZ/pjecz-perseo-api/internal/domain/nomina"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

// ResultadoCorrida filas y advertencias acumuladas por una corrida. Las
// condiciones por renglón (sin cuenta, cuenta duplicada) no abortan: la
// corrida parcial es la norma, no la excepción.
type ResultadoCorrida struct {
	Filas             [][]any
	Advertencias      []string
	PersonasSinCuenta []string // RFC de las personas saltadas por falta de cuenta
}

// construirFilas arma los renglones del artefacto para una quincena ya
// resuelta: filtra las nóminas por tipo y modelo, elige cuenta por persona,
// asigna números de cheque y detecta cuentas duplicadas. Devuelve
// ErrSinRegistros si ninguna nómina cumple los filtros (hueco de datos en la
// fuente); "corrió pero todo se saltó" NO es ese caso y produce un artefacto
// documentado solo con advertencias.
func construirFilas(
	ctx context.Context,
	gen Generador,
	quincena *entity.Quincena,
	claveBancoMonedero string,
	nominaRepo repository.NominaRepository,
	cuentaRepo repository.CuentaRepository,
	bancoRepo repository.BancoRepository,
) (*ResultadoCorrida, error) {
	nominas, err := nominaRepo.ListarActivasPorQuincenaYTipo(ctx, quincena.ID, gen.TipoNomina)
	if err != nil {
		return nil, fmt.Errorf("listar nominas: %w", err)
	}

	calificadas := make([]entity.Nomina, 0, len(nominas))
	vistas := make(map[int64]bool)
	for _, n := range nominas {
		if n.Persona == nil || !gen.FiltroModelos(n.Persona.Modelo) {
			continue
		}
		if gen.DeduplicarPorPersona {
			if vistas[n.PersonaID] {
				continue
			}
			vistas[n.PersonaID] = true
		}
		calificadas = append(calificadas, n)
	}
	if len(calificadas) == 0 {
		return nil, domain.ErrSinRegistros
	}

	var referenciaPago, conceptoPago string
	if gen.Fuente == entity.FuenteDispersionesPensionados {
		if referenciaPago, err = nominadom.ReferenciaPago(quincena.Clave); err != nil {
			return nil, err
		}
		if conceptoPago, err = nominadom.ConceptoPago(quincena.Clave); err != nil {
			return nil, err
		}
	}

	resultado := &ResultadoCorrida{}
	for _, n := range calificadas {
		persona := n.Persona

		cuentas, err := cuentaRepo.ListarActivasPorPersona(ctx, persona.ID)
		if err != nil {
			return nil, fmt.Errorf("listar cuentas de %s: %w", persona.RFC, err)
		}
		var cuenta entity.Cuenta
		switch gen.ModoCuenta {
		case CuentaMonedero:
			cuenta, err = nominadom.SeleccionarCuentaMonedero(cuentas, claveBancoMonedero)
		default:
			cuenta, err = nominadom.SeleccionarCuentaPagable(cuentas, claveBancoMonedero)
		}
		if err != nil {
			if errors.Is(err, domain.ErrSinCuentas) ||
				errors.Is(err, domain.ErrSinCuentaPagable) ||
				errors.Is(err, domain.ErrSinCuentaMonedero) {
				resultado.PersonasSinCuenta = append(resultado.PersonasSinCuenta, persona.RFC)
				resultado.Advertencias = append(resultado.Advertencias,
					fmt.Sprintf("%s: %v", persona.RFC, err))
				continue
			}
			return nil, err
		}

		// La cuenta duplicada se reporta pero el renglón se emite: no se debe
		// abortar toda la corrida (ni pagar dos veces en silencio).
		duplicadas, err := cuentaRepo.BuscarDuplicadas(ctx, cuenta)
		if err != nil {
			return nil, fmt.Errorf("buscar duplicadas de %s: %w", persona.RFC, err)
		}
		if len(duplicadas) > 0 {
			resultado.Advertencias = append(resultado.Advertencias,
				fmt.Sprintf("%s: la cuenta %s del banco %s está duplicada en otra persona",
					persona.RFC, cuenta.NumCuenta, cuenta.Banco.Clave))
		}

		var numCheque string
		if gen.AsignarCheques {
			consecutivo, err := bancoRepo.SiguienteConsecutivo(ctx, cuenta.BancoID)
			if err != nil {
				return nil, fmt.Errorf("consecutivo del banco %s: %w", cuenta.Banco.Clave, err)
			}
			numCheque = nominadom.NumeroDeCheque(cuenta.Banco.Clave, consecutivo)
			if gen.PersistirCheques {
				if err := nominaRepo.ActualizarNumCheque(ctx, n.ID, numCheque); err != nil {
					return nil, fmt.Errorf("persistir cheque de %s: %w", persona.RFC, err)
				}
			}
		}

		registro := Registro{
			Consecutivo:          len(resultado.Filas) + 1,
			QuincenaClave:        quincena.Clave,
			CentroTrabajoClave:   n.CentroTrabajoClave,
			PlazaClave:           n.PlazaClave,
			RFC:                  persona.RFC,
			NombreCompleto:       persona.NombreCompleto(),
			NumEmpleado:          persona.NumEmpleado,
			Modelo:               persona.Modelo,
			BancoNombre:          cuenta.Banco.Nombre,
			BancoClave:           cuenta.Banco.Clave,
			BancoClaveDispersion: cuenta.Banco.ClaveDispersionPensionados,
			NumCuenta:            cuenta.NumCuenta,
			Importe:              n.Importe,
			NumCheque:            numCheque,
			ReferenciaPago:       referenciaPago,
			ConceptoPago:         conceptoPago,
		}
		resultado.Filas = append(resultado.Filas, gen.Proyectar(registro))
	}

	return resultado, nil
}
