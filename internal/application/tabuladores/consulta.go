package tabuladores

import (
	"context"
	"fmt"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	nominadom "github.com/PJECZ/pjecz-perseo-api/internal/domain/nomina"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
	"github.com/PJECZ/pjecz-perseo-api/pkg/config"
)

// Consulta resuelve renglones del tabulador por persona: el quinquenio se
// calcula de la fecha de ingreso contra el último día de la quincena de
// referencia, y solo aplica al personal sindicalizado.
type Consulta struct {
	personaRepo   repository.PersonaRepository
	tabuladorRepo repository.TabuladorRepository
	cfg           config.NominaConfig
}

// NewConsulta construye el caso de uso.
func NewConsulta(personaRepo repository.PersonaRepository, tabuladorRepo repository.TabuladorRepository, cfg config.NominaConfig) *Consulta {
	return &Consulta{personaRepo: personaRepo, tabuladorRepo: tabuladorRepo, cfg: cfg}
}

// QuinquenioDe calcula el nivel de antigüedad de una persona a la fecha de la
// quincena de referencia. Cero para quien no es sindicalizado.
func (c *Consulta) QuinquenioDe(persona *entity.Persona, quincenaClave string) (int, error) {
	if persona.Modelo != c.cfg.ModeloSindicalizado {
		return 0, nil
	}
	referencia, err := nominadom.QuincenaAFecha(quincenaClave, true)
	if err != nil {
		return 0, err
	}
	return nominadom.CantidadQuinquenios(persona.IngresoPJFecha, referencia), nil
}

// ConsultarPorRFC busca el renglón del tabulador para la persona en el puesto
// y nivel dados, con el quinquenio derivado de su antigüedad.
func (c *Consulta) ConsultarPorRFC(ctx context.Context, rfc, puestoClave string, nivel int, quincenaClave string) (*entity.Tabulador, int, error) {
	persona, err := c.personaRepo.ObtenerPorRFC(ctx, rfc)
	if err != nil {
		return nil, 0, err
	}
	if persona == nil {
		return nil, 0, domain.ErrNotFound
	}
	quinquenio, err := c.QuinquenioDe(persona, quincenaClave)
	if err != nil {
		return nil, 0, err
	}
	tabulador, err := c.tabuladorRepo.ObtenerPorLlave(ctx, puestoClave, persona.Modelo, nivel, quinquenio)
	if err != nil {
		return nil, 0, err
	}
	if tabulador == nil {
		return nil, 0, fmt.Errorf("%w: tabulador (%s, %d, %d, %d)",
			domain.ErrNotFound, puestoClave, persona.Modelo, nivel, quinquenio)
	}
	return tabulador, quinquenio, nil
}
