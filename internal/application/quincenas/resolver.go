package quincenas

import (
	"context"
	"time"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	nominadom "github.com/PJECZ/pjecz-perseo-api/internal/domain/nomina"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

// Resolver valida y carga quincenas haciendo cumplir su máquina de estados
// (ABIERTA/CERRADA x A/B). No tiene efectos secundarios más allá de la consulta,
// salvo ResolverOCrear que da de alta la quincena en operaciones de ingesta.
type Resolver struct {
	quincenaRepo repository.QuincenaRepository
}

// NewResolver construye el resolvedor.
func NewResolver(quincenaRepo repository.QuincenaRepository) *Resolver {
	return &Resolver{quincenaRepo: quincenaRepo}
}

// ResolverAbierta devuelve la quincena si existe, está ABIERTA y en alta.
func (r *Resolver) ResolverAbierta(ctx context.Context, clave string) (*entity.Quincena, error) {
	return ResolverAbiertaCon(ctx, r.quincenaRepo, clave)
}

// ResolverAbiertaCon es la variante con repositorio explícito, para usarse
// dentro de una transacción con el repositorio atado a la tx.
func ResolverAbiertaCon(ctx context.Context, repo repository.QuincenaRepository, clave string) (*entity.Quincena, error) {
	if err := nominadom.ValidarClave(clave); err != nil {
		return nil, err
	}
	quincena, err := repo.ObtenerPorClave(ctx, clave)
	if err != nil {
		return nil, err
	}
	if quincena == nil {
		return nil, domain.ErrNotFound
	}
	if quincena.Estatus != entity.EstatusActivo {
		return nil, domain.ErrQuincenaEliminada
	}
	if quincena.Estado != entity.QuincenaEstadoAbierta {
		return nil, domain.ErrQuincenaNoAbierta
	}
	return quincena, nil
}

// Obtener devuelve la quincena activa sin exigir que esté abierta; las
// consultas (productos de quincenas históricas) la usan en lugar de
// ResolverAbierta.
func (r *Resolver) Obtener(ctx context.Context, clave string) (*entity.Quincena, error) {
	if err := nominadom.ValidarClave(clave); err != nil {
		return nil, err
	}
	quincena, err := r.quincenaRepo.ObtenerPorClave(ctx, clave)
	if err != nil {
		return nil, err
	}
	if quincena == nil {
		return nil, domain.ErrNotFound
	}
	if quincena.Estatus != entity.EstatusActivo {
		return nil, domain.ErrQuincenaEliminada
	}
	return quincena, nil
}

// ResolverOCrear devuelve la quincena abierta, creándola si no existe. Solo
// las operaciones de ingesta pueden auto-crear; las de explotación o consulta
// usan ResolverAbierta.
func (r *Resolver) ResolverOCrear(ctx context.Context, clave string) (*entity.Quincena, error) {
	quincena, err := r.ResolverAbierta(ctx, clave)
	if err == nil {
		return quincena, nil
	}
	if err != domain.ErrNotFound {
		return nil, err
	}
	ahora := time.Now()
	nueva := &entity.Quincena{
		Clave:         clave,
		Estado:        entity.QuincenaEstadoAbierta,
		Estatus:       entity.EstatusActivo,
		CreadoEn:      ahora,
		ActualizadoEn: ahora,
	}
	if err := r.quincenaRepo.Crear(ctx, nueva); err != nil {
		return nil, err
	}
	return nueva, nil
}

// Listar devuelve las quincenas activas para la API de consulta.
func (r *Resolver) Listar(ctx context.Context) ([]entity.Quincena, error) {
	return r.quincenaRepo.Listar(ctx)
}
