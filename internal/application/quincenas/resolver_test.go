package quincenas

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

type quincenaRepoFake struct {
	quincenas map[string]*entity.Quincena
	creadas   []string
}

func (f *quincenaRepoFake) ObtenerPorClave(_ context.Context, clave string) (*entity.Quincena, error) {
	return f.quincenas[clave], nil
}
func (f *quincenaRepoFake) Crear(_ context.Context, q *entity.Quincena) error {
	q.ID = int64(len(f.quincenas) + 1)
	f.quincenas[q.Clave] = q
	f.creadas = append(f.creadas, q.Clave)
	return nil
}
func (f *quincenaRepoFake) ActualizarEstado(_ context.Context, id int64, estado string) error {
	for _, q := range f.quincenas {
		if q.ID == id {
			q.Estado = estado
		}
	}
	return nil
}
func (f *quincenaRepoFake) Listar(_ context.Context) ([]entity.Quincena, error) {
	out := make([]entity.Quincena, 0, len(f.quincenas))
	for _, q := range f.quincenas {
		out = append(out, *q)
	}
	return out, nil
}

type bancoRepoFake struct {
	sincronizado bool
}

func (f *bancoRepoFake) ListarActivos(_ context.Context) ([]entity.Banco, error) { return nil, nil }
func (f *bancoRepoFake) SiguienteConsecutivo(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}
func (f *bancoRepoFake) ReiniciarConsecutivosGenerados(_ context.Context) error { return nil }
func (f *bancoRepoFake) SincronizarConsecutivos(_ context.Context) error {
	f.sincronizado = true
	return nil
}

type cierreTxFake struct {
	quincenaRepo *quincenaRepoFake
	bancoRepo    *bancoRepoFake
}

func (f *cierreTxFake) RunCierre(_ context.Context, fn func(
	repository.QuincenaRepository,
	repository.BancoRepository,
) error) error {
	return fn(f.quincenaRepo, f.bancoRepo)
}

func repoConQuincenas() *quincenaRepoFake {
	return &quincenaRepoFake{quincenas: map[string]*entity.Quincena{
		"202501": {ID: 1, Clave: "202501", Estado: entity.QuincenaEstadoAbierta, Estatus: entity.EstatusActivo},
		"202424": {ID: 2, Clave: "202424", Estado: entity.QuincenaEstadoCerrada, Estatus: entity.EstatusActivo},
		"202423": {ID: 3, Clave: "202423", Estado: entity.QuincenaEstadoAbierta, Estatus: entity.EstatusBaja},
	}}
}

func TestResolverAbierta(t *testing.T) {
	resolver := NewResolver(repoConQuincenas())
	ctx := context.Background()

	quincena, err := resolver.ResolverAbierta(ctx, "202501")
	require.NoError(t, err)
	assert.Equal(t, "202501", quincena.Clave)

	_, err = resolver.ResolverAbierta(ctx, "202424")
	assert.ErrorIs(t, err, domain.ErrQuincenaNoAbierta, "cerrada no es operable")

	_, err = resolver.ResolverAbierta(ctx, "202423")
	assert.ErrorIs(t, err, domain.ErrQuincenaEliminada, "en baja no es operable")

	_, err = resolver.ResolverAbierta(ctx, "202502")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = resolver.ResolverAbierta(ctx, "20250")
	assert.ErrorIs(t, err, domain.ErrClaveInvalida)
}

func TestObtener_AdmiteCerradas(t *testing.T) {
	resolver := NewResolver(repoConQuincenas())
	ctx := context.Background()

	quincena, err := resolver.Obtener(ctx, "202424")
	require.NoError(t, err)
	assert.Equal(t, entity.QuincenaEstadoCerrada, quincena.Estado)

	_, err = resolver.Obtener(ctx, "202423")
	assert.ErrorIs(t, err, domain.ErrQuincenaEliminada)
}

func TestResolverOCrear(t *testing.T) {
	repo := repoConQuincenas()
	resolver := NewResolver(repo)
	ctx := context.Background()

	// Existente: no crea nada.
	quincena, err := resolver.ResolverOCrear(ctx, "202501")
	require.NoError(t, err)
	assert.EqualValues(t, 1, quincena.ID)
	assert.Empty(t, repo.creadas)

	// Inexistente: se da de alta ABIERTA.
	quincena, err = resolver.ResolverOCrear(ctx, "202502")
	require.NoError(t, err)
	assert.Equal(t, entity.QuincenaEstadoAbierta, quincena.Estado)
	assert.Equal(t, []string{"202502"}, repo.creadas)

	// Cerrada: no se auto-reabre ni se duplica.
	_, err = resolver.ResolverOCrear(ctx, "202424")
	assert.ErrorIs(t, err, domain.ErrQuincenaNoAbierta)
	assert.Len(t, repo.creadas, 1)
}

func TestCerrarQuincena(t *testing.T) {
	repo := repoConQuincenas()
	bancos := &bancoRepoFake{}
	cierre := NewCierre(&cierreTxFake{quincenaRepo: repo, bancoRepo: bancos})
	ctx := context.Background()

	require.NoError(t, cierre.CerrarQuincena(ctx, "202501"))
	assert.Equal(t, entity.QuincenaEstadoCerrada, repo.quincenas["202501"].Estado)
	assert.True(t, bancos.sincronizado, "el cierre debe finalizar los consecutivos")

	// Cerrar dos veces no es válido.
	err := cierre.CerrarQuincena(ctx, "202501")
	assert.ErrorIs(t, err, domain.ErrQuincenaNoAbierta)
}
