package timbrados

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes y armado
// ──────────────────────────────────────────────────────────────────────────────

type nominaRepoFake struct {
	// llave "rfc|quincena|tipo" -> nómina
	porLlave map[string]*entity.Nomina
}

func (f *nominaRepoFake) ListarActivasPorQuincenaYTipo(_ context.Context, _ int64, _ string) ([]entity.Nomina, error) {
	return nil, nil
}
func (f *nominaRepoFake) UltimaActivaPorRFCQuincenaTipo(_ context.Context, rfc, quincenaClave, tipo string) (*entity.Nomina, error) {
	return f.porLlave[rfc+"|"+quincenaClave+"|"+tipo], nil
}
func (f *nominaRepoFake) ActualizarNumCheque(_ context.Context, _ int64, _ string) error {
	return nil
}

type timbradoRepoFake struct {
	activos  map[int64]*entity.Timbrado // nominaID -> timbrado activo
	creados  int
	updates  int
	bajas    int
	ultimoID int64
}

func (f *timbradoRepoFake) ObtenerActivoPorNomina(_ context.Context, nominaID int64) (*entity.Timbrado, error) {
	return f.activos[nominaID], nil
}
func (f *timbradoRepoFake) Crear(_ context.Context, t *entity.Timbrado) error {
	f.ultimoID++
	t.ID = f.ultimoID
	copia := *t
	f.activos[t.NominaID] = &copia
	f.creados++
	return nil
}
func (f *timbradoRepoFake) Actualizar(_ context.Context, t *entity.Timbrado) error {
	copia := *t
	f.activos[t.NominaID] = &copia
	f.updates++
	return nil
}
func (f *timbradoRepoFake) DarDeBaja(_ context.Context, id int64) error {
	for nominaID, t := range f.activos {
		if t.ID == id {
			delete(f.activos, nominaID)
		}
	}
	f.bajas++
	return nil
}

func (f *timbradoRepoFake) escrituras() int {
	return f.creados + f.updates + f.bajas
}

// xmlTimbrado arma un CFDI 4.0 mínimo con el receptor y UUID dados.
func xmlTimbrado(receptorRFC, uuid string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4" Version="4.0" Fecha="2025-01-15T10:00:00">
  <cfdi:Emisor Rfc="PJE901231AB1" Nombre="PODER JUDICIAL" RegimenFiscal="603"/>
  <cfdi:Receptor Rfc="%s" Nombre="PERSONA DE PRUEBA" Curp="XEXX010101HNEXXXA4"/>
  <cfdi:Complemento>
    <tfd:TimbreFiscalDigital xmlns:tfd="http://www.sat.gob.mx/TimbreFiscalDigital"
      UUID="%s" FechaTimbrado="2025-01-15T10:05:00"
      SelloCFD="sello-cfd" NoCertificadoSAT="00001000000500000001" SelloSAT="sello-sat"/>
  </cfdi:Complemento>
</cfdi:Comprobante>`, receptorRFC, uuid))
}

func nuevoReconciliador(t *testing.T) (*Reconciliador, *nominaRepoFake, *timbradoRepoFake) {
	t.Helper()
	nominas := &nominaRepoFake{porLlave: map[string]*entity.Nomina{
		"XEXX010101AAA|202501|SALARIO":   {ID: 1},
		"XEXX010101AAA|202501|AGUINALDO": {ID: 2},
	}}
	timbrados := &timbradoRepoFake{activos: map[int64]*entity.Timbrado{}}
	r := NewReconciliador(nominas, timbrados, nil, t.TempDir())
	r.reloj = func() time.Time { return time.Date(2025, 1, 16, 12, 0, 0, 0, time.UTC) }
	return r, nominas, timbrados
}

const uuidA = "AAAAAAAA-0000-0000-0000-000000000001"
const uuidB = "BBBBBBBB-0000-0000-0000-000000000002"

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProcesarLote_CreaYEsIdempotente(t *testing.T) {
	r, _, repo := nuevoReconciliador(t)
	lote := []Archivo{{
		Nombre:    "XEXX010101AAA-202501.xml",
		Contenido: xmlTimbrado("XEXX010101AAA", uuidA),
	}}

	resumen, err := r.ProcesarLote(context.Background(), lote, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, resumen.Procesados)
	assert.Equal(t, 1, resumen.Actualizados)
	assert.Equal(t, 1, repo.creados)

	activo := repo.activos[1]
	require.NotNil(t, activo)
	assert.Equal(t, uuidA, activo.TFDUUID)
	assert.Equal(t, "PJE901231AB1", activo.EmisorRFC)

	// Segunda corrida con los mismos XML: cero escrituras.
	escrituras := repo.escrituras()
	resumen, err = r.ProcesarLote(context.Background(), lote, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, resumen.SinCambios)
	assert.Zero(t, resumen.Actualizados)
	assert.Equal(t, escrituras, repo.escrituras(), "la corrida repetida no debe escribir")
}

func TestProcesarLote_ReTimbradoDaDeBajaElAnterior(t *testing.T) {
	r, _, repo := nuevoReconciliador(t)
	ctx := context.Background()

	_, err := r.ProcesarLote(ctx, []Archivo{{
		Nombre:    "XEXX010101AAA-202501.xml",
		Contenido: xmlTimbrado("XEXX010101AAA", uuidA),
	}}, nil)
	require.NoError(t, err)

	// Llega un re-timbrado con UUID distinto para la misma nómina.
	resumen, err := r.ProcesarLote(ctx, []Archivo{{
		Nombre:    "XEXX010101AAA-202501.xml",
		Contenido: xmlTimbrado("XEXX010101AAA", uuidB),
	}}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, resumen.Actualizados)
	assert.Equal(t, 1, repo.bajas, "el timbrado anterior queda en baja")
	assert.Equal(t, 2, repo.creados)
	assert.Equal(t, uuidB, repo.activos[1].TFDUUID)
}

func TestProcesarLote_RFCNoCoincide(t *testing.T) {
	r, _, repo := nuevoReconciliador(t)

	resumen, err := r.ProcesarLote(context.Background(), []Archivo{{
		Nombre:    "XEXX010101AAA-202501.xml",
		Contenido: xmlTimbrado("OTRO010101ZZZ", uuidA),
	}}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"XEXX010101AAA"}, resumen.RFCNoCoinciden)
	assert.Zero(t, repo.escrituras())
}

func TestProcesarLote_SinNomina(t *testing.T) {
	r, _, repo := nuevoReconciliador(t)

	resumen, err := r.ProcesarLote(context.Background(), []Archivo{{
		Nombre:    "NADIE010101XXX-202501.xml",
		Contenido: xmlTimbrado("NADIE010101XXX", uuidA),
	}}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"NADIE010101XXX"}, resumen.SinNomina)
	assert.Zero(t, repo.escrituras())
}

func TestProcesarLote_XMLMalformadoNoAbortaElLote(t *testing.T) {
	r, _, repo := nuevoReconciliador(t)

	resumen, err := r.ProcesarLote(context.Background(), []Archivo{
		{Nombre: "XEXX010101AAA-202501.xml", Contenido: []byte("esto no es XML <")},
		{Nombre: "XEXX010101AAA-202501-AGUINALDO.xml", Contenido: xmlTimbrado("XEXX010101AAA", uuidB)},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, resumen.Procesados)
	assert.Len(t, resumen.Advertencias, 1)
	// El segundo archivo (sufijo AGUINALDO) sí se concilia, contra la nómina 2.
	assert.Equal(t, 1, resumen.Actualizados)
	assert.Equal(t, uuidB, repo.activos[2].TFDUUID)
}

func TestInterpretarNombre(t *testing.T) {
	casos := []struct {
		nombre string
		rfc    string
		clave  string
		tipo   string
		conErr bool
	}{
		{"XEXX010101AAA-202501.xml", "XEXX010101AAA", "202501", entity.NominaTipoSalario, false},
		{"xexx010101aaa-202501.xml", "XEXX010101AAA", "202501", entity.NominaTipoSalario, false},
		{"XEXX010101AAA-202422-AGUINALDO.xml", "XEXX010101AAA", "202422", entity.NominaTipoAguinaldo, false},
		{"XEXX010101AAA-202422-APOYO_ANUAL.xml", "XEXX010101AAA", "202422", entity.NominaTipoApoyoAnual, false},
		{"XEXX010101AAA-202422-APOYO-ANUAL.xml", "XEXX010101AAA", "202422", entity.NominaTipoApoyoAnual, false},
		{"sinquincena.xml", "", "", "", true},
		{"XEXX010101AAA-999999.xml", "", "", "", true},
		{"XEXX010101AAA-202422-NAVIDAD.xml", "", "", "", true},
	}
	for _, c := range casos {
		rfc, clave, tipo, err := interpretarNombre(c.nombre)
		if c.conErr {
			assert.Error(t, err, c.nombre)
			continue
		}
		require.NoError(t, err, c.nombre)
		assert.Equal(t, c.rfc, rfc, c.nombre)
		assert.Equal(t, c.clave, clave, c.nombre)
		assert.Equal(t, c.tipo, tipo, c.nombre)
	}
}
