package cfdi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PJECZ/pjecz-perseo-api/internal/infrastructure/cfdi"
)

const xmlTimbrado = `<?xml version="1.0" encoding="utf-8"?>
<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4" Version="4.0" Fecha="2025-01-20T10:30:00" TipoDeComprobante="N">
  <cfdi:Emisor Rfc="PJE901231AB1" Nombre="PODER JUDICIAL" RegimenFiscal="603"/>
  <cfdi:Receptor Rfc="AAAA800101AAA" Nombre="JUAN PEREZ" Curp="AAAA800101HCLRRN09" UsoCFDI="CN01"/>
  <cfdi:Complemento>
    <tfd:TimbreFiscalDigital xmlns:tfd="http://www.sat.gob.mx/TimbreFiscalDigital"
      Version="1.1" UUID="11111111-2222-3333-4444-555555555555"
      FechaTimbrado="2025-01-20T10:35:00" SelloCFD="selloCFD==" NoCertificadoSAT="00001000000504465028" SelloSAT="selloSAT=="/>
  </cfdi:Complemento>
</cfdi:Comprobante>`

func TestParsear(t *testing.T) {
	c, err := cfdi.Parsear([]byte(xmlTimbrado))
	require.NoError(t, err)

	assert.Equal(t, "4.0", c.Version)
	assert.Equal(t, "PJE901231AB1", c.EmisorRFC)
	assert.Equal(t, "PODER JUDICIAL", c.EmisorNombre)
	assert.Equal(t, "603", c.EmisorRegimenFiscal)
	assert.Equal(t, "AAAA800101AAA", c.ReceptorRFC)
	assert.Equal(t, "JUAN PEREZ", c.ReceptorNombre)
	assert.Equal(t, "AAAA800101HCLRRN09", c.ReceptorCURP)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", c.TFDUUID)
	assert.Equal(t, "2025-01-20 10:35:00", c.TFDFechaTimbrado.Format("2006-01-02 15:04:05"))
	assert.Equal(t, "selloCFD==", c.TFDSelloCFD)
	assert.Equal(t, "00001000000504465028", c.TFDNumCertificadoSAT)
	assert.Equal(t, "selloSAT==", c.TFDSelloSAT)
}

func TestParsear_RaizIncorrecta(t *testing.T) {
	_, err := cfdi.Parsear([]byte(`<otra/>`))
	assert.ErrorContains(t, err, "cfdi:Comprobante")
}

func TestParsear_SinReceptor(t *testing.T) {
	xml := `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4" Version="4.0"/>`
	_, err := cfdi.Parsear([]byte(xml))
	assert.ErrorContains(t, err, "Receptor")
}

func TestParsear_SinRFCReceptor(t *testing.T) {
	xml := `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4">
	  <cfdi:Receptor Nombre="SIN RFC"/>
	</cfdi:Comprobante>`
	_, err := cfdi.Parsear([]byte(xml))
	assert.ErrorContains(t, err, "RFC del receptor")
}

func TestParsear_SinTimbre(t *testing.T) {
	xml := `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4">
	  <cfdi:Receptor Rfc="AAAA800101AAA"/>
	</cfdi:Comprobante>`
	_, err := cfdi.Parsear([]byte(xml))
	assert.ErrorContains(t, err, "TimbreFiscalDigital")
}

func TestParsear_XMLInvalido(t *testing.T) {
	_, err := cfdi.Parsear([]byte(`no es xml <`))
	assert.Error(t, err)
}
