package cfdi

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
)

// Comprobante campos extraídos de un CFDI 4.0 de nómina timbrado por el SAT.
type Comprobante struct {
	Version string
	Fecha   time.Time

	EmisorRFC           string
	EmisorNombre        string
	EmisorRegimenFiscal string

	ReceptorRFC    string
	ReceptorNombre string
	ReceptorCURP   string

	TFDUUID              string
	TFDFechaTimbrado     time.Time
	TFDSelloCFD          string
	TFDNumCertificadoSAT string
	TFDSelloSAT          string
}

// Parsear extrae los campos de emisor, receptor y timbre fiscal de un XML
// CFDI. El XML debe tener raíz cfdi:Comprobante; el RFC del receptor es
// obligatorio. Cualquier otra carencia estructural también es error: el
// llamador la degrada a advertencia por archivo, nunca aborta el lote.
func Parsear(contenido []byte) (*Comprobante, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(contenido); err != nil {
		return nil, fmt.Errorf("cfdi: leer XML: %w", err)
	}
	raiz := doc.Root()
	if raiz == nil {
		return nil, fmt.Errorf("cfdi: documento vacío")
	}
	if raiz.Tag != "Comprobante" {
		return nil, fmt.Errorf("cfdi: la raíz es %q, se esperaba cfdi:Comprobante", raiz.FullTag())
	}

	c := &Comprobante{Version: raiz.SelectAttrValue("Version", "")}
	if fecha := raiz.SelectAttrValue("Fecha", ""); fecha != "" {
		c.Fecha, _ = time.Parse("2006-01-02T15:04:05", fecha)
	}

	emisor := buscarHijo(raiz, "Emisor")
	if emisor != nil {
		c.EmisorRFC = emisor.SelectAttrValue("Rfc", "")
		c.EmisorNombre = emisor.SelectAttrValue("Nombre", "")
		c.EmisorRegimenFiscal = emisor.SelectAttrValue("RegimenFiscal", "")
	}

	receptor := buscarHijo(raiz, "Receptor")
	if receptor == nil {
		return nil, fmt.Errorf("cfdi: falta el nodo cfdi:Receptor")
	}
	c.ReceptorRFC = receptor.SelectAttrValue("Rfc", "")
	if c.ReceptorRFC == "" {
		return nil, fmt.Errorf("cfdi: falta el RFC del receptor")
	}
	c.ReceptorNombre = receptor.SelectAttrValue("Nombre", "")
	c.ReceptorCURP = receptor.SelectAttrValue("Curp", "")

	if complemento := buscarHijo(raiz, "Complemento"); complemento != nil {
		if tfd := buscarHijo(complemento, "TimbreFiscalDigital"); tfd != nil {
			c.TFDUUID = tfd.SelectAttrValue("UUID", "")
			if fecha := tfd.SelectAttrValue("FechaTimbrado", ""); fecha != "" {
				c.TFDFechaTimbrado, _ = time.Parse("2006-01-02T15:04:05", fecha)
			}
			c.TFDSelloCFD = tfd.SelectAttrValue("SelloCFD", "")
			c.TFDNumCertificadoSAT = tfd.SelectAttrValue("NoCertificadoSAT", "")
			c.TFDSelloSAT = tfd.SelectAttrValue("SelloSAT", "")
		}
	}
	if c.TFDUUID == "" {
		return nil, fmt.Errorf("cfdi: falta el complemento tfd:TimbreFiscalDigital")
	}

	return c, nil
}

// buscarHijo encuentra el primer hijo con el tag local dado, sin importar el
// prefijo de namespace (cfdi:, tfd:, nomina12:).
func buscarHijo(padre *etree.Element, tag string) *etree.Element {
	for _, hijo := range padre.ChildElements() {
		if hijo.Tag == tag {
			return hijo
		}
	}
	return nil
}
