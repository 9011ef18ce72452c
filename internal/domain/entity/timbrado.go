package entity

import "time"

// Timbrado es el sello fiscal digital (CFDI 4.0) emitido por el SAT para un
// renglón de nómina. Único por TFDUUID; una nómina tiene a lo más un timbrado
// activo a la vez (el anterior se da de baja lógica al reemplazar).
type Timbrado struct {
	ID       int64
	NominaID int64

	// Campos extraídos del comprobante.
	EmisorRFC           string
	EmisorNombre        string
	EmisorRegimenFiscal string
	ReceptorRFC         string
	ReceptorNombre      string
	ReceptorCURP        string

	// Complemento TimbreFiscalDigital.
	TFDUUID              string
	TFDFechaTimbrado     time.Time
	TFDSelloCFD          string
	TFDNumCertificadoSAT string
	TFDSelloSAT          string

	// Contenido y activos derivados.
	XML        string
	ArchivoXML string
	URLXML     string
	ArchivoPDF string
	URLPDF     string

	Estatus       string
	CreadoEn      time.Time
	ActualizadoEn time.Time
}

// MismosCampos compara los campos extraídos contra otro timbrado. Se usa para
// detección de cambios antes de escribir: corridas repetidas sobre los mismos
// XML no deben producir escrituras redundantes.
func (t *Timbrado) MismosCampos(otro *Timbrado) bool {
	if otro == nil {
		return false
	}
	return t.EmisorRFC == otro.EmisorRFC &&
		t.EmisorNombre == otro.EmisorNombre &&
		t.EmisorRegimenFiscal == otro.EmisorRegimenFiscal &&
		t.ReceptorRFC == otro.ReceptorRFC &&
		t.ReceptorNombre == otro.ReceptorNombre &&
		t.ReceptorCURP == otro.ReceptorCURP &&
		t.TFDUUID == otro.TFDUUID &&
		t.TFDFechaTimbrado.Equal(otro.TFDFechaTimbrado) &&
		t.TFDSelloCFD == otro.TFDSelloCFD &&
		t.TFDNumCertificadoSAT == otro.TFDNumCertificadoSAT &&
		t.TFDSelloSAT == otro.TFDSelloSAT
}
