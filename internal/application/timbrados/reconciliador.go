package timbrados

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	nominadom "github.com/PJECZ/pjecz-perseo-api/internal/domain/nomina"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
	"github.com/PJECZ/pjecz-perseo-api/internal/infrastructure/cfdi"
	"github.com/PJECZ/pjecz-perseo-api/internal/infrastructure/storage"
)

// Archivo un XML de timbrado a conciliar, con el nombre original
// ({RFC}-{quincena}[-{sufijo}].xml) y su contenido.
type Archivo struct {
	Nombre    string
	Contenido []byte
}

// Resumen resultado de una corrida de conciliación. Las fallas por archivo
// (XML malformado, RFC que no coincide, nómina sin encontrar) se acumulan en
// sus categorías; ninguna aborta el lote.
type Resumen struct {
	Procesados     int
	Actualizados   int
	SinCambios     int
	Advertencias   []string
	SinNomina      []string // RFC sin renglón de nómina que coincida
	RFCNoCoinciden []string // el RFC del nombre del archivo difiere del receptor
}

// Reconciliador empata timbrados del SAT contra renglones de nómina y hace
// upsert idempotente: por archivo corre
// PARSE -> VALIDATE -> MATCH_NOMINA -> UPSERT -> UPLOAD_ASSETS (opcional).
type Reconciliador struct {
	nominaRepo   repository.NominaRepository
	timbradoRepo repository.TimbradoRepository
	almacen      storage.Almacen // puede ser nil
	dir          string          // directorio local de XML conciliados
	reloj        func() time.Time
}

// NewReconciliador construye el caso de uso. almacen nil desactiva la subida.
func NewReconciliador(
	nominaRepo repository.NominaRepository,
	timbradoRepo repository.TimbradoRepository,
	almacen storage.Almacen,
	dir string,
) *Reconciliador {
	return &Reconciliador{
		nominaRepo:   nominaRepo,
		timbradoRepo: timbradoRepo,
		almacen:      almacen,
		dir:          dir,
		reloj:        time.Now,
	}
}

// ProcesarLote concilia un conjunto de archivos XML. avance puede ser nil.
func (r *Reconciliador) ProcesarLote(ctx context.Context, archivos []Archivo, avance func(int, string)) (*Resumen, error) {
	if avance == nil {
		avance = func(int, string) {}
	}
	resumen := &Resumen{}
	for i, archivo := range archivos {
		avance(i*100/max(len(archivos), 1), fmt.Sprintf("conciliando %s", archivo.Nombre))
		r.procesarArchivo(ctx, archivo, resumen)
		resumen.Procesados++
	}
	avance(100, "terminado")
	log.Info().
		Int("procesados", resumen.Procesados).
		Int("actualizados", resumen.Actualizados).
		Int("sin_cambios", resumen.SinCambios).
		Int("sin_nomina", len(resumen.SinNomina)).
		Msg("conciliación de timbrados terminada")
	return resumen, nil
}

func (r *Reconciliador) procesarArchivo(ctx context.Context, archivo Archivo, resumen *Resumen) {
	rfcArchivo, quincenaClave, tipo, err := interpretarNombre(archivo.Nombre)
	if err != nil {
		resumen.Advertencias = append(resumen.Advertencias, fmt.Sprintf("%s: %v", archivo.Nombre, err))
		return
	}

	comprobante, err := cfdi.Parsear(archivo.Contenido)
	if err != nil {
		resumen.Advertencias = append(resumen.Advertencias, fmt.Sprintf("%s: %v", archivo.Nombre, err))
		return
	}

	// El RFC embebido en el nombre debe ser el del receptor del XML: una
	// discrepancia es su propia categoría de falla, no "sin nómina".
	if comprobante.ReceptorRFC != rfcArchivo {
		resumen.RFCNoCoinciden = append(resumen.RFCNoCoinciden, rfcArchivo)
		resumen.Advertencias = append(resumen.Advertencias,
			fmt.Sprintf("%s: el RFC del nombre (%s) no coincide con el receptor (%s)",
				archivo.Nombre, rfcArchivo, comprobante.ReceptorRFC))
		return
	}

	nominaEncontrada, err := r.nominaRepo.UltimaActivaPorRFCQuincenaTipo(ctx, comprobante.ReceptorRFC, quincenaClave, tipo)
	if err != nil {
		resumen.Advertencias = append(resumen.Advertencias, fmt.Sprintf("%s: buscar nómina: %v", archivo.Nombre, err))
		return
	}
	if nominaEncontrada == nil {
		resumen.SinNomina = append(resumen.SinNomina, comprobante.ReceptorRFC)
		return
	}

	cambio, err := r.upsert(ctx, nominaEncontrada.ID, comprobante, archivo)
	if err != nil {
		resumen.Advertencias = append(resumen.Advertencias, fmt.Sprintf("%s: %v", archivo.Nombre, err))
		return
	}
	if cambio {
		resumen.Actualizados++
	} else {
		resumen.SinCambios++
	}
}

// upsert escribe el timbrado solo si algún campo extraído difiere del activo:
// corridas repetidas sobre los mismos XML no producen escrituras. Un UUID
// distinto da de baja el timbrado anterior y crea el nuevo.
func (r *Reconciliador) upsert(ctx context.Context, nominaID int64, c *cfdi.Comprobante, archivo Archivo) (bool, error) {
	ahora := r.reloj()
	nuevo := &entity.Timbrado{
		NominaID:             nominaID,
		EmisorRFC:            c.EmisorRFC,
		EmisorNombre:         c.EmisorNombre,
		EmisorRegimenFiscal:  c.EmisorRegimenFiscal,
		ReceptorRFC:          c.ReceptorRFC,
		ReceptorNombre:       c.ReceptorNombre,
		ReceptorCURP:         c.ReceptorCURP,
		TFDUUID:              c.TFDUUID,
		TFDFechaTimbrado:     c.TFDFechaTimbrado,
		TFDSelloCFD:          c.TFDSelloCFD,
		TFDNumCertificadoSAT: c.TFDNumCertificadoSAT,
		TFDSelloSAT:          c.TFDSelloSAT,
		XML:                  string(archivo.Contenido),
		ArchivoXML:           archivo.Nombre,
		Estatus:              entity.EstatusActivo,
		CreadoEn:             ahora,
		ActualizadoEn:        ahora,
	}

	existente, err := r.timbradoRepo.ObtenerActivoPorNomina(ctx, nominaID)
	if err != nil {
		return false, fmt.Errorf("consultar timbrado: %w", err)
	}

	switch {
	case existente == nil:
		// Primera vez que llega un timbrado para esta nómina.
	case nuevo.MismosCampos(existente):
		return false, nil
	case existente.TFDUUID != nuevo.TFDUUID:
		// Re-timbrado: el anterior queda en baja lógica.
		if err := r.timbradoRepo.DarDeBaja(ctx, existente.ID); err != nil {
			return false, fmt.Errorf("dar de baja timbrado %d: %w", existente.ID, err)
		}
	default:
		// Mismo UUID con campos corregidos: actualizar en su lugar.
		nuevo.ID = existente.ID
		nuevo.CreadoEn = existente.CreadoEn
		nuevo.URLXML, err = r.guardarActivo(ctx, archivo)
		if err != nil {
			return false, err
		}
		if err := r.timbradoRepo.Actualizar(ctx, nuevo); err != nil {
			return false, fmt.Errorf("actualizar timbrado: %w", err)
		}
		return true, nil
	}

	nuevo.URLXML, err = r.guardarActivo(ctx, archivo)
	if err != nil {
		return false, err
	}
	if err := r.timbradoRepo.Crear(ctx, nuevo); err != nil {
		return false, fmt.Errorf("crear timbrado: %w", err)
	}
	return true, nil
}

// guardarActivo persiste el XML en el directorio local y, con almacén
// configurado, lo sube a objetos. La subida fallida degrada a URL vacía.
func (r *Reconciliador) guardarActivo(ctx context.Context, archivo Archivo) (string, error) {
	ruta := filepath.Join(r.dir, archivo.Nombre)
	if err := os.WriteFile(ruta, archivo.Contenido, 0o644); err != nil {
		return "", fmt.Errorf("guardar %s: %w", archivo.Nombre, err)
	}
	if r.almacen == nil || !r.almacen.Habilitado() {
		return "", nil
	}
	url, err := r.almacen.Subir(ctx, ruta, "timbrados/"+archivo.Nombre)
	if err != nil {
		log.Warn().Err(err).Str("archivo", archivo.Nombre).Msg("subida de timbrado fallida")
		return "", nil
	}
	return url, nil
}

// interpretarNombre separa {RFC}-{quincena}[-{sufijo}].xml. El sufijo
// distingue las corridas AGUINALDO y APOYO ANUAL de la corrida SALARIO por
// omisión.
func interpretarNombre(nombre string) (rfc, quincenaClave, tipo string, err error) {
	base := strings.TrimSuffix(filepath.Base(nombre), filepath.Ext(nombre))
	partes := strings.Split(base, "-")
	if len(partes) < 2 {
		return "", "", "", fmt.Errorf("nombre %q no cumple RFC-quincena[-sufijo]", nombre)
	}
	rfc = strings.ToUpper(partes[0])
	quincenaClave = partes[1]
	if err := nominadom.ValidarClave(quincenaClave); err != nil {
		return "", "", "", err
	}
	tipo = entity.NominaTipoSalario
	if len(partes) > 2 {
		sufijo := strings.ToUpper(strings.ReplaceAll(strings.Join(partes[2:], " "), "_", " "))
		switch sufijo {
		case "AGUINALDO":
			tipo = entity.NominaTipoAguinaldo
		case "APOYO ANUAL":
			tipo = entity.NominaTipoApoyoAnual
		default:
			return "", "", "", fmt.Errorf("sufijo %q desconocido", sufijo)
		}
	}
	return rfc, quincenaClave, tipo, nil
}
