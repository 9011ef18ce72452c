package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/PJECZ/pjecz-perseo-api/internal/domain"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/entity"
	"github.com/PJECZ/pjecz-perseo-api/internal/domain/repository"
)

var _ repository.TimbradoRepository = (*TimbradoRepo)(nil)

// TimbradoRepo implementación de TimbradoRepository.
type TimbradoRepo struct {
	q Querier
}

func NewTimbradoRepository(q Querier) *TimbradoRepo {
	return &TimbradoRepo{q: q}
}

const columnasTimbrado = `
	id, nomina_id, emisor_rfc, emisor_nombre, emisor_regimen_fiscal,
	receptor_rfc, receptor_nombre, COALESCE(receptor_curp, ''),
	tfd_uuid, tfd_fecha_timbrado, tfd_sello_cfd, tfd_num_certificado_sat, tfd_sello_sat,
	xml, archivo_xml, COALESCE(url_xml, ''), COALESCE(archivo_pdf, ''), COALESCE(url_pdf, ''),
	estatus, creado, modificado`

func escanearTimbrado(row pgx.Row) (*entity.Timbrado, error) {
	var t entity.Timbrado
	err := row.Scan(
		&t.ID, &t.NominaID, &t.EmisorRFC, &t.EmisorNombre, &t.EmisorRegimenFiscal,
		&t.ReceptorRFC, &t.ReceptorNombre, &t.ReceptorCURP,
		&t.TFDUUID, &t.TFDFechaTimbrado, &t.TFDSelloCFD, &t.TFDNumCertificadoSAT, &t.TFDSelloSAT,
		&t.XML, &t.ArchivoXML, &t.URLXML, &t.ArchivoPDF, &t.URLPDF,
		&t.Estatus, &t.CreadoEn, &t.ActualizadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ObtenerActivoPorNomina devuelve el timbrado activo de la nómina o nil.
func (r *TimbradoRepo) ObtenerActivoPorNomina(ctx context.Context, nominaID int64) (*entity.Timbrado, error) {
	query := `
		SELECT ` + columnasTimbrado + `
		FROM timbrados
		WHERE nomina_id = $1 AND estatus = 'A'
		ORDER BY id DESC
		LIMIT 1`
	t, err := escanearTimbrado(r.q.QueryRow(ctx, query, nominaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar timbrado: %w", err)
	}
	return t, nil
}

// Crear inserta el timbrado. El TFDUUID es único: un comprobante repetido bajo
// otra nómina produce ErrDuplicate.
func (r *TimbradoRepo) Crear(ctx context.Context, timbrado *entity.Timbrado) error {
	query := `
		INSERT INTO timbrados
			(nomina_id, emisor_rfc, emisor_nombre, emisor_regimen_fiscal,
			 receptor_rfc, receptor_nombre, receptor_curp,
			 tfd_uuid, tfd_fecha_timbrado, tfd_sello_cfd, tfd_num_certificado_sat, tfd_sello_sat,
			 xml, archivo_xml, url_xml, archivo_pdf, url_pdf, estatus, creado, modificado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, 'A', NOW(), NOW())
		RETURNING id, creado, modificado`
	err := r.q.QueryRow(ctx, query,
		timbrado.NominaID, timbrado.EmisorRFC, timbrado.EmisorNombre, timbrado.EmisorRegimenFiscal,
		timbrado.ReceptorRFC, timbrado.ReceptorNombre, nullIfEmpty(timbrado.ReceptorCURP),
		timbrado.TFDUUID, timbrado.TFDFechaTimbrado, timbrado.TFDSelloCFD,
		timbrado.TFDNumCertificadoSAT, timbrado.TFDSelloSAT,
		timbrado.XML, timbrado.ArchivoXML, nullIfEmpty(timbrado.URLXML),
		nullIfEmpty(timbrado.ArchivoPDF), nullIfEmpty(timbrado.URLPDF),
	).Scan(&timbrado.ID, &timbrado.CreadoEn, &timbrado.ActualizadoEn)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert timbrado: %w", err)
	}
	timbrado.Estatus = entity.EstatusActivo
	return nil
}

// Actualizar reescribe los campos extraídos y los activos derivados en sitio.
func (r *TimbradoRepo) Actualizar(ctx context.Context, timbrado *entity.Timbrado) error {
	query := `
		UPDATE timbrados
		SET emisor_rfc = $2, emisor_nombre = $3, emisor_regimen_fiscal = $4,
		    receptor_rfc = $5, receptor_nombre = $6, receptor_curp = $7,
		    tfd_fecha_timbrado = $8, tfd_sello_cfd = $9, tfd_num_certificado_sat = $10, tfd_sello_sat = $11,
		    xml = $12, archivo_xml = $13, url_xml = $14, archivo_pdf = $15, url_pdf = $16,
		    modificado = NOW()
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query,
		timbrado.ID, timbrado.EmisorRFC, timbrado.EmisorNombre, timbrado.EmisorRegimenFiscal,
		timbrado.ReceptorRFC, timbrado.ReceptorNombre, nullIfEmpty(timbrado.ReceptorCURP),
		timbrado.TFDFechaTimbrado, timbrado.TFDSelloCFD, timbrado.TFDNumCertificadoSAT, timbrado.TFDSelloSAT,
		timbrado.XML, timbrado.ArchivoXML, nullIfEmpty(timbrado.URLXML),
		nullIfEmpty(timbrado.ArchivoPDF), nullIfEmpty(timbrado.URLPDF),
	); err != nil {
		return fmt.Errorf("update timbrado: %w", err)
	}
	return nil
}

// DarDeBaja marca el timbrado con estatus B.
func (r *TimbradoRepo) DarDeBaja(ctx context.Context, id int64) error {
	query := `UPDATE timbrados SET estatus = 'B', modificado = NOW() WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("baja timbrado: %w", err)
	}
	return nil
}
