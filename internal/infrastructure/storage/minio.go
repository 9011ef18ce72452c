package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/PJECZ/pjecz-perseo-api/pkg/config"
)

// plazoSubida tope de la subida a objetos; al vencerse la corrida sigue con
// el artefacto local y una advertencia.
const plazoSubida = 30 * time.Second

var _ Almacen = (*AlmacenMinio)(nil)

// AlmacenMinio implementación de Almacen sobre un bucket S3-compatible (MinIO).
type AlmacenMinio struct {
	cliente   *minio.Client
	bucket    string
	publicURL string
}

// NewAlmacenMinio construye el almacén. Bucket vacío devuelve nil (solo local).
func NewAlmacenMinio(cfg config.StorageConfig) (*AlmacenMinio, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}
	cliente, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente de objetos: %w", err)
	}
	return &AlmacenMinio{cliente: cliente, bucket: cfg.Bucket, publicURL: cfg.PublicURL}, nil
}

// Habilitado siempre cierto: un AlmacenMinio nil significa sin bucket.
func (a *AlmacenMinio) Habilitado() bool {
	return a != nil && a.bucket != ""
}

// Subir coloca el archivo en el bucket con plazo acotado y devuelve la URL pública.
func (a *AlmacenMinio) Subir(ctx context.Context, rutaLocal, nombreObjeto string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, plazoSubida)
	defer cancel()

	_, err := a.cliente.FPutObject(ctx, a.bucket, nombreObjeto, rutaLocal, minio.PutObjectOptions{
		ContentType: tipoContenido(nombreObjeto),
	})
	if err != nil {
		return "", fmt.Errorf("subir %s: %w", nombreObjeto, err)
	}
	base := strings.TrimSuffix(a.publicURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s/%s", a.cliente.EndpointURL().Host, a.bucket)
	}
	return base + "/" + nombreObjeto, nil
}

func tipoContenido(nombre string) string {
	switch {
	case strings.HasSuffix(nombre, ".xlsx"):
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case strings.HasSuffix(nombre, ".xml"):
		return "application/xml"
	case strings.HasSuffix(nombre, ".pdf"):
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
