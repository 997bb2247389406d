// Package storage implementa el almacén de artefactos PDF: MinIO/S3 en
// despliegues normales y un directorio local como respaldo de desarrollo.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	appbilling "github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/pkg/config"
)

var _ appbilling.ArtifactStore = (*MinIOArtifactStore)(nil)

// MinIOArtifactStore guarda los PDFs en un bucket MinIO/S3.
type MinIOArtifactStore struct {
	client    *minio.Client
	bucket    string
	publicURL string // base para URLs de descarga; vacío = presigned de 7 días
}

// NewMinIOArtifactStore crea el cliente y asegura que el bucket exista.
func NewMinIOArtifactStore(ctx context.Context, cfg config.StorageConfig) (*MinIOArtifactStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("verificar bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("crear bucket: %w", err)
		}
	}

	return &MinIOArtifactStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

// SavePDF sube el PDF con el nombre de objeto dado (determinista: el
// mismo número de factura siempre reemplaza el mismo objeto) y devuelve
// la URL de descarga.
func (s *MinIOArtifactStore) SavePDF(ctx context.Context, objectName string, data []byte) (string, error) {
	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/pdf",
	})
	if err != nil {
		return "", fmt.Errorf("subir pdf %s: %w", objectName, err)
	}

	if s.publicURL != "" {
		return s.publicURL + "/" + s.bucket + "/" + objectName, nil
	}
	url, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, 7*24*time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("generar URL de %s: %w", objectName, err)
	}
	return url.String(), nil
}
