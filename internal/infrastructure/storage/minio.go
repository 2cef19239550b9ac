package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/tu-usuario/mercadito/pkg/config"
)

var _ ImageStore = (*MinIOStore)(nil)

// MinIOStore sube las imágenes a un bucket S3-compatible y devuelve la URL
// pública del objeto. Alternativa al disco local para despliegues con varias
// réplicas, donde el filesystem del contenedor no es compartido.
type MinIOStore struct {
	client  *minio.Client
	bucket  string
	baseURL string // PUBLIC_BASE_URL del endpoint, sin slash final
}

// NewMinIOStore construye el cliente y crea el bucket si no existe.
func NewMinIOStore(ctx context.Context, cfg config.MinIOConfig, publicBaseURL string) (*MinIOStore, error) {
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

	return &MinIOStore{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

// Save sube el objeto con su content type y devuelve la URL pública.
func (s *MinIOStore) Save(ctx context.Context, originalFilename, contentType string, data []byte) (string, error) {
	name := uniqueFilename(originalFilename)
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("subir imagen: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, name), nil
}

// Remove elimina el objeto referido por la URL; ignora URLs de otro origen.
func (s *MinIOStore) Remove(ctx context.Context, imageURL string) error {
	prefix := s.baseURL + "/" + s.bucket + "/"
	name, ok := strings.CutPrefix(imageURL, prefix)
	if !ok || name == "" {
		return nil
	}
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("eliminar imagen: %w", err)
	}
	return nil
}
