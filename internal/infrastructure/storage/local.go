package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var _ ImageStore = (*LocalStore)(nil)

// LocalStore guarda las imágenes en disco bajo dir y las expone como
// /uploads/<archivo> (el directorio se sirve estático desde la app).
type LocalStore struct {
	dir string
}

// NewLocalStore construye el store y crea el directorio si no existe.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save escribe el archivo con nombre único (prefijo uuid + timestamp + extensión original).
func (s *LocalStore) Save(_ context.Context, originalFilename, _ string, data []byte) (string, error) {
	name := uniqueFilename(originalFilename)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("escribir imagen: %w", err)
	}
	return "/uploads/" + name, nil
}

// Remove elimina el archivo referido por la URL; ignora URLs que no son locales.
func (s *LocalStore) Remove(_ context.Context, imageURL string) error {
	name, ok := strings.CutPrefix(imageURL, "/uploads/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar imagen: %w", err)
	}
	return nil
}

// uniqueFilename genera un nombre en latín básico: uuid corto + unix + extensión.
func uniqueFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%s_%d%s", uuid.New().String()[:8], time.Now().Unix(), ext)
}
