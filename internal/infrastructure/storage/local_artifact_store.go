package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	appbilling "github.com/jhoicas/Facturacion-api/internal/application/billing"
)

var _ appbilling.ArtifactStore = (*LocalArtifactStore)(nil)

// LocalArtifactStore guarda los PDFs en un directorio local y devuelve
// URLs file://. Respaldo de desarrollo cuando no hay MinIO configurado.
type LocalArtifactStore struct {
	dir string
}

// NewLocalArtifactStore crea el directorio si no existe.
func NewLocalArtifactStore(dir string) (*LocalArtifactStore, error) {
	if dir == "" {
		dir = "./artifacts"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de artefactos: %w", err)
	}
	return &LocalArtifactStore{dir: dir}, nil
}

// SavePDF escribe el archivo y devuelve su URL file://.
func (s *LocalArtifactStore) SavePDF(_ context.Context, objectName string, data []byte) (string, error) {
	path := filepath.Join(s.dir, objectName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("escribir pdf %s: %w", objectName, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "file://" + abs, nil
}
