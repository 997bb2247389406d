package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/infrastructure/storage"
)

func TestLocalArtifactStore_SavePDF(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalArtifactStore(dir)
	require.NoError(t, err)

	url, err := store.SavePDF(context.Background(), "INV-000001.pdf", []byte("%PDF-1.7 contenido"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "file://"), "la URL debe ser file://")
	data, err := os.ReadFile(filepath.Join(dir, "INV-000001.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 contenido", string(data))
}

// Regenerar con el mismo nombre reemplaza el artefacto anterior.
func TestLocalArtifactStore_SobrescribeMismoObjeto(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalArtifactStore(dir)
	require.NoError(t, err)

	url1, err := store.SavePDF(context.Background(), "INV-000001.pdf", []byte("v1"))
	require.NoError(t, err)
	url2, err := store.SavePDF(context.Background(), "INV-000001.pdf", []byte("v2"))
	require.NoError(t, err)

	assert.Equal(t, url1, url2, "la referencia es estable entre regeneraciones")
	data, err := os.ReadFile(filepath.Join(dir, "INV-000001.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestLocalArtifactStore_CreaDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "artifacts")
	_, err := storage.NewLocalArtifactStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
