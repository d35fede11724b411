package storage_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-backoffice/internal/infrastructure/storage"
)

// uploadFileHeader construye un *multipart.FileHeader real parseando un
// formulario en memoria, igual que haría Fiber con una petición entrante.
func uploadFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("images", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["images"][0]
}

func TestSaveUpload_GuardaYDevuelveURL(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewImageStore(dir, "/uploads/")
	require.NoError(t, err)

	fh := uploadFileHeader(t, "foto del producto.JPG", []byte("imagen-fake"))
	url, err := store.SaveUpload(fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"), "la URL debe usar el prefijo público")
	assert.True(t, strings.HasSuffix(url, ".jpg"), "la extensión se normaliza a minúsculas")
	assert.NotContains(t, url, "foto", "el nombre original del cliente no se usa en disco")

	// El archivo existe en disco con el contenido subido.
	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, []byte("imagen-fake"), data)
}

func TestSaveUpload_ExtensionNoSoportada(t *testing.T) {
	store, err := storage.NewImageStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	fh := uploadFileHeader(t, "malicioso.exe", []byte("MZ"))
	_, err = store.SaveUpload(fh)
	assert.Error(t, err)
}

func TestRemove_BestEffort(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewImageStore(dir, "/uploads")
	require.NoError(t, err)

	fh := uploadFileHeader(t, "a.png", []byte("png"))
	url, err := store.SaveUpload(fh)
	require.NoError(t, err)

	require.NoError(t, store.Remove(url))
	_, statErr := os.Stat(filepath.Join(dir, filepath.Base(url)))
	assert.True(t, os.IsNotExist(statErr), "el archivo debe haberse borrado")

	// Borrar de nuevo no es un error.
	assert.NoError(t, store.Remove(url))
}
