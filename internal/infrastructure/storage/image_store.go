// Package storage implementa el almacenamiento local de imágenes de producto.
// Los archivos viven en disco bajo un directorio configurable y en la base
// de datos solo se persiste la URL pública.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Extensiones aceptadas para imágenes de producto.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ImageStore guarda y elimina archivos de imagen en disco local.
type ImageStore struct {
	dir     string
	baseURL string
}

// NewImageStore crea el store y asegura que el directorio exista.
func NewImageStore(dir, baseURL string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &ImageStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// SaveUpload persiste el archivo subido con un nombre UUID (evita colisiones
// y nombres de archivo controlados por el cliente) y devuelve su URL pública.
func (s *ImageStore) SaveUpload(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("formato de imagen no soportado: %q", ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("abrir archivo subido: %w", err)
	}
	defer src.Close()

	filename := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("crear archivo de imagen: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("guardar imagen: %w", err)
	}
	return s.baseURL + "/" + filename, nil
}

// Remove elimina el archivo detrás de una URL generada por SaveUpload.
// Borrado best-effort: un archivo ya ausente no es un error.
func (s *ImageStore) Remove(imageURL string) error {
	name := filepath.Base(imageURL)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar imagen: %w", err)
	}
	return nil
}

// Dir devuelve el directorio en disco (para servir estáticos).
func (s *ImageStore) Dir() string { return s.dir }
