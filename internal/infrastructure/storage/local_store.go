package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore guarda archivos subidos (imágenes de stock, comprobantes de venta)
// en disco local bajo un directorio base. El flujo solo persiste el nombre
// devuelto como valor de campo; servir el archivo es asunto del handler.
type LocalStore struct {
	baseDir string
}

// NewLocalStore construye el file store y asegura que exista el directorio base.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

// SaveFile persiste data bajo baseDir/folder con un nombre único
// ("<uuid>-<nombre original>") y devuelve ese nombre.
func (s *LocalStore) SaveFile(data []byte, folder, originalName string) (string, error) {
	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio %s: %w", folder, err)
	}

	name := uuid.New().String() + "-" + filepath.Base(originalName)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("guardar archivo: %w", err)
	}
	return name, nil
}

// Path devuelve la ruta absoluta dentro del store para servir un archivo.
func (s *LocalStore) Path(folder, filename string) string {
	return filepath.Join(s.baseDir, folder, filepath.Base(filename))
}

// Exists indica si el archivo está presente en el store.
func (s *LocalStore) Exists(folder, filename string) bool {
	_, err := os.Stat(s.Path(folder, filename))
	return err == nil
}
