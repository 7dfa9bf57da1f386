// Package filestore guarda el snapshot de la plataforma en un archivo JSON local.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo archivo JSON indentado. La escritura va a un temporal y se renombra.
type SnapshotRepo struct {
	mu   sync.Mutex
	path string
}

// NewSnapshotRepository construye el adaptador; el directorio se crea al guardar.
func NewSnapshotRepository(path string) *SnapshotRepo {
	return &SnapshotRepo{path: path}
}

// Load devuelve nil, nil si el archivo no existe o está vacío.
func (r *SnapshotRepo) Load(_ context.Context) (*entity.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer %s: %w", r.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", r.path, err)
	}
	return &snap, nil
}

// Save reemplaza el archivo completo.
func (r *SnapshotRepo) Save(_ context.Context, snap *entity.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("codificar snapshot: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".estado-*.json")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("reemplazar %s: %w", r.path, err)
	}
	return nil
}
