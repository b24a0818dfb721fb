// Package jsonfile implementa el SnapshotStore sobre un archivo JSON reescrito entero en cada guardado.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/repository"
)

var _ repository.SnapshotStore = (*Store)(nil)

const backupStamp = "20060102T150405.000000000Z"

// Store lee y escribe el documento en path (formato db.json: indentado a 2 espacios).
type Store struct {
	path string
}

// NewStore construye el almacén. El directorio se crea en el primer guardado.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path ruta del archivo.
func (s *Store) Path() string { return s.path }

// Load lee el archivo. Ausente o vacío = snapshot vacío; JSON inválido = ErrCorruptSnapshot,
// tras mover el archivo a <path>.corrupt-<timestamp> para que el siguiente guardado no lo pise.
func (s *Store) Load(_ context.Context) (*entity.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entity.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return entity.NewSnapshot(), nil
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		backup := s.path + ".corrupt-" + time.Now().UTC().Format(backupStamp)
		if rerr := os.Rename(s.path, backup); rerr != nil {
			// Sin copia no se puede partir de vacío: el llamador lo verá como fallo de persistencia.
			return nil, fmt.Errorf("archivar %s ilegible: %w", s.path, rerr)
		}
		return nil, fmt.Errorf("%w: %s (copia en %s): %v", domain.ErrCorruptSnapshot, s.path, backup, err)
	}
	snap.Normalize()
	return &snap, nil
}

// Save escribe a un archivo temporal en el mismo directorio y lo renombra,
// así un fallo a mitad de escritura nunca deja el documento truncado.
func (s *Store) Save(_ context.Context, snap *entity.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename %s: %w", s.path, err)
	}
	return nil
}
