// Package memory implementa un SnapshotStore en memoria (tests y modo demo).
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/repository"
)

var _ repository.SnapshotStore = (*Store)(nil)

// Store guarda el documento serializado; cada Load devuelve una copia independiente.
type Store struct {
	mu    sync.Mutex
	data  []byte
	saves int
	fail  error
	lfail error
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWith crea un almacén con un snapshot inicial.
func NewStoreWith(snap *entity.Snapshot) *Store {
	s := &Store{}
	if err := s.Save(context.Background(), snap); err != nil {
		panic(err)
	}
	s.saves = 0
	return s
}

// Load decodifica el documento guardado.
func (s *Store) Load(_ context.Context) (*entity.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lfail != nil {
		return nil, s.lfail
	}
	if len(s.data) == 0 {
		return entity.NewSnapshot(), nil
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(s.data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	snap.Normalize()
	return &snap, nil
}

// Save serializa el snapshot.
func (s *Store) Save(_ context.Context, snap *entity.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	s.data = data
	s.saves++
	return nil
}

// Saves número de escrituras realizadas.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// FailSaves hace fallar las siguientes escrituras con err (nil restablece).
func (s *Store) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

// FailLoads hace fallar las siguientes lecturas con err (nil restablece).
func (s *Store) FailLoads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lfail = err
}

// SetRaw reemplaza el documento crudo (simula un archivo dañado).
func (s *Store) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
}
