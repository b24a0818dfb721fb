// Package snapshot serializa el ciclo lectura-modificación-escritura sobre el documento de stock.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Soubahou/gestion-stock-atlas/internal/application/inventory"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/repository"
	"github.com/rs/zerolog"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks sobre un snapshot recién cargado, de a uno por proceso.
// Cada Run es: Lock → Load → fn → Save (solo si fn no falla) → Unlock.
// Si fn falla, la copia en memoria se descarta y el almacén queda intacto.
type TxRunner struct {
	mu    sync.Mutex
	store repository.SnapshotStore
	log   zerolog.Logger
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store repository.SnapshotStore, log zerolog.Logger) *TxRunner {
	return &TxRunner{store: store, log: log.With().Str("component", "snapshot").Logger()}
}

// Run carga el snapshot, ejecuta fn y guarda el resultado.
func (r *TxRunner) Run(ctx context.Context, fn func(snap *entity.Snapshot) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}
	if err := r.store.Save(ctx, snap); err != nil {
		r.log.Error().Err(err).Msg("guardar snapshot")
		return fmt.Errorf("%w: save snapshot: %v", domain.ErrPersistence, err)
	}
	return nil
}

// View carga el snapshot y ejecuta fn sin guardar.
func (r *TxRunner) View(ctx context.Context, fn func(snap *entity.Snapshot) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, err := r.load(ctx)
	if err != nil {
		return err
	}
	return fn(snap)
}

// load aplica la política de lectura: documento ilegible → estado inicial vacío.
func (r *TxRunner) load(ctx context.Context) (*entity.Snapshot, error) {
	snap, err := r.store.Load(ctx)
	if errors.Is(err, domain.ErrCorruptSnapshot) {
		r.log.Warn().Err(err).Msg("snapshot ilegible, se parte de un estado vacío")
		return entity.NewSnapshot(), nil
	}
	if err != nil {
		r.log.Error().Err(err).Msg("cargar snapshot")
		return nil, fmt.Errorf("%w: load snapshot: %v", domain.ErrPersistence, err)
	}
	if snap == nil {
		return entity.NewSnapshot(), nil
	}
	snap.Normalize()
	return snap, nil
}
