package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.SnapshotStore = (*SnapshotRepo)(nil)

// SnapshotRepo guarda el documento completo en una fila jsonb (id = 1).
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

// Load lee la fila. Sin fila = snapshot vacío; documento ilegible = ErrCorruptSnapshot.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	var raw []byte
	err := r.q.QueryRow(ctx, `SELECT document FROM inventory_snapshot WHERE id = 1`).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.NewSnapshot(), nil
		}
		if isUndefinedTable(err) {
			return nil, fmt.Errorf("load snapshot (¿migraciones aplicadas?): %w", err)
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var snap entity.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: inventory_snapshot: %v", domain.ErrCorruptSnapshot, err)
	}
	snap.Normalize()
	return &snap, nil
}

// Save hace upsert del documento.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	query := `
		INSERT INTO inventory_snapshot (id, document, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
