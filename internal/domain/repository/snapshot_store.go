package repository

import (
	"context"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
)

// SnapshotStore define el puerto de persistencia del documento de stock completo (DIP).
// Load devuelve una copia independiente; un documento ausente es un snapshot vacío y
// uno ilegible se reporta envolviendo domain.ErrCorruptSnapshot.
type SnapshotStore interface {
	Load(ctx context.Context) (*entity.Snapshot, error)
	Save(ctx context.Context, snap *entity.Snapshot) error
}
