package inventory

import (
	"context"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
)

// TxRunner ejecuta una función sobre el snapshot dentro de la sección crítica
// lectura-modificación-escritura. Run guarda el snapshot solo si fn devuelve nil;
// View no guarda nunca.
type TxRunner interface {
	Run(ctx context.Context, fn func(snap *entity.Snapshot) error) error
	View(ctx context.Context, fn func(snap *entity.Snapshot) error) error
}

// Recorder recibe los eventos del procesador para métricas.
type Recorder interface {
	RecordCreated(kind string, dir entity.Direction, lines int)
	RecordDeleted(kind string, dir entity.Direction)
	RecordRejected(kind, op, code string)
}

// NopRecorder descarta los eventos.
type NopRecorder struct{}

func (NopRecorder) RecordCreated(string, entity.Direction, int) {}
func (NopRecorder) RecordDeleted(string, entity.Direction)      {}
func (NopRecorder) RecordRejected(string, string, string)       {}
