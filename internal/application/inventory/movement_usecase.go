package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/Soubahou/gestion-stock-atlas/internal/application/dto"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/inventory"
	"github.com/rs/zerolog"
)

// MouvementPolicy instancia el procesador genérico para mouvements (un solo artículo).
var MouvementPolicy = RecordPolicy[*entity.Mouvement]{
	Kind:     "mouvement",
	Sequence: entity.SeqMouvements,
	Tags:     inventory.TagSet{Entry: entity.MouvementTypeEntree, Exit: entity.MouvementTypeSortie},
	Items:    func(snap *entity.Snapshot) *[]*entity.Mouvement { return &snap.Mouvements },
}

// MovementUseCase casos de uso de mouvements de entrada/salida.
type MovementUseCase struct {
	proc *RecordProcessor[*entity.Mouvement]
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(tx TxRunner, ids inventory.IDGenerator, log zerolog.Logger, metrics Recorder) *MovementUseCase {
	return &MovementUseCase{proc: NewRecordProcessor(tx, ids, MouvementPolicy, log, metrics)}
}

// WithClock reemplaza el reloj (tests).
func (uc *MovementUseCase) WithClock(now func() time.Time) *MovementUseCase {
	uc.proc.WithClock(now)
	return uc
}

// Create registra un mouvement y actualiza el stock del artículo en la misma escritura.
func (uc *MovementUseCase) Create(ctx context.Context, in dto.CreateMouvementRequest) (*entity.Mouvement, error) {
	mvType, dir, err := uc.proc.ParseType(in.Type)
	if err != nil {
		return nil, err
	}
	date, err := normalizeDate(in.Date, uc.proc.now())
	if err != nil {
		return nil, err
	}
	lines := []entity.Line{{ArticleID: in.ArticleID, Quantity: in.Quantity}}

	return uc.proc.Create(ctx, dir, lines, func(_ *entity.Snapshot, id int64, now time.Time) *entity.Mouvement {
		return &entity.Mouvement{
			ID:        id,
			ArticleID: in.ArticleID,
			Type:      mvType,
			Quantity:  in.Quantity,
			Date:      date,
			Reason:    in.Reason,
			User:      strings.TrimSpace(in.User),
			CreatedAt: now.UTC(),
		}
	})
}

// List devuelve los mouvements filtrados por tipo y/o artículo.
func (uc *MovementUseCase) List(ctx context.Context, f dto.MouvementFilter) ([]*entity.Mouvement, error) {
	canonical := ""
	if strings.TrimSpace(f.Type) != "" {
		var err error
		if canonical, _, err = uc.proc.ParseType(f.Type); err != nil {
			return nil, err
		}
	}
	return uc.proc.List(ctx, func(m *entity.Mouvement) bool {
		if canonical != "" && m.Type != canonical {
			return false
		}
		return f.ArticleID == 0 || m.ArticleID == f.ArticleID
	})
}

// GetByID obtiene un mouvement por ID.
func (uc *MovementUseCase) GetByID(ctx context.Context, id int64) (*entity.Mouvement, error) {
	return uc.proc.Get(ctx, id)
}

// Delete anula el mouvement: revierte su delta y lo elimina.
func (uc *MovementUseCase) Delete(ctx context.Context, id int64) error {
	return uc.proc.Delete(ctx, id)
}
