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

// BonPolicy instancia el procesador genérico para bons (varias líneas, ref BON-ENT/BON-SOR).
var BonPolicy = RecordPolicy[*entity.Bon]{
	Kind:     "bon",
	Sequence: entity.SeqBons,
	Tags:     inventory.TagSet{Entry: entity.BonTypeEntree, Exit: entity.BonTypeSortie},
	Items:    func(snap *entity.Snapshot) *[]*entity.Bon { return &snap.Bons },
}

// VoucherUseCase casos de uso de bons de entrada/salida.
type VoucherUseCase struct {
	proc *RecordProcessor[*entity.Bon]
}

// NewVoucherUseCase construye el caso de uso.
func NewVoucherUseCase(tx TxRunner, ids inventory.IDGenerator, log zerolog.Logger, metrics Recorder) *VoucherUseCase {
	return &VoucherUseCase{proc: NewRecordProcessor(tx, ids, BonPolicy, log, metrics)}
}

// WithClock reemplaza el reloj (tests).
func (uc *VoucherUseCase) WithClock(now func() time.Time) *VoucherUseCase {
	uc.proc.WithClock(now)
	return uc
}

// Create registra un bon: valida todas las líneas, actualiza el stock de cada artículo,
// asigna la siguiente referencia del tipo y guarda todo en una sola escritura.
func (uc *VoucherUseCase) Create(ctx context.Context, in dto.CreateBonRequest) (*entity.Bon, error) {
	bonType, dir, err := uc.proc.ParseType(in.Type)
	if err != nil {
		return nil, err
	}
	date, err := normalizeDate(in.Date, uc.proc.now())
	if err != nil {
		return nil, err
	}
	lines := append([]entity.Line(nil), in.Articles...)
	user := strings.TrimSpace(in.User)
	if user == "" {
		user = entity.DefaultBonUser
	}

	return uc.proc.Create(ctx, dir, lines, func(snap *entity.Snapshot, id int64, now time.Time) *entity.Bon {
		return &entity.Bon{
			ID:        id,
			Ref:       inventory.NextRef(snap, bonType),
			Type:      bonType,
			Date:      date,
			Articles:  lines,
			Reason:    in.Reason,
			User:      user,
			CreatedAt: now.UTC(),
		}
	})
}

// List devuelve los bons, opcionalmente filtrados por tipo.
func (uc *VoucherUseCase) List(ctx context.Context, bonType string) ([]*entity.Bon, error) {
	if strings.TrimSpace(bonType) == "" {
		return uc.proc.List(ctx, nil)
	}
	canonical, _, err := uc.proc.ParseType(bonType)
	if err != nil {
		return nil, err
	}
	return uc.proc.List(ctx, func(b *entity.Bon) bool { return b.Type == canonical })
}

// GetByID obtiene un bon por ID.
func (uc *VoucherUseCase) GetByID(ctx context.Context, id int64) (*entity.Bon, error) {
	return uc.proc.Get(ctx, id)
}

// Delete anula el bon: revierte el stock de cada línea y lo elimina.
func (uc *VoucherUseCase) Delete(ctx context.Context, id int64) error {
	return uc.proc.Delete(ctx, id)
}
