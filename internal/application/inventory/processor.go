package inventory

import (
	"context"
	"slices"
	"time"

	"github.com/Soubahou/gestion-stock-atlas/internal/domain"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/inventory"
	"github.com/rs/zerolog"
)

// RecordPolicy describe un tipo de registro de stock: su colección dentro del snapshot,
// su secuencia de IDs y sus etiquetas de entrada/salida.
type RecordPolicy[T entity.StockRecord] struct {
	Kind     string // "bon" | "mouvement"
	Sequence string
	Tags     inventory.TagSet
	Items    func(snap *entity.Snapshot) *[]T
}

// RecordProcessor aplica el contrato de consistencia de stock a la creación y el borrado
// de registros: validar todo, luego aplicar todos los deltas y guardar una sola vez.
type RecordProcessor[T entity.StockRecord] struct {
	tx      TxRunner
	ids     inventory.IDGenerator
	policy  RecordPolicy[T]
	log     zerolog.Logger
	metrics Recorder
	now     func() time.Time
}

// NewRecordProcessor construye el procesador. metrics puede ser nil.
func NewRecordProcessor[T entity.StockRecord](
	tx TxRunner,
	ids inventory.IDGenerator,
	policy RecordPolicy[T],
	log zerolog.Logger,
	metrics Recorder,
) *RecordProcessor[T] {
	if ids == nil {
		ids = inventory.SequenceIDGenerator{}
	}
	if metrics == nil {
		metrics = NopRecorder{}
	}
	return &RecordProcessor[T]{
		tx:      tx,
		ids:     ids,
		policy:  policy,
		log:     log.With().Str("kind", policy.Kind).Logger(),
		metrics: metrics,
		now:     time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (p *RecordProcessor[T]) WithClock(now func() time.Time) *RecordProcessor[T] {
	p.now = now
	return p
}

// ParseType resuelve la etiqueta recibida (sin acentos ni mayúsculas) a la canónica.
func (p *RecordProcessor[T]) ParseType(tag string) (string, entity.Direction, error) {
	canonical, dir, ok := p.policy.Tags.Parse(tag)
	if !ok {
		if tag == "" {
			return "", 0, domain.Invalid("type", "Type requis")
		}
		return "", 0, domain.Invalid("type", "Type invalide : "+tag)
	}
	return canonical, dir, nil
}

// List devuelve los registros que cumplen keep (nil = todos), del más reciente al más antiguo.
func (p *RecordProcessor[T]) List(ctx context.Context, keep func(T) bool) ([]T, error) {
	out := []T{}
	err := p.tx.View(ctx, func(snap *entity.Snapshot) error {
		items := *p.policy.Items(snap)
		for i := len(items) - 1; i >= 0; i-- {
			if keep == nil || keep(items[i]) {
				out = append(out, items[i])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get devuelve el registro o un NotFoundError.
func (p *RecordProcessor[T]) Get(ctx context.Context, id int64) (T, error) {
	var found T
	err := p.tx.View(ctx, func(snap *entity.Snapshot) error {
		items := *p.policy.Items(snap)
		idx := p.indexOf(items, id)
		if idx < 0 {
			return &domain.NotFoundError{Resource: p.policy.Kind, ID: id}
		}
		found = items[idx]
		return nil
	})
	return found, err
}

// Create valida las líneas contra el ledger, aplica los deltas y agrega el registro que
// construye finalize (recibe el ID nuevo y la hora de creación). Un error de validación
// deja el snapshot intacto: no se guarda nada ni se consume ningún contador.
func (p *RecordProcessor[T]) Create(
	ctx context.Context,
	dir entity.Direction,
	lines []entity.Line,
	finalize func(snap *entity.Snapshot, id int64, now time.Time) T,
) (T, error) {
	var created T
	err := p.tx.Run(ctx, func(snap *entity.Snapshot) error {
		ledger := inventory.NewLedger(snap, p.ids, p.now)
		plan, err := inventory.PlanApply(ledger, dir, lines)
		if err != nil {
			return err
		}
		plan.Commit(ledger)

		id := p.ids.NextID(snap, p.policy.Sequence)
		created = finalize(snap, id, p.now())
		items := p.policy.Items(snap)
		*items = append(*items, created)
		return nil
	})
	if err != nil {
		p.reject("create", err)
		var zero T
		return zero, err
	}
	p.metrics.RecordCreated(p.policy.Kind, dir, len(lines))
	p.log.Info().
		Int64("id", created.RecordID()).
		Str("direction", dir.String()).
		Int("lines", len(lines)).
		Msg("registro de stock creado")
	return created, nil
}

// Delete anula los deltas del registro y lo elimina. Anular una entrada exige stock
// suficiente; las líneas de artículos ya borrados se omiten.
func (p *RecordProcessor[T]) Delete(ctx context.Context, id int64) error {
	var removed T
	var skipped []int64
	err := p.tx.Run(ctx, func(snap *entity.Snapshot) error {
		items := p.policy.Items(snap)
		idx := p.indexOf(*items, id)
		if idx < 0 {
			return &domain.NotFoundError{Resource: p.policy.Kind, ID: id}
		}
		rec := (*items)[idx]

		ledger := inventory.NewLedger(snap, p.ids, p.now)
		plan, err := inventory.PlanReverse(ledger, rec.Direction(), rec.StockLines())
		if err != nil {
			return err
		}
		plan.Commit(ledger)
		skipped = plan.Skipped()

		*items = slices.Delete(*items, idx, idx+1)
		removed = rec
		return nil
	})
	if err != nil {
		p.reject("delete", err)
		return err
	}
	if len(skipped) > 0 {
		p.log.Warn().
			Int64("id", id).
			Ints64("missing_articles", skipped).
			Msg("anulación parcial: artículos inexistentes omitidos")
	}
	p.metrics.RecordDeleted(p.policy.Kind, removed.Direction())
	p.log.Info().Int64("id", id).Msg("registro de stock eliminado")
	return nil
}

func (p *RecordProcessor[T]) indexOf(items []T, id int64) int {
	return slices.IndexFunc(items, func(r T) bool { return r.RecordID() == id })
}

func (p *RecordProcessor[T]) reject(op string, err error) {
	code := domain.ErrorCode(err)
	p.metrics.RecordRejected(p.policy.Kind, op, code)
	ev := p.log.Warn()
	if code == domain.CodeInternal {
		ev = p.log.Error()
	}
	ev.Err(err).Str("op", op).Str("code", code).Msg("operación de stock rechazada")
}
