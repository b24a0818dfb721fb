package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	appinv "github.com/Soubahou/gestion-stock-atlas/internal/application/inventory"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/memory"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/snapshot"
)

var fixedNow = time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store    *memory.Store
	tx       *snapshot.TxRunner
	bons     *appinv.VoucherUseCase
	mouvs    *appinv.MovementUseCase
	report   *appinv.StockReportUseCase
	recorder *spyRecorder
}

func newFixture(t *testing.T, articles ...*entity.Article) *fixture {
	t.Helper()
	snap := entity.NewSnapshot()
	snap.Articles = append(snap.Articles, articles...)
	store := memory.NewStoreWith(snap)
	tx := snapshot.NewTxRunner(store, zerolog.Nop())
	rec := &spyRecorder{}
	clock := func() time.Time { return fixedNow }
	return &fixture{
		store:    store,
		tx:       tx,
		bons:     appinv.NewVoucherUseCase(tx, nil, zerolog.Nop(), rec).WithClock(clock),
		mouvs:    appinv.NewMovementUseCase(tx, nil, zerolog.Nop(), rec).WithClock(clock),
		report:   appinv.NewStockReportUseCase(tx),
		recorder: rec,
	}
}

// qty lee la cantidad persistida del artículo.
func (f *fixture) qty(t *testing.T, id int64) int {
	t.Helper()
	snap, err := f.store.Load(context.Background())
	require.NoError(t, err)
	for _, a := range snap.Articles {
		if a.ID == id {
			return a.Quantity
		}
	}
	t.Fatalf("artículo %d no encontrado", id)
	return 0
}

func (f *fixture) load(t *testing.T) *entity.Snapshot {
	t.Helper()
	snap, err := f.store.Load(context.Background())
	require.NoError(t, err)
	return snap
}

type spyRecorder struct {
	created  int
	deleted  int
	rejected []string
}

func (s *spyRecorder) RecordCreated(string, entity.Direction, int) { s.created++ }
func (s *spyRecorder) RecordDeleted(string, entity.Direction)      { s.deleted++ }
func (s *spyRecorder) RecordRejected(_, _, code string)            { s.rejected = append(s.rejected, code) }
