package inventory_test

import (
	"context"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soubahou/gestion-stock-atlas/internal/application/dto"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/entity"
)

func TestReport_Summary(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t,
		&entity.Article{ID: 1, Name: "Vis", Reference: "A", Category: "Quincaillerie", Quantity: 10, MinThreshold: 5, UnitPrice: decimal.RequireFromString("2.5")},
		&entity.Article{ID: 2, Name: "Câble", Reference: "B", Category: "Électricité", Quantity: 0, MinThreshold: 3, UnitPrice: decimal.NewFromInt(4)},
		&entity.Article{ID: 3, Name: "Écrou", Reference: "C", Category: "Quincaillerie", Quantity: 4, MinThreshold: 4},
	)
	_, err := f.bons.Create(ctx, dto.CreateBonRequest{Type: "ENTREE", Articles: []entity.Line{{ArticleID: 2, Quantity: 2}}})
	require.NoError(t, err)
	_, err = f.mouvs.Create(ctx, dto.CreateMouvementRequest{ArticleID: 1, Type: "sortie", Quantity: 2})
	require.NoError(t, err)

	s, err := f.report.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, s.ArticleCount)
	assert.Equal(t, "14", s.TotalUnits.String())
	assert.Equal(t, "28", s.StockValue.String())
	assert.Equal(t, 2, s.LowStockCount) // Câble 2<=3, Écrou 4<=4
	assert.Equal(t, 0, s.OutOfStockCount)
	assert.Equal(t, 1, s.BonsEntree)
	assert.Equal(t, 1, s.MouvementsOut)
	assert.Equal(t, 2, s.Categories["Quincaillerie"])
	assert.Equal(t, 2, f.store.Saves(), "el reporte no escribe")
}

func TestReport_LowStockOrdenYSugerencia(t *testing.T) {
	f := newFixture(t,
		&entity.Article{ID: 1, Name: "Vis", Reference: "A", Quantity: 3, MinThreshold: 5, UnitPrice: decimal.NewFromInt(1)},
		&entity.Article{ID: 2, Name: "Câble", Reference: "B", Quantity: 0, MinThreshold: 3, UnitPrice: decimal.NewFromInt(4), Supplier: "ElecPro"},
		&entity.Article{ID: 3, Name: "Écrou", Reference: "C", Quantity: 50, MinThreshold: 10},
		&entity.Article{ID: 4, Name: "Peinture", Reference: "D", Quantity: 1, MinThreshold: 7, UnitPrice: decimal.NewFromInt(10)},
	)

	items, err := f.report.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, int64(2), items[0].ArticleID, "agotado primero")
	assert.Equal(t, 5, items[0].IdealStock) // ceil(3*1.5)
	assert.Equal(t, 5, items[0].SuggestedOrderQty)
	assert.Equal(t, "20", items[0].EstimatedOrderCost.String())
	assert.Equal(t, "ElecPro", items[0].Supplier)

	assert.Equal(t, int64(4), items[1].ArticleID, "déficit 6 antes que déficit 2")
	assert.Equal(t, 11, items[1].IdealStock)
	assert.Equal(t, 10, items[1].SuggestedOrderQty)

	assert.Equal(t, int64(1), items[2].ArticleID)
	assert.Equal(t, 3, items[2].Priority)
}

func TestReport_LowStockVacio(t *testing.T) {
	f := newFixture(t, &entity.Article{ID: 1, Name: "Vis", Reference: "A", Quantity: 30, MinThreshold: 5})

	items, err := f.report.LowStock(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestReport_CantidadesEnElLimiteDeInt(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t,
		&entity.Article{ID: 1, Name: "Vis", Reference: "A", Quantity: math.MaxInt},
		&entity.Article{ID: 2, Name: "Câble", Reference: "B", Quantity: math.MaxInt},
		&entity.Article{ID: 3, Name: "Écrou", Reference: "C", Quantity: 0, MinThreshold: math.MaxInt},
	)

	s, err := f.report.Summary(ctx)
	require.NoError(t, err)
	want := decimal.NewFromInt(math.MaxInt).Mul(decimal.NewFromInt(2))
	assert.True(t, want.Equal(s.TotalUnits), "got %s", s.TotalUnits)

	items, err := f.report.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, math.MaxInt, items[0].IdealStock)
	assert.Equal(t, math.MaxInt, items[0].SuggestedOrderQty)
}
